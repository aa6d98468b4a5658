package services

import (
	"context"
	"testing"

	"mindhuddle_server/models"
	"mindhuddle_server/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostService() *PostService {
	return &PostService{Store: store.NewSeededAppStore()}
}

// TestCreatePost_GroupMembership verifies a group-scoped post requires
// membership in that group.
func TestCreatePost_GroupMembership(t *testing.T) {
	svc := newPostService()
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, "u4", "Hello AI folks", "", "g1")
	assert.ErrorIs(t, err, models.ErrInvalidState)

	post, err := svc.CreatePost(ctx, "u1", "Hello AI folks", "", "g1")
	require.NoError(t, err)
	assert.Equal(t, "g1", post.GroupID)
	assert.Equal(t, "u1", post.AuthorID)
}

// TestCreatePost_BlankContent verifies whitespace-only content is
// rejected.
func TestCreatePost_BlankContent(t *testing.T) {
	svc := newPostService()
	_, err := svc.CreatePost(context.Background(), "u1", "   ", "", "")
	assert.ErrorIs(t, err, models.ErrInvalidState)
}

// TestToggleLike_RoundTrip verifies a double toggle restores the
// original like set.
func TestToggleLike_RoundTrip(t *testing.T) {
	svc := newPostService()
	ctx := context.Background()

	require.NoError(t, svc.ToggleLike(ctx, "u4", "p1"))
	err := svc.Store.View(func(c *store.Collections) error {
		p, err := c.Post("p1")
		require.NoError(t, err)
		assert.Contains(t, p.Likes, "u4")
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, svc.ToggleLike(ctx, "u4", "p1"))
	err = svc.Store.View(func(c *store.Collections) error {
		p, err := c.Post("p1")
		require.NoError(t, err)
		assert.Equal(t, []string{store.DefaultUserID, "u2", "u3"}, p.Likes)
		return nil
	})
	require.NoError(t, err)
}

// TestAddComment_AppendsOldestFirst verifies comments keep insertion
// order.
func TestAddComment_AppendsOldestFirst(t *testing.T) {
	svc := newPostService()
	ctx := context.Background()

	first, err := svc.AddComment(ctx, "u1", "p3", "Inspiring!")
	require.NoError(t, err)
	second, err := svc.AddComment(ctx, "u4", "p3", "Count me in.")
	require.NoError(t, err)

	err = svc.Store.View(func(c *store.Collections) error {
		p, err := c.Post("p3")
		require.NoError(t, err)
		require.Len(t, p.Comments, 2)
		assert.Equal(t, first.ID, p.Comments[0].ID)
		assert.Equal(t, second.ID, p.Comments[1].ID)
		return nil
	})
	require.NoError(t, err)

	_, err = svc.AddComment(ctx, "u1", "p3", "  ")
	assert.ErrorIs(t, err, models.ErrInvalidState)
}

// TestFeed_GroupVisibility verifies group posts appear only for members
// and ordering is newest first.
func TestFeed_GroupVisibility(t *testing.T) {
	svc := newPostService()
	ctx := context.Background()

	// Alex is in g1 only: sees p1 (g1) and p3 (ungrouped), not p2 (g2).
	feed, err := svc.Feed(ctx, store.DefaultUserID)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "p1", feed[0].ID, "newest first")
	assert.Equal(t, "p3", feed[1].ID)

	// Sarah is in g1 and g2: sees all three.
	feed, err = svc.Feed(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, feed, 3)
	assert.Equal(t, []string{"p1", "p2", "p3"}, []string{feed[0].ID, feed[1].ID, feed[2].ID})
}

// TestGroupFeed_MemberOnly verifies the group feed is scoped and
// member-gated.
func TestGroupFeed_MemberOnly(t *testing.T) {
	svc := newPostService()
	ctx := context.Background()

	_, err := svc.GroupFeed(ctx, "u4", "g1")
	assert.ErrorIs(t, err, models.ErrInvalidState)

	feed, err := svc.GroupFeed(ctx, "u1", "g1")
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "p1", feed[0].ID)
}

// TestPosts_RequireSession verifies operations refuse an empty actor.
func TestPosts_RequireSession(t *testing.T) {
	svc := newPostService()
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, "", "hi", "", "")
	assert.ErrorIs(t, err, models.ErrNotAuthenticated)
	assert.ErrorIs(t, svc.ToggleLike(ctx, "", "p1"), models.ErrNotAuthenticated)
	_, err = svc.Feed(ctx, "")
	assert.ErrorIs(t, err, models.ErrNotAuthenticated)
}
