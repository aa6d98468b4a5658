package services

import (
	"context"
	"testing"

	"mindhuddle_server/models"
	"mindhuddle_server/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscoveryService() *DiscoveryService {
	return &DiscoveryService{Store: store.NewSeededAppStore()}
}

// TestDiscoverProfiles_ExcludesViewer verifies the viewer never appears
// in their own results and fixture order holds in "all" mode.
func TestDiscoverProfiles_ExcludesViewer(t *testing.T) {
	svc := newDiscoveryService()

	results, err := svc.DiscoverProfiles(context.Background(), store.DefaultUserID, DiscoveryFilters{})
	require.NoError(t, err)
	require.Len(t, results, 4)
	ids := []string{results[0].ID, results[1].ID, results[2].ID, results[3].ID}
	assert.Equal(t, []string{"u1", "u2", "u3", "u4"}, ids)
}

// TestDiscoverProfiles_RecommendedRanking verifies shared skills weigh
// double shared interests and ties stay stable.
func TestDiscoverProfiles_RecommendedRanking(t *testing.T) {
	s := store.NewAppStore()
	err := s.Update(func(c *store.Collections) error {
		c.AddUser(&models.UserProfile{ID: "v", Name: "Viewer", Skills: []string{"Go", "Rust"}, Interests: []string{"Jazz"}})
		c.AddUser(&models.UserProfile{ID: "a", Name: "Both Skills", Skills: []string{"Go", "Rust"}})
		c.AddUser(&models.UserProfile{ID: "b", Name: "Skill Plus Interest", Skills: []string{"Go"}, Interests: []string{"Jazz"}})
		c.AddUser(&models.UserProfile{ID: "c", Name: "Interest Only", Interests: []string{"Jazz"}})
		c.AddUser(&models.UserProfile{ID: "d", Name: "Nothing Shared", Skills: []string{"COBOL"}})
		return nil
	})
	require.NoError(t, err)
	svc := &DiscoveryService{Store: s}

	results, err := svc.DiscoverProfiles(context.Background(), "v", DiscoveryFilters{Mode: models.DiscoveryModeRecommended})
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, "a", results[0].ID)
	assert.Equal(t, 4, results[0].Relevance)
	assert.Equal(t, "b", results[1].ID)
	assert.Equal(t, 3, results[1].Relevance)
	assert.Equal(t, "c", results[2].ID)
	assert.Equal(t, 1, results[2].Relevance)
	assert.Equal(t, "d", results[3].ID)
	assert.Equal(t, 0, results[3].Relevance)
}

// TestDiscoverProfiles_Nearby verifies the substring match works in both
// directions and empty locations never match.
func TestDiscoverProfiles_Nearby(t *testing.T) {
	s := store.NewAppStore()
	err := s.Update(func(c *store.Collections) error {
		c.AddUser(&models.UserProfile{ID: "v", Name: "Viewer", Location: "San Francisco"})
		c.AddUser(&models.UserProfile{ID: "a", Name: "Longer", Location: "san francisco, ca"})
		c.AddUser(&models.UserProfile{ID: "b", Name: "Shorter", Location: "Francisco"})
		c.AddUser(&models.UserProfile{ID: "c", Name: "Elsewhere", Location: "Oakland, CA"})
		c.AddUser(&models.UserProfile{ID: "d", Name: "Unset"})
		return nil
	})
	require.NoError(t, err)
	svc := &DiscoveryService{Store: s}

	results, err := svc.DiscoverProfiles(context.Background(), "v", DiscoveryFilters{Mode: models.DiscoveryModeNearby})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].ID)
	assert.True(t, results[0].Nearby)
	assert.Equal(t, "b", results[1].ID)
}

// TestDiscoverProfiles_Filters verifies query, status, and skill filters
// are conjunctive.
func TestDiscoverProfiles_Filters(t *testing.T) {
	svc := newDiscoveryService()
	ctx := context.Background()

	byStatus, err := svc.DiscoverProfiles(ctx, store.DefaultUserID, DiscoveryFilters{Status: models.StatusHiring})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "u1", byStatus[0].ID)

	bySkill, err := svc.DiscoverProfiles(ctx, store.DefaultUserID, DiscoveryFilters{Skill: "react"})
	require.NoError(t, err)
	require.Len(t, bySkill, 1, "skill filter is a substring match")
	assert.Equal(t, "u2", bySkill[0].ID)

	byQuery, err := svc.DiscoverProfiles(ctx, store.DefaultUserID, DiscoveryFilters{Query: "lisbon"})
	require.NoError(t, err)
	require.Len(t, byQuery, 1)
	assert.Equal(t, "u3", byQuery[0].ID)

	none, err := svc.DiscoverProfiles(ctx, store.DefaultUserID, DiscoveryFilters{Query: "lisbon", Status: models.StatusHiring})
	require.NoError(t, err)
	assert.Empty(t, none)
}

// TestAllSkills verifies the union is sorted and deduplicated.
func TestAllSkills(t *testing.T) {
	svc := newDiscoveryService()

	skills, err := svc.AllSkills(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, skills)
	for i := 1; i < len(skills); i++ {
		assert.Less(t, skills[i-1], skills[i], "skills must be sorted and unique")
	}
	assert.Contains(t, skills, "React")
	assert.Contains(t, skills, "Kubernetes")
}

// TestDiscover_RequireSession verifies discovery refuses an empty
// viewer.
func TestDiscover_RequireSession(t *testing.T) {
	svc := newDiscoveryService()
	_, err := svc.DiscoverProfiles(context.Background(), "", DiscoveryFilters{})
	assert.ErrorIs(t, err, models.ErrNotAuthenticated)
}
