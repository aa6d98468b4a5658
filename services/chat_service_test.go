package services

import (
	"context"
	"testing"

	"mindhuddle_server/models"
	"mindhuddle_server/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatService() *ChatService {
	return &ChatService{Store: store.NewSeededAppStore()}
}

// TestGetOrCreateConversation_PairUnique verifies at most one
// conversation exists per participant pair.
func TestGetOrCreateConversation_PairUnique(t *testing.T) {
	svc := newChatService()
	ctx := context.Background()

	existing, err := svc.GetOrCreateConversation(ctx, store.DefaultUserID, "u2")
	require.NoError(t, err)
	assert.Equal(t, "c1", existing.ID, "existing conversation is reused")

	created, err := svc.GetOrCreateConversation(ctx, store.DefaultUserID, "u4")
	require.NoError(t, err)
	assert.Equal(t, store.DefaultUserID, created.OwnerID)
	assert.Empty(t, created.Messages)

	again, err := svc.GetOrCreateConversation(ctx, "u4", store.DefaultUserID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID, "pair lookup ignores direction")
}

// TestGetOrCreateConversation_Self verifies self-conversations are
// rejected.
func TestGetOrCreateConversation_Self(t *testing.T) {
	svc := newChatService()
	_, err := svc.GetOrCreateConversation(context.Background(), "u1", "u1")
	assert.ErrorIs(t, err, models.ErrInvalidState)
}

// TestSendMessage_UnreadCounter verifies partner messages increment the
// counter, own messages do not, and marking read resets it.
func TestSendMessage_UnreadCounter(t *testing.T) {
	svc := newChatService()
	ctx := context.Background()

	conv, err := svc.GetOrCreateConversation(ctx, store.DefaultUserID, "u4")
	require.NoError(t, err)

	for _, content := range []string{"one", "two", "three"} {
		_, err := svc.SendMessage(ctx, "u4", conv.ID, content, false)
		require.NoError(t, err)
	}
	_, err = svc.SendMessage(ctx, store.DefaultUserID, conv.ID, "from the owner", false)
	require.NoError(t, err)

	err = svc.Store.View(func(c *store.Collections) error {
		got, err := c.Conversation(conv.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, got.UnreadCount, "only partner messages count as unread")
		require.NotNil(t, got.LastMessage)
		assert.Equal(t, "from the owner", got.LastMessage.Content)
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, svc.MarkConversationRead(ctx, store.DefaultUserID, conv.ID))
	err = svc.Store.View(func(c *store.Collections) error {
		got, err := c.Conversation(conv.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.UnreadCount)
		return nil
	})
	require.NoError(t, err)
}

// TestSendMessage_Guards verifies participant checks and blank-content
// rejection.
func TestSendMessage_Guards(t *testing.T) {
	svc := newChatService()
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, "u4", "c1", "hello", false)
	assert.ErrorIs(t, err, models.ErrInvalidState, "non-participants cannot post")

	_, err = svc.SendMessage(ctx, "u2", "c1", "   ", false)
	assert.ErrorIs(t, err, models.ErrInvalidState)

	_, err = svc.SendMessage(ctx, "u2", "missing", "hello", false)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

// TestGetMessages_LimitKeepsTail verifies the limit keeps the most
// recent messages, still oldest first.
func TestGetMessages_LimitKeepsTail(t *testing.T) {
	svc := newChatService()
	ctx := context.Background()

	for _, content := range []string{"three", "four"} {
		_, err := svc.SendMessage(ctx, "u2", "c1", content, false)
		require.NoError(t, err)
	}

	all, err := svc.GetMessages(ctx, store.DefaultUserID, "c1", 0)
	require.NoError(t, err)
	require.Len(t, all, 4)

	tail, err := svc.GetMessages(ctx, store.DefaultUserID, "c1", 2)
	require.NoError(t, err)
	require.Len(t, tail, 2)
	assert.Equal(t, "three", tail[0].Content)
	assert.Equal(t, "four", tail[1].Content)

	_, err = svc.GetMessages(ctx, "u4", "c1", 0)
	assert.ErrorIs(t, err, models.ErrInvalidState)
}

// TestListConversations_PartnerEnrichment verifies summaries carry the
// other participant's profile.
func TestListConversations_PartnerEnrichment(t *testing.T) {
	svc := newChatService()

	summaries, err := svc.ListConversations(context.Background(), store.DefaultUserID)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byID := make(map[string]models.ConversationSummary)
	for _, s := range summaries {
		byID[s.ID] = s
	}
	require.NotNil(t, byID["c1"].Partner)
	assert.Equal(t, "u2", byID["c1"].Partner.ID)
	require.NotNil(t, byID["c2"].Partner)
	assert.Equal(t, "u1", byID["c2"].Partner.ID)

	none, err := svc.ListConversations(context.Background(), "u4")
	require.NoError(t, err)
	assert.Empty(t, none)
}

// TestChat_RequireSession verifies operations refuse an empty actor.
func TestChat_RequireSession(t *testing.T) {
	svc := newChatService()
	ctx := context.Background()

	_, err := svc.GetOrCreateConversation(ctx, "", "u1")
	assert.ErrorIs(t, err, models.ErrNotAuthenticated)
	_, err = svc.SendMessage(ctx, "", "c1", "hi", false)
	assert.ErrorIs(t, err, models.ErrNotAuthenticated)
	assert.ErrorIs(t, svc.MarkConversationRead(ctx, "", "c1"), models.ErrNotAuthenticated)
}
