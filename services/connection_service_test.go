package services

import (
	"context"
	"testing"

	"mindhuddle_server/models"
	"mindhuddle_server/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConnectionService() *ConnectionService {
	return &ConnectionService{Store: store.NewSeededAppStore()}
}

func profileOf(t *testing.T, s *store.AppStore, id string) *models.UserProfile {
	t.Helper()
	var out *models.UserProfile
	err := s.View(func(c *store.Collections) error {
		u, err := c.User(id)
		if err != nil {
			return err
		}
		out = u.Clone()
		return nil
	})
	require.NoError(t, err)
	return out
}

// TestSendThenAccept verifies the full request lifecycle leaves a
// symmetric connection and no pending mirrors.
func TestSendThenAccept(t *testing.T) {
	svc := newConnectionService()
	ctx := context.Background()

	require.NoError(t, svc.SendConnectionRequest(ctx, "u1", "u4"))

	u1 := profileOf(t, svc.Store, "u1")
	u4 := profileOf(t, svc.Store, "u4")
	assert.Contains(t, u1.SentRequests, "u4")
	assert.Contains(t, u4.ReceivedRequests, "u1")

	require.NoError(t, svc.AcceptConnectionRequest(ctx, "u4", "u1"))

	u1 = profileOf(t, svc.Store, "u1")
	u4 = profileOf(t, svc.Store, "u4")
	assert.Contains(t, u1.Connections, "u4")
	assert.Contains(t, u4.Connections, "u1")
	assert.NotContains(t, u1.SentRequests, "u4", "accepted request should be cleaned up")
	assert.NotContains(t, u4.ReceivedRequests, "u1", "accepted request should be cleaned up")
}

// TestSendThenIgnore verifies an ignored request disappears from both
// sides without creating a connection.
func TestSendThenIgnore(t *testing.T) {
	svc := newConnectionService()
	ctx := context.Background()

	require.NoError(t, svc.SendConnectionRequest(ctx, "u1", "u4"))
	require.NoError(t, svc.IgnoreConnectionRequest(ctx, "u4", "u1"))

	u1 := profileOf(t, svc.Store, "u1")
	u4 := profileOf(t, svc.Store, "u4")
	assert.NotContains(t, u1.SentRequests, "u4")
	assert.NotContains(t, u4.ReceivedRequests, "u1")
	assert.NotContains(t, u1.Connections, "u4")
	assert.NotContains(t, u4.Connections, "u1")
}

// TestSendRequest_DuplicateAndReverse verifies a second request in either
// direction is rejected while the first is pending.
func TestSendRequest_DuplicateAndReverse(t *testing.T) {
	svc := newConnectionService()
	ctx := context.Background()

	require.NoError(t, svc.SendConnectionRequest(ctx, "u1", "u4"))
	assert.ErrorIs(t, svc.SendConnectionRequest(ctx, "u1", "u4"), models.ErrAlreadyRequested)
	assert.ErrorIs(t, svc.SendConnectionRequest(ctx, "u4", "u1"), models.ErrAlreadyRequested)
}

// TestSendRequest_AlreadyConnected verifies requesting an existing
// connection fails.
func TestSendRequest_AlreadyConnected(t *testing.T) {
	svc := newConnectionService()
	err := svc.SendConnectionRequest(context.Background(), store.DefaultUserID, "u2")
	assert.ErrorIs(t, err, models.ErrAlreadyRequested)
}

// TestSendRequest_Self verifies self-requests are rejected.
func TestSendRequest_Self(t *testing.T) {
	svc := newConnectionService()
	err := svc.SendConnectionRequest(context.Background(), "u1", "u1")
	assert.ErrorIs(t, err, models.ErrInvalidState)
}

// TestAccept_WithoutPendingRequest verifies acceptance requires an actual
// incoming request.
func TestAccept_WithoutPendingRequest(t *testing.T) {
	svc := newConnectionService()
	err := svc.AcceptConnectionRequest(context.Background(), "u1", "u4")
	assert.ErrorIs(t, err, models.ErrInvalidState)
}

// TestRemoveConnection_Idempotent verifies removal severs both sides and
// that removing again is a no-op.
func TestRemoveConnection_Idempotent(t *testing.T) {
	svc := newConnectionService()
	ctx := context.Background()

	require.NoError(t, svc.RemoveConnection(ctx, store.DefaultUserID, "u2"))

	alex := profileOf(t, svc.Store, store.DefaultUserID)
	kwame := profileOf(t, svc.Store, "u2")
	assert.NotContains(t, alex.Connections, "u2")
	assert.NotContains(t, kwame.Connections, store.DefaultUserID)

	require.NoError(t, svc.RemoveConnection(ctx, store.DefaultUserID, "u2"))
}

// TestConnectionStatus_Priority verifies the derived status for each
// relationship shape.
func TestConnectionStatus_Priority(t *testing.T) {
	svc := newConnectionService()
	ctx := context.Background()

	status, err := svc.ConnectionStatus(ctx, store.DefaultUserID, "u2")
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionStatusConnected, status)

	status, err = svc.ConnectionStatus(ctx, "u3", store.DefaultUserID)
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionStatusPendingSent, status)

	status, err = svc.ConnectionStatus(ctx, store.DefaultUserID, "u3")
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionStatusPendingReceived, status)

	status, err = svc.ConnectionStatus(ctx, store.DefaultUserID, "u4")
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionStatusNone, status)
}

// TestConnectionLists verifies the three list views resolve profiles from
// the viewer's mirrors.
func TestConnectionLists(t *testing.T) {
	svc := newConnectionService()
	ctx := context.Background()

	connections, err := svc.ListConnections(ctx, store.DefaultUserID)
	require.NoError(t, err)
	require.Len(t, connections, 1)
	assert.Equal(t, "u2", connections[0].ID)

	received, err := svc.ListReceivedRequests(ctx, store.DefaultUserID)
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, "u3", received[0].ID)

	sent, err := svc.ListSentRequests(ctx, "u3")
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, store.DefaultUserID, sent[0].ID)
}

// TestConnections_RequireSession verifies every operation refuses an
// empty actor.
func TestConnections_RequireSession(t *testing.T) {
	svc := newConnectionService()
	ctx := context.Background()

	assert.ErrorIs(t, svc.SendConnectionRequest(ctx, "", "u1"), models.ErrNotAuthenticated)
	assert.ErrorIs(t, svc.AcceptConnectionRequest(ctx, "", "u1"), models.ErrNotAuthenticated)
	assert.ErrorIs(t, svc.IgnoreConnectionRequest(ctx, "", "u1"), models.ErrNotAuthenticated)
	assert.ErrorIs(t, svc.RemoveConnection(ctx, "", "u1"), models.ErrNotAuthenticated)
	_, err := svc.ListConnections(ctx, "")
	assert.ErrorIs(t, err, models.ErrNotAuthenticated)
}
