package services

import (
	"context"
	"testing"

	"mindhuddle_server/models"
	"mindhuddle_server/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetUserProfile verifies lookup by ID and by email, and that
// results are copies.
func TestGetUserProfile(t *testing.T) {
	svc := &UserProfileService{Store: store.NewSeededAppStore()}
	ctx := context.Background()

	profile, err := svc.GetUserProfile(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, "Kwame Osei", profile.Name)

	byEmail, err := svc.GetUserProfileByEmail(ctx, "kwame@example.com")
	require.NoError(t, err)
	assert.Equal(t, profile.ID, byEmail.ID)

	_, err = svc.GetUserProfile(ctx, "u99")
	assert.ErrorIs(t, err, models.ErrNotFound)

	// Mutating the returned copy must not leak into the store.
	profile.Name = "Changed"
	again, err := svc.GetUserProfile(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, "Kwame Osei", again.Name)
}

// TestListUserProfiles verifies fixture order.
func TestListUserProfiles(t *testing.T) {
	svc := &UserProfileService{Store: store.NewSeededAppStore()}

	profiles, err := svc.ListUserProfiles(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 5)
	assert.Equal(t, store.DefaultUserID, profiles[0].ID)
	assert.Equal(t, "u4", profiles[4].ID)
}
