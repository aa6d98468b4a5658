package services

import (
	"context"
	"log"

	"mindhuddle_server/models"
	"mindhuddle_server/store"
)

// UserProfileService handles reads over the user collection. Profile
// mutation for the active identity lives in AuthService; relationship
// mutation lives in ConnectionService and GroupService.
type UserProfileService struct {
	Store *store.AppStore
}

// GetUserProfile retrieves a profile by ID.
func (ups *UserProfileService) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	var profile *models.UserProfile
	err := ups.Store.View(func(c *store.Collections) error {
		u, err := c.User(userID)
		if err != nil {
			return err
		}
		profile = u.Clone()
		return nil
	})
	if err != nil {
		log.Printf("❌ Failed to fetch profile %s: %v", userID, err)
		return nil, err
	}
	return profile, nil
}

// GetUserProfileByEmail retrieves a profile by its email address.
func (ups *UserProfileService) GetUserProfileByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	var profile *models.UserProfile
	err := ups.Store.View(func(c *store.Collections) error {
		u, err := c.UserByEmail(email)
		if err != nil {
			return err
		}
		profile = u.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// ListUserProfiles returns every profile in fixture order.
func (ups *UserProfileService) ListUserProfiles(ctx context.Context) ([]models.UserProfile, error) {
	var out []models.UserProfile
	err := ups.Store.View(func(c *store.Collections) error {
		for _, u := range c.Users() {
			out = append(out, *u.Clone())
		}
		return nil
	})
	return out, err
}
