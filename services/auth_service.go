package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"sync"
	"time"

	"mindhuddle_server/models"
	"mindhuddle_server/store"
	"mindhuddle_server/utils"

	"github.com/google/uuid"
)

// DefaultLoginDelay simulates the identity provider's network latency.
const DefaultLoginDelay = 800 * time.Millisecond

// AuthService owns the single active identity. Every mutating operation
// in the other services acts on behalf of the identity resolved here.
type AuthService struct {
	Store    *store.AppStore
	Sessions *SessionStore

	// LoginDelay is the simulated provider latency; tests set it to zero.
	LoginDelay time.Duration

	mu        sync.RWMutex
	currentID string
}

// NewAuthService builds the service and restores any persisted session
// snapshot into the users collection.
func NewAuthService(appStore *store.AppStore, sessions *SessionStore) *AuthService {
	s := &AuthService{Store: appStore, Sessions: sessions, LoginDelay: DefaultLoginDelay}
	s.restore()
	return s
}

func (s *AuthService) restore() {
	if s.Sessions == nil {
		return
	}
	snapshot, err := s.Sessions.Load()
	if err != nil {
		log.Printf("⚠️ Could not restore session snapshot: %v", err)
		return
	}
	if snapshot == nil {
		return
	}
	_ = s.Store.Update(func(c *store.Collections) error {
		c.AddUser(snapshot.Clone())
		return nil
	})
	s.mu.Lock()
	s.currentID = snapshot.ID
	s.mu.Unlock()
	log.Printf("✅ Restored session for %s (%s)", snapshot.Name, snapshot.ID)
}

func (s *AuthService) wait(ctx context.Context) error {
	if s.LoginDelay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.LoginDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Login resolves the profile matching email and makes it the active
// identity. The match is trivial; there is no credential check.
func (s *AuthService) Login(ctx context.Context, email string) (*models.UserProfile, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	var profile *models.UserProfile
	err := s.Store.View(func(c *store.Collections) error {
		u, err := c.UserByEmail(email)
		if err != nil {
			return err
		}
		profile = u.Clone()
		return nil
	})
	if err != nil {
		log.Printf("❌ Login failed for %s: %v", email, err)
		return nil, err
	}

	s.mu.Lock()
	s.currentID = profile.ID
	s.mu.Unlock()

	if s.Sessions != nil {
		if err := s.Sessions.Save(profile); err != nil {
			return nil, err
		}
	}
	log.Printf("✅ Logged in as %s (%s)", profile.Name, profile.ID)
	return profile, nil
}

// Signup creates a fresh profile for name/email and logs it in. The
// avatar is derived from the name.
func (s *AuthService) Signup(ctx context.Context, name, email string) (*models.UserProfile, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	profile := &models.UserProfile{
		ID:               uuid.New().String(),
		Name:             name,
		Email:            email,
		AvatarURL:        "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=0D9488&color=fff",
		Status:           models.StatusOpenToWork,
		Skills:           []string{},
		Interests:        []string{},
		Connections:      []string{},
		SentRequests:     []string{},
		ReceivedRequests: []string{},
		Groups:           []string{},
	}

	err := s.Store.Update(func(c *store.Collections) error {
		if _, err := c.UserByEmail(email); err == nil {
			return fmt.Errorf("email %s already registered: %w", email, models.ErrInvalidState)
		}
		c.AddUser(profile)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.currentID = profile.ID
	s.mu.Unlock()

	if s.Sessions != nil {
		if err := s.Sessions.Save(profile); err != nil {
			return nil, err
		}
	}
	log.Printf("✅ Signed up %s (%s)", name, profile.ID)
	return profile.Clone(), nil
}

// Logout tears the session down and removes the persisted key.
func (s *AuthService) Logout() error {
	s.mu.Lock()
	s.currentID = ""
	s.mu.Unlock()
	if s.Sessions != nil {
		return s.Sessions.Clear()
	}
	return nil
}

// CurrentUserID returns the active identity, or "" when logged out.
func (s *AuthService) CurrentUserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentID
}

// CurrentUser returns the active profile.
func (s *AuthService) CurrentUser() (*models.UserProfile, error) {
	id := s.CurrentUserID()
	if id == "" {
		return nil, models.ErrNotAuthenticated
	}
	var profile *models.UserProfile
	err := s.Store.View(func(c *store.Collections) error {
		u, err := c.User(id)
		if err != nil {
			return err
		}
		profile = u.Clone()
		return nil
	})
	return profile, err
}

// UpdateProfile applies a partial update to the active profile and
// persists the snapshot.
func (s *AuthService) UpdateProfile(ctx context.Context, updates map[string]interface{}) (*models.UserProfile, error) {
	id := s.CurrentUserID()
	if id == "" {
		return nil, models.ErrNotAuthenticated
	}

	var updated *models.UserProfile
	err := s.Store.Update(func(c *store.Collections) error {
		u, err := c.User(id)
		if err != nil {
			return err
		}
		if err := applyProfileUpdates(u, updates); err != nil {
			return err
		}
		updated = u.Clone()
		return nil
	})
	if err != nil {
		log.Printf("❌ Failed to update profile %s: %v", id, err)
		return nil, err
	}

	if s.Sessions != nil {
		if err := s.Sessions.Save(updated); err != nil {
			return nil, err
		}
	}
	log.Printf("✅ Profile updated for %s", id)
	return updated, nil
}

// SyncSnapshot re-persists the active profile after another service
// mutated it (connections, group membership).
func (s *AuthService) SyncSnapshot() {
	if s.Sessions == nil {
		return
	}
	profile, err := s.CurrentUser()
	if err != nil {
		return
	}
	if err := s.Sessions.Save(profile); err != nil {
		log.Printf("⚠️ Snapshot sync failed: %v", err)
	}
}

func applyProfileUpdates(u *models.UserProfile, updates map[string]interface{}) error {
	for key, value := range updates {
		switch key {
		case "name":
			u.Name = asString(value)
		case "headline":
			u.Headline = asString(value)
		case "bio":
			u.Bio = asString(value)
		case "location":
			u.Location = asString(value)
		case "company":
			u.Company = asString(value)
		case "avatarUrl":
			u.AvatarURL = asString(value)
		case "coverUrl":
			u.CoverURL = asString(value)
		case "status":
			status := asString(value)
			if !models.IsValidAvailabilityStatus(status) {
				return fmt.Errorf("unknown status %q: %w", status, models.ErrInvalidState)
			}
			u.Status = status
		case "skills":
			u.Skills = dedupe(asStringSlice(value))
		case "interests":
			u.Interests = dedupe(asStringSlice(value))
		default:
			return fmt.Errorf("field %q is not updatable: %w", key, models.ErrInvalidState)
		}
	}
	return nil
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

// asStringSlice accepts both []string and the []interface{} produced by
// decoding JSON.
func asStringSlice(v interface{}) []string {
	switch vv := v.(type) {
	case []string:
		return vv
	case []interface{}:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = utils.AppendUnique(out, v)
	}
	return out
}
