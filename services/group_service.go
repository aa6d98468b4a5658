package services

import (
	"context"
	"fmt"
	"log"

	"mindhuddle_server/models"
	"mindhuddle_server/store"
	"mindhuddle_server/utils"

	"github.com/google/uuid"
)

// GroupService mirrors group rosters against profile membership lists and
// holds the admins-are-members invariant: leaving or being removed from a
// group always revokes admin status.
type GroupService struct {
	Store *store.AppStore
}

// CreateGroup creates a group with the actor as its first member and
// admin, mirrored into the actor's profile.
func (s *GroupService) CreateGroup(ctx context.Context, actorID, name, description, category, imageURL string) (*models.Group, error) {
	if actorID == "" {
		return nil, models.ErrNotAuthenticated
	}

	group := &models.Group{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Category:    category,
		ImageURL:    imageURL,
		Members:     []string{actorID},
		Admins:      []string{actorID},
	}

	err := s.Store.Update(func(c *store.Collections) error {
		actor, err := c.User(actorID)
		if err != nil {
			return err
		}
		c.AddGroup(group)
		actor.Groups = utils.AppendUnique(actor.Groups, group.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("✅ Group created: %s (%s) by %s", name, group.ID, actorID)
	return group.Clone(), nil
}

// JoinGroup adds the actor to the group roster and mirrors it into the
// profile. Joining a group you already belong to is a no-op.
func (s *GroupService) JoinGroup(ctx context.Context, actorID, groupID string) error {
	if actorID == "" {
		return models.ErrNotAuthenticated
	}

	err := s.Store.Update(func(c *store.Collections) error {
		actor, err := c.User(actorID)
		if err != nil {
			return err
		}
		group, err := c.Group(groupID)
		if err != nil {
			return err
		}
		group.Members = utils.AppendUnique(group.Members, actorID)
		actor.Groups = utils.AppendUnique(actor.Groups, groupID)
		return nil
	})
	if err != nil {
		return err
	}
	log.Printf("👥 %s joined group %s", actorID, groupID)
	return nil
}

// LeaveGroup removes the actor from the roster, the mirrored profile
// list, and the admin set. Idempotent.
func (s *GroupService) LeaveGroup(ctx context.Context, actorID, groupID string) error {
	if actorID == "" {
		return models.ErrNotAuthenticated
	}

	err := s.Store.Update(func(c *store.Collections) error {
		actor, err := c.User(actorID)
		if err != nil {
			return err
		}
		group, err := c.Group(groupID)
		if err != nil {
			return err
		}
		group.Members = utils.Remove(group.Members, actorID)
		group.Admins = utils.Remove(group.Admins, actorID)
		actor.Groups = utils.Remove(actor.Groups, groupID)
		return nil
	})
	if err != nil {
		return err
	}
	log.Printf("👋 %s left group %s", actorID, groupID)
	return nil
}

// RemoveMember evicts target from the group. The actor must be an admin.
// Admin status of the target, if any, is revoked with the membership.
func (s *GroupService) RemoveMember(ctx context.Context, actorID, groupID, targetID string) error {
	if actorID == "" {
		return models.ErrNotAuthenticated
	}

	err := s.Store.Update(func(c *store.Collections) error {
		group, err := c.Group(groupID)
		if err != nil {
			return err
		}
		if !group.IsAdmin(actorID) {
			return fmt.Errorf("%s is not an admin of %s: %w", actorID, groupID, models.ErrInvalidState)
		}
		target, err := c.User(targetID)
		if err != nil {
			return err
		}
		group.Members = utils.Remove(group.Members, targetID)
		group.Admins = utils.Remove(group.Admins, targetID)
		target.Groups = utils.Remove(target.Groups, groupID)
		return nil
	})
	if err != nil {
		log.Printf("❌ Remove member %s from %s failed: %v", targetID, groupID, err)
		return err
	}
	log.Printf("🚪 %s removed %s from group %s", actorID, targetID, groupID)
	return nil
}

// UpdateGroup applies a partial update to the group's display fields.
// Admin only.
func (s *GroupService) UpdateGroup(ctx context.Context, actorID, groupID string, updates map[string]interface{}) (*models.Group, error) {
	if actorID == "" {
		return nil, models.ErrNotAuthenticated
	}

	var updated *models.Group
	err := s.Store.Update(func(c *store.Collections) error {
		group, err := c.Group(groupID)
		if err != nil {
			return err
		}
		if !group.IsAdmin(actorID) {
			return fmt.Errorf("%s is not an admin of %s: %w", actorID, groupID, models.ErrInvalidState)
		}
		for key, value := range updates {
			switch key {
			case "name":
				group.Name = asString(value)
			case "description":
				group.Description = asString(value)
			case "category":
				group.Category = asString(value)
			case "imageUrl":
				group.ImageURL = asString(value)
			default:
				return fmt.Errorf("field %q is not updatable: %w", key, models.ErrInvalidState)
			}
		}
		updated = group.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("✅ Group %s updated by %s", groupID, actorID)
	return updated, nil
}

// GetGroup returns the group enriched with its member profiles.
func (s *GroupService) GetGroup(ctx context.Context, groupID string) (*models.GroupDetail, error) {
	var detail *models.GroupDetail
	err := s.Store.View(func(c *store.Collections) error {
		group, err := c.Group(groupID)
		if err != nil {
			return err
		}
		detail = &models.GroupDetail{Group: *group.Clone()}
		for _, id := range group.Members {
			if u, err := c.User(id); err == nil {
				detail.MemberProfiles = append(detail.MemberProfiles, *u.Clone())
			}
		}
		return nil
	})
	return detail, err
}

// ListGroups returns every group in fixture order.
func (s *GroupService) ListGroups(ctx context.Context) ([]models.Group, error) {
	var out []models.Group
	err := s.Store.View(func(c *store.Collections) error {
		for _, g := range c.Groups() {
			out = append(out, *g.Clone())
		}
		return nil
	})
	return out, err
}
