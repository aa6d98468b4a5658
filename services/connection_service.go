package services

import (
	"context"
	"fmt"
	"log"

	"mindhuddle_server/models"
	"mindhuddle_server/store"
	"mindhuddle_server/utils"
)

// ConnectionService keeps the connection graph consistent: connections
// are symmetric, and sent/received requests are asymmetric mirrors across
// two profiles. Both sides of every mutation land in one store update so
// the graph is never observed half-applied.
type ConnectionService struct {
	Store *store.AppStore
}

// SendConnectionRequest records a pending request from actor to target.
// Returns ErrAlreadyRequested when the pair is already connected or a
// request exists in either direction.
func (s *ConnectionService) SendConnectionRequest(ctx context.Context, actorID, targetID string) error {
	if actorID == "" {
		return models.ErrNotAuthenticated
	}
	if actorID == targetID {
		return fmt.Errorf("cannot request a connection with yourself: %w", models.ErrInvalidState)
	}

	err := s.Store.Update(func(c *store.Collections) error {
		actor, err := c.User(actorID)
		if err != nil {
			return err
		}
		target, err := c.User(targetID)
		if err != nil {
			return err
		}

		if utils.Contains(actor.Connections, targetID) {
			return fmt.Errorf("%s and %s are already connected: %w", actorID, targetID, models.ErrAlreadyRequested)
		}
		if utils.Contains(actor.SentRequests, targetID) || utils.Contains(actor.ReceivedRequests, targetID) {
			return fmt.Errorf("request already pending between %s and %s: %w", actorID, targetID, models.ErrAlreadyRequested)
		}

		actor.SentRequests = utils.AppendUnique(actor.SentRequests, targetID)
		target.ReceivedRequests = utils.AppendUnique(target.ReceivedRequests, actorID)
		return nil
	})
	if err != nil {
		log.Printf("❌ Connection request %s -> %s failed: %v", actorID, targetID, err)
		return err
	}
	log.Printf("📨 Connection request sent: %s -> %s", actorID, targetID)
	return nil
}

// AcceptConnectionRequest turns requester's pending request into a
// connection. Both sides update or neither does.
func (s *ConnectionService) AcceptConnectionRequest(ctx context.Context, actorID, requesterID string) error {
	if actorID == "" {
		return models.ErrNotAuthenticated
	}

	err := s.Store.Update(func(c *store.Collections) error {
		actor, err := c.User(actorID)
		if err != nil {
			return err
		}
		requester, err := c.User(requesterID)
		if err != nil {
			return err
		}

		if !utils.Contains(actor.ReceivedRequests, requesterID) {
			return fmt.Errorf("no pending request from %s to %s: %w", requesterID, actorID, models.ErrInvalidState)
		}

		actor.ReceivedRequests = utils.Remove(actor.ReceivedRequests, requesterID)
		requester.SentRequests = utils.Remove(requester.SentRequests, actorID)
		actor.Connections = utils.AppendUnique(actor.Connections, requesterID)
		requester.Connections = utils.AppendUnique(requester.Connections, actorID)
		return nil
	})
	if err != nil {
		log.Printf("❌ Accept %s -> %s failed: %v", requesterID, actorID, err)
		return err
	}
	log.Printf("🎉 Connection accepted: %s 🤝 %s", actorID, requesterID)
	return nil
}

// IgnoreConnectionRequest drops requester's pending request from both
// sides without creating a connection. Ignoring a request that does not
// exist is a no-op.
func (s *ConnectionService) IgnoreConnectionRequest(ctx context.Context, actorID, requesterID string) error {
	if actorID == "" {
		return models.ErrNotAuthenticated
	}

	err := s.Store.Update(func(c *store.Collections) error {
		actor, err := c.User(actorID)
		if err != nil {
			return err
		}
		requester, err := c.User(requesterID)
		if err != nil {
			return err
		}
		actor.ReceivedRequests = utils.Remove(actor.ReceivedRequests, requesterID)
		requester.SentRequests = utils.Remove(requester.SentRequests, actorID)
		return nil
	})
	if err != nil {
		return err
	}
	log.Printf("🙈 Request ignored: %s ignored %s", actorID, requesterID)
	return nil
}

// RemoveConnection deletes the symmetric connection edge. Idempotent:
// removing a non-existent connection is a no-op.
func (s *ConnectionService) RemoveConnection(ctx context.Context, actorID, targetID string) error {
	if actorID == "" {
		return models.ErrNotAuthenticated
	}

	err := s.Store.Update(func(c *store.Collections) error {
		actor, err := c.User(actorID)
		if err != nil {
			return err
		}
		target, err := c.User(targetID)
		if err != nil {
			return err
		}
		actor.Connections = utils.Remove(actor.Connections, targetID)
		target.Connections = utils.Remove(target.Connections, actorID)
		return nil
	})
	if err != nil {
		return err
	}
	log.Printf("💔 Connection removed: %s x %s", actorID, targetID)
	return nil
}

// ConnectionStatus derives the relationship between viewer and target:
// connected, pending_sent, pending_received, or none, checked in that
// priority order.
func (s *ConnectionService) ConnectionStatus(ctx context.Context, viewerID, targetID string) (string, error) {
	if viewerID == "" {
		return models.ConnectionStatusNone, models.ErrNotAuthenticated
	}

	status := models.ConnectionStatusNone
	err := s.Store.View(func(c *store.Collections) error {
		viewer, err := c.User(viewerID)
		if err != nil {
			return err
		}
		switch {
		case utils.Contains(viewer.Connections, targetID):
			status = models.ConnectionStatusConnected
		case utils.Contains(viewer.SentRequests, targetID):
			status = models.ConnectionStatusPendingSent
		case utils.Contains(viewer.ReceivedRequests, targetID):
			status = models.ConnectionStatusPendingReceived
		}
		return nil
	})
	return status, err
}

// ListConnections returns the viewer's accepted connections as profiles.
func (s *ConnectionService) ListConnections(ctx context.Context, viewerID string) ([]models.UserProfile, error) {
	return s.listRelated(viewerID, func(u *models.UserProfile) []string { return u.Connections })
}

// ListReceivedRequests returns the profiles with a pending request to the
// viewer.
func (s *ConnectionService) ListReceivedRequests(ctx context.Context, viewerID string) ([]models.UserProfile, error) {
	return s.listRelated(viewerID, func(u *models.UserProfile) []string { return u.ReceivedRequests })
}

// ListSentRequests returns the profiles the viewer has requested.
func (s *ConnectionService) ListSentRequests(ctx context.Context, viewerID string) ([]models.UserProfile, error) {
	return s.listRelated(viewerID, func(u *models.UserProfile) []string { return u.SentRequests })
}

func (s *ConnectionService) listRelated(viewerID string, pick func(*models.UserProfile) []string) ([]models.UserProfile, error) {
	if viewerID == "" {
		return nil, models.ErrNotAuthenticated
	}
	var out []models.UserProfile
	err := s.Store.View(func(c *store.Collections) error {
		viewer, err := c.User(viewerID)
		if err != nil {
			return err
		}
		for _, id := range pick(viewer) {
			if u, err := c.User(id); err == nil {
				out = append(out, *u.Clone())
			}
		}
		return nil
	})
	return out, err
}
