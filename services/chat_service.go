package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"mindhuddle_server/models"
	"mindhuddle_server/store"

	"github.com/google/uuid"
)

// ChatService owns direct-message conversations: at most one per
// unordered participant pair, a cached last-message pointer, and a
// conversation-level unread counter relative to the owner.
type ChatService struct {
	Store *store.AppStore
}

// GetOrCreateConversation returns the existing conversation between actor
// and target, creating one when the pair has never talked.
func (s *ChatService) GetOrCreateConversation(ctx context.Context, actorID, targetID string) (*models.Conversation, error) {
	if actorID == "" {
		return nil, models.ErrNotAuthenticated
	}
	if actorID == targetID {
		return nil, fmt.Errorf("cannot open a conversation with yourself: %w", models.ErrInvalidState)
	}

	var conv *models.Conversation
	err := s.Store.Update(func(c *store.Collections) error {
		if _, err := c.User(actorID); err != nil {
			return err
		}
		if _, err := c.User(targetID); err != nil {
			return err
		}
		if existing, ok := c.ConversationBetween(actorID, targetID); ok {
			conv = existing.Clone()
			return nil
		}
		created := &models.Conversation{
			ID:             uuid.New().String(),
			OwnerID:        actorID,
			ParticipantIDs: []string{actorID, targetID},
			Messages:       []models.Message{},
		}
		c.AddConversation(created)
		conv = created.Clone()
		log.Printf("💬 Conversation created: %s (%s <-> %s)", created.ID, actorID, targetID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return conv, nil
}

// SendMessage appends a message, refreshes the cached last-message
// pointer, and increments the unread counter when the sender is not the
// conversation owner.
func (s *ChatService) SendMessage(ctx context.Context, senderID, conversationID, content string, aiGenerated bool) (*models.Message, error) {
	if senderID == "" {
		return nil, models.ErrNotAuthenticated
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("message content is empty: %w", models.ErrInvalidState)
	}

	message := models.Message{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		CreatedAt:      time.Now(),
		IsAIGenerated:  aiGenerated,
	}

	err := s.Store.Update(func(c *store.Collections) error {
		conv, err := c.Conversation(conversationID)
		if err != nil {
			return err
		}
		if !conv.HasParticipant(senderID) {
			return fmt.Errorf("%s is not in conversation %s: %w", senderID, conversationID, models.ErrInvalidState)
		}
		conv.Messages = append(conv.Messages, message)
		last := message
		conv.LastMessage = &last
		if senderID != conv.OwnerID {
			conv.UnreadCount++
		}
		return nil
	})
	if err != nil {
		log.Printf("❌ Failed to send message in %s: %v", conversationID, err)
		return nil, err
	}
	log.Printf("📩 Message stored in %s from %s", conversationID, senderID)
	return &message, nil
}

// MarkConversationRead resets the unread counter to zero. Individual
// messages carry no read flags; the counter is authoritative.
func (s *ChatService) MarkConversationRead(ctx context.Context, actorID, conversationID string) error {
	if actorID == "" {
		return models.ErrNotAuthenticated
	}
	err := s.Store.Update(func(c *store.Collections) error {
		conv, err := c.Conversation(conversationID)
		if err != nil {
			return err
		}
		if !conv.HasParticipant(actorID) {
			return fmt.Errorf("%s is not in conversation %s: %w", actorID, conversationID, models.ErrInvalidState)
		}
		conv.UnreadCount = 0
		return nil
	})
	if err != nil {
		return err
	}
	log.Printf("✅ Conversation %s marked read by %s", conversationID, actorID)
	return nil
}

// ListConversations returns the viewer's conversations enriched with the
// other participant's profile, most recent activity first.
func (s *ChatService) ListConversations(ctx context.Context, viewerID string) ([]models.ConversationSummary, error) {
	if viewerID == "" {
		return nil, models.ErrNotAuthenticated
	}

	var out []models.ConversationSummary
	err := s.Store.View(func(c *store.Collections) error {
		for _, conv := range c.Conversations() {
			if !conv.HasParticipant(viewerID) {
				continue
			}
			summary := models.ConversationSummary{Conversation: *conv.Clone()}
			if partner, err := c.User(conv.OtherParticipant(viewerID)); err == nil {
				summary.Partner = partner.Clone()
			}
			out = append(out, summary)
		}
		return nil
	})
	return out, err
}

// GetMessages returns the conversation's messages oldest first. A limit
// of zero returns everything.
func (s *ChatService) GetMessages(ctx context.Context, viewerID, conversationID string, limit int) ([]models.Message, error) {
	if viewerID == "" {
		return nil, models.ErrNotAuthenticated
	}

	var out []models.Message
	err := s.Store.View(func(c *store.Collections) error {
		conv, err := c.Conversation(conversationID)
		if err != nil {
			return err
		}
		if !conv.HasParticipant(viewerID) {
			return fmt.Errorf("%s is not in conversation %s: %w", viewerID, conversationID, models.ErrInvalidState)
		}
		out = append(out, conv.Messages...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}
