package models

import "time"

// Message is a single chat message, ordered within its conversation by
// insertion.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
	IsAIGenerated  bool      `json:"isAiGenerated,omitempty"`
}

// Conversation is a direct-message thread between exactly two profiles.
// UnreadCount tracks messages the owner has not seen yet; it increments
// only for messages sent by the other participant and resets to zero when
// the owner marks the conversation read.
type Conversation struct {
	ID             string    `json:"id"`
	OwnerID        string    `json:"ownerId"`
	ParticipantIDs []string  `json:"participantIds"`
	Messages       []Message `json:"messages"`
	LastMessage    *Message  `json:"lastMessage,omitempty"`
	UnreadCount    int       `json:"unreadCount"`
}

// HasParticipant reports whether userID is one of the two participants.
func (c *Conversation) HasParticipant(userID string) bool {
	for _, id := range c.ParticipantIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// OtherParticipant returns the participant that is not viewerID.
func (c *Conversation) OtherParticipant(viewerID string) string {
	for _, id := range c.ParticipantIDs {
		if id != viewerID {
			return id
		}
	}
	return ""
}

// Clone returns a deep copy safe to hand out beyond the store lock.
func (c *Conversation) Clone() *Conversation {
	cp := *c
	cp.ParticipantIDs = append([]string(nil), c.ParticipantIDs...)
	cp.Messages = append([]Message(nil), c.Messages...)
	if c.LastMessage != nil {
		last := *c.LastMessage
		cp.LastMessage = &last
	}
	return &cp
}

// ConversationSummary is a conversation enriched with the other
// participant's profile for list views.
type ConversationSummary struct {
	Conversation
	Partner *UserProfile `json:"partner,omitempty"`
}
