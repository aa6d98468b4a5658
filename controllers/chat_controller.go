package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"mindhuddle_server/services"

	socketio "github.com/googollee/go-socket.io"
	"github.com/gorilla/mux"
)

// ChatController handles conversations and messages. New messages are
// pushed to the conversation's socket room when a socket server is wired.
type ChatController struct {
	Chats  *services.ChatService
	Auth   *services.AuthService
	Socket *socketio.Server
}

// NewChatController creates a new instance of ChatController
func NewChatController(chats *services.ChatService, auth *services.AuthService, socket *socketio.Server) *ChatController {
	return &ChatController{Chats: chats, Auth: auth, Socket: socket}
}

// ListConversations returns the viewer's conversations with partner
// profiles attached.
func (c *ChatController) ListConversations(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	conversations, err := c.Chats.ListConversations(r.Context(), viewerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conversations)
}

// OpenConversation returns the conversation with the given user, creating
// it on first contact.
func (c *ChatController) OpenConversation(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	var payload struct {
		UserID string `json:"userId" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		http.Error(w, "Missing userId", http.StatusBadRequest)
		return
	}

	conv, err := c.Chats.GetOrCreateConversation(r.Context(), actorID, payload.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conv)
}

// GetMessages returns a conversation's messages oldest first. An optional
// limit query parameter caps the count.
func (c *ChatController) GetMessages(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	conversationID := mux.Vars(r)["conversationId"]
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	messages, err := c.Chats.GetMessages(r.Context(), viewerID, conversationID, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

// SendMessage appends a message and broadcasts it to the conversation
// room.
func (c *ChatController) SendMessage(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	conversationID := mux.Vars(r)["conversationId"]
	var payload struct {
		Content       string `json:"content" validate:"required"`
		IsAIGenerated bool   `json:"isAiGenerated"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		http.Error(w, "Missing message content", http.StatusBadRequest)
		return
	}

	message, err := c.Chats.SendMessage(r.Context(), actorID, conversationID, payload.Content, payload.IsAIGenerated)
	if err != nil {
		writeError(w, err)
		return
	}
	if c.Socket != nil {
		c.Socket.BroadcastToRoom("/", conversationID, "newMessage", message)
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Message sent",
		"data":    message,
	})
}

// MarkRead resets the conversation's unread counter.
func (c *ChatController) MarkRead(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	conversationID := mux.Vars(r)["conversationId"]
	if err := c.Chats.MarkConversationRead(r.Context(), actorID, conversationID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Conversation marked as read"})
}
