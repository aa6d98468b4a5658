package controllers

import (
	"encoding/json"
	"net/http"

	"mindhuddle_server/services"

	"github.com/gorilla/mux"
)

// ConnectionController handles the connection-graph operations.
type ConnectionController struct {
	Connections *services.ConnectionService
	Auth        *services.AuthService
}

// NewConnectionController creates a new instance of ConnectionController
func NewConnectionController(connections *services.ConnectionService, auth *services.AuthService) *ConnectionController {
	return &ConnectionController{Connections: connections, Auth: auth}
}

type connectionPayload struct {
	UserID string `json:"userId" validate:"required"`
}

func decodeConnectionPayload(w http.ResponseWriter, r *http.Request) (string, bool) {
	var payload connectionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return "", false
	}
	if err := validate.Struct(payload); err != nil {
		http.Error(w, "Missing userId", http.StatusBadRequest)
		return "", false
	}
	return payload.UserID, true
}

// SendRequest sends a connection request to the given user.
func (c *ConnectionController) SendRequest(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	targetID, ok := decodeConnectionPayload(w, r)
	if !ok {
		return
	}
	if err := c.Connections.SendConnectionRequest(r.Context(), actorID, targetID); err != nil {
		writeError(w, err)
		return
	}
	c.Auth.SyncSnapshot()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Request sent", "status": "pending_sent"})
}

// AcceptRequest accepts a pending request from the given user.
func (c *ConnectionController) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	requesterID, ok := decodeConnectionPayload(w, r)
	if !ok {
		return
	}
	if err := c.Connections.AcceptConnectionRequest(r.Context(), actorID, requesterID); err != nil {
		writeError(w, err)
		return
	}
	c.Auth.SyncSnapshot()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Request accepted", "status": "connected"})
}

// IgnoreRequest drops a pending request from the given user.
func (c *ConnectionController) IgnoreRequest(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	requesterID, ok := decodeConnectionPayload(w, r)
	if !ok {
		return
	}
	if err := c.Connections.IgnoreConnectionRequest(r.Context(), actorID, requesterID); err != nil {
		writeError(w, err)
		return
	}
	c.Auth.SyncSnapshot()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Request ignored"})
}

// RemoveConnection deletes an accepted connection.
func (c *ConnectionController) RemoveConnection(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	targetID, ok := decodeConnectionPayload(w, r)
	if !ok {
		return
	}
	if err := c.Connections.RemoveConnection(r.Context(), actorID, targetID); err != nil {
		writeError(w, err)
		return
	}
	c.Auth.SyncSnapshot()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Connection removed"})
}

// Status derives the relationship between the viewer and a target.
func (c *ConnectionController) Status(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	targetID := mux.Vars(r)["userId"]
	status, err := c.Connections.ConnectionStatus(r.Context(), viewerID, targetID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": status})
}

// List returns the viewer's connections along with pending requests in
// both directions.
func (c *ConnectionController) List(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	connections, err := c.Connections.ListConnections(r.Context(), viewerID)
	if err != nil {
		writeError(w, err)
		return
	}
	received, err := c.Connections.ListReceivedRequests(r.Context(), viewerID)
	if err != nil {
		writeError(w, err)
		return
	}
	sent, err := c.Connections.ListSentRequests(r.Context(), viewerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"connections":      connections,
		"receivedRequests": received,
		"sentRequests":     sent,
	})
}
