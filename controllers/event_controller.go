package controllers

import (
	"encoding/json"
	"net/http"

	"mindhuddle_server/services"

	"github.com/gorilla/mux"
)

// EventController handles events, attendance, likes, and comments.
type EventController struct {
	Events *services.EventService
	Auth   *services.AuthService
}

// NewEventController creates a new instance of EventController
func NewEventController(events *services.EventService, auth *services.AuthService) *EventController {
	return &EventController{Events: events, Auth: auth}
}

// CreateEvent creates an event organized by the actor.
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	var input services.CreateEventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	event, err := c.Events.CreateEvent(r.Context(), actorID, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Event created successfully",
		"event":   event,
	})
}

// ListEvents returns events sorted by start time, optionally filtered by
// q and mode query parameters.
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	events, err := c.Events.FilterEvents(r.Context(), q.Get("q"), q.Get("mode"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// UpdateEvent applies a partial update; organizer only.
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	eventID := mux.Vars(r)["eventId"]
	var updates map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	event, err := c.Events.UpdateEvent(r.Context(), actorID, eventID, updates)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Event updated successfully",
		"event":   event,
	})
}

// ToggleLike flips the actor's like on an event.
func (c *EventController) ToggleLike(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	eventID := mux.Vars(r)["eventId"]
	if err := c.Events.ToggleLike(r.Context(), actorID, eventID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Like toggled"})
}

// ToggleAttendance flips the actor's attendance on an event.
func (c *EventController) ToggleAttendance(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	eventID := mux.Vars(r)["eventId"]
	if err := c.Events.ToggleAttendance(r.Context(), actorID, eventID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Attendance toggled"})
}

// AddComment appends a comment to an event.
func (c *EventController) AddComment(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	eventID := mux.Vars(r)["eventId"]
	var payload struct {
		Content string `json:"content" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		http.Error(w, "Missing comment content", http.StatusBadRequest)
		return
	}

	comment, err := c.Events.AddComment(r.Context(), actorID, eventID, payload.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Comment added successfully",
		"comment": comment,
	})
}
