package routes

import (
	"mindhuddle_server/controllers"
	"mindhuddle_server/services"

	"github.com/gorilla/mux"
)

// RegisterEventRoutes sets up routes for events under /api/events
func RegisterEventRoutes(r *mux.Router, events *services.EventService, auth *services.AuthService) {
	controller := controllers.NewEventController(events, auth)

	eventRouter := r.PathPrefix("/api/events").Subrouter()
	eventRouter.HandleFunc("", controller.ListEvents).Methods("GET")
	eventRouter.HandleFunc("", controller.CreateEvent).Methods("POST")
	eventRouter.HandleFunc("/{eventId}", controller.UpdateEvent).Methods("PATCH")
	eventRouter.HandleFunc("/{eventId}/like", controller.ToggleLike).Methods("POST")
	eventRouter.HandleFunc("/{eventId}/attend", controller.ToggleAttendance).Methods("POST")
	eventRouter.HandleFunc("/{eventId}/comments", controller.AddComment).Methods("POST")
}
