package routes

import (
	"mindhuddle_server/controllers"
	"mindhuddle_server/services"

	"github.com/gorilla/mux"
)

// RegisterAIRoutes sets up routes for the AI collaborator under /api/ai
func RegisterAIRoutes(r *mux.Router, ai *services.AIService, profiles *services.UserProfileService, auth *services.AuthService) {
	controller := controllers.NewAIController(ai, profiles, auth)

	aiRouter := r.PathPrefix("/api/ai").Subrouter()
	aiRouter.HandleFunc("/icebreakers", controller.Icebreakers).Methods("POST")
	aiRouter.HandleFunc("/compatibility", controller.Compatibility).Methods("POST")
	aiRouter.HandleFunc("/optimize-bio", controller.OptimizeBio).Methods("POST")
}
