package routes

import (
	"mindhuddle_server/controllers"
	"mindhuddle_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up routes for profile reads and
// discovery under /api/profiles
func RegisterUserProfileRoutes(r *mux.Router, profiles *services.UserProfileService, discovery *services.DiscoveryService, auth *services.AuthService) {
	controller := controllers.NewUserProfileController(profiles, discovery, auth)

	profileRouter := r.PathPrefix("/api/profiles").Subrouter()
	profileRouter.HandleFunc("", controller.ListProfiles).Methods("GET")
	profileRouter.HandleFunc("/discover", controller.Discover).Methods("GET")
	profileRouter.HandleFunc("/skills", controller.AllSkills).Methods("GET")
	profileRouter.HandleFunc("/{userId}", controller.GetProfileByID).Methods("GET")
}
