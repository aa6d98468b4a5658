package routes

import (
	"mindhuddle_server/controllers"
	"mindhuddle_server/services"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes sets up routes for identity operations under /api/auth
func RegisterAuthRoutes(r *mux.Router, auth *services.AuthService) {
	controller := controllers.NewAuthController(auth)

	authRouter := r.PathPrefix("/api/auth").Subrouter()
	authRouter.HandleFunc("/login", controller.Login).Methods("POST")
	authRouter.HandleFunc("/signup", controller.Signup).Methods("POST")
	authRouter.HandleFunc("/logout", controller.Logout).Methods("POST")
	authRouter.HandleFunc("/me", controller.Me).Methods("GET")
	authRouter.HandleFunc("/profile", controller.UpdateProfile).Methods("PATCH")
}
