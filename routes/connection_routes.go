package routes

import (
	"mindhuddle_server/controllers"
	"mindhuddle_server/services"

	"github.com/gorilla/mux"
)

// RegisterConnectionRoutes sets up routes for the connection graph under
// /api/connections
func RegisterConnectionRoutes(r *mux.Router, connections *services.ConnectionService, auth *services.AuthService) {
	controller := controllers.NewConnectionController(connections, auth)

	connectionRouter := r.PathPrefix("/api/connections").Subrouter()
	connectionRouter.HandleFunc("", controller.List).Methods("GET")
	connectionRouter.HandleFunc("/request", controller.SendRequest).Methods("POST")
	connectionRouter.HandleFunc("/accept", controller.AcceptRequest).Methods("POST")
	connectionRouter.HandleFunc("/ignore", controller.IgnoreRequest).Methods("POST")
	connectionRouter.HandleFunc("/remove", controller.RemoveConnection).Methods("POST")
	connectionRouter.HandleFunc("/status/{userId}", controller.Status).Methods("GET")
}
