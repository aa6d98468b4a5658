package routes

import (
	"mindhuddle_server/controllers"
	"mindhuddle_server/services"

	"github.com/gorilla/mux"
)

// RegisterPostRoutes sets up routes for posts and the feed
func RegisterPostRoutes(r *mux.Router, posts *services.PostService, auth *services.AuthService) {
	controller := controllers.NewPostController(posts, auth)

	r.HandleFunc("/api/feed", controller.Feed).Methods("GET")

	postRouter := r.PathPrefix("/api/posts").Subrouter()
	postRouter.HandleFunc("", controller.CreatePost).Methods("POST")
	postRouter.HandleFunc("/{postId}/like", controller.ToggleLike).Methods("POST")
	postRouter.HandleFunc("/{postId}/comments", controller.AddComment).Methods("POST")
}
