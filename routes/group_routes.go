package routes

import (
	"mindhuddle_server/controllers"
	"mindhuddle_server/services"

	"github.com/gorilla/mux"
)

// RegisterGroupRoutes sets up routes for groups under /api/groups
func RegisterGroupRoutes(r *mux.Router, groups *services.GroupService, posts *services.PostService, auth *services.AuthService) {
	controller := controllers.NewGroupController(groups, posts, auth)

	groupRouter := r.PathPrefix("/api/groups").Subrouter()
	groupRouter.HandleFunc("", controller.ListGroups).Methods("GET")
	groupRouter.HandleFunc("", controller.CreateGroup).Methods("POST")
	groupRouter.HandleFunc("/{groupId}", controller.GetGroup).Methods("GET")
	groupRouter.HandleFunc("/{groupId}", controller.UpdateGroup).Methods("PATCH")
	groupRouter.HandleFunc("/{groupId}/join", controller.JoinGroup).Methods("POST")
	groupRouter.HandleFunc("/{groupId}/leave", controller.LeaveGroup).Methods("POST")
	groupRouter.HandleFunc("/{groupId}/posts", controller.GroupFeed).Methods("GET")
	groupRouter.HandleFunc("/{groupId}/members/{memberId}", controller.RemoveMember).Methods("DELETE")
}
