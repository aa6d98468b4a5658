package routes

import (
	"mindhuddle_server/controllers"
	"mindhuddle_server/services"

	socketio "github.com/googollee/go-socket.io"
	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for conversations under
// /api/conversations
func RegisterChatRoutes(r *mux.Router, chats *services.ChatService, auth *services.AuthService, socket *socketio.Server) {
	controller := controllers.NewChatController(chats, auth, socket)

	chatRouter := r.PathPrefix("/api/conversations").Subrouter()
	chatRouter.HandleFunc("", controller.ListConversations).Methods("GET")
	chatRouter.HandleFunc("", controller.OpenConversation).Methods("POST")
	chatRouter.HandleFunc("/{conversationId}/messages", controller.GetMessages).Methods("GET")
	chatRouter.HandleFunc("/{conversationId}/messages", controller.SendMessage).Methods("POST")
	chatRouter.HandleFunc("/{conversationId}/read", controller.MarkRead).Methods("POST")
}
