package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// NewSocketServer initializes and returns a new Socket.IO server
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	// Handle connection events
	server.OnConnect("/", func(s socketio.Conn) error {
		log.Println("✅ Socket connected:", s.ID())
		return nil
	})

	// Handle join events
	server.OnEvent("/", "join", func(s socketio.Conn, conversationID string) {
		if conversationID == "" {
			log.Println("❌ Invalid conversationId in join request")
			return
		}
		log.Printf("👥 Client %s joined conversation %s\n", s.ID(), conversationID)
		s.Join(conversationID)
	})

	// Handle leave events
	server.OnEvent("/", "leave", func(s socketio.Conn, conversationID string) {
		log.Printf("🚪 Client %s left conversation %s\n", s.ID(), conversationID)
		s.Leave(conversationID)
	})

	server.OnError("/", func(s socketio.Conn, err error) {
		log.Println("⚠️ Socket error:", err)
	})

	// Handle disconnection
	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", reason)
	})

	return server
}
