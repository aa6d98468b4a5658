package main

import (
	"log"
	"net/http"
	"os"

	"mindhuddle_server/controllers"
	"mindhuddle_server/routes"
	"mindhuddle_server/services"
	"mindhuddle_server/socket"
	"mindhuddle_server/store"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize the in-memory store with demo fixtures
	log.Println("Seeding application store...")
	appStore := store.NewSeededAppStore()
	log.Println("Application store seeded.")

	// Open the local session database
	sessionPath := os.Getenv("SESSION_DB_PATH")
	if sessionPath == "" {
		sessionPath = "./data/session"
	}
	sessions, err := services.NewSessionStore(sessionPath)
	if err != nil {
		log.Fatalf("❌ Failed to open session database: %v", err)
	}
	defer sessions.Close()

	// Initialize Services
	authService := services.NewAuthService(appStore, sessions)
	userProfileService := &services.UserProfileService{Store: appStore}
	connectionService := &services.ConnectionService{Store: appStore}
	discoveryService := &services.DiscoveryService{Store: appStore}
	groupService := &services.GroupService{Store: appStore}
	postService := &services.PostService{Store: appStore}
	eventService := &services.EventService{Store: appStore}
	chatService := &services.ChatService{Store: appStore}
	aiService := services.NewAIService()

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the Socket.IO server
	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("❌ Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", controllers.WelcomeHandler).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", controllers.HealthCheckHandler).Methods("GET")

	// Mount the socket endpoint
	r.Handle("/socket.io/", socketServer)

	// Register routes
	routes.RegisterAuthRoutes(r, authService)
	routes.RegisterUserProfileRoutes(r, userProfileService, discoveryService, authService)
	routes.RegisterConnectionRoutes(r, connectionService, authService)
	routes.RegisterGroupRoutes(r, groupService, postService, authService)
	routes.RegisterPostRoutes(r, postService, authService)
	routes.RegisterEventRoutes(r, eventService, authService)
	routes.RegisterChatRoutes(r, chatService, authService, socketServer)
	routes.RegisterAIRoutes(r, aiService, userProfileService, authService)
	routes.RegisterS3Routes(r)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
