package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"skillswap_server/routes"
	"skillswap_server/services"
	"skillswap_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Redis-backed cache; disabled when REDIS_URL is unset
	cacheService := services.NewCacheService()

	// Token signing for access/refresh JWTs
	tokenService := services.NewTokenService()

	// Socket.IO server for realtime message delivery
	socketServer := socket.NewServer()
	go func() {
		if err := socketServer.IO.Serve(); err != nil {
			log.Printf("Socket.IO serve error: %v", err)
		}
	}()
	defer socketServer.IO.Close()

	// Initialize Services
	userService := &services.UserService{Dynamo: dynamoService}
	offeredSkillService := &services.OfferedSkillService{Dynamo: dynamoService, Cache: cacheService}
	requestedSkillService := &services.RequestedSkillService{Dynamo: dynamoService, Cache: cacheService}
	notificationService := &services.NotificationService{Dynamo: dynamoService}
	exchangeService := &services.ExchangeService{Dynamo: dynamoService, Notifications: notificationService}
	messageService := &services.MessageService{
		Dynamo:        dynamoService,
		Exchanges:     exchangeService,
		Notifications: notificationService,
		Users:         userService,
		Cache:         cacheService,
		Socket:        socketServer,
	}
	reviewService := &services.ReviewService{Dynamo: dynamoService, Users: userService}
	matchService := &services.MatchService{Store: &services.DynamoMatchStore{
		Offered:   offeredSkillService,
		Requested: requestedSkillService,
		Exchanges: exchangeService,
		Users:     userService,
	}}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Socket.IO endpoint
	r.Handle("/socket.io/", socketServer.IO)

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to SkillSwap")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterAuthRoutes(r, userService, tokenService)
	routes.RegisterUserRoutes(r, userService, tokenService)
	routes.RegisterOfferedSkillRoutes(r, offeredSkillService, cacheService, tokenService)
	routes.RegisterRequestedSkillRoutes(r, requestedSkillService, cacheService, tokenService)
	routes.RegisterExchangeRoutes(r, exchangeService, tokenService)
	routes.RegisterMessageRoutes(r, messageService, tokenService)
	routes.RegisterReviewRoutes(r, reviewService, tokenService)
	routes.RegisterNotificationRoutes(r, notificationService, tokenService)
	routes.RegisterMatchRoutes(r, matchService, tokenService)
	routes.RegisterCategoryRoutes(r)
	routes.RegisterS3Routes(r, tokenService)

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
