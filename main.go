package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"campuslove_server/routes"
	"campuslove_server/services"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Daily like allowance, overridable via environment
	allowance := services.DefaultDailyLikeCredits
	if raw := os.Getenv("DAILY_LIKE_CREDITS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			log.Fatalf("Invalid DAILY_LIKE_CREDITS value: %q", raw)
		}
		allowance = parsed
	}
	creditPolicy := &services.CreditPolicy{DailyAllowance: allowance}

	// Initialize Services
	userProfileService := &services.UserProfileService{Dynamo: dynamoService, Policy: creditPolicy}
	interactionService := &services.InteractionService{Dynamo: dynamoService}
	matchService := &services.MatchService{Dynamo: dynamoService}

	// Pick the suggestion strategy
	var strategy services.SuggestionStrategy
	switch os.Getenv("SUGGESTION_STRATEGY") {
	case "", "interests":
		strategy = &services.InterestOverlapStrategy{Profiles: userProfileService}
		log.Println("Using interest-overlap suggestion strategy.")
	case "random":
		strategy = &services.RandomStrategy{Profiles: userProfileService}
		log.Println("Using random suggestion strategy.")
	default:
		log.Fatalf("Unknown SUGGESTION_STRATEGY value: %q", os.Getenv("SUGGESTION_STRATEGY"))
	}

	matchmakingService := &services.MatchmakingService{
		Profiles:     userProfileService,
		Interactions: interactionService,
		Matches:      matchService,
		Policy:       creditPolicy,
		Strategy:     strategy,
	}
	statsService := &services.StatsService{
		Profiles:     userProfileService,
		Interactions: interactionService,
		Matches:      matchService,
	}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to CampusLove")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterUserProfileRoutes(r, userProfileService, matchmakingService)
	routes.RegisterInteractionRoutes(r, matchmakingService)
	routes.RegisterMatchRoutes(r, matchService)
	routes.RegisterStatsRoutes(r, statsService)

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
