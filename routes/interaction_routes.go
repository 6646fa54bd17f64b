package routes

import (
	"campuslove_server/controllers"
	"campuslove_server/services"

	"github.com/gorilla/mux"
)

// RegisterInteractionRoutes sets up routes for interaction-related operations under /api/interactions
func RegisterInteractionRoutes(r *mux.Router, matchmaking *services.MatchmakingService) {
	controller := controllers.NewInteractionController(matchmaking)

	interactionRouter := r.PathPrefix("/api/interactions").Subrouter()
	interactionRouter.HandleFunc("/like", controller.HandleLikeUser).Methods("POST")
	interactionRouter.HandleFunc("/dislike", controller.HandleDislikeUser).Methods("POST")
}
