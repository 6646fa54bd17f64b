package routes

import (
	"campuslove_server/controllers"
	"campuslove_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up routes related to user profiles
func RegisterUserProfileRoutes(r *mux.Router, profiles *services.UserProfileService, matchmaking *services.MatchmakingService) {
	controller := controllers.NewUserProfileController(profiles, matchmaking)

	profileRouter := r.PathPrefix("/api/profile").Subrouter()
	profileRouter.HandleFunc("", controller.CreateUserProfile).Methods("POST")
	profileRouter.HandleFunc("/login", controller.Login).Methods("POST")
	profileRouter.HandleFunc("/suggestions", controller.GetUserSuggestions).Methods("GET")
	profileRouter.HandleFunc("/{userId}", controller.GetUserProfile).Methods("GET")
}
