package routes

import (
	"campuslove_server/controllers"
	"campuslove_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for fetching a user's matches
func RegisterMatchRoutes(r *mux.Router, matches *services.MatchService) {
	controller := controllers.NewMatchController(matches)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()
	matchRouter.HandleFunc("", controller.GetMatches).Methods("GET")
	matchRouter.HandleFunc("/count", controller.GetMatchCount).Methods("GET")
}
