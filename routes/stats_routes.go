package routes

import (
	"campuslove_server/controllers"
	"campuslove_server/services"

	"github.com/gorilla/mux"
)

// RegisterStatsRoutes sets up the statistics report route
func RegisterStatsRoutes(r *mux.Router, stats *services.StatsService) {
	controller := controllers.NewStatsController(stats)

	r.HandleFunc("/api/stats", controller.GetStats).Methods("GET")
}
