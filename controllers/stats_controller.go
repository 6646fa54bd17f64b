package controllers

import (
	"fmt"
	"net/http"

	"campuslove_server/services"
)

// StatsController serves the free-text statistics report.
type StatsController struct {
	Stats *services.StatsService
}

// NewStatsController initializes the controller
func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{Stats: stats}
}

// GetStats - generate and return the statistics report
func (c *StatsController) GetStats(w http.ResponseWriter, r *http.Request) {
	report, err := c.Stats.GenerateReport(r.Context())
	if err != nil {
		http.Error(w, `{"error": "Failed to generate statistics"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, report)
}
