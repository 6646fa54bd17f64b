package controllers

import (
	"encoding/json"
	"net/http"

	"campuslove_server/services"
)

// MatchController exposes a user's confirmed matches.
type MatchController struct {
	Matches *services.MatchService
}

// NewMatchController initializes the controller
func NewMatchController(matches *services.MatchService) *MatchController {
	return &MatchController{Matches: matches}
}

// GetMatches - fetch the full counterpart profiles of a user's matches
func (c *MatchController) GetMatches(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, `{"error": "Missing userId parameter"}`, http.StatusBadRequest)
		return
	}

	profiles, err := c.Matches.DetailedMatchesFor(r.Context(), userID)
	if err != nil {
		http.Error(w, `{"error": "Failed to fetch matches"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profiles)
}

// GetMatchCount - fetch how many matches a user has
func (c *MatchController) GetMatchCount(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, `{"error": "Missing userId parameter"}`, http.StatusBadRequest)
		return
	}

	count, err := c.Matches.CountFor(r.Context(), userID)
	if err != nil {
		http.Error(w, `{"error": "Failed to count matches"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"count": count})
}
