package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"campuslove_server/services"

	"github.com/gorilla/mux"
)

const defaultSuggestionCount = 10

// UserProfileController handles profile registration, login, lookup,
// and browsing suggestions.
type UserProfileController struct {
	Profiles    *services.UserProfileService
	Matchmaking *services.MatchmakingService
}

// NewUserProfileController initializes the controller
func NewUserProfileController(profiles *services.UserProfileService, matchmaking *services.MatchmakingService) *UserProfileController {
	return &UserProfileController{Profiles: profiles, Matchmaking: matchmaking}
}

// CreateUserProfile - register a new profile
func (c *UserProfileController) CreateUserProfile(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Name      string   `json:"name"`
		Age       int      `json:"age"`
		Gender    string   `json:"gender"`
		Interests []string `json:"interests"`
		Major     string   `json:"major"`
		Bio       string   `json:"bio"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	profile, message, err := c.Profiles.RegisterProfile(r.Context(), request.Name, request.Age, request.Gender, request.Interests, request.Major, request.Bio)
	if err != nil {
		http.Error(w, `{"error": "Failed to create profile"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if profile == nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": message})
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "message": message, "profile": profile})
}

// Login - fetch a profile by name, refreshing daily like credits
func (c *UserProfileController) Login(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Name string `json:"name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	profile, err := c.Profiles.Login(r.Context(), request.Name)
	if err != nil {
		http.Error(w, `{"error": "Failed to log in"}`, http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// GetUserProfile - fetch a profile by id
func (c *UserProfileController) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := c.Profiles.GetByID(r.Context(), userID)
	if err != nil {
		http.Error(w, `{"error": "Failed to fetch profile"}`, http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// GetUserSuggestions - fetch candidate profiles to browse next
func (c *UserProfileController) GetUserSuggestions(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, `{"error": "Missing userId parameter"}`, http.StatusBadRequest)
		return
	}

	count := defaultSuggestionCount
	if rawCount := r.URL.Query().Get("count"); rawCount != "" {
		parsed, err := strconv.Atoi(rawCount)
		if err != nil || parsed <= 0 {
			http.Error(w, `{"error": "Invalid count parameter"}`, http.StatusBadRequest)
			return
		}
		count = parsed
	}

	user, err := c.Profiles.GetByID(r.Context(), userID)
	if err != nil {
		http.Error(w, `{"error": "Failed to fetch profile"}`, http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
		return
	}

	suggestions, err := c.Matchmaking.SuggestProfiles(r.Context(), user, count)
	if err != nil {
		log.Printf("❌ Error fetching suggestions for %s: %v", userID, err)
		http.Error(w, `{"error": "Failed to fetch suggestions"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(suggestions)
}
