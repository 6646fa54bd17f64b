package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"campuslove_server/models"
	"campuslove_server/services"
)

// InteractionController handles like/dislike requests through the
// matchmaking engine.
type InteractionController struct {
	Matchmaking *services.MatchmakingService
}

// NewInteractionController initializes the controller
func NewInteractionController(matchmaking *services.MatchmakingService) *InteractionController {
	return &InteractionController{Matchmaking: matchmaking}
}

// HandleLikeUser - User likes another user
func (c *InteractionController) HandleLikeUser(w http.ResponseWriter, r *http.Request) {
	c.handleInteraction(w, r, models.InteractionTypeLike)
}

// HandleDislikeUser - User dislikes another user
func (c *InteractionController) HandleDislikeUser(w http.ResponseWriter, r *http.Request) {
	c.handleInteraction(w, r, models.InteractionTypeDislike)
}

func (c *InteractionController) handleInteraction(w http.ResponseWriter, r *http.Request, kind string) {
	var request struct {
		SenderID   string `json:"senderId"`
		ReceiverID string `json:"receiverId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	log.Printf("💌 %s sent a %s to %s", request.SenderID, kind, request.ReceiverID)

	result, err := c.Matchmaking.RecordInteraction(r.Context(), request.SenderID, request.ReceiverID, kind)
	if err != nil {
		log.Printf("❌ Error recording %s: %v", kind, err)
		http.Error(w, `{"error": "Failed to record interaction"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if result.Code == models.CodeNotFound {
		w.WriteHeader(http.StatusNotFound)
	}
	json.NewEncoder(w).Encode(result)
}
