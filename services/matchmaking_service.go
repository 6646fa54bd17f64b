package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"campuslove_server/models"

	"github.com/google/uuid"
)

// InteractionResult reports the outcome of recording an interaction.
// Policy rejections (self-interaction, duplicates, spent credits) are
// expected outcomes and arrive here with Success=false, not as errors.
type InteractionResult struct {
	Success       bool   `json:"success"`
	Code          string `json:"code"`
	Message       string `json:"message"`
	NewMatch      bool   `json:"newMatch"`
	CreditWarning bool   `json:"creditWarning,omitempty"`
}

// MatchmakingService orchestrates likes, dislikes, mutual-match
// detection, and profile suggestions.
type MatchmakingService struct {
	Profiles     ProfileStore
	Interactions InteractionLog
	Matches      MatchRegistry
	Policy       *CreditPolicy
	Strategy     SuggestionStrategy
}

// RecordInteraction validates and persists a like or dislike from
// sender to receiver and detects a mutual match on likes.
//
// The order is load-bearing: the duplicate check runs before any credit
// is spent, and the interaction is persisted before the reverse-like
// lookup so the other side's concurrent call can observe it.
func (ms *MatchmakingService) RecordInteraction(ctx context.Context, senderID, receiverID, kind string) (*InteractionResult, error) {
	log.Printf("🔄 Processing %s from %s -> %s", kind, senderID, receiverID)

	sender, err := ms.Profiles.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if sender == nil {
		return rejected(models.CodeNotFound, "Sender profile not found."), nil
	}

	receiver, err := ms.Profiles.GetByID(ctx, receiverID)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return rejected(models.CodeNotFound, "Receiver profile not found."), nil
	}

	if senderID == receiverID {
		return rejected(models.CodeSelfInteraction, "You cannot interact with yourself."), nil
	}

	exists, err := ms.Interactions.ExistsForPair(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if exists {
		return rejected(models.CodeDuplicateInteraction, "You have already interacted with this profile."), nil
	}

	creditWarning := false
	if kind == models.InteractionTypeLike {
		if !ms.Policy.CanLike(sender) {
			return rejected(models.CodeInsufficientCredits, "You have no like credits left today. Try again tomorrow!"), nil
		}

		ms.Policy.Consume(sender)
		// A failed credit write must not block the session; the in-memory
		// decrement still limits likes for the rest of it.
		if err := ms.Profiles.Update(ctx, sender); err != nil {
			log.Printf("⚠️ Warning: could not persist spent credit for %s: %v", sender.Name, err)
			creditWarning = true
		}
	}

	interaction := models.Interaction{
		SenderID:      senderID,
		ReceiverID:    receiverID,
		InteractionID: uuid.NewString(),
		Type:          kind,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if err := ms.Interactions.Append(ctx, interaction); err != nil {
		return nil, fmt.Errorf("failed to record interaction: %w", err)
	}

	result := &InteractionResult{
		Success:       true,
		Code:          models.CodeDislikeRecorded,
		Message:       "Dislike recorded successfully.",
		CreditWarning: creditWarning,
	}
	if kind == models.InteractionTypeLike {
		result.Code = models.CodeLikeRecorded
		result.Message = "Like recorded successfully."
	}

	// Dislikes never trigger match detection.
	if kind != models.InteractionTypeLike {
		return result, nil
	}

	reverseLike, err := ms.Interactions.FindLike(ctx, receiverID, senderID)
	if err != nil {
		return nil, err
	}
	if reverseLike == nil {
		return result, nil
	}

	alreadyMatched, err := ms.Matches.ExistsForPair(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if !alreadyMatched {
		if err := ms.Matches.Append(ctx, models.NewMatch(senderID, receiverID)); err != nil {
			return nil, err
		}
		result.Message = "It's a match! 🎉💖"
	} else {
		// Matches are idempotent per pair; still report the mutual like.
		result.Message = "Like recorded. You already have a match with this profile."
	}

	result.Code = models.CodeNewMatch
	result.NewMatch = true
	log.Printf("💖 Mutual like between %s and %s", sender.Name, receiver.Name)
	return result, nil
}

// SuggestProfiles computes the exclusion set (everyone the user already
// interacted with, plus the user) and delegates to the active strategy.
// The set is recomputed on every call so a like recorded a moment ago
// is excluded immediately.
func (ms *MatchmakingService) SuggestProfiles(ctx context.Context, user *models.UserProfile, count int) ([]models.UserProfile, error) {
	if user == nil || count <= 0 {
		return []models.UserProfile{}, nil
	}

	interactedIDs, err := ms.Interactions.InteractedToIDsFrom(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	excludedIDs := append(interactedIDs, user.UserID)

	return ms.Strategy.Suggest(ctx, user, count, excludedIDs)
}

// ViewMatches resolves a user's matches to the full counterpart profiles.
func (ms *MatchmakingService) ViewMatches(ctx context.Context, userID string) ([]models.UserProfile, error) {
	return ms.Matches.DetailedMatchesFor(ctx, userID)
}

func rejected(code, message string) *InteractionResult {
	return &InteractionResult{Success: false, Code: code, Message: message}
}
