package services

import (
	"context"

	"campuslove_server/models"
)

// ProfileStore is the durable record of user profiles and their credit state.
// Absent profiles are reported as (nil, nil), not as errors.
type ProfileStore interface {
	GetByID(ctx context.Context, userID string) (*models.UserProfile, error)
	GetByName(ctx context.Context, name string) (*models.UserProfile, error)
	ListAll(ctx context.Context) ([]models.UserProfile, error)
	Update(ctx context.Context, profile *models.UserProfile) error
}

// InteractionLog is the append-only record of every like/dislike ever issued.
type InteractionLog interface {
	Append(ctx context.Context, interaction models.Interaction) error
	ExistsForPair(ctx context.Context, senderID, receiverID string) (bool, error)
	FindLike(ctx context.Context, senderID, receiverID string) (*models.Interaction, error)
	LikesReceivedBy(ctx context.Context, userID string) ([]models.Interaction, error)
	InteractedToIDsFrom(ctx context.Context, senderID string) ([]string, error)
}

// MatchRegistry is the durable record of confirmed mutual matches,
// keyed by the canonical (lower id first) pair.
type MatchRegistry interface {
	ExistsForPair(ctx context.Context, userA, userB string) (bool, error)
	Append(ctx context.Context, match models.Match) error
	DetailedMatchesFor(ctx context.Context, userID string) ([]models.UserProfile, error)
	CountFor(ctx context.Context, userID string) (int, error)
}

// ProfileBrowser serves exclusion-aware candidate pools for the suggestion strategies.
type ProfileBrowser interface {
	BrowsableProfiles(ctx context.Context, limit int, excludedIDs []string) ([]models.UserProfile, error)
}
