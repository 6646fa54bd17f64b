package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"campuslove_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MatchService is the DynamoDB-backed match registry. Pairs are always
// canonicalized before touching the table, so lookups are
// order-independent.
type MatchService struct {
	Dynamo *DynamoService
}

// ExistsForPair reports whether a match exists for the unordered pair.
func (ms *MatchService) ExistsForPair(ctx context.Context, userA, userB string) (bool, error) {
	user1, user2 := models.CanonicalPair(userA, userB)
	key := map[string]types.AttributeValue{
		"user1Id": &types.AttributeValueMemberS{Value: user1},
		"user2Id": &types.AttributeValueMemberS{Value: user2},
	}

	item, err := ms.Dynamo.GetItem(ctx, models.MatchesTable, key)
	if err != nil {
		return false, err
	}
	return item != nil, nil
}

// Append persists a new match. The conditional put keeps the registry
// idempotent per canonical pair even under racing mutual likes.
func (ms *MatchService) Append(ctx context.Context, match models.Match) error {
	if err := ms.Dynamo.PutItemIfAbsent(ctx, models.MatchesTable, match, "user1Id"); err != nil {
		if errors.Is(err, ErrItemAlreadyExists) {
			log.Printf("ℹ️ Match already registered for pair (%s, %s)", match.User1ID, match.User2ID)
			return nil
		}
		log.Printf("❌ Error inserting match for pair (%s, %s): %v", match.User1ID, match.User2ID, err)
		return fmt.Errorf("failed to append match: %w", err)
	}
	log.Printf("✅ Match %s registered for pair (%s, %s)", match.MatchID, match.User1ID, match.User2ID)
	return nil
}

// MatchesFor fetches every match a user participates in, querying the
// base table for the user1 side and the GSI for the user2 side.
func (ms *MatchService) MatchesFor(ctx context.Context, userID string) ([]models.Match, error) {
	var matches []models.Match

	expressionValues := map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: userID},
	}

	user1Items, err := ms.Dynamo.QueryItems(ctx, models.MatchesTable, "user1Id = :userId", expressionValues, nil, 1000)
	if err != nil {
		log.Printf("❌ Error querying matches by user1Id: %v", err)
		return nil, fmt.Errorf("failed to fetch matches: %w", err)
	}

	user2Items, err := ms.Dynamo.QueryItemsWithIndex(ctx, models.MatchesTable, models.User2IDIndex, "user2Id = :userId", expressionValues, nil, "", 1000)
	if err != nil {
		log.Printf("❌ Error querying matches by user2Id-index: %v", err)
		return nil, fmt.Errorf("failed to fetch matches: %w", err)
	}

	for _, item := range append(user1Items, user2Items...) {
		var match models.Match
		if err := attributevalue.UnmarshalMap(item, &match); err != nil {
			log.Printf("❌ Error unmarshalling match: %v", err)
			continue
		}
		matches = append(matches, match)
	}

	return matches, nil
}

// DetailedMatchesFor resolves a user's matches to the full profiles of
// their counterparts. Counterparts whose profile has disappeared are
// skipped.
func (ms *MatchService) DetailedMatchesFor(ctx context.Context, userID string) ([]models.UserProfile, error) {
	matches, err := ms.MatchesFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	profiles := []models.UserProfile{}
	for _, match := range matches {
		counterpartID := match.User1ID
		if counterpartID == userID {
			counterpartID = match.User2ID
		}

		key := map[string]types.AttributeValue{
			"userId": &types.AttributeValueMemberS{Value: counterpartID},
		}
		item, err := ms.Dynamo.GetItem(ctx, models.UserProfilesTable, key)
		if err != nil || item == nil {
			log.Printf("⚠️ Warning: could not fetch profile %s for match %s: %v", counterpartID, match.MatchID, err)
			continue
		}

		var profile models.UserProfile
		if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
			log.Printf("⚠️ Warning: could not parse profile %s: %v", counterpartID, err)
			continue
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

// CountFor returns how many matches a user participates in.
func (ms *MatchService) CountFor(ctx context.Context, userID string) (int, error) {
	matches, err := ms.MatchesFor(ctx, userID)
	if err != nil {
		return 0, err
	}
	return len(matches), nil
}
