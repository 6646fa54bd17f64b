package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"campuslove_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// UserProfileService is the DynamoDB-backed profile store. It also owns
// registration and login, which are the two places the daily credit
// reset runs.
type UserProfileService struct {
	Dynamo *DynamoService
	Policy *CreditPolicy
}

// RegisterProfile validates and creates a new profile. Policy
// rejections (empty name, underage, duplicate name) come back as a
// nil profile with a user-facing message, not as an error.
func (ups *UserProfileService) RegisterProfile(ctx context.Context, name string, age int, gender string, interests []string, major, bio string) (*models.UserProfile, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, "Name cannot be empty.", nil
	}
	if age < 18 {
		return nil, "You must be at least 18 years old to register.", nil
	}

	existing, err := ups.GetByName(ctx, name)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "That name is already taken. Try another one.", nil
	}

	now := time.Now().UTC()
	profile := models.UserProfile{
		UserID:          uuid.NewString(),
		Name:            name,
		Age:             age,
		Gender:          gender,
		Interests:       interests,
		Major:           major,
		Bio:             bio,
		LikeCredits:     ups.Policy.DailyAllowance,
		LastCreditReset: now.Format(creditResetDateLayout),
		CreatedAt:       now.Format(time.RFC3339),
	}

	if err := ups.Dynamo.PutItem(ctx, models.UserProfilesTable, profile); err != nil {
		log.Printf("❌ Error creating profile for %s: %v", name, err)
		return nil, "", fmt.Errorf("failed to create profile: %w", err)
	}

	log.Printf("✅ Registered new profile %s (%s)", name, profile.UserID)
	return &profile, "Registration successful!", nil
}

// Login fetches a profile by name and refreshes its daily like credits
// when a new day has started. A failed credit write is logged but never
// blocks the login.
func (ups *UserProfileService) Login(ctx context.Context, name string) (*models.UserProfile, error) {
	profile, err := ups.GetByName(ctx, strings.TrimSpace(name))
	if err != nil || profile == nil {
		return nil, err
	}

	if ups.Policy.RefreshIfNewDay(profile) {
		log.Printf("ℹ️ Daily like credits refreshed for %s", profile.Name)
		if err := ups.Update(ctx, profile); err != nil {
			log.Printf("⚠️ Warning: could not persist refreshed credits for %s: %v", profile.Name, err)
		}
	}

	return profile, nil
}

// GetByID retrieves a profile by its id. Absent profiles return (nil, nil).
func (ups *UserProfileService) GetByID(ctx context.Context, userID string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ups.Dynamo.GetItem(ctx, models.UserProfilesTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	return &profile, nil
}

// GetByName retrieves a profile by its unique name via the name GSI.
func (ups *UserProfileService) GetByName(ctx context.Context, name string) (*models.UserProfile, error) {
	keyCondition := "#name = :name"
	expressionValues := map[string]types.AttributeValue{
		":name": &types.AttributeValueMemberS{Value: name},
	}
	expressionNames := map[string]string{"#name": "name"}

	items, err := ups.Dynamo.QueryItemsWithIndex(ctx, models.UserProfilesTable, models.NameIndex, keyCondition, expressionValues, expressionNames, "", 1)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile by name: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(items[0], &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	return &profile, nil
}

// ListAll returns every registered profile.
func (ups *UserProfileService) ListAll(ctx context.Context) ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	if err := ups.Dynamo.ScanWithFilter(ctx, models.UserProfilesTable, nil, &profiles); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// Update persists the full profile record.
func (ups *UserProfileService) Update(ctx context.Context, profile *models.UserProfile) error {
	return ups.Dynamo.PutItem(ctx, models.UserProfilesTable, *profile)
}

// BrowsableProfiles returns up to limit candidate profiles, excluding
// the given ids, in random order.
func (ups *UserProfileService) BrowsableProfiles(ctx context.Context, limit int, excludedIDs []string) ([]models.UserProfile, error) {
	excluded := make(map[string]struct{}, len(excludedIDs))
	for _, id := range excludedIDs {
		excluded[id] = struct{}{}
	}

	var candidates []models.UserProfile
	err := ups.Dynamo.ScanWithFilter(ctx, models.UserProfilesTable, func(item map[string]types.AttributeValue) bool {
		idAttr, ok := item["userId"].(*types.AttributeValueMemberS)
		if !ok {
			return false
		}
		_, skip := excluded[idAttr.Value]
		return !skip
	}, &candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch browsable profiles: %w", err)
	}

	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}
