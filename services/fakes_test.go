package services

import (
	"context"
	"errors"
	"fmt"

	"campuslove_server/models"
)

// In-memory fakes for the store capabilities, so the engine and stats
// logic can be exercised without DynamoDB.

type fakeProfileStore struct {
	profiles   map[string]models.UserProfile
	failUpdate bool
}

func newFakeProfileStore(profiles ...models.UserProfile) *fakeProfileStore {
	store := &fakeProfileStore{profiles: map[string]models.UserProfile{}}
	for _, profile := range profiles {
		store.profiles[profile.UserID] = profile
	}
	return store
}

func (f *fakeProfileStore) GetByID(_ context.Context, userID string) (*models.UserProfile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	copied := profile
	return &copied, nil
}

func (f *fakeProfileStore) GetByName(_ context.Context, name string) (*models.UserProfile, error) {
	for _, profile := range f.profiles {
		if profile.Name == name {
			copied := profile
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileStore) ListAll(_ context.Context) ([]models.UserProfile, error) {
	profiles := make([]models.UserProfile, 0, len(f.profiles))
	for _, profile := range f.profiles {
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (f *fakeProfileStore) Update(_ context.Context, profile *models.UserProfile) error {
	if f.failUpdate {
		return errors.New("store unavailable")
	}
	f.profiles[profile.UserID] = *profile
	return nil
}

type fakeInteractionLog struct {
	interactions map[string]models.Interaction
}

func newFakeInteractionLog() *fakeInteractionLog {
	return &fakeInteractionLog{interactions: map[string]models.Interaction{}}
}

func pairKey(senderID, receiverID string) string {
	return fmt.Sprintf("%s->%s", senderID, receiverID)
}

func (f *fakeInteractionLog) Append(_ context.Context, interaction models.Interaction) error {
	key := pairKey(interaction.SenderID, interaction.ReceiverID)
	if _, exists := f.interactions[key]; exists {
		return ErrDuplicatePair
	}
	f.interactions[key] = interaction
	return nil
}

func (f *fakeInteractionLog) ExistsForPair(_ context.Context, senderID, receiverID string) (bool, error) {
	_, exists := f.interactions[pairKey(senderID, receiverID)]
	return exists, nil
}

func (f *fakeInteractionLog) FindLike(_ context.Context, senderID, receiverID string) (*models.Interaction, error) {
	interaction, exists := f.interactions[pairKey(senderID, receiverID)]
	if !exists || interaction.Type != models.InteractionTypeLike {
		return nil, nil
	}
	return &interaction, nil
}

func (f *fakeInteractionLog) LikesReceivedBy(_ context.Context, userID string) ([]models.Interaction, error) {
	var likes []models.Interaction
	for _, interaction := range f.interactions {
		if interaction.ReceiverID == userID && interaction.Type == models.InteractionTypeLike {
			likes = append(likes, interaction)
		}
	}
	return likes, nil
}

func (f *fakeInteractionLog) InteractedToIDsFrom(_ context.Context, senderID string) ([]string, error) {
	var ids []string
	for _, interaction := range f.interactions {
		if interaction.SenderID == senderID {
			ids = append(ids, interaction.ReceiverID)
		}
	}
	return ids, nil
}

type fakeMatchRegistry struct {
	matches  map[string]models.Match
	profiles *fakeProfileStore
}

func newFakeMatchRegistry(profiles *fakeProfileStore) *fakeMatchRegistry {
	return &fakeMatchRegistry{matches: map[string]models.Match{}, profiles: profiles}
}

func (f *fakeMatchRegistry) matchKey(userA, userB string) string {
	user1, user2 := models.CanonicalPair(userA, userB)
	return fmt.Sprintf("%s|%s", user1, user2)
}

func (f *fakeMatchRegistry) ExistsForPair(_ context.Context, userA, userB string) (bool, error) {
	_, exists := f.matches[f.matchKey(userA, userB)]
	return exists, nil
}

func (f *fakeMatchRegistry) Append(_ context.Context, match models.Match) error {
	key := f.matchKey(match.User1ID, match.User2ID)
	if _, exists := f.matches[key]; exists {
		return nil
	}
	f.matches[key] = match
	return nil
}

func (f *fakeMatchRegistry) DetailedMatchesFor(ctx context.Context, userID string) ([]models.UserProfile, error) {
	profiles := []models.UserProfile{}
	for _, match := range f.matches {
		counterpartID := ""
		switch userID {
		case match.User1ID:
			counterpartID = match.User2ID
		case match.User2ID:
			counterpartID = match.User1ID
		default:
			continue
		}
		profile, err := f.profiles.GetByID(ctx, counterpartID)
		if err != nil || profile == nil {
			continue
		}
		profiles = append(profiles, *profile)
	}
	return profiles, nil
}

func (f *fakeMatchRegistry) CountFor(_ context.Context, userID string) (int, error) {
	count := 0
	for _, match := range f.matches {
		if match.User1ID == userID || match.User2ID == userID {
			count++
		}
	}
	return count, nil
}

// fakeBrowser serves a fixed candidate list, honoring exclusions and
// the requested limit.
type fakeBrowser struct {
	profiles []models.UserProfile
}

func (f *fakeBrowser) BrowsableProfiles(_ context.Context, limit int, excludedIDs []string) ([]models.UserProfile, error) {
	excluded := map[string]struct{}{}
	for _, id := range excludedIDs {
		excluded[id] = struct{}{}
	}

	candidates := []models.UserProfile{}
	for _, profile := range f.profiles {
		if _, skip := excluded[profile.UserID]; skip {
			continue
		}
		candidates = append(candidates, profile)
	}
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}
