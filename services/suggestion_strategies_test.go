package services

import (
	"context"
	"testing"

	"campuslove_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterestOverlapRanksSharedInterestsFirst(t *testing.T) {
	current := &models.UserProfile{UserID: "me", Interests: []string{"music", "hiking"}}
	browser := &fakeBrowser{profiles: []models.UserProfile{
		{UserID: "none", Interests: []string{"gaming"}},
		{UserID: "both", Interests: []string{"hiking", "music"}},
	}}
	strategy := &InterestOverlapStrategy{Profiles: browser}

	suggestions, err := strategy.Suggest(context.Background(), current, 2, nil)
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	assert.Equal(t, "both", suggestions[0].UserID)
	assert.Equal(t, "none", suggestions[1].UserID)
}

func TestInterestOverlapIsCaseInsensitive(t *testing.T) {
	current := &models.UserProfile{UserID: "me", Interests: []string{"Music", "HIKING"}}
	browser := &fakeBrowser{profiles: []models.UserProfile{
		{UserID: "one", Interests: []string{"reading", "muSic"}},
		{UserID: "two", Interests: []string{"hiking", "music"}},
	}}
	strategy := &InterestOverlapStrategy{Profiles: browser}

	suggestions, err := strategy.Suggest(context.Background(), current, 2, nil)
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	assert.Equal(t, "two", suggestions[0].UserID)
}

func TestInterestOverlapEmptyPool(t *testing.T) {
	strategy := &InterestOverlapStrategy{Profiles: &fakeBrowser{}}

	suggestions, err := strategy.Suggest(context.Background(), &models.UserProfile{UserID: "me"}, 5, nil)
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestInterestOverlapTruncatesToCount(t *testing.T) {
	current := &models.UserProfile{UserID: "me", Interests: []string{"music"}}
	browser := &fakeBrowser{profiles: []models.UserProfile{
		{UserID: "c1", Interests: []string{"music"}},
		{UserID: "c2", Interests: []string{"music"}},
		{UserID: "c3", Interests: []string{"music"}},
	}}
	strategy := &InterestOverlapStrategy{Profiles: browser}

	suggestions, err := strategy.Suggest(context.Background(), current, 2, nil)
	require.NoError(t, err)
	assert.Len(t, suggestions, 2)
}

func TestRandomStrategyHonorsExclusions(t *testing.T) {
	browser := &fakeBrowser{profiles: []models.UserProfile{
		{UserID: "a"}, {UserID: "b"}, {UserID: "c"},
	}}
	strategy := &RandomStrategy{Profiles: browser}

	suggestions, err := strategy.Suggest(context.Background(), &models.UserProfile{UserID: "me"}, 10, []string{"b"})
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	for _, suggestion := range suggestions {
		assert.NotEqual(t, "b", suggestion.UserID)
	}
}

func TestSharedInterestCountIgnoresDuplicates(t *testing.T) {
	count := sharedInterestCount(
		[]string{"music", "hiking"},
		[]string{"music", "Music", "MUSIC"},
	)
	assert.Equal(t, 1, count)
}
