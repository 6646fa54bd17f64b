package services

import (
	"context"
	"testing"

	"campuslove_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReportEmpty(t *testing.T) {
	store := newFakeProfileStore()
	stats := &StatsService{
		Profiles:     store,
		Interactions: newFakeInteractionLog(),
		Matches:      newFakeMatchRegistry(store),
	}

	report, err := stats.GenerateReport(context.Background())
	require.NoError(t, err)
	assert.Contains(t, report, "No users registered yet")
}

func TestGenerateReportSummarizesUsers(t *testing.T) {
	store := newFakeProfileStore(
		models.UserProfile{UserID: "a", Name: "Ana", Age: 20, Gender: "female"},
		models.UserProfile{UserID: "b", Name: "Beto", Age: 24, Gender: "male"},
	)
	interactions := newFakeInteractionLog()
	matches := newFakeMatchRegistry(store)

	require.NoError(t, interactions.Append(context.Background(), models.Interaction{
		SenderID: "b", ReceiverID: "a", Type: models.InteractionTypeLike,
	}))
	require.NoError(t, matches.Append(context.Background(), models.NewMatch("a", "b")))

	stats := &StatsService{Profiles: store, Interactions: interactions, Matches: matches}
	report, err := stats.GenerateReport(context.Background())
	require.NoError(t, err)

	assert.Contains(t, report, "Registered users: 2")
	assert.Contains(t, report, "Most liked user: Ana (1 likes)")
	assert.Contains(t, report, "Average age: 22.0")
	assert.Contains(t, report, "- female: 1")
	assert.Contains(t, report, "- male: 1")
}
