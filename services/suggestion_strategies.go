package services

import (
	"context"
	"math/rand"
	"sort"
	"strings"

	"campuslove_server/models"
)

// Oversampling factor for the interest strategy: fetch a larger pool so
// there is something worth ranking.
const interestPoolFactor = 5

// SuggestionStrategy produces an ordered batch of candidate profiles to
// show next. Implementations never return the current user or any
// excluded id; an empty batch is a normal end-of-browsing state.
type SuggestionStrategy interface {
	Suggest(ctx context.Context, currentUser *models.UserProfile, count int, excludedIDs []string) ([]models.UserProfile, error)
}

// RandomStrategy delegates candidate selection, exclusion, and ordering
// entirely to the profile query layer.
type RandomStrategy struct {
	Profiles ProfileBrowser
}

func (rs *RandomStrategy) Suggest(ctx context.Context, currentUser *models.UserProfile, count int, excludedIDs []string) ([]models.UserProfile, error) {
	return rs.Profiles.BrowsableProfiles(ctx, count, excludedIDs)
}

// InterestOverlapStrategy ranks an oversampled candidate pool by shared
// interests. Ties are broken in randomized order, not submission order.
type InterestOverlapStrategy struct {
	Profiles ProfileBrowser
}

func (is *InterestOverlapStrategy) Suggest(ctx context.Context, currentUser *models.UserProfile, count int, excludedIDs []string) ([]models.UserProfile, error) {
	pool, err := is.Profiles.BrowsableProfiles(ctx, count*interestPoolFactor, excludedIDs)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return []models.UserProfile{}, nil
	}

	scores := make(map[string]int, len(pool))
	for _, candidate := range pool {
		scores[candidate.UserID] = sharedInterestCount(currentUser.Interests, candidate.Interests)
	}

	// Shuffle before the stable sort so equal scores come out in random order.
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	sort.SliceStable(pool, func(i, j int) bool {
		return scores[pool[i].UserID] > scores[pool[j].UserID]
	})

	if len(pool) > count {
		pool = pool[:count]
	}
	return pool, nil
}

// sharedInterestCount counts case-insensitive set intersection between
// two interest lists.
func sharedInterestCount(userInterests, candidateInterests []string) int {
	seen := make(map[string]struct{}, len(userInterests))
	for _, interest := range userInterests {
		seen[strings.ToLower(interest)] = struct{}{}
	}

	count := 0
	matched := make(map[string]struct{})
	for _, interest := range candidateInterests {
		lowered := strings.ToLower(interest)
		if _, ok := seen[lowered]; !ok {
			continue
		}
		if _, already := matched[lowered]; already {
			continue
		}
		matched[lowered] = struct{}{}
		count++
	}
	return count
}
