package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
)

// StatsService builds a free-text report over the whole user base.
type StatsService struct {
	Profiles     ProfileStore
	Interactions InteractionLog
	Matches      MatchRegistry
}

// GenerateReport summarizes registered users, the most liked and most
// matched users, average age, and gender distribution.
func (ss *StatsService) GenerateReport(ctx context.Context) (string, error) {
	profiles, err := ss.Profiles.ListAll(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to generate stats: %w", err)
	}
	if len(profiles) == 0 {
		return "No users registered yet, nothing to report.", nil
	}

	var report strings.Builder
	report.WriteString("--- CampusLove Statistics ---\n")
	fmt.Fprintf(&report, "Registered users: %d\n", len(profiles))

	topLikedName, topLikes := "", 0
	topMatchedName, topMatches := "", 0
	totalAge := 0
	genderCounts := map[string]int{}

	for _, profile := range profiles {
		likes, err := ss.Interactions.LikesReceivedBy(ctx, profile.UserID)
		if err != nil {
			log.Printf("⚠️ Warning: could not count likes for %s: %v", profile.Name, err)
			continue
		}
		if len(likes) > topLikes {
			topLikedName, topLikes = profile.Name, len(likes)
		}

		matchCount, err := ss.Matches.CountFor(ctx, profile.UserID)
		if err != nil {
			log.Printf("⚠️ Warning: could not count matches for %s: %v", profile.Name, err)
			continue
		}
		if matchCount > topMatches {
			topMatchedName, topMatches = profile.Name, matchCount
		}

		totalAge += profile.Age
		genderCounts[profile.Gender]++
	}

	if topLikes > 0 {
		fmt.Fprintf(&report, "Most liked user: %s (%d likes)\n", topLikedName, topLikes)
	} else {
		report.WriteString("Nobody has received a like yet.\n")
	}

	if topMatches > 0 {
		fmt.Fprintf(&report, "Most matched user: %s (%d matches)\n", topMatchedName, topMatches)
	} else {
		report.WriteString("No matches have formed yet.\n")
	}

	fmt.Fprintf(&report, "Average age: %.1f\n", float64(totalAge)/float64(len(profiles)))

	genders := make([]string, 0, len(genderCounts))
	for gender := range genderCounts {
		genders = append(genders, gender)
	}
	sort.Strings(genders)

	report.WriteString("Gender distribution:\n")
	for _, gender := range genders {
		fmt.Fprintf(&report, "- %s: %d\n", gender, genderCounts[gender])
	}
	report.WriteString("-----------------------------\n")

	return report.String(), nil
}
