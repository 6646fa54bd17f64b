package models

import (
	"time"

	"github.com/google/uuid"
)

// Match records a confirmed mutual like. The pair is stored in
// canonical order (lower id first) so lookups are order-independent.
type Match struct {
	User1ID   string `dynamodbav:"user1Id" json:"user1Id"` // ✅ Partition Key (lower id)
	User2ID   string `dynamodbav:"user2Id" json:"user2Id"` // ✅ Sort Key (higher id)
	MatchID   string `dynamodbav:"matchId" json:"matchId"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// MatchesTable is the DynamoDB table name for matches
const MatchesTable = "Matches"

// User2IDIndex is the GSI used to find matches where a user is the second participant
const User2IDIndex = "user2Id-index"

// NewMatch builds a match for the canonical pair of the two user ids.
func NewMatch(userA, userB string) Match {
	user1, user2 := CanonicalPair(userA, userB)
	return Match{
		User1ID:   user1,
		User2ID:   user2,
		MatchID:   uuid.NewString(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// CanonicalPair orders two user ids with the lower id first.
func CanonicalPair(userA, userB string) (string, string) {
	if userA < userB {
		return userA, userB
	}
	return userB, userA
}
