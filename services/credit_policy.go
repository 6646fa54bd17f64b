package services

import (
	"time"

	"campuslove_server/models"
)

// DefaultDailyLikeCredits is the allowance granted on each daily reset.
const DefaultDailyLikeCredits = 10

const creditResetDateLayout = "2006-01-02"

// CreditPolicy decides whether a user may issue a like now, consumes a
// credit, and resets the daily allowance. It only mutates the in-memory
// profile; persisting the change is the caller's responsibility.
type CreditPolicy struct {
	DailyAllowance int
}

// CanLike reports whether the profile has a like credit left to spend.
func (cp *CreditPolicy) CanLike(profile *models.UserProfile) bool {
	return profile.LikeCredits > 0
}

// Consume spends one like credit. Credits never go below zero.
func (cp *CreditPolicy) Consume(profile *models.UserProfile) {
	if profile.LikeCredits > 0 {
		profile.LikeCredits--
	}
}

// RefreshIfNewDay restores the daily allowance when the profile has
// never been reset or was last reset before today (UTC calendar day).
// Returns true when the profile was changed.
func (cp *CreditPolicy) RefreshIfNewDay(profile *models.UserProfile) bool {
	today := time.Now().UTC().Format(creditResetDateLayout)

	if profile.LastCreditReset != "" && profile.LastCreditReset >= today {
		return false
	}

	profile.LikeCredits = cp.DailyAllowance
	profile.LastCreditReset = today
	return true
}
