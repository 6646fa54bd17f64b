package models

// ✅ Interaction Types (like, dislike)
const (
	InteractionTypeLike    = "like"
	InteractionTypeDislike = "dislike"
)

// ✅ Result codes returned by the matchmaking engine
const (
	CodeLikeRecorded         = "like_recorded"
	CodeDislikeRecorded      = "dislike_recorded"
	CodeNewMatch             = "new_match"
	CodeNotFound             = "not_found"
	CodeSelfInteraction      = "self_interaction"
	CodeDuplicateInteraction = "duplicate_interaction"
	CodeInsufficientCredits  = "insufficient_credits"
)
