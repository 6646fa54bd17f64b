package models

// UserProfile defines the structure for user profiles
type UserProfile struct {
	UserID          string   `dynamodbav:"userId" json:"userId"` // ✅ Partition Key
	Name            string   `dynamodbav:"name" json:"name"`     // Unique, used in GSI for login
	Age             int      `dynamodbav:"age" json:"age"`
	Gender          string   `dynamodbav:"gender" json:"gender"`
	Interests       []string `dynamodbav:"interests,omitempty" json:"interests,omitempty"`
	Major           string   `dynamodbav:"major,omitempty" json:"major,omitempty"`
	Bio             string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	LikeCredits     int      `dynamodbav:"likeCredits" json:"likeCredits"`
	LastCreditReset string   `dynamodbav:"lastCreditReset,omitempty" json:"lastCreditReset,omitempty"` // YYYY-MM-DD, empty = never reset
	CreatedAt       string   `dynamodbav:"createdAt" json:"createdAt"`
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "Profiles"

// NameIndex is the GSI used to look profiles up by their unique name
const NameIndex = "name-index"
