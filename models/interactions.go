package models

// Interaction is an immutable like/dislike fact between two users.
// At most one interaction exists per ordered (sender, receiver) pair.
type Interaction struct {
	SenderID      string `dynamodbav:"senderId" json:"senderId"`     // ✅ Partition Key
	ReceiverID    string `dynamodbav:"receiverId" json:"receiverId"` // ✅ Sort Key, also GSI partition key
	InteractionID string `dynamodbav:"interactionId" json:"interactionId"`
	Type          string `dynamodbav:"type" json:"type"` // like, dislike
	CreatedAt     string `dynamodbav:"createdAt" json:"createdAt"`
}

// InteractionsTable is the DynamoDB table name for interactions
const InteractionsTable = "Interactions"

// ReceiverIDIndex is the GSI used to query interactions received by a user
const ReceiverIDIndex = "receiverId-index"
