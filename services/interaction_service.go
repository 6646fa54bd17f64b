package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"campuslove_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrDuplicatePair is returned when an interaction already exists for
// an ordered (sender, receiver) pair. The table's conditional put is
// the second line of defense behind the engine's explicit check.
var ErrDuplicatePair = errors.New("interaction already exists for this pair")

// InteractionService is the DynamoDB-backed interaction log.
type InteractionService struct {
	Dynamo *DynamoService
}

// Append persists a new interaction. The record is immutable once written.
func (is *InteractionService) Append(ctx context.Context, interaction models.Interaction) error {
	if err := is.Dynamo.PutItemIfAbsent(ctx, models.InteractionsTable, interaction, "senderId"); err != nil {
		if errors.Is(err, ErrItemAlreadyExists) {
			return ErrDuplicatePair
		}
		log.Printf("❌ Error inserting interaction %s -> %s: %v", interaction.SenderID, interaction.ReceiverID, err)
		return fmt.Errorf("failed to append interaction: %w", err)
	}
	return nil
}

// ExistsForPair reports whether any interaction was ever issued for the
// ordered (sender, receiver) pair.
func (is *InteractionService) ExistsForPair(ctx context.Context, senderID, receiverID string) (bool, error) {
	interaction, err := is.getForPair(ctx, senderID, receiverID)
	if err != nil {
		return false, err
	}
	return interaction != nil, nil
}

// FindLike returns the like issued by senderID toward receiverID, or
// nil when no such like exists.
func (is *InteractionService) FindLike(ctx context.Context, senderID, receiverID string) (*models.Interaction, error) {
	interaction, err := is.getForPair(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if interaction == nil || interaction.Type != models.InteractionTypeLike {
		return nil, nil
	}
	return interaction, nil
}

// LikesReceivedBy fetches every like a user has received, via the receiver GSI.
func (is *InteractionService) LikesReceivedBy(ctx context.Context, userID string) ([]models.Interaction, error) {
	keyCondition := "receiverId = :receiver"
	expressionValues := map[string]types.AttributeValue{
		":receiver": &types.AttributeValueMemberS{Value: userID},
		":like":     &types.AttributeValueMemberS{Value: models.InteractionTypeLike},
	}
	expressionNames := map[string]string{"#type": "type"}
	filterExpression := "#type = :like"

	items, err := is.Dynamo.QueryItemsWithIndex(ctx, models.InteractionsTable, models.ReceiverIDIndex, keyCondition, expressionValues, expressionNames, filterExpression, 1000)
	if err != nil {
		log.Printf("❌ Error querying likes received by %s: %v", userID, err)
		return nil, fmt.Errorf("failed to fetch received likes: %w", err)
	}

	var likes []models.Interaction
	if err := attributevalue.UnmarshalListOfMaps(items, &likes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal received likes: %w", err)
	}
	return likes, nil
}

// InteractedToIDsFrom returns the ids of every user the sender has ever
// liked or disliked.
func (is *InteractionService) InteractedToIDsFrom(ctx context.Context, senderID string) ([]string, error) {
	keyCondition := "senderId = :sender"
	expressionValues := map[string]types.AttributeValue{
		":sender": &types.AttributeValueMemberS{Value: senderID},
	}

	items, err := is.Dynamo.QueryItems(ctx, models.InteractionsTable, keyCondition, expressionValues, nil, 1000)
	if err != nil {
		log.Printf("❌ Error querying interactions sent by %s: %v", senderID, err)
		return nil, fmt.Errorf("failed to fetch interacted ids: %w", err)
	}

	var interactions []models.Interaction
	if err := attributevalue.UnmarshalListOfMaps(items, &interactions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal interactions: %w", err)
	}

	ids := make([]string, 0, len(interactions))
	for _, interaction := range interactions {
		ids = append(ids, interaction.ReceiverID)
	}
	return ids, nil
}

func (is *InteractionService) getForPair(ctx context.Context, senderID, receiverID string) (*models.Interaction, error) {
	key := map[string]types.AttributeValue{
		"senderId":   &types.AttributeValueMemberS{Value: senderID},
		"receiverId": &types.AttributeValueMemberS{Value: receiverID},
	}

	item, err := is.Dynamo.GetItem(ctx, models.InteractionsTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var interaction models.Interaction
	if err := attributevalue.UnmarshalMap(item, &interaction); err != nil {
		return nil, fmt.Errorf("failed to unmarshal interaction: %w", err)
	}
	return &interaction, nil
}
