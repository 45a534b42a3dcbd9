package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"time"

	"skillswap_server/models"
	"skillswap_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ErrNotConnected is returned when two users without an accepted exchange
// try to message each other
var ErrNotConnected = errors.New("users are not connected through an accepted exchange")

// Broadcaster pushes real-time events to a user's socket room
type Broadcaster interface {
	EmitToUser(userID, event string, payload interface{})
}

// Connection is one entry of the messageable-users list
type Connection struct {
	UserID     string  `json:"userId"`
	Name       string  `json:"name"`
	Email      string  `json:"email,omitempty"`
	Avatar     string  `json:"avatar,omitempty"`
	Rating     float64 `json:"rating"`
	ExchangeID string  `json:"exchangeId"`
}

// MessageService handles direct messages between connected users
type MessageService struct {
	Dynamo        *DynamoService
	Exchanges     *ExchangeService
	Notifications *NotificationService
	Users         *UserService
	Cache         *CacheService
	Socket        Broadcaster
}

func unreadCountKey(userID string) string {
	return "unread:count:" + userID
}

// SendMessage stores a message, pushes it to the recipient's socket room and
// records a notification. Requires an accepted exchange between the users.
func (ms *MessageService) SendMessage(ctx context.Context, senderID, recipientID, content, exchangeID string) (*models.Message, error) {
	connection, err := ms.Exchanges.FindAcceptedBetween(ctx, senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if connection == nil {
		return nil, ErrNotConnected
	}
	if exchangeID == "" {
		exchangeID = connection.ExchangeID
	}

	message := models.Message{
		ConversationID: models.ConversationID(senderID, recipientID),
		CreatedAt:      time.Now().UTC().Format(time.RFC3339Nano),
		MessageID:      uuid.NewString(),
		SenderID:       senderID,
		RecipientID:    recipientID,
		Content:        content,
		ExchangeID:     exchangeID,
	}
	if err := ms.Dynamo.PutItem(ctx, models.MessagesTable, message); err != nil {
		return nil, err
	}

	if ms.Socket != nil {
		ms.Socket.EmitToUser(recipientID, "message:new", map[string]interface{}{
			"_id":       message.MessageID,
			"sender":    senderID,
			"recipient": recipientID,
			"content":   content,
			"createdAt": message.CreatedAt,
		})
	}

	ms.Cache.Delete(unreadCountKey(recipientID))

	body := content
	if len(body) > 140 {
		body = body[:140]
	}
	notifyErr := ms.Notifications.CreateNotification(ctx, models.Notification{
		UserID: recipientID,
		Type:   models.NotificationTypeMessage,
		Title:  "New message",
		Body:   body,
		Data:   map[string]string{"sender": senderID, "messageId": message.MessageID},
	})
	if notifyErr != nil {
		log.Printf("Failed to notify %s about message %s: %v", recipientID, message.MessageID, notifyErr)
	}

	return &message, nil
}

// GetThread returns the full conversation between two users, oldest first
func (ms *MessageService) GetThread(ctx context.Context, userA, userB string) ([]models.Message, error) {
	keyCondition := "conversationId = :conversationId"
	expressionValues := map[string]types.AttributeValue{
		":conversationId": &types.AttributeValueMemberS{Value: models.ConversationID(userA, userB)},
	}
	items, err := ms.Dynamo.QueryItemsWithOptions(ctx, models.MessagesTable, keyCondition, expressionValues, nil, 200, false)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch thread: %w", err)
	}
	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal messages: %w", err)
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

// MarkThreadRead stamps every unread message sent to userID in the thread
// with otherUserID and returns how many were updated.
func (ms *MessageService) MarkThreadRead(ctx context.Context, userID, otherUserID string) (int, error) {
	messages, err := ms.GetThread(ctx, userID, otherUserID)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	updated := 0
	for _, msg := range messages {
		if msg.RecipientID != userID || msg.ReadAt != "" {
			continue
		}
		msg.ReadAt = now
		if err := ms.Dynamo.PutItem(ctx, models.MessagesTable, msg); err != nil {
			return updated, err
		}
		updated++
	}

	ms.Cache.Delete(unreadCountKey(userID))
	return updated, nil
}

// UnreadCount returns the user's unread message count, cached for 30s
func (ms *MessageService) UnreadCount(ctx context.Context, userID string) (int, error) {
	key := unreadCountKey(userID)
	if cached := ms.Cache.Get(key); cached != "" {
		if count, err := strconv.Atoi(cached); err == nil {
			return count, nil
		}
	}

	var messages []models.Message
	err := ms.Dynamo.ScanWithFilter(ctx, models.MessagesTable, func(item map[string]types.AttributeValue) bool {
		return utils.ExtractString(item, "recipientId") == userID && utils.ExtractString(item, "readAt") == ""
	}, nil, &messages)
	if err != nil {
		return 0, err
	}

	count := len(messages)
	ms.Cache.SetEx(key, 30, strconv.Itoa(count))
	return count, nil
}

// GetConnections lists the unique users userID can message, derived from
// accepted exchanges.
func (ms *MessageService) GetConnections(ctx context.Context, userID string) ([]Connection, error) {
	exchanges, err := ms.Exchanges.ListAcceptedExchanges(ctx, userID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(exchanges, func(i, j int) bool {
		return exchanges[i].CreatedAt < exchanges[j].CreatedAt
	})

	seen := map[string]struct{}{}
	connections := []Connection{}
	for _, exchange := range exchanges {
		otherID := exchange.OtherParticipant(userID)
		if _, ok := seen[otherID]; ok {
			continue
		}
		seen[otherID] = struct{}{}

		other, err := ms.Users.GetUser(ctx, otherID)
		if err != nil {
			log.Printf("Skipping connection %s: %v", otherID, err)
			continue
		}
		connections = append(connections, Connection{
			UserID:     other.UserID,
			Name:       other.Name,
			Email:      other.Email,
			Avatar:     other.AvatarURL,
			Rating:     other.AverageRating,
			ExchangeID: exchange.ExchangeID,
		})
	}
	return connections, nil
}
