package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skillswap_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification lookup comes up empty
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationService handles per-user in-app notifications
type NotificationService struct {
	Dynamo *DynamoService
}

// NotificationPage is a paginated notification listing
type NotificationPage struct {
	Items []models.Notification `json:"items"`
	Total int                   `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}

// CreateNotification stores a notification for its target user
func (ns *NotificationService) CreateNotification(ctx context.Context, notification models.Notification) error {
	notification.NotificationID = uuid.NewString()
	notification.CreatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	return ns.Dynamo.PutItem(ctx, models.NotificationsTable, notification)
}

// listAll fetches the user's notifications newest first
func (ns *NotificationService) listAll(ctx context.Context, userID string) ([]models.Notification, error) {
	keyCondition := "userId = :userId"
	expressionValues := map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: userID},
	}
	items, err := ns.Dynamo.QueryItemsWithOptions(ctx, models.NotificationsTable, keyCondition, expressionValues, nil, 200, true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	var notifications []models.Notification
	if err := attributevalue.UnmarshalListOfMaps(items, &notifications); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notifications: %w", err)
	}
	return notifications, nil
}

// ListNotifications pages through a user's notifications; unreadOnly keeps
// only the ones without a readAt stamp.
func (ns *NotificationService) ListNotifications(ctx context.Context, userID string, unreadOnly bool, page, limit int) (*NotificationPage, error) {
	notifications, err := ns.listAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	if unreadOnly {
		filtered := notifications[:0]
		for _, n := range notifications {
			if n.ReadAt == "" {
				filtered = append(filtered, n)
			}
		}
		notifications = filtered
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	total := len(notifications)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	items := notifications[start:end]
	if items == nil {
		items = []models.Notification{}
	}
	return &NotificationPage{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// UnreadCount counts the user's unread notifications
func (ns *NotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	notifications, err := ns.listAll(ctx, userID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range notifications {
		if n.ReadAt == "" {
			count++
		}
	}
	return count, nil
}

// MarkRead stamps a single notification owned by userID
func (ns *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) (*models.Notification, error) {
	notifications, err := ns.listAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, n := range notifications {
		if n.NotificationID != notificationID {
			continue
		}
		if n.ReadAt == "" {
			n.ReadAt = time.Now().UTC().Format(time.RFC3339)
			if err := ns.Dynamo.PutItem(ctx, models.NotificationsTable, n); err != nil {
				return nil, err
			}
		}
		found := n
		return &found, nil
	}
	return nil, ErrNotificationNotFound
}

// MarkAllRead stamps every unread notification in one batch write and
// returns how many were updated.
func (ns *NotificationService) MarkAllRead(ctx context.Context, userID string) (int, error) {
	notifications, err := ns.listAll(ctx, userID)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	var writeRequests []types.WriteRequest
	for _, n := range notifications {
		if n.ReadAt != "" {
			continue
		}
		n.ReadAt = now
		item, err := attributevalue.MarshalMap(n)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal notification: %w", err)
		}
		writeRequests = append(writeRequests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: item},
		})
	}
	if len(writeRequests) == 0 {
		return 0, nil
	}
	if err := ns.Dynamo.BatchWriteItems(ctx, models.NotificationsTable, writeRequests); err != nil {
		return 0, err
	}
	return len(writeRequests), nil
}
