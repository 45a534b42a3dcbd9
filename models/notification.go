package models

// Notification defines an in-app notification delivered to a single user
type Notification struct {
	UserID         string            `dynamodbav:"userId" json:"userId"`       // Partition Key
	CreatedAt      string            `dynamodbav:"createdAt" json:"createdAt"` // Sort Key
	NotificationID string            `dynamodbav:"notificationId" json:"_id"`
	Type           string            `dynamodbav:"type" json:"type"`
	Title          string            `dynamodbav:"title" json:"title"`
	Body           string            `dynamodbav:"body,omitempty" json:"body,omitempty"`
	Data           map[string]string `dynamodbav:"data,omitempty" json:"data,omitempty"`
	ReadAt         string            `dynamodbav:"readAt,omitempty" json:"readAt,omitempty"`
}

// NotificationsTable is the DynamoDB table name for notifications
const NotificationsTable = "Notifications"
