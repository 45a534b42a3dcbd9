package models

import (
	"sort"
	"strings"
)

// Message defines a direct message inside a conversation between two users
type Message struct {
	ConversationID string `dynamodbav:"conversationId" json:"conversationId"` // Partition Key
	CreatedAt      string `dynamodbav:"createdAt" json:"createdAt"`           // Sort Key
	MessageID      string `dynamodbav:"messageId" json:"_id"`
	SenderID       string `dynamodbav:"senderId" json:"sender"`
	RecipientID    string `dynamodbav:"recipientId" json:"recipient"`
	Content        string `dynamodbav:"content" json:"content"`
	ExchangeID     string `dynamodbav:"exchangeId,omitempty" json:"exchangeId,omitempty"`
	ReadAt         string `dynamodbav:"readAt,omitempty" json:"readAt,omitempty"`
}

// ConversationID builds the canonical key for a user pair, order-independent
func ConversationID(userA, userB string) string {
	pair := []string{userA, userB}
	sort.Strings(pair)
	return strings.Join(pair, "#")
}

// MessagesTable is the DynamoDB table name for direct messages
const MessagesTable = "Messages"
