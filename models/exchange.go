package models

// Exchange defines a negotiated skill-swap agreement between two users
type Exchange struct {
	ExchangeID       string `dynamodbav:"exchangeId" json:"_id"` // Partition Key
	RequesterID      string `dynamodbav:"requesterId" json:"requesterId"` // Indexed via requesterId-index GSI
	ProviderID       string `dynamodbav:"providerId" json:"providerId"`   // Indexed via providerId-index GSI
	OfferedSkillID   string `dynamodbav:"offeredSkillId,omitempty" json:"offeredSkillId,omitempty"`
	RequestedSkillID string `dynamodbav:"requestedSkillId,omitempty" json:"requestedSkillId,omitempty"`
	Status           string `dynamodbav:"status" json:"status"`
	Notes            string `dynamodbav:"notes,omitempty" json:"notes,omitempty"`
	ScheduledAt      string `dynamodbav:"scheduledAt,omitempty" json:"scheduledAt,omitempty"`
	CompletedAt      string `dynamodbav:"completedAt,omitempty" json:"completedAt,omitempty"`
	CreatedAt        string `dynamodbav:"createdAt" json:"createdAt"`
}

// IsParticipant reports whether userID is one of the two parties
func (e *Exchange) IsParticipant(userID string) bool {
	return e.RequesterID == userID || e.ProviderID == userID
}

// OtherParticipant returns the counterpart of userID in this exchange
func (e *Exchange) OtherParticipant(userID string) string {
	if e.RequesterID == userID {
		return e.ProviderID
	}
	return e.RequesterID
}

// ExchangesTable is the DynamoDB table name for exchanges
const ExchangesTable = "Exchanges"

// GSIs on the Exchanges table
const (
	RequesterIndex = "requesterId-index"
	ProviderIndex  = "providerId-index"
)
