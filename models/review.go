package models

// Review defines a rating left by one user for another
type Review struct {
	ReviewID   string `dynamodbav:"reviewId" json:"_id"` // Partition Key
	ReviewerID string `dynamodbav:"reviewerId" json:"reviewer"`
	RevieweeID string `dynamodbav:"revieweeId" json:"reviewee"` // Indexed via revieweeId-index GSI
	Rating     int    `dynamodbav:"rating" json:"rating"`
	Comment    string `dynamodbav:"comment,omitempty" json:"comment,omitempty"`
	Context    string `dynamodbav:"context,omitempty" json:"context,omitempty"`
	SkillID    string `dynamodbav:"skillId,omitempty" json:"skillId,omitempty"`
	CreatedAt  string `dynamodbav:"createdAt" json:"createdAt"`
}

// ReviewsTable is the DynamoDB table name for reviews
const ReviewsTable = "Reviews"

// RevieweeIndex is the GSI used to list a user's received reviews
const RevieweeIndex = "revieweeId-index"
