package models

// User defines the structure for user accounts
type User struct {
	UserID        string  `dynamodbav:"userId" json:"id"` // Partition Key
	Name          string  `dynamodbav:"name" json:"name"`
	Email         string  `dynamodbav:"email" json:"email"` // Indexed via email-index GSI
	PasswordHash  string  `dynamodbav:"passwordHash" json:"-"`
	Bio           string  `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	Location      string  `dynamodbav:"location,omitempty" json:"location,omitempty"`
	AvatarURL     string  `dynamodbav:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	AverageRating float64 `dynamodbav:"averageRating" json:"averageRating"`
	ReviewsCount  int     `dynamodbav:"reviewsCount" json:"reviewsCount"`
	TokenVersion  int     `dynamodbav:"tokenVersion" json:"-"`
	CreatedAt     string  `dynamodbav:"createdAt" json:"createdAt"`
}

// PublicProfile strips the fields that must never leave the server
func (u *User) PublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":            u.UserID,
		"name":          u.Name,
		"email":         u.Email,
		"bio":           u.Bio,
		"location":      u.Location,
		"avatarUrl":     u.AvatarURL,
		"averageRating": u.AverageRating,
		"reviewsCount":  u.ReviewsCount,
		"createdAt":     u.CreatedAt,
	}
}

// UsersTable is the DynamoDB table name for user accounts
const UsersTable = "Users"

// EmailIndex is the GSI used for login lookups
const EmailIndex = "email-index"
