package models

// OfferedSkill defines a skill a user is willing to teach or provide
type OfferedSkill struct {
	SkillID      string   `dynamodbav:"skillId" json:"_id"` // Partition Key
	UserID       string   `dynamodbav:"userId" json:"userId"` // Indexed via userId-index GSI
	Title        string   `dynamodbav:"title" json:"title"`
	Description  string   `dynamodbav:"description,omitempty" json:"description,omitempty"`
	Categories   []string `dynamodbav:"categories,omitempty" json:"categories,omitempty"`
	Tags         []string `dynamodbav:"tags,omitempty" json:"tags,omitempty"`
	Availability string   `dynamodbav:"availability,omitempty" json:"availability,omitempty"`
	RateType     string   `dynamodbav:"rateType,omitempty" json:"rateType,omitempty"` // hourly | swap | free
	RateValue    float64  `dynamodbav:"rateValue,omitempty" json:"rateValue,omitempty"`
	Location     string   `dynamodbav:"location,omitempty" json:"location,omitempty"`
	Remote       bool     `dynamodbav:"remote" json:"remote"`
	CreatedAt    string   `dynamodbav:"createdAt" json:"createdAt"`
}

// OfferedSkillsTable is the DynamoDB table name for offered skills
const OfferedSkillsTable = "OfferedSkills"
