package models

// RequestedSkill defines a skill a user wants to learn or receive
type RequestedSkill struct {
	SkillID      string   `dynamodbav:"skillId" json:"_id"` // Partition Key
	UserID       string   `dynamodbav:"userId" json:"userId"` // Indexed via userId-index GSI
	Title        string   `dynamodbav:"title" json:"title"`
	Description  string   `dynamodbav:"description,omitempty" json:"description,omitempty"`
	Categories   []string `dynamodbav:"categories,omitempty" json:"categories,omitempty"`
	Tags         []string `dynamodbav:"tags,omitempty" json:"tags,omitempty"`
	Availability string   `dynamodbav:"availability,omitempty" json:"availability,omitempty"`
	Location     string   `dynamodbav:"location,omitempty" json:"location,omitempty"`
	Remote       bool     `dynamodbav:"remote" json:"remote"`
	CreatedAt    string   `dynamodbav:"createdAt" json:"createdAt"`
}

// RequestedSkillsTable is the DynamoDB table name for requested skills
const RequestedSkillsTable = "RequestedSkills"
