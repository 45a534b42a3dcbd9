package models

// MatchQuery is the explicit-query input to the match engine
type MatchQuery struct {
	SkillTitle string `json:"skillTitle,omitempty"`
	Category   string `json:"category,omitempty"`
}

// ProviderSummary is the slice of a user profile attached to match results
type ProviderSummary struct {
	UserID        string  `json:"_id"`
	Name          string  `json:"name"`
	Email         string  `json:"email,omitempty"`
	AvatarURL     string  `json:"avatarUrl,omitempty"`
	Location      string  `json:"location,omitempty"`
	AverageRating float64 `json:"averageRating"`
	ReviewsCount  int     `json:"reviewsCount"`
}

// MatchSkillRef is the trimmed offered-skill payload for query matches
type MatchSkillRef struct {
	SkillID      string   `json:"_id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Categories   []string `json:"categories,omitempty"`
	Availability string   `json:"availability,omitempty"`
	Location     string   `json:"location,omitempty"`
	Remote       bool     `json:"remote"`
}

// RequestedSkillRef identifies which of the user's wants produced a match
type RequestedSkillRef struct {
	SkillID    string   `json:"_id"`
	Title      string   `json:"title"`
	Categories []string `json:"categories,omitempty"`
}

// OfferedSkillRef is the trimmed candidate payload for per-user matches
type OfferedSkillRef struct {
	SkillID     string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
}

// MatchResult is one ranked entry produced by the match engine. Query
// matches carry Skill; per-user matches carry RequestedSkill/OfferedSkill.
type MatchResult struct {
	Skill             *MatchSkillRef     `json:"skill,omitempty"`
	RequestedSkill    *RequestedSkillRef `json:"requestedSkill,omitempty"`
	OfferedSkill      *OfferedSkillRef   `json:"offeredSkill,omitempty"`
	Provider          ProviderSummary    `json:"provider"`
	IsMutualMatch     bool               `json:"isMutualMatch"`
	MutualSkills      []string           `json:"mutualSkills"`
	HasActiveExchange bool               `json:"hasActiveExchange"`
	ExchangeStatus    string             `json:"exchangeStatus,omitempty"`
}

// QueryMatchesResponse is the envelope for explicit-query matching
type QueryMatchesResponse struct {
	Query         MatchQuery    `json:"query"`
	TotalMatches  int           `json:"totalMatches"`
	MutualMatches int           `json:"mutualMatches"`
	Matches       []MatchResult `json:"matches"`
}

// MyMatchesResponse is the envelope for use-my-own-wants matching
type MyMatchesResponse struct {
	Message       string        `json:"message,omitempty"`
	TotalMatches  int           `json:"totalMatches"`
	MutualMatches int           `json:"mutualMatches"`
	Matches       []MatchResult `json:"matches"`
}
