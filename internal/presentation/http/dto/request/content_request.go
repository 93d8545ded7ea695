package request

import "time"

// FAQRequest represents an FAQ create/update request
type FAQRequest struct {
	Question  string `json:"question" binding:"required,min=5"`
	Answer    string `json:"answer" binding:"required"`
	Category  string `json:"category" binding:"max=100"`
	Position  int    `json:"position" binding:"gte=0"`
	Published bool   `json:"published"`
}

// CreatePolicyRequest represents a policy page creation request
type CreatePolicyRequest struct {
	Title   string `json:"title" binding:"required,min=3,max=255"`
	Content string `json:"content" binding:"required"`
	Publish bool   `json:"publish"`
}

// UpdatePolicyRequest represents a policy page update request. Version must
// match the stored version or the update is rejected.
type UpdatePolicyRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=3,max=255"`
	Content *string `json:"content"`
	Version int     `json:"version" binding:"required,gte=1"`
	Publish *bool   `json:"publish"`
}

// QuestRequest represents a quest create/update request
type QuestRequest struct {
	Title        string     `json:"title" binding:"required,min=3,max=255"`
	Description  string     `json:"description"`
	RewardPoints int        `json:"reward_points" binding:"gte=0"`
	StartsAt     *time.Time `json:"starts_at"`
	EndsAt       *time.Time `json:"ends_at"`
	Active       bool       `json:"active"`
}
