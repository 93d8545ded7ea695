package request

// CreatePollRequest represents a poll creation request
type CreatePollRequest struct {
	Question string   `json:"question" binding:"required,min=5"`
	Options  []string `json:"options" binding:"required,min=2,dive,required,max=255"`
}

// UpdatePollStatusRequest moves a poll between draft, open and closed
type UpdatePollStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Draft Open Closed"`
}

// VoteRequest represents a poll vote request
type VoteRequest struct {
	OptionID string `json:"option_id" binding:"required,uuid"`
}
