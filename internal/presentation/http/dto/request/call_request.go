package request

import "time"

// RequestCallRequest represents a callback request from a visitor or user
type RequestCallRequest struct {
	Name          string `json:"name" binding:"required,min=2,max=255"`
	Phone         string `json:"phone" binding:"required,e164"`
	PreferredSlot string `json:"preferred_slot" binding:"max=100"`
	Topic         string `json:"topic" binding:"max=255"`
}

// UpdateCallRequest represents an admin update to a call request
type UpdateCallRequest struct {
	Status      *string    `json:"status" binding:"omitempty,oneof=Requested Scheduled Completed Cancelled"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	Notes       *string    `json:"notes" binding:"omitempty,max=2000"`
}
