package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/speakwise/speakwise-api/internal/domain/enum"
)

// CallRequest is a counselling call requested from the marketing site or
// portal; admins schedule and resolve them from the dashboard.
type CallRequest struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        *uuid.UUID      `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	Phone         string          `gorm:"size:50;not null" json:"phone"`
	PreferredSlot string          `gorm:"size:100" json:"preferred_slot"`
	Topic         string          `gorm:"size:255" json:"topic"`
	Status        enum.CallStatus `gorm:"default:0;index" json:"status"`
	ScheduledAt   *time.Time      `json:"scheduled_at,omitempty"`
	Notes         string          `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new call request
func (c *CallRequest) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CallRequest model
func (CallRequest) TableName() string {
	return "call_requests"
}
