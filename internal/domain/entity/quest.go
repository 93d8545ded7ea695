package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Quest is a time-boxed learning challenge that awards points on completion
type Quest struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Title        string         `gorm:"size:255;not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	RewardPoints int            `gorm:"default:0" json:"reward_points"`
	StartsAt     *time.Time     `json:"starts_at,omitempty"`
	EndsAt       *time.Time     `json:"ends_at,omitempty"`
	Active       bool           `gorm:"default:false;index" json:"active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new quest
func (q *Quest) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Quest model
func (Quest) TableName() string {
	return "quests"
}

// IsRunning checks whether the quest is active and inside its time window
func (q *Quest) IsRunning(now time.Time) bool {
	if !q.Active {
		return false
	}
	if q.StartsAt != nil && now.Before(*q.StartsAt) {
		return false
	}
	if q.EndsAt != nil && now.After(*q.EndsAt) {
		return false
	}
	return true
}
