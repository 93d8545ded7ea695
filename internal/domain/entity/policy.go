package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Policy is a legal/informational page (terms, privacy, refunds) edited with
// a rich-text editor. Content holds the editor's serialized document state as
// JSON; the admin app loads and persists it opaquely. Version increments on
// every content save so stale editors can detect conflicts.
type Policy struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Slug        string         `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Content     string         `gorm:"type:text" json:"content"`
	Version     int            `gorm:"default:1" json:"version"`
	PublishedAt *time.Time     `gorm:"index" json:"published_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new policy
func (p *Policy) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Policy model
func (Policy) TableName() string {
	return "policies"
}

// IsPublished checks whether the policy is visible to end users
func (p *Policy) IsPublished() bool {
	return p.PublishedAt != nil && !p.PublishedAt.After(time.Now())
}
