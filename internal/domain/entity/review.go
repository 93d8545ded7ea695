package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a course rating left by an enrolled user; it is hidden until an
// admin approves it.
type Review struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_course" json:"user_id"`
	CourseID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_course" json:"course_id"`
	Rating    int            `gorm:"not null" json:"rating"`
	Body      string         `gorm:"type:text" json:"body"`
	Approved  bool           `gorm:"default:false;index" json:"approved"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Course Course `gorm:"foreignKey:CourseID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new review
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Review model
func (Review) TableName() string {
	return "reviews"
}
