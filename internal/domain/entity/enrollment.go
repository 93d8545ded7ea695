package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enrollment grants a user access to a course, created on verified payment
// (or immediately for free courses).
type Enrollment struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_user_course" json:"user_id"`
	CourseID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_user_course" json:"course_id"`
	OrderID   *uuid.UUID     `gorm:"type:uuid;index" json:"order_id,omitempty"`
	ExpiresAt *time.Time     `json:"expires_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Course Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Order  *Order `gorm:"foreignKey:OrderID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new enrollment
func (e *Enrollment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Enrollment model
func (Enrollment) TableName() string {
	return "enrollments"
}

// IsActive checks whether the enrollment has not expired
func (e *Enrollment) IsActive() bool {
	return e.ExpiresAt == nil || time.Now().Before(*e.ExpiresAt)
}
