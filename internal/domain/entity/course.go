package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Course represents a purchasable English course. MRP is the pre-discount
// list price shown struck through; Price is the current sale price. Either
// may be absent: a course with neither is free.
type Course struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Title         string         `gorm:"size:255;not null" json:"title"`
	Slug          string         `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description   string         `gorm:"type:text" json:"description"`
	Level         string         `gorm:"size:50" json:"level"`
	Language      string         `gorm:"size:50;default:'en'" json:"language"`
	ThumbnailKey  *string        `gorm:"size:255" json:"thumbnail_key,omitempty"`
	MRP           *float64       `gorm:"column:mrp" json:"mrp,omitempty"`
	Price         *float64       `json:"price,omitempty"`
	DurationWeeks int            `gorm:"default:0" json:"duration_weeks"`
	Published     bool           `gorm:"default:false;index" json:"published"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Modules []CourseModule `gorm:"foreignKey:CourseID" json:"modules,omitempty"`
	Reviews []Review       `gorm:"foreignKey:CourseID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new course
func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Course model
func (Course) TableName() string {
	return "courses"
}

// CourseModule represents a unit of course content
type CourseModule struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CourseID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"course_id"`
	Title           string         `gorm:"size:255;not null" json:"title"`
	Position        int            `gorm:"not null;default:0" json:"position"`
	VideoKey        *string        `gorm:"size:255" json:"video_key,omitempty"`
	DurationMinutes int            `gorm:"default:0" json:"duration_minutes"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Course Course `gorm:"foreignKey:CourseID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new module
func (m *CourseModule) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CourseModule model
func (CourseModule) TableName() string {
	return "course_modules"
}
