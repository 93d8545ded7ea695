package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FAQ is a question/answer entry shown on the marketing site and course pages
type FAQ struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Question  string         `gorm:"type:text;not null" json:"question"`
	Answer    string         `gorm:"type:text;not null" json:"answer"`
	Category  string         `gorm:"size:100;index" json:"category"`
	Position  int            `gorm:"default:0" json:"position"`
	Published bool           `gorm:"default:false;index" json:"published"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new FAQ
func (f *FAQ) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FAQ model
func (FAQ) TableName() string {
	return "faqs"
}
