package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/speakwise/speakwise-api/internal/domain/enum"
)

// Question is a quiz question managed from the admin dashboard
type Question struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Prompt      string            `gorm:"type:text;not null" json:"prompt"`
	Type        enum.QuestionType `gorm:"size:20;default:'single'" json:"type"`
	Difficulty  string            `gorm:"size:50;index" json:"difficulty"`
	Explanation string            `gorm:"type:text" json:"explanation"`
	Published   bool              `gorm:"default:false;index" json:"published"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	Options []QuestionOption `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}

// BeforeCreate generates a UUID before creating a new question
func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Question model
func (Question) TableName() string {
	return "questions"
}

// QuestionOption is one answer choice for a quiz question
type QuestionOption struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	Correct    bool      `gorm:"default:false" json:"correct"`
	Position   int       `gorm:"default:0" json:"position"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Question Question `gorm:"foreignKey:QuestionID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new option
func (o *QuestionOption) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the QuestionOption model
func (QuestionOption) TableName() string {
	return "question_options"
}
