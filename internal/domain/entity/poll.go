package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/speakwise/speakwise-api/internal/domain/enum"
)

// Poll is a single-question community poll shown in the account portal
type Poll struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Question  string          `gorm:"type:text;not null" json:"question"`
	Status    enum.PollStatus `gorm:"default:0;index" json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Options []PollOption `gorm:"foreignKey:PollID" json:"options,omitempty"`
}

// BeforeCreate generates a UUID before creating a new poll
func (p *Poll) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Poll model
func (Poll) TableName() string {
	return "polls"
}

// PollOption is one choice in a poll. VoteCount is incremented atomically
// when a vote is recorded.
type PollOption struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	PollID    uuid.UUID `gorm:"type:uuid;not null;index" json:"poll_id"`
	Label     string    `gorm:"size:255;not null" json:"label"`
	Position  int       `gorm:"default:0" json:"position"`
	VoteCount int       `gorm:"default:0" json:"vote_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Poll Poll `gorm:"foreignKey:PollID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new option
func (o *PollOption) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PollOption model
func (PollOption) TableName() string {
	return "poll_options"
}

// PollVote records that a user voted in a poll; one vote per user per poll
type PollVote struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	PollID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_poll_votes_poll_user" json:"poll_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_poll_votes_poll_user" json:"user_id"`
	OptionID  uuid.UUID `gorm:"type:uuid;not null;index" json:"option_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Poll   Poll       `gorm:"foreignKey:PollID" json:"-"`
	User   User       `gorm:"foreignKey:UserID" json:"-"`
	Option PollOption `gorm:"foreignKey:OptionID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new vote
func (v *PollVote) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PollVote model
func (PollVote) TableName() string {
	return "poll_votes"
}
