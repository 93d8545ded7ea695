package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/speakwise/speakwise-api/internal/domain/entity"
	"github.com/speakwise/speakwise-api/internal/domain/enum"
)

// PollRepository defines the interface for poll persistence
type PollRepository interface {
	Create(ctx context.Context, poll *entity.Poll) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Poll, error)
	GetWithOptions(ctx context.Context, id uuid.UUID) (*entity.Poll, error)
	Update(ctx context.Context, poll *entity.Poll) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, status *enum.PollStatus) ([]entity.Poll, error)

	CreateOption(ctx context.Context, option *entity.PollOption) error
	DeleteOption(ctx context.Context, id uuid.UUID) error

	CreateVote(ctx context.Context, vote *entity.PollVote) error
	GetVote(ctx context.Context, pollID, userID uuid.UUID) (*entity.PollVote, error)
	IncrementVoteCount(ctx context.Context, optionID uuid.UUID) error
}
