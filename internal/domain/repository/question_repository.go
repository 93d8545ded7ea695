package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/speakwise/speakwise-api/internal/domain/entity"
	"github.com/speakwise/speakwise-api/pkg/pagination"
)

// QuestionFilterParams holds filtering options for listing quiz questions
type QuestionFilterParams struct {
	Pagination    *pagination.PaginationParams
	Difficulty    string
	PublishedOnly bool
}

// QuestionRepository defines the interface for quiz question persistence
type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Question, error)
	GetWithOptions(ctx context.Context, id uuid.UUID) (*entity.Question, error)
	Update(ctx context.Context, question *entity.Question) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *QuestionFilterParams) ([]entity.Question, int64, error)

	CreateOption(ctx context.Context, option *entity.QuestionOption) error
	DeleteOption(ctx context.Context, id uuid.UUID) error
	ReplaceOptions(ctx context.Context, questionID uuid.UUID, options []entity.QuestionOption) error
}
