package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/speakwise/speakwise-api/internal/domain/entity"
	"github.com/speakwise/speakwise-api/pkg/pagination"
)

// ReviewFilterParams holds filtering options for listing reviews
type ReviewFilterParams struct {
	Pagination   *pagination.PaginationParams
	CourseID     *uuid.UUID
	ApprovedOnly bool
}

// ReviewRepository defines the interface for review persistence
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	GetByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ReviewFilterParams) ([]entity.Review, int64, error)
	AverageRating(ctx context.Context, courseID uuid.UUID) (float64, int64, error)
}
