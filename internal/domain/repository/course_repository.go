package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/speakwise/speakwise-api/internal/domain/entity"
	"github.com/speakwise/speakwise-api/pkg/pagination"
)

// CourseFilterParams holds filtering options for listing courses
type CourseFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	PublishedOnly bool
}

// CourseRepository defines the interface for course persistence
type CourseRepository interface {
	Create(ctx context.Context, course *entity.Course) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Course, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Course, error)
	GetWithModules(ctx context.Context, id uuid.UUID) (*entity.Course, error)
	Update(ctx context.Context, course *entity.Course) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *CourseFilterParams) ([]entity.Course, int64, error)
	ListWithCursor(ctx context.Context, params *pagination.CursorParams, publishedOnly bool) ([]entity.Course, error)

	CreateModule(ctx context.Context, module *entity.CourseModule) error
	GetModuleByID(ctx context.Context, id uuid.UUID) (*entity.CourseModule, error)
	UpdateModule(ctx context.Context, module *entity.CourseModule) error
	DeleteModule(ctx context.Context, id uuid.UUID) error
	ListModules(ctx context.Context, courseID uuid.UUID) ([]entity.CourseModule, error)
}
