package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/speakwise/speakwise-api/internal/domain/entity"
	domainRepo "github.com/speakwise/speakwise-api/internal/domain/repository"
	"github.com/speakwise/speakwise-api/pkg/pagination"
)

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *gorm.DB) domainRepo.CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	var course entity.Course
	err := r.db.WithContext(ctx).First(&course, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &course, err
}

func (r *courseRepository) GetBySlug(ctx context.Context, slug string) (*entity.Course, error) {
	var course entity.Course
	err := r.db.WithContext(ctx).First(&course, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &course, err
}

func (r *courseRepository) GetWithModules(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	var course entity.Course
	err := r.db.WithContext(ctx).
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&course, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &course, err
}

func (r *courseRepository) Update(ctx context.Context, course *entity.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

func (r *courseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Course{}, "id = ?", id).Error
}

func (r *courseRepository) List(ctx context.Context, params *domainRepo.CourseFilterParams) ([]entity.Course, int64, error) {
	var courses []entity.Course
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Course{})

	if params.Search != "" {
		query = query.Where("title ILIKE ? OR description ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.PublishedOnly {
		query = query.Where("published = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&courses).Error

	return courses, total, err
}

// ListWithCursor returns courses using cursor-based pagination
func (r *courseRepository) ListWithCursor(ctx context.Context, params *pagination.CursorParams, publishedOnly bool) ([]entity.Course, error) {
	var courses []entity.Course

	params.Validate()
	query := r.db.WithContext(ctx).Model(&entity.Course{})

	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	cursor, err := params.DecodeCursor()
	if err != nil {
		return nil, err
	}

	if cursor != nil {
		if params.Direction == pagination.CursorDirectionNext {
			query = query.Where("(created_at, id) > (?, ?)", cursor.CreatedAt, cursor.ID)
		} else {
			query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
		}
	}

	// Fetch limit+1 to detect hasMore
	err = query.Limit(params.Limit + 1).
		Order("created_at ASC, id ASC").
		Find(&courses).Error

	return courses, err
}

func (r *courseRepository) CreateModule(ctx context.Context, module *entity.CourseModule) error {
	return r.db.WithContext(ctx).Create(module).Error
}

func (r *courseRepository) GetModuleByID(ctx context.Context, id uuid.UUID) (*entity.CourseModule, error) {
	var module entity.CourseModule
	err := r.db.WithContext(ctx).First(&module, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &module, err
}

func (r *courseRepository) UpdateModule(ctx context.Context, module *entity.CourseModule) error {
	return r.db.WithContext(ctx).Save(module).Error
}

func (r *courseRepository) DeleteModule(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.CourseModule{}, "id = ?", id).Error
}

func (r *courseRepository) ListModules(ctx context.Context, courseID uuid.UUID) ([]entity.CourseModule, error) {
	var modules []entity.CourseModule
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("position ASC").
		Find(&modules).Error
	return modules, err
}
