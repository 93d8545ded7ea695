package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/speakwise/speakwise-api/internal/domain/entity"
	domainRepo "github.com/speakwise/speakwise-api/internal/domain/repository"
)

type callRepository struct {
	db *gorm.DB
}

// NewCallRepository creates a new call request repository
func NewCallRepository(db *gorm.DB) domainRepo.CallRepository {
	return &callRepository{db: db}
}

func (r *callRepository) Create(ctx context.Context, call *entity.CallRequest) error {
	return r.db.WithContext(ctx).Create(call).Error
}

func (r *callRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CallRequest, error) {
	var call entity.CallRequest
	err := r.db.WithContext(ctx).First(&call, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &call, err
}

func (r *callRepository) Update(ctx context.Context, call *entity.CallRequest) error {
	return r.db.WithContext(ctx).Save(call).Error
}

func (r *callRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.CallRequest{}, "id = ?", id).Error
}

func (r *callRepository) List(ctx context.Context, params *domainRepo.CallFilterParams) ([]entity.CallRequest, int64, error) {
	var calls []entity.CallRequest
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.CallRequest{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.Search != "" {
		query = query.Where("name ILIKE ? OR phone ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&calls).Error

	return calls, total, err
}

func (r *callRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.CallRequest, error) {
	var calls []entity.CallRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&calls).Error
	return calls, err
}
