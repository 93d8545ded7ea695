package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/speakwise/speakwise-api/internal/domain/entity"
	"github.com/speakwise/speakwise-api/pkg/pagination"
)

// CouponFilterParams holds filtering options for listing coupons
type CouponFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	ActiveOnly bool
}

// CouponRepository defines the interface for coupon persistence
type CouponRepository interface {
	Create(ctx context.Context, coupon *entity.Coupon) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error)
	GetByCode(ctx context.Context, code string) (*entity.Coupon, error)
	Update(ctx context.Context, coupon *entity.Coupon) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *CouponFilterParams) ([]entity.Coupon, int64, error)
	CountRedemptionsByUser(ctx context.Context, couponID, userID uuid.UUID) (int64, error)
}
