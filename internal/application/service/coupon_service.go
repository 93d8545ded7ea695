package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/speakwise/speakwise-api/internal/domain/entity"
	"github.com/speakwise/speakwise-api/internal/domain/enum"
	"github.com/speakwise/speakwise-api/internal/domain/pricing"
	"github.com/speakwise/speakwise-api/internal/domain/repository"
	"github.com/speakwise/speakwise-api/pkg/apperror"
	"github.com/speakwise/speakwise-api/pkg/pagination"
)

// CouponService handles coupon validation and management. The backend is the
// sole authority on whether a code applies; clients only submit codes and
// render the returned snapshot.
type CouponService struct {
	couponRepo repository.CouponRepository
	courseRepo repository.CourseRepository
}

// NewCouponService creates a new coupon service
func NewCouponService(
	couponRepo repository.CouponRepository,
	courseRepo repository.CourseRepository,
) *CouponService {
	return &CouponService{
		couponRepo: couponRepo,
		courseRepo: courseRepo,
	}
}

// ApplyCouponInput represents the coupon application input
type ApplyCouponInput struct {
	UserID   uuid.UUID
	Code     string
	CourseID uuid.UUID
}

// ApplyCouponOutput is the validated coupon plus the resulting pricing
type ApplyCouponOutput struct {
	Coupon   *entity.Coupon
	Pricing  pricing.Snapshot
	Discount float64
}

// ApplyCoupon validates a code against a course for a user and returns the
// recomputed pricing snapshot
func (s *CouponService) ApplyCoupon(ctx context.Context, input *ApplyCouponInput) (*ApplyCouponOutput, error) {
	course, err := s.courseRepo.GetByID(ctx, input.CourseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperror.NewNotFoundError("Course")
	}

	coupon, err := s.validate(ctx, input.UserID, input.Code, course)
	if err != nil {
		return nil, err
	}

	snapshot := pricing.Compute(course.MRP, course.Price, &pricing.AppliedCoupon{
		DiscountType:  coupon.DiscountType,
		DiscountValue: coupon.DiscountValue,
		MaxDiscount:   coupon.MaxDiscountAmount,
	})

	// A flat discount larger than the payable amount never reaches the
	// gateway; reject it here instead of charging a negative total
	if snapshot.PriceAfterDiscount < 0 {
		return nil, apperror.NewBadRequestError("Coupon discount exceeds the order total")
	}

	return &ApplyCouponOutput{
		Coupon:   coupon,
		Pricing:  snapshot,
		Discount: snapshot.CouponDiscount,
	}, nil
}

// validate runs every eligibility rule and returns the coupon when all pass
func (s *CouponService) validate(ctx context.Context, userID uuid.UUID, code string, course *entity.Course) (*entity.Coupon, error) {
	coupon, err := s.couponRepo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, err
	}
	if coupon == nil || !coupon.Active {
		return nil, apperror.NewBadRequestError("Invalid coupon code")
	}

	now := time.Now()
	if !coupon.InValidityWindow(now) {
		return nil, apperror.NewBadRequestError("Coupon is not valid at this time")
	}
	if coupon.IsExhausted() {
		return nil, apperror.NewBadRequestError("Coupon usage limit reached")
	}
	if coupon.CourseID != nil && *coupon.CourseID != course.ID {
		return nil, apperror.NewBadRequestError("Coupon does not apply to this course")
	}

	if coupon.PerUserLimit > 0 {
		used, err := s.couponRepo.CountRedemptionsByUser(ctx, coupon.ID, userID)
		if err != nil {
			return nil, err
		}
		if used >= int64(coupon.PerUserLimit) {
			return nil, apperror.NewBadRequestError("You have already used this coupon")
		}
	}

	base := pricing.Compute(course.MRP, course.Price, nil)
	if coupon.MinOrderAmount > 0 && base.BasePrice < coupon.MinOrderAmount {
		return nil, apperror.NewBadRequestError("Order amount is below the coupon minimum")
	}

	return coupon, nil
}

// ValidateForCheckout re-runs validation during order submission. It exists
// separately so checkout can distinguish a stale coupon from a bad request.
func (s *CouponService) ValidateForCheckout(ctx context.Context, userID uuid.UUID, code string, course *entity.Course) (*entity.Coupon, error) {
	return s.validate(ctx, userID, code, course)
}

// ListCoupons returns a page of coupons for the admin dashboard
func (s *CouponService) ListCoupons(ctx context.Context, params *repository.CouponFilterParams) (*pagination.PaginatedResult[entity.Coupon], error) {
	coupons, total, err := s.couponRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return &pagination.PaginatedResult[entity.Coupon]{
		Items:      coupons,
		Pagination: pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total),
	}, nil
}

// GetCoupon returns a coupon by ID
func (s *CouponService) GetCoupon(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, apperror.NewNotFoundError("Coupon")
	}
	return coupon, nil
}

// CreateCouponInput represents the coupon creation input
type CreateCouponInput struct {
	Code              string
	DiscountType      enum.DiscountType
	DiscountValue     float64
	MinOrderAmount    float64
	MaxDiscountAmount *float64
	ValidFrom         *time.Time
	ValidUntil        *time.Time
	UsageLimit        int
	PerUserLimit      int
	CourseID          *uuid.UUID
	Active            bool
}

// CreateCoupon creates a new coupon
func (s *CouponService) CreateCoupon(ctx context.Context, input *CreateCouponInput) (*entity.Coupon, error) {
	if !input.DiscountType.Valid() {
		return nil, apperror.NewBadRequestError("Invalid discount type")
	}
	if input.DiscountValue <= 0 {
		return nil, apperror.NewBadRequestError("Discount value must be positive")
	}
	if input.DiscountType == enum.DiscountTypePercentage && input.DiscountValue > 100 {
		return nil, apperror.NewBadRequestError("Percentage discount cannot exceed 100")
	}

	code := strings.ToUpper(strings.TrimSpace(input.Code))
	existing, err := s.couponRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Coupon code already exists")
	}

	if input.CourseID != nil {
		course, err := s.courseRepo.GetByID(ctx, *input.CourseID)
		if err != nil {
			return nil, err
		}
		if course == nil {
			return nil, apperror.NewNotFoundError("Course")
		}
	}

	coupon := &entity.Coupon{
		Code:              code,
		DiscountType:      input.DiscountType,
		DiscountValue:     input.DiscountValue,
		MinOrderAmount:    input.MinOrderAmount,
		MaxDiscountAmount: input.MaxDiscountAmount,
		ValidFrom:         input.ValidFrom,
		ValidUntil:        input.ValidUntil,
		UsageLimit:        input.UsageLimit,
		PerUserLimit:      input.PerUserLimit,
		CourseID:          input.CourseID,
		Active:            input.Active,
	}

	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		return nil, err
	}

	return coupon, nil
}

// UpdateCouponInput represents the coupon update input
type UpdateCouponInput struct {
	DiscountValue     *float64
	MinOrderAmount    *float64
	MaxDiscountAmount *float64
	ValidFrom         *time.Time
	ValidUntil        *time.Time
	UsageLimit        *int
	PerUserLimit      *int
	Active            *bool
}

// UpdateCoupon updates an existing coupon. The code and discount type are
// immutable once created; issue a new code instead.
func (s *CouponService) UpdateCoupon(ctx context.Context, id uuid.UUID, input *UpdateCouponInput) (*entity.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, apperror.NewNotFoundError("Coupon")
	}

	if input.DiscountValue != nil {
		if *input.DiscountValue <= 0 {
			return nil, apperror.NewBadRequestError("Discount value must be positive")
		}
		if coupon.DiscountType == enum.DiscountTypePercentage && *input.DiscountValue > 100 {
			return nil, apperror.NewBadRequestError("Percentage discount cannot exceed 100")
		}
		coupon.DiscountValue = *input.DiscountValue
	}
	if input.MinOrderAmount != nil {
		coupon.MinOrderAmount = *input.MinOrderAmount
	}
	if input.MaxDiscountAmount != nil {
		coupon.MaxDiscountAmount = input.MaxDiscountAmount
	}
	if input.ValidFrom != nil {
		coupon.ValidFrom = input.ValidFrom
	}
	if input.ValidUntil != nil {
		coupon.ValidUntil = input.ValidUntil
	}
	if input.UsageLimit != nil {
		coupon.UsageLimit = *input.UsageLimit
	}
	if input.PerUserLimit != nil {
		coupon.PerUserLimit = *input.PerUserLimit
	}
	if input.Active != nil {
		coupon.Active = *input.Active
	}

	if err := s.couponRepo.Update(ctx, coupon); err != nil {
		return nil, err
	}

	return coupon, nil
}

// DeleteCoupon removes a coupon
func (s *CouponService) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	coupon, err := s.couponRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if coupon == nil {
		return apperror.NewNotFoundError("Coupon")
	}
	return s.couponRepo.Delete(ctx, id)
}
