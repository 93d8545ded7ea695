package request

import "time"

// ApplyCouponRequest represents a coupon application request during checkout.
// OrderAmount is advisory; pricing is recomputed from current course state.
type ApplyCouponRequest struct {
	Code        string  `json:"code" binding:"required,min=3,max=50"`
	CourseID    string  `json:"course_id" binding:"required,uuid"`
	OrderAmount float64 `json:"order_amount" binding:"omitempty,gte=0"`
}

// CreateCouponRequest represents a coupon creation request
type CreateCouponRequest struct {
	Code              string     `json:"code" binding:"required,min=3,max=50"`
	DiscountType      string     `json:"discount_type" binding:"required,oneof=PERCENTAGE FIXED_AMOUNT"`
	DiscountValue     float64    `json:"discount_value" binding:"required,gt=0"`
	MinOrderAmount    float64    `json:"min_order_amount" binding:"omitempty,gte=0"`
	MaxDiscountAmount *float64   `json:"max_discount_amount" binding:"omitempty,gt=0"`
	ValidFrom         *time.Time `json:"valid_from"`
	ValidUntil        *time.Time `json:"valid_until"`
	UsageLimit        int        `json:"usage_limit" binding:"omitempty,gte=0"`
	PerUserLimit      int        `json:"per_user_limit" binding:"omitempty,gte=0"`
	CourseID          *string    `json:"course_id" binding:"omitempty,uuid"`
	Active            bool       `json:"active"`
}

// UpdateCouponRequest represents a coupon update request
type UpdateCouponRequest struct {
	DiscountValue     *float64   `json:"discount_value" binding:"omitempty,gt=0"`
	MinOrderAmount    *float64   `json:"min_order_amount" binding:"omitempty,gte=0"`
	MaxDiscountAmount *float64   `json:"max_discount_amount" binding:"omitempty,gt=0"`
	ValidFrom         *time.Time `json:"valid_from"`
	ValidUntil        *time.Time `json:"valid_until"`
	UsageLimit        *int       `json:"usage_limit" binding:"omitempty,gte=0"`
	PerUserLimit      *int       `json:"per_user_limit" binding:"omitempty,gte=0"`
	Active            *bool      `json:"active"`
}
