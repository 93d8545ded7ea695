package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/speakwise/speakwise-api/internal/domain/enum"
)

// Coupon is a discount code validated and consumed by the backend. The
// backend is the sole authority on validity and eligibility; clients only
// submit codes.
type Coupon struct {
	ID                uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Code              string            `gorm:"size:100;uniqueIndex;not null" json:"code"`
	DiscountType      enum.DiscountType `gorm:"size:20;not null" json:"discount_type"`
	DiscountValue     float64           `gorm:"not null" json:"discount_value"`
	MinOrderAmount    float64           `gorm:"default:0" json:"min_order_amount"`
	MaxDiscountAmount *float64          `json:"max_discount_amount,omitempty"`
	ValidFrom         *time.Time        `json:"valid_from,omitempty"`
	ValidUntil        *time.Time        `json:"valid_until,omitempty"`
	UsageLimit        int               `gorm:"default:0" json:"usage_limit"` // 0 = unlimited
	UsedCount         int               `gorm:"default:0" json:"used_count"`
	PerUserLimit      int               `gorm:"default:0" json:"per_user_limit"` // 0 = unlimited
	CourseID          *uuid.UUID        `gorm:"type:uuid;index" json:"course_id,omitempty"`
	Active            bool              `gorm:"default:true" json:"active"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
	DeletedAt         gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	Course      *Course            `gorm:"foreignKey:CourseID" json:"-"`
	Redemptions []CouponRedemption `gorm:"foreignKey:CouponID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new coupon
func (c *Coupon) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Coupon model
func (Coupon) TableName() string {
	return "coupons"
}

// IsExhausted checks whether the global usage limit has been reached
func (c *Coupon) IsExhausted() bool {
	return c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit
}

// InValidityWindow checks the valid-from/until window against now
func (c *Coupon) InValidityWindow(now time.Time) bool {
	if c.ValidFrom != nil && now.Before(*c.ValidFrom) {
		return false
	}
	if c.ValidUntil != nil && now.After(*c.ValidUntil) {
		return false
	}
	return true
}

// CouponRedemption records a coupon consumed by a verified payment
type CouponRedemption struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CouponID  uuid.UUID `gorm:"type:uuid;not null;index" json:"coupon_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Coupon Coupon `gorm:"foreignKey:CouponID" json:"-"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Order  Order  `gorm:"foreignKey:OrderID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new redemption
func (r *CouponRedemption) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CouponRedemption model
func (CouponRedemption) TableName() string {
	return "coupon_redemptions"
}
