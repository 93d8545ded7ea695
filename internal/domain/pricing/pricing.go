// Package pricing computes the order pricing snapshot for a course checkout.
// It is the authoritative counterpart of the advisory computation the client
// apps render: the checkout flow recomputes the snapshot here and rejects
// order requests whose totals drifted from current course/coupon state.
package pricing

import (
	"math"

	"github.com/speakwise/speakwise-api/internal/domain/enum"
)

const (
	// TaxRate is the GST rate applied to the discounted price.
	TaxRate = 0.18
	// HandlingFeeRate is the processing fee rate applied to the discounted price.
	HandlingFeeRate = 0.02
)

// AppliedCoupon carries the discount shape of a validated coupon.
type AppliedCoupon struct {
	DiscountType  enum.DiscountType
	DiscountValue float64
	// MaxDiscount caps a percentage discount when set. Flat discounts are
	// never capped here; the coupon-apply boundary rejects a flat discount
	// that exceeds the order amount.
	MaxDiscount *float64
}

// Snapshot is the derived pricing of an order, recomputed from current
// course and coupon state. All amounts are in whole currency units except
// where the arithmetic yields fractions (coupon percentages).
type Snapshot struct {
	BasePrice          float64 `json:"base_price"`
	CourseDiscount     float64 `json:"course_discount"`
	CouponDiscount     float64 `json:"coupon_discount"`
	PriceAfterDiscount float64 `json:"price_after_discount"`
	Tax                float64 `json:"tax"`
	HandlingFee        float64 `json:"handling_fee"`
	Total              float64 `json:"total"`
}

// Compute derives the pricing snapshot from a course's list price (MRP) and
// sale price, plus an optionally applied coupon.
//
// The base price falls back from sale price to list price; a course with
// neither is free and yields an all-zero snapshot. The course discount is the
// list-to-sale markdown, floored at zero. Coupon discounts are computed
// against the base price (both discounts stack against the same base, they do
// not compound). The price after discount is deliberately not clamped: a flat
// coupon larger than the base price produces a negative value here, and the
// caller decides whether that is acceptable.
func Compute(listPrice, salePrice *float64, coupon *AppliedCoupon) Snapshot {
	basePrice := 0.0
	switch {
	case salePrice != nil:
		basePrice = *salePrice
	case listPrice != nil:
		basePrice = *listPrice
	}

	courseDiscount := 0.0
	if listPrice != nil {
		courseDiscount = math.Max(0, *listPrice-basePrice)
	}

	couponDiscount := 0.0
	if coupon != nil {
		switch coupon.DiscountType {
		case enum.DiscountTypePercentage:
			couponDiscount = basePrice * coupon.DiscountValue / 100
			if coupon.MaxDiscount != nil && couponDiscount > *coupon.MaxDiscount {
				couponDiscount = *coupon.MaxDiscount
			}
		case enum.DiscountTypeFixedAmount:
			couponDiscount = coupon.DiscountValue
		}
	}

	priceAfterDiscount := basePrice - couponDiscount
	tax := math.Round(priceAfterDiscount * TaxRate)
	handlingFee := math.Round(priceAfterDiscount * HandlingFeeRate)

	return Snapshot{
		BasePrice:          basePrice,
		CourseDiscount:     courseDiscount,
		CouponDiscount:     couponDiscount,
		PriceAfterDiscount: priceAfterDiscount,
		Tax:                tax,
		HandlingFee:        handlingFee,
		Total:              priceAfterDiscount + tax + handlingFee,
	}
}

// IsFree reports whether the snapshot describes a zero-cost order
func (s Snapshot) IsFree() bool {
	return s.Total == 0
}
