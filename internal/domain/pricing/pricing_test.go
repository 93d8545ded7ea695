package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speakwise/speakwise-api/internal/domain/enum"
)

func ptr(v float64) *float64 { return &v }

func TestComputeNoCoupon(t *testing.T) {
	snap := Compute(ptr(899), ptr(499), nil)

	assert.Equal(t, 499.0, snap.BasePrice)
	assert.Equal(t, 400.0, snap.CourseDiscount)
	assert.Equal(t, 0.0, snap.CouponDiscount)
	assert.Equal(t, 499.0, snap.PriceAfterDiscount)
	assert.Equal(t, 90.0, snap.Tax)         // round(499 * 0.18) = round(89.82)
	assert.Equal(t, 10.0, snap.HandlingFee) // round(499 * 0.02) = round(9.98)
	assert.Equal(t, 599.0, snap.Total)
}

func TestComputePercentageCoupon(t *testing.T) {
	coupon := &AppliedCoupon{DiscountType: enum.DiscountTypePercentage, DiscountValue: 10}
	snap := Compute(ptr(899), ptr(499), coupon)

	assert.InDelta(t, 49.9, snap.CouponDiscount, 1e-9)
	assert.InDelta(t, 449.1, snap.PriceAfterDiscount, 1e-9)
	assert.Equal(t, 81.0, snap.Tax)        // round(80.838)
	assert.Equal(t, 9.0, snap.HandlingFee) // round(8.982)
	assert.InDelta(t, 539.1, snap.Total, 1e-9)
}

func TestComputeFlatCouponExceedingBaseGoesNegative(t *testing.T) {
	// A flat discount larger than the base price is representable here; the
	// coupon-apply boundary is responsible for rejecting it.
	coupon := &AppliedCoupon{DiscountType: enum.DiscountTypeFixedAmount, DiscountValue: 600}
	snap := Compute(ptr(899), ptr(499), coupon)

	assert.Equal(t, 600.0, snap.CouponDiscount)
	assert.InDelta(t, -101.0, snap.PriceAfterDiscount, 1e-9)
	assert.Less(t, snap.Total, 0.0)
}

func TestComputePriceFallbacks(t *testing.T) {
	t.Run("sale price only", func(t *testing.T) {
		snap := Compute(nil, ptr(499), nil)
		assert.Equal(t, 499.0, snap.BasePrice)
		assert.Equal(t, 0.0, snap.CourseDiscount)
	})

	t.Run("list price only", func(t *testing.T) {
		snap := Compute(ptr(899), nil, nil)
		assert.Equal(t, 899.0, snap.BasePrice)
		assert.Equal(t, 0.0, snap.CourseDiscount)
	})

	t.Run("free course", func(t *testing.T) {
		snap := Compute(nil, nil, nil)
		assert.Equal(t, Snapshot{}, snap)
		assert.True(t, snap.IsFree())
	})
}

func TestComputeCourseDiscountNeverNegative(t *testing.T) {
	// Sale price above list price must not produce a negative markdown.
	snap := Compute(ptr(499), ptr(899), nil)
	assert.Equal(t, 899.0, snap.BasePrice)
	assert.Equal(t, 0.0, snap.CourseDiscount)
}

func TestComputePercentageScalesLinearly(t *testing.T) {
	base := ptr(1000.0)
	for _, pct := range []float64{0, 5, 10, 25, 50, 100} {
		coupon := &AppliedCoupon{DiscountType: enum.DiscountTypePercentage, DiscountValue: pct}
		snap := Compute(nil, base, coupon)
		assert.InDelta(t, 1000*pct/100, snap.CouponDiscount, 1e-9, "pct=%v", pct)
	}
}

func TestComputeFlatCouponIgnoresBasePrice(t *testing.T) {
	coupon := &AppliedCoupon{DiscountType: enum.DiscountTypeFixedAmount, DiscountValue: 150}
	for _, base := range []float64{200, 499, 5000} {
		snap := Compute(nil, ptr(base), coupon)
		assert.Equal(t, 150.0, snap.CouponDiscount, "base=%v", base)
	}
}

func TestComputePercentageCapApplied(t *testing.T) {
	coupon := &AppliedCoupon{
		DiscountType:  enum.DiscountTypePercentage,
		DiscountValue: 50,
		MaxDiscount:   ptr(100),
	}
	snap := Compute(nil, ptr(1000), coupon)
	assert.Equal(t, 100.0, snap.CouponDiscount)
	assert.Equal(t, 900.0, snap.PriceAfterDiscount)
}

func TestComputeIsDeterministic(t *testing.T) {
	coupon := &AppliedCoupon{DiscountType: enum.DiscountTypePercentage, DiscountValue: 12.5}
	first := Compute(ptr(1299), ptr(999), coupon)
	second := Compute(ptr(1299), ptr(999), coupon)
	require.Equal(t, first, second)
}

func TestComputeTotalIdentity(t *testing.T) {
	for _, base := range []float64{0, 1, 42, 499, 1234.5, 99999} {
		snap := Compute(nil, ptr(base), nil)
		expected := snap.PriceAfterDiscount +
			math.Round(snap.PriceAfterDiscount*TaxRate) +
			math.Round(snap.PriceAfterDiscount*HandlingFeeRate)
		assert.Equal(t, expected, snap.Total, "base=%v", base)
	}
}
