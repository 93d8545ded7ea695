package enum

// DiscountType represents how a coupon discounts an order. The values match
// the wire format used by the client apps.
type DiscountType string

const (
	DiscountTypePercentage  DiscountType = "PERCENTAGE"
	DiscountTypeFixedAmount DiscountType = "FIXED_AMOUNT"
)

// Valid reports whether the discount type is a known value
func (d DiscountType) Valid() bool {
	return d == DiscountTypePercentage || d == DiscountTypeFixedAmount
}
