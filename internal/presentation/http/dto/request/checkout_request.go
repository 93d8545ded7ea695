package request

// CreateOrderRequest represents an order submission request. Total is the
// amount the client displayed to the user; the server recomputes pricing and
// rejects the order if the two disagree.
type CreateOrderRequest struct {
	CourseID   string  `json:"course_id" binding:"required,uuid"`
	CouponCode *string `json:"coupon_code" binding:"omitempty,min=3,max=50"`
	Total      float64 `json:"total" binding:"gte=0"`
}

// VerifyPaymentRequest represents a gateway payment verification request
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}
