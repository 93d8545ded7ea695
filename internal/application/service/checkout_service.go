package service

import (
	"context"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/speakwise/speakwise-api/internal/domain/entity"
	"github.com/speakwise/speakwise-api/internal/domain/enum"
	"github.com/speakwise/speakwise-api/internal/domain/pricing"
	"github.com/speakwise/speakwise-api/internal/domain/repository"
	"github.com/speakwise/speakwise-api/pkg/apperror"
	"github.com/speakwise/speakwise-api/pkg/email"
	"github.com/speakwise/speakwise-api/pkg/pagination"
	"github.com/speakwise/speakwise-api/pkg/utils"
)

// amountTolerance absorbs float representation noise when comparing the
// client's advisory total against the recomputed one.
const amountTolerance = 0.01

// PaymentGateway abstracts the payment provider so checkout can be tested
// without network calls
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]interface{}) (string, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

// CheckoutService handles order submission and payment verification
type CheckoutService struct {
	orderRepo      repository.OrderRepository
	paymentRepo    repository.PaymentRepository
	enrollmentRepo repository.EnrollmentRepository
	courseRepo     repository.CourseRepository
	userRepo       repository.UserRepository
	couponService  *CouponService
	gateway        PaymentGateway
	emailService   *email.EmailService
	currency       string
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	enrollmentRepo repository.EnrollmentRepository,
	courseRepo repository.CourseRepository,
	userRepo repository.UserRepository,
	couponService *CouponService,
	gateway PaymentGateway,
	emailService *email.EmailService,
	currency string,
) *CheckoutService {
	if currency == "" {
		currency = "INR"
	}
	return &CheckoutService{
		orderRepo:      orderRepo,
		paymentRepo:    paymentRepo,
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		userRepo:       userRepo,
		couponService:  couponService,
		gateway:        gateway,
		emailService:   emailService,
		currency:       currency,
	}
}

// CreateOrderInput represents the order submission input
type CreateOrderInput struct {
	UserID         uuid.UUID
	CourseID       uuid.UUID
	CouponCode     *string
	ClientTotal    float64
	IdempotencyKey string
}

// CreateOrderOutput is the created order plus what the client needs to open
// the gateway checkout. RazorpayOrderID is empty for free courses, which are
// fulfilled immediately.
type CreateOrderOutput struct {
	Order           *entity.Order
	Pricing         pricing.Snapshot
	RazorpayOrderID string
	Free            bool
}

// CreateOrder recomputes the pricing snapshot from current course and coupon
// state, rejects drifted client totals, and opens a gateway order for the
// payable amount
func (s *CheckoutService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*CreateOrderOutput, error) {
	course, err := s.courseRepo.GetByID(ctx, input.CourseID)
	if err != nil {
		return nil, err
	}
	if course == nil || !course.Published {
		return nil, apperror.NewNotFoundError("Course")
	}

	enrollment, err := s.enrollmentRepo.GetByUserAndCourse(ctx, input.UserID, course.ID)
	if err != nil {
		return nil, err
	}
	if enrollment != nil && enrollment.IsActive() {
		return nil, apperror.NewConflictError("You are already enrolled in this course")
	}

	var coupon *entity.Coupon
	var applied *pricing.AppliedCoupon
	if input.CouponCode != nil && *input.CouponCode != "" {
		coupon, err = s.couponService.ValidateForCheckout(ctx, input.UserID, *input.CouponCode, course)
		if err != nil {
			return nil, err
		}
		applied = &pricing.AppliedCoupon{
			DiscountType:  coupon.DiscountType,
			DiscountValue: coupon.DiscountValue,
			MaxDiscount:   coupon.MaxDiscountAmount,
		}
	}

	snapshot := pricing.Compute(course.MRP, course.Price, applied)
	if snapshot.PriceAfterDiscount < 0 {
		return nil, apperror.NewBadRequestError("Coupon discount exceeds the order total")
	}

	// The client total is advisory; the recomputed snapshot is authoritative.
	// A mismatch means course pricing or coupon state changed under the client.
	if math.Abs(snapshot.Total-input.ClientTotal) > amountTolerance {
		return nil, apperror.ErrAmountMismatch
	}

	order := &entity.Order{
		OrderNumber:        utils.GenerateOrderNo(),
		UserID:             input.UserID,
		Status:             enum.OrderStatusCreated,
		BasePrice:          snapshot.BasePrice,
		CourseDiscount:     snapshot.CourseDiscount,
		CouponDiscount:     snapshot.CouponDiscount,
		PriceAfterDiscount: snapshot.PriceAfterDiscount,
		Tax:                snapshot.Tax,
		HandlingFee:        snapshot.HandlingFee,
		Total:              snapshot.Total,
		Currency:           s.currency,
		IdempotencyKey:     input.IdempotencyKey,
	}
	if coupon != nil {
		order.CouponCode = &coupon.Code
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	originalPrice := snapshot.BasePrice + snapshot.CourseDiscount
	item := &entity.OrderItem{
		OrderID:       order.ID,
		CourseID:      course.ID,
		CourseTitle:   course.Title,
		OriginalPrice: originalPrice,
		BasePrice:     snapshot.BasePrice,
		FinalPrice:    snapshot.PriceAfterDiscount,
	}
	if err := s.orderRepo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	order.Items = []entity.OrderItem{*item}

	// Free orders skip the gateway entirely
	if snapshot.IsFree() {
		if err := s.fulfill(ctx, order, course.ID, coupon); err != nil {
			return nil, err
		}
		return &CreateOrderOutput{Order: order, Pricing: snapshot, Free: true}, nil
	}

	amountPaise := int64(math.Round(snapshot.Total * 100))
	gatewayOrderID, err := s.gateway.CreateOrder(ctx, amountPaise, s.currency, order.OrderNumber, map[string]interface{}{
		"order_number": order.OrderNumber,
		"course_id":    course.ID.String(),
	})
	if err != nil {
		return nil, err
	}

	order.RazorpayOrderID = &gatewayOrderID
	order.Status = enum.OrderStatusAwaitingPayment
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return &CreateOrderOutput{
		Order:           order,
		Pricing:         snapshot,
		RazorpayOrderID: gatewayOrderID,
	}, nil
}

// VerifyPaymentInput represents the payment verification input
type VerifyPaymentInput struct {
	UserID            uuid.UUID
	RazorpayOrderID   string
	RazorpayPaymentID string
	RazorpaySignature string
}

// VerifyPayment checks the gateway callback signature and fulfills the order
// on success. A failed check records the attempt and leaves the order
// awaiting payment so the user can retry.
func (s *CheckoutService) VerifyPayment(ctx context.Context, input *VerifyPaymentInput) (*entity.Order, error) {
	order, err := s.orderRepo.GetByRazorpayOrderID(ctx, input.RazorpayOrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}
	if order.Status == enum.OrderStatusPaid {
		// Verification replays are harmless
		return order, nil
	}
	if order.Status != enum.OrderStatusAwaitingPayment {
		return nil, apperror.NewBadRequestError("Order is not awaiting payment")
	}

	payment := &entity.Payment{
		OrderID:           order.ID,
		RazorpayOrderID:   input.RazorpayOrderID,
		RazorpayPaymentID: input.RazorpayPaymentID,
		RazorpaySignature: input.RazorpaySignature,
		Amount:            order.Total,
		Currency:          order.Currency,
		Status:            enum.PaymentStatusPending,
	}

	if !s.gateway.VerifySignature(input.RazorpayOrderID, input.RazorpayPaymentID, input.RazorpaySignature) {
		payment.Status = enum.PaymentStatusFailed
		if err := s.paymentRepo.Create(ctx, payment); err != nil {
			return nil, err
		}
		return nil, apperror.ErrPaymentFailed
	}

	now := time.Now()
	payment.Status = enum.PaymentStatusVerified
	payment.VerifiedAt = &now
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	var coupon *entity.Coupon
	if order.CouponCode != nil {
		coupon, err = s.couponService.couponRepo.GetByCode(ctx, *order.CouponCode)
		if err != nil {
			return nil, err
		}
	}

	courseID := uuid.Nil
	if len(order.Items) > 0 {
		courseID = order.Items[0].CourseID
	}

	if err := s.fulfill(ctx, order, courseID, coupon); err != nil {
		return nil, err
	}

	s.sendReceipt(order)

	return order, nil
}

// fulfill marks the order paid, enrolls the user, and consumes the coupon.
// All of it happens in one transaction; a failure leaves the order awaiting
// payment so verification can be retried.
func (s *CheckoutService) fulfill(ctx context.Context, order *entity.Order, courseID uuid.UUID, coupon *entity.Coupon) error {
	var couponID *uuid.UUID
	if coupon != nil {
		couponID = &coupon.ID
	}
	return s.orderRepo.Fulfill(ctx, order, courseID, couponID)
}

// sendReceipt emails the payment receipt; failures never affect the order
func (s *CheckoutService) sendReceipt(order *entity.Order) {
	user, err := s.userRepo.GetByID(context.Background(), order.UserID)
	if err != nil || user == nil || user.Email == "" {
		return
	}

	courseTitle := ""
	if len(order.Items) > 0 {
		courseTitle = order.Items[0].CourseTitle
	}

	if err := s.emailService.SendPaymentReceiptEmail(user.Email, email.ReceiptData{
		Name:        user.FullName(),
		OrderNumber: order.OrderNumber,
		CourseTitle: courseTitle,
		Amount:      strconv.FormatFloat(order.Total, 'f', 2, 64),
		Currency:    order.Currency,
	}); err != nil {
		log.Printf("Warning: failed to send receipt for order %s: %v", order.OrderNumber, err)
	}
}

// GetOrder returns an order with items and payments. Non-admin callers can
// only read their own orders.
func (s *CheckoutService) GetOrder(ctx context.Context, orderID, userID uuid.UUID, isAdmin bool) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if !isAdmin && order.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	return order, nil
}

// ListOrders returns a page of orders
func (s *CheckoutService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return &pagination.PaginatedResult[entity.Order]{
		Items:      orders,
		Pagination: pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total),
	}, nil
}

// MyEnrollments returns the user's enrollments with course data
func (s *CheckoutService) MyEnrollments(ctx context.Context, userID uuid.UUID) ([]entity.Enrollment, error) {
	return s.enrollmentRepo.ListByUser(ctx, userID)
}
