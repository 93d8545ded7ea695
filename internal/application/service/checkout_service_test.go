package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/speakwise/speakwise-api/internal/domain/entity"
	"github.com/speakwise/speakwise-api/internal/domain/enum"
	"github.com/speakwise/speakwise-api/internal/infrastructure/repository"
	"github.com/speakwise/speakwise-api/pkg/apperror"
	"github.com/speakwise/speakwise-api/pkg/email"
)

// fakeGateway stands in for Razorpay. It hands out deterministic order ids
// and accepts exactly one signature value.
type fakeGateway struct {
	orders       int
	lastAmount   int64
	lastCurrency string
	lastReceipt  string
	failCreate   bool
	validSig     string
}

func (g *fakeGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]interface{}) (string, error) {
	if g.failCreate {
		return "", errors.New("gateway unavailable")
	}
	g.orders++
	g.lastAmount = amount
	g.lastCurrency = currency
	g.lastReceipt = receipt
	return "order_fake_" + uuid.NewString()[:8], nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return signature == g.validSig
}

func newCheckoutService(db *gorm.DB, gw PaymentGateway) *CheckoutService {
	return NewCheckoutService(
		repository.NewOrderRepository(db),
		repository.NewPaymentRepository(db),
		repository.NewEnrollmentRepository(db),
		repository.NewCourseRepository(db),
		repository.NewUserRepository(db),
		newCouponService(db),
		gw,
		email.NewEmailService(email.EmailConfig{}),
		"INR",
	)
}

func TestCreateOrderOpensGatewayOrder(t *testing.T) {
	db := setupServiceDB(t)
	gw := &fakeGateway{}
	svc := newCheckoutService(db, gw)
	user := createTestUser(t, db)
	course := createTestCourse(t, db, fptr(899), fptr(499))

	output, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:      user.ID,
		CourseID:    course.ID,
		ClientTotal: 599,
	})
	require.NoError(t, err)

	assert.False(t, output.Free)
	assert.NotEmpty(t, output.RazorpayOrderID)
	assert.Equal(t, enum.OrderStatusAwaitingPayment, output.Order.Status)
	assert.Equal(t, 499.0, output.Order.BasePrice)
	assert.Equal(t, 400.0, output.Order.CourseDiscount)
	assert.Equal(t, 599.0, output.Order.Total)

	// The gateway order is opened in paise
	assert.Equal(t, int64(59900), gw.lastAmount)
	assert.Equal(t, "INR", gw.lastCurrency)
	assert.Equal(t, output.Order.OrderNumber, gw.lastReceipt)

	require.Len(t, output.Order.Items, 1)
	assert.Equal(t, course.Title, output.Order.Items[0].CourseTitle)
	assert.Equal(t, 899.0, output.Order.Items[0].OriginalPrice)
}

func TestCreateOrderRejectsDriftedClientTotal(t *testing.T) {
	db := setupServiceDB(t)
	gw := &fakeGateway{}
	svc := newCheckoutService(db, gw)
	user := createTestUser(t, db)
	course := createTestCourse(t, db, fptr(899), fptr(499))

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:      user.ID,
		CourseID:    course.ID,
		ClientTotal: 499, // stale pre-tax figure
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrAmountMismatch))
	assert.Equal(t, 0, gw.orders)
}

func TestCreateOrderFreeCourseFulfillsImmediately(t *testing.T) {
	db := setupServiceDB(t)
	gw := &fakeGateway{}
	svc := newCheckoutService(db, gw)
	user := createTestUser(t, db)
	course := createTestCourse(t, db, nil, nil)

	output, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:      user.ID,
		CourseID:    course.ID,
		ClientTotal: 0,
	})
	require.NoError(t, err)

	assert.True(t, output.Free)
	assert.Empty(t, output.RazorpayOrderID)
	assert.Equal(t, enum.OrderStatusPaid, output.Order.Status)
	assert.Equal(t, 0, gw.orders)

	var enrollment entity.Enrollment
	require.NoError(t, db.First(&enrollment, "user_id = ? AND course_id = ?", user.ID, course.ID).Error)
}

func TestCreateOrderRejectsUnpublishedCourse(t *testing.T) {
	db := setupServiceDB(t)
	svc := newCheckoutService(db, &fakeGateway{})
	user := createTestUser(t, db)

	course := &entity.Course{
		Title:     "Hidden Course",
		Slug:      "hidden-course-" + uuid.NewString()[:8],
		Price:     fptr(499),
		Published: false,
	}
	require.NoError(t, db.Create(course).Error)

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:      user.ID,
		CourseID:    course.ID,
		ClientTotal: 599,
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCreateOrderRejectsExistingEnrollment(t *testing.T) {
	db := setupServiceDB(t)
	svc := newCheckoutService(db, &fakeGateway{})
	user := createTestUser(t, db)
	course := createTestCourse(t, db, fptr(899), fptr(499))

	require.NoError(t, db.Create(&entity.Enrollment{
		UserID:   user.ID,
		CourseID: course.ID,
	}).Error)

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:      user.ID,
		CourseID:    course.ID,
		ClientTotal: 599,
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestCreateOrderWithCouponRecordsCode(t *testing.T) {
	db := setupServiceDB(t)
	gw := &fakeGateway{}
	svc := newCheckoutService(db, gw)
	user := createTestUser(t, db)
	course := createTestCourse(t, db, fptr(899), fptr(499))

	require.NoError(t, db.Create(&entity.Coupon{
		Code:          "CHECKOUT10",
		DiscountType:  enum.DiscountTypePercentage,
		DiscountValue: 10,
		Active:        true,
	}).Error)

	code := "CHECKOUT10"
	output, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:      user.ID,
		CourseID:    course.ID,
		CouponCode:  &code,
		ClientTotal: 539.1,
	})
	require.NoError(t, err)

	require.NotNil(t, output.Order.CouponCode)
	assert.Equal(t, "CHECKOUT10", *output.Order.CouponCode)
	assert.InDelta(t, 49.9, output.Order.CouponDiscount, 1e-9)
	assert.Equal(t, int64(53910), gw.lastAmount)

	// Redemption is deferred until payment verification
	var redemptions int64
	require.NoError(t, db.Model(&entity.CouponRedemption{}).
		Where("coupon_id IS NOT NULL").Count(&redemptions).Error)
	assert.Equal(t, int64(0), redemptions)
}

func TestCreateOrderGatewayFailure(t *testing.T) {
	db := setupServiceDB(t)
	svc := newCheckoutService(db, &fakeGateway{failCreate: true})
	user := createTestUser(t, db)
	course := createTestCourse(t, db, fptr(899), fptr(499))

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:      user.ID,
		CourseID:    course.ID,
		ClientTotal: 599,
	})
	require.Error(t, err)

	// The order row stays in Created and never advances to AwaitingPayment
	var order entity.Order
	require.NoError(t, db.First(&order, "user_id = ?", user.ID).Error)
	assert.Equal(t, enum.OrderStatusCreated, order.Status)
	assert.Nil(t, order.RazorpayOrderID)
}

func createAwaitingOrder(t *testing.T, db *gorm.DB, svc *CheckoutService, user *entity.User, course *entity.Course) *CreateOrderOutput {
	t.Helper()

	output, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:      user.ID,
		CourseID:    course.ID,
		ClientTotal: 599,
	})
	require.NoError(t, err)
	require.Equal(t, enum.OrderStatusAwaitingPayment, output.Order.Status)
	return output
}

func TestVerifyPaymentSuccessFulfillsOrder(t *testing.T) {
	db := setupServiceDB(t)
	gw := &fakeGateway{validSig: "good-signature"}
	svc := newCheckoutService(db, gw)
	user := createTestUser(t, db)
	course := createTestCourse(t, db, fptr(899), fptr(499))

	created := createAwaitingOrder(t, db, svc, user, course)

	order, err := svc.VerifyPayment(context.Background(), &VerifyPaymentInput{
		UserID:            user.ID,
		RazorpayOrderID:   created.RazorpayOrderID,
		RazorpayPaymentID: "pay_123",
		RazorpaySignature: "good-signature",
	})
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusPaid, order.Status)

	var payment entity.Payment
	require.NoError(t, db.First(&payment, "order_id = ?", order.ID).Error)
	assert.Equal(t, enum.PaymentStatusVerified, payment.Status)
	assert.Equal(t, "pay_123", payment.RazorpayPaymentID)
	assert.NotNil(t, payment.VerifiedAt)

	var enrollment entity.Enrollment
	require.NoError(t, db.First(&enrollment, "user_id = ? AND course_id = ?", user.ID, course.ID).Error)
}

func TestVerifyPaymentBadSignatureLeavesOrderRetryable(t *testing.T) {
	db := setupServiceDB(t)
	gw := &fakeGateway{validSig: "good-signature"}
	svc := newCheckoutService(db, gw)
	user := createTestUser(t, db)
	course := createTestCourse(t, db, fptr(899), fptr(499))

	created := createAwaitingOrder(t, db, svc, user, course)

	_, err := svc.VerifyPayment(context.Background(), &VerifyPaymentInput{
		UserID:            user.ID,
		RazorpayOrderID:   created.RazorpayOrderID,
		RazorpayPaymentID: "pay_123",
		RazorpaySignature: "tampered",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrPaymentFailed))

	// The failed attempt is recorded and the order stays payable
	var payment entity.Payment
	require.NoError(t, db.First(&payment, "order_id = ?", created.Order.ID).Error)
	assert.Equal(t, enum.PaymentStatusFailed, payment.Status)

	var order entity.Order
	require.NoError(t, db.First(&order, "id = ?", created.Order.ID).Error)
	assert.Equal(t, enum.OrderStatusAwaitingPayment, order.Status)

	// A retry with the right signature still succeeds
	verified, err := svc.VerifyPayment(context.Background(), &VerifyPaymentInput{
		UserID:            user.ID,
		RazorpayOrderID:   created.RazorpayOrderID,
		RazorpayPaymentID: "pay_124",
		RazorpaySignature: "good-signature",
	})
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusPaid, verified.Status)
}

func TestVerifyPaymentReplayReturnsPaidOrder(t *testing.T) {
	db := setupServiceDB(t)
	gw := &fakeGateway{validSig: "good-signature"}
	svc := newCheckoutService(db, gw)
	user := createTestUser(t, db)
	course := createTestCourse(t, db, fptr(899), fptr(499))

	created := createAwaitingOrder(t, db, svc, user, course)

	input := &VerifyPaymentInput{
		UserID:            user.ID,
		RazorpayOrderID:   created.RazorpayOrderID,
		RazorpayPaymentID: "pay_123",
		RazorpaySignature: "good-signature",
	}

	_, err := svc.VerifyPayment(context.Background(), input)
	require.NoError(t, err)

	order, err := svc.VerifyPayment(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusPaid, order.Status)

	// Replay does not duplicate the enrollment
	var count int64
	require.NoError(t, db.Model(&entity.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestVerifyPaymentRejectsOtherUsersOrder(t *testing.T) {
	db := setupServiceDB(t)
	gw := &fakeGateway{validSig: "good-signature"}
	svc := newCheckoutService(db, gw)
	user := createTestUser(t, db)
	intruder := createTestUser(t, db)
	course := createTestCourse(t, db, fptr(899), fptr(499))

	created := createAwaitingOrder(t, db, svc, user, course)

	_, err := svc.VerifyPayment(context.Background(), &VerifyPaymentInput{
		UserID:            intruder.ID,
		RazorpayOrderID:   created.RazorpayOrderID,
		RazorpayPaymentID: "pay_123",
		RazorpaySignature: "good-signature",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrForbidden))
}

func TestVerifyPaymentRedeemsCoupon(t *testing.T) {
	db := setupServiceDB(t)
	gw := &fakeGateway{validSig: "good-signature"}
	svc := newCheckoutService(db, gw)
	user := createTestUser(t, db)
	course := createTestCourse(t, db, fptr(899), fptr(499))

	coupon := &entity.Coupon{
		Code:          "PAID10",
		DiscountType:  enum.DiscountTypePercentage,
		DiscountValue: 10,
		Active:        true,
	}
	require.NoError(t, db.Create(coupon).Error)

	code := "PAID10"
	created, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:      user.ID,
		CourseID:    course.ID,
		CouponCode:  &code,
		ClientTotal: 539.1,
	})
	require.NoError(t, err)

	_, err = svc.VerifyPayment(context.Background(), &VerifyPaymentInput{
		UserID:            user.ID,
		RazorpayOrderID:   created.RazorpayOrderID,
		RazorpayPaymentID: "pay_123",
		RazorpaySignature: "good-signature",
	})
	require.NoError(t, err)

	var reloaded entity.Coupon
	require.NoError(t, db.First(&reloaded, "id = ?", coupon.ID).Error)
	assert.Equal(t, 1, reloaded.UsedCount)
}

func TestVerifyPaymentRollsBackWhenFulfillmentFails(t *testing.T) {
	db := setupServiceDB(t)
	gw := &fakeGateway{validSig: "good-signature"}
	svc := newCheckoutService(db, gw)
	user := createTestUser(t, db)
	course := createTestCourse(t, db, fptr(899), fptr(499))

	coupon := &entity.Coupon{
		Code:          "ROLLBACK10",
		DiscountType:  enum.DiscountTypePercentage,
		DiscountValue: 10,
		Active:        true,
	}
	require.NoError(t, db.Create(coupon).Error)

	code := "ROLLBACK10"
	created, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:      user.ID,
		CourseID:    course.ID,
		CouponCode:  &code,
		ClientTotal: 539.1,
	})
	require.NoError(t, err)

	// Breaking the redemption table makes the last write of fulfillment
	// fail, which must roll back the status change and the enrollment.
	require.NoError(t, db.Migrator().DropTable(&entity.CouponRedemption{}))

	_, err = svc.VerifyPayment(context.Background(), &VerifyPaymentInput{
		UserID:            user.ID,
		RazorpayOrderID:   created.RazorpayOrderID,
		RazorpayPaymentID: "pay_123",
		RazorpaySignature: "good-signature",
	})
	require.Error(t, err)

	var order entity.Order
	require.NoError(t, db.First(&order, "id = ?", created.Order.ID).Error)
	assert.Equal(t, enum.OrderStatusAwaitingPayment, order.Status)

	var enrollments int64
	require.NoError(t, db.Model(&entity.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).
		Count(&enrollments).Error)
	assert.Equal(t, int64(0), enrollments)

	var reloaded entity.Coupon
	require.NoError(t, db.First(&reloaded, "id = ?", coupon.ID).Error)
	assert.Equal(t, 0, reloaded.UsedCount)
}

func TestGetOrderOwnership(t *testing.T) {
	db := setupServiceDB(t)
	svc := newCheckoutService(db, &fakeGateway{})
	user := createTestUser(t, db)
	other := createTestUser(t, db)
	course := createTestCourse(t, db, fptr(899), fptr(499))

	created := createAwaitingOrder(t, db, svc, user, course)

	_, err := svc.GetOrder(context.Background(), created.Order.ID, other.ID, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrForbidden))

	// Admins can read any order
	order, err := svc.GetOrder(context.Background(), created.Order.ID, other.ID, true)
	require.NoError(t, err)
	assert.Equal(t, created.Order.ID, order.ID)
}
