package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/speakwise/speakwise-api/internal/domain/entity"
	"github.com/speakwise/speakwise-api/internal/domain/enum"
	"github.com/speakwise/speakwise-api/internal/infrastructure/repository"
	"github.com/speakwise/speakwise-api/pkg/apperror"
)

func setupServiceDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_pragma=foreign_keys(0)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Role{},
		&entity.Permission{},
		&entity.Course{},
		&entity.CourseModule{},
		&entity.Coupon{},
		&entity.CouponRedemption{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Payment{},
		&entity.Enrollment{},
	))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func createTestUser(t *testing.T, db *gorm.DB) *entity.User {
	t.Helper()

	user := &entity.User{
		FirstName: "Asha",
		LastName:  "Verma",
		Email:     uuid.NewString() + "@example.com",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestCourse(t *testing.T, db *gorm.DB, mrp, price *float64) *entity.Course {
	t.Helper()

	course := &entity.Course{
		Title:     "Spoken English " + uuid.NewString()[:8],
		Slug:      "spoken-english-" + uuid.NewString()[:8],
		MRP:       mrp,
		Price:     price,
		Published: true,
	}
	require.NoError(t, db.Create(course).Error)
	return course
}

func fptr(v float64) *float64 { return &v }

func newCouponService(db *gorm.DB) *CouponService {
	return NewCouponService(
		repository.NewCouponRepository(db),
		repository.NewCourseRepository(db),
	)
}

func TestApplyCouponPercentage(t *testing.T) {
	db := setupServiceDB(t)
	svc := newCouponService(db)
	user := createTestUser(t, db)
	course := createTestCourse(t, db, fptr(899), fptr(499))

	require.NoError(t, db.Create(&entity.Coupon{
		Code:          "WELCOME10",
		DiscountType:  enum.DiscountTypePercentage,
		DiscountValue: 10,
		Active:        true,
	}).Error)

	output, err := svc.ApplyCoupon(context.Background(), &ApplyCouponInput{
		UserID:   user.ID,
		Code:     "welcome10",
		CourseID: course.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, "WELCOME10", output.Coupon.Code)
	assert.InDelta(t, 49.9, output.Discount, 1e-9)
	assert.InDelta(t, 449.1, output.Pricing.PriceAfterDiscount, 1e-9)
	assert.InDelta(t, 539.1, output.Pricing.Total, 1e-9)
}

func TestApplyCouponFixedExceedsTotal(t *testing.T) {
	db := setupServiceDB(t)
	svc := newCouponService(db)
	user := createTestUser(t, db)
	course := createTestCourse(t, db, nil, fptr(199))

	require.NoError(t, db.Create(&entity.Coupon{
		Code:          "FLAT500",
		DiscountType:  enum.DiscountTypeFixedAmount,
		DiscountValue: 500,
		Active:        true,
	}).Error)

	_, err := svc.ApplyCoupon(context.Background(), &ApplyCouponInput{
		UserID:   user.ID,
		Code:     "FLAT500",
		CourseID: course.ID,
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Coupon discount exceeds the order total", appErr.Message)
}

func TestApplyCouponValidityWindow(t *testing.T) {
	db := setupServiceDB(t)
	svc := newCouponService(db)
	user := createTestUser(t, db)
	course := createTestCourse(t, db, fptr(899), fptr(499))

	past := time.Now().Add(-time.Hour)
	require.NoError(t, db.Create(&entity.Coupon{
		Code:          "EXPIRED",
		DiscountType:  enum.DiscountTypePercentage,
		DiscountValue: 10,
		ValidUntil:    &past,
		Active:        true,
	}).Error)

	_, err := svc.ApplyCoupon(context.Background(), &ApplyCouponInput{
		UserID:   user.ID,
		Code:     "EXPIRED",
		CourseID: course.ID,
	})
	require.Error(t, err)
	assert.Equal(t, "Coupon is not valid at this time", apperror.GetAppError(err).Message)
}

func TestApplyCouponExhausted(t *testing.T) {
	db := setupServiceDB(t)
	svc := newCouponService(db)
	user := createTestUser(t, db)
	course := createTestCourse(t, db, fptr(899), fptr(499))

	require.NoError(t, db.Create(&entity.Coupon{
		Code:          "SOLDOUT",
		DiscountType:  enum.DiscountTypePercentage,
		DiscountValue: 10,
		UsageLimit:    5,
		UsedCount:     5,
		Active:        true,
	}).Error)

	_, err := svc.ApplyCoupon(context.Background(), &ApplyCouponInput{
		UserID:   user.ID,
		Code:     "SOLDOUT",
		CourseID: course.ID,
	})
	require.Error(t, err)
	assert.Equal(t, "Coupon usage limit reached", apperror.GetAppError(err).Message)
}

func TestApplyCouponCourseRestriction(t *testing.T) {
	db := setupServiceDB(t)
	svc := newCouponService(db)
	user := createTestUser(t, db)
	course := createTestCourse(t, db, fptr(899), fptr(499))
	otherCourse := createTestCourse(t, db, fptr(1299), fptr(999))

	require.NoError(t, db.Create(&entity.Coupon{
		Code:          "ONLYONE",
		DiscountType:  enum.DiscountTypePercentage,
		DiscountValue: 10,
		CourseID:      &otherCourse.ID,
		Active:        true,
	}).Error)

	_, err := svc.ApplyCoupon(context.Background(), &ApplyCouponInput{
		UserID:   user.ID,
		Code:     "ONLYONE",
		CourseID: course.ID,
	})
	require.Error(t, err)
	assert.Equal(t, "Coupon does not apply to this course", apperror.GetAppError(err).Message)
}

func TestApplyCouponPerUserLimit(t *testing.T) {
	db := setupServiceDB(t)
	svc := newCouponService(db)
	user := createTestUser(t, db)
	course := createTestCourse(t, db, fptr(899), fptr(499))

	coupon := &entity.Coupon{
		Code:          "ONCE",
		DiscountType:  enum.DiscountTypePercentage,
		DiscountValue: 10,
		PerUserLimit:  1,
		Active:        true,
	}
	require.NoError(t, db.Create(coupon).Error)

	require.NoError(t, db.Create(&entity.CouponRedemption{
		CouponID: coupon.ID,
		UserID:   user.ID,
		OrderID:  uuid.New(),
	}).Error)

	_, err := svc.ApplyCoupon(context.Background(), &ApplyCouponInput{
		UserID:   user.ID,
		Code:     "ONCE",
		CourseID: course.ID,
	})
	require.Error(t, err)
	assert.Equal(t, "You have already used this coupon", apperror.GetAppError(err).Message)

	// A different user is unaffected
	other := createTestUser(t, db)
	_, err = svc.ApplyCoupon(context.Background(), &ApplyCouponInput{
		UserID:   other.ID,
		Code:     "ONCE",
		CourseID: course.ID,
	})
	assert.NoError(t, err)
}

func TestApplyCouponMinOrderAmount(t *testing.T) {
	db := setupServiceDB(t)
	svc := newCouponService(db)
	user := createTestUser(t, db)
	course := createTestCourse(t, db, fptr(899), fptr(499))

	require.NoError(t, db.Create(&entity.Coupon{
		Code:           "BIGSPEND",
		DiscountType:   enum.DiscountTypeFixedAmount,
		DiscountValue:  100,
		MinOrderAmount: 1000,
		Active:         true,
	}).Error)

	_, err := svc.ApplyCoupon(context.Background(), &ApplyCouponInput{
		UserID:   user.ID,
		Code:     "BIGSPEND",
		CourseID: course.ID,
	})
	require.Error(t, err)
	assert.Equal(t, "Order amount is below the coupon minimum", apperror.GetAppError(err).Message)
}

func TestApplyCouponInactive(t *testing.T) {
	db := setupServiceDB(t)
	svc := newCouponService(db)
	user := createTestUser(t, db)
	course := createTestCourse(t, db, fptr(899), fptr(499))

	require.NoError(t, db.Create(&entity.Coupon{
		Code:          "DISABLED",
		DiscountType:  enum.DiscountTypePercentage,
		DiscountValue: 10,
		Active:        false,
	}).Error)

	_, err := svc.ApplyCoupon(context.Background(), &ApplyCouponInput{
		UserID:   user.ID,
		Code:     "DISABLED",
		CourseID: course.ID,
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid coupon code", apperror.GetAppError(err).Message)
}

func TestCreateCouponValidation(t *testing.T) {
	db := setupServiceDB(t)
	svc := newCouponService(db)

	_, err := svc.CreateCoupon(context.Background(), &CreateCouponInput{
		Code:          "BAD",
		DiscountType:  "BOGUS",
		DiscountValue: 10,
	})
	assert.Error(t, err)

	_, err = svc.CreateCoupon(context.Background(), &CreateCouponInput{
		Code:          "TOOMUCH",
		DiscountType:  enum.DiscountTypePercentage,
		DiscountValue: 150,
	})
	assert.Error(t, err)

	coupon, err := svc.CreateCoupon(context.Background(), &CreateCouponInput{
		Code:          "  summer20 ",
		DiscountType:  enum.DiscountTypePercentage,
		DiscountValue: 20,
		Active:        true,
	})
	require.NoError(t, err)
	assert.Equal(t, "SUMMER20", coupon.Code)

	// Duplicate codes are rejected
	_, err = svc.CreateCoupon(context.Background(), &CreateCouponInput{
		Code:          "SUMMER20",
		DiscountType:  enum.DiscountTypePercentage,
		DiscountValue: 10,
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestUpdateCouponImmutableFields(t *testing.T) {
	db := setupServiceDB(t)
	svc := newCouponService(db)

	coupon, err := svc.CreateCoupon(context.Background(), &CreateCouponInput{
		Code:          "KEEP",
		DiscountType:  enum.DiscountTypePercentage,
		DiscountValue: 20,
		Active:        true,
	})
	require.NoError(t, err)

	newValue := 30.0
	inactive := false
	updated, err := svc.UpdateCoupon(context.Background(), coupon.ID, &UpdateCouponInput{
		DiscountValue: &newValue,
		Active:        &inactive,
	})
	require.NoError(t, err)

	assert.Equal(t, "KEEP", updated.Code)
	assert.Equal(t, enum.DiscountTypePercentage, updated.DiscountType)
	assert.Equal(t, 30.0, updated.DiscountValue)
	assert.False(t, updated.Active)
}
