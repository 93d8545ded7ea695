package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TopCourseResult represents a course's sales performance
type TopCourseResult struct {
	CourseID    uuid.UUID
	CourseTitle string
	Enrollments int
	Revenue     float64
}

// DailyRevenueResult represents revenue collected on a single day
type DailyRevenueResult struct {
	Date    time.Time
	Revenue float64
	Orders  int
}

// CouponUsageResult represents how often a coupon has been redeemed
type CouponUsageResult struct {
	CouponID   uuid.UUID
	Code       string
	Redeemed   int
	TotalSaved float64
}

// AnalyticsRepository defines interface for analytics/aggregation queries
type AnalyticsRepository interface {
	// GetTopCourses returns top selling courses by revenue
	GetTopCourses(ctx context.Context, limit int) ([]TopCourseResult, error)

	// GetDailyRevenue returns revenue data for the last N days
	GetDailyRevenue(ctx context.Context, days int) ([]DailyRevenueResult, error)

	// GetCouponUsage returns redemption counts per coupon
	GetCouponUsage(ctx context.Context, limit int) ([]CouponUsageResult, error)

	// GetTotalRevenue returns total revenue from paid orders
	GetTotalRevenue(ctx context.Context) (float64, error)

	// GetMonthlyRevenue returns revenue for the current month
	GetMonthlyRevenue(ctx context.Context) (float64, error)

	// CountUsers returns the number of registered users
	CountUsers(ctx context.Context) (int64, error)

	// CountEnrollments returns the number of active enrollments
	CountEnrollments(ctx context.Context) (int64, error)

	// CountPendingCalls returns the number of unscheduled call requests
	CountPendingCalls(ctx context.Context) (int64, error)
}
