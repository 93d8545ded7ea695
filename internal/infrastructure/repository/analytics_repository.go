package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/speakwise/speakwise-api/internal/domain/entity"
	"github.com/speakwise/speakwise-api/internal/domain/enum"
	domainRepo "github.com/speakwise/speakwise-api/internal/domain/repository"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetTopCourses(ctx context.Context, limit int) ([]domainRepo.TopCourseResult, error) {
	var results []domainRepo.TopCourseResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.id as course_id,
			c.title as course_title,
			COUNT(DISTINCT oi.order_id) as enrollments,
			COALESCE(SUM(oi.final_price), 0) as revenue
		FROM order_items oi
		JOIN courses c ON c.id = oi.course_id
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status = ?
		GROUP BY c.id, c.title
		ORDER BY revenue DESC
		LIMIT ?
	`, enum.OrderStatusPaid, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetDailyRevenue(ctx context.Context, days int) ([]domainRepo.DailyRevenueResult, error) {
	var results []domainRepo.DailyRevenueResult

	since := time.Now().AddDate(0, 0, -days)
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			DATE(o.created_at) as date,
			COALESCE(SUM(o.total), 0) as revenue,
			COUNT(*) as orders
		FROM orders o
		WHERE o.status = ? AND o.created_at >= ?
		GROUP BY DATE(o.created_at)
		ORDER BY date ASC
	`, enum.OrderStatusPaid, since).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetCouponUsage(ctx context.Context, limit int) ([]domainRepo.CouponUsageResult, error) {
	var results []domainRepo.CouponUsageResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.id as coupon_id,
			c.code as code,
			COUNT(cr.id) as redeemed,
			COALESCE(SUM(o.coupon_discount), 0) as total_saved
		FROM coupons c
		LEFT JOIN coupon_redemptions cr ON cr.coupon_id = c.id
		LEFT JOIN orders o ON o.id = cr.order_id
		GROUP BY c.id, c.code
		ORDER BY redeemed DESC
		LIMIT ?
	`, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetTotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM orders
		WHERE status = ? AND deleted_at IS NULL
	`, enum.OrderStatusPaid).Scan(&total).Error
	return total, err
}

func (r *analyticsRepository) GetMonthlyRevenue(ctx context.Context) (float64, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var total float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM orders
		WHERE status = ? AND created_at >= ? AND deleted_at IS NULL
	`, enum.OrderStatusPaid, monthStart).Scan(&total).Error
	return total, err
}

func (r *analyticsRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.User{}).Count(&count).Error
	return count, err
}

func (r *analyticsRepository) CountEnrollments(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Enrollment{}).Count(&count).Error
	return count, err
}

func (r *analyticsRepository) CountPendingCalls(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.CallRequest{}).
		Where("status = ?", enum.CallStatusRequested).
		Count(&count).Error
	return count, err
}
