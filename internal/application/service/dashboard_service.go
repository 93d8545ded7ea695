package service

import (
	"context"

	"github.com/speakwise/speakwise-api/internal/domain/repository"
)

// DashboardService provides admin dashboard statistics
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TotalUsers       int64                `json:"total_users"`
	TotalEnrollments int64                `json:"total_enrollments"`
	TotalRevenue     float64              `json:"total_revenue"`
	MonthlyRevenue   float64              `json:"monthly_revenue"`
	PendingCalls     int64                `json:"pending_calls"`
	TopCourses       []TopCoursePoint     `json:"top_courses"`
	DailyRevenue     []DailyRevenuePoint  `json:"daily_revenue"`
	CouponUsage      []CouponUsagePoint   `json:"coupon_usage"`
}

// TopCoursePoint represents one course's sales performance
type TopCoursePoint struct {
	CourseID    string  `json:"course_id"`
	Title       string  `json:"title"`
	Enrollments int     `json:"enrollments"`
	Revenue     float64 `json:"revenue"`
}

// DailyRevenuePoint represents one day's revenue
type DailyRevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// CouponUsagePoint represents one coupon's redemption stats
type CouponUsagePoint struct {
	Code       string  `json:"code"`
	Redeemed   int     `json:"redeemed"`
	TotalSaved float64 `json:"total_saved"`
}

// GetDashboardStats returns dashboard statistics
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalUsers, err = s.analyticsRepo.CountUsers(ctx); err != nil {
		return nil, err
	}
	if stats.TotalEnrollments, err = s.analyticsRepo.CountEnrollments(ctx); err != nil {
		return nil, err
	}
	if stats.TotalRevenue, err = s.analyticsRepo.GetTotalRevenue(ctx); err != nil {
		return nil, err
	}
	if stats.MonthlyRevenue, err = s.analyticsRepo.GetMonthlyRevenue(ctx); err != nil {
		return nil, err
	}
	if stats.PendingCalls, err = s.analyticsRepo.CountPendingCalls(ctx); err != nil {
		return nil, err
	}

	topCourses, err := s.analyticsRepo.GetTopCourses(ctx, 5)
	if err != nil {
		return nil, err
	}
	stats.TopCourses = make([]TopCoursePoint, 0, len(topCourses))
	for _, c := range topCourses {
		stats.TopCourses = append(stats.TopCourses, TopCoursePoint{
			CourseID:    c.CourseID.String(),
			Title:       c.CourseTitle,
			Enrollments: c.Enrollments,
			Revenue:     c.Revenue,
		})
	}

	daily, err := s.analyticsRepo.GetDailyRevenue(ctx, 7)
	if err != nil {
		return nil, err
	}
	stats.DailyRevenue = make([]DailyRevenuePoint, 0, len(daily))
	for _, d := range daily {
		stats.DailyRevenue = append(stats.DailyRevenue, DailyRevenuePoint{
			Date:    d.Date.Format("Jan 02"),
			Revenue: d.Revenue,
			Orders:  d.Orders,
		})
	}

	usage, err := s.analyticsRepo.GetCouponUsage(ctx, 5)
	if err != nil {
		return nil, err
	}
	stats.CouponUsage = make([]CouponUsagePoint, 0, len(usage))
	for _, u := range usage {
		stats.CouponUsage = append(stats.CouponUsage, CouponUsagePoint{
			Code:       u.Code,
			Redeemed:   u.Redeemed,
			TotalSaved: u.TotalSaved,
		})
	}

	return stats, nil
}
