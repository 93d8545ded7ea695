package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/speakwise/speakwise-api/internal/domain/entity"
	"github.com/speakwise/speakwise-api/internal/domain/enum"
	"github.com/speakwise/speakwise-api/pkg/pagination"
)

// OrderFilterParams holds filtering options for listing orders
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	UserID     *uuid.UUID
	Status     *enum.OrderStatus
	Search     string
}

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error)
	GetByRazorpayOrderID(ctx context.Context, razorpayOrderID string) (*entity.Order, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	CreateItem(ctx context.Context, item *entity.OrderItem) error
	Fulfill(ctx context.Context, order *entity.Order, courseID uuid.UUID, couponID *uuid.UUID) error
}

// PaymentRepository defines the interface for payment persistence
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	Update(ctx context.Context, payment *entity.Payment) error
	GetByRazorpayPaymentID(ctx context.Context, paymentID string) (*entity.Payment, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]entity.Payment, error)
}

// EnrollmentRepository defines the interface for enrollment persistence
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *entity.Enrollment) error
	GetByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*entity.Enrollment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Enrollment, error)
}
