package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/speakwise/speakwise-api/internal/domain/enum"
)

// Order represents a course purchase. The amount columns are the pricing
// snapshot the backend derived at creation time; they are the authoritative
// figures the gateway order was opened with.
type Order struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	OrderNumber        string           `gorm:"size:100;uniqueIndex;not null" json:"order_number"`
	UserID             uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Status             enum.OrderStatus `gorm:"default:0;index" json:"status"`
	BasePrice          float64          `gorm:"not null" json:"base_price"`
	CourseDiscount     float64          `gorm:"default:0" json:"course_discount"`
	CouponDiscount     float64          `gorm:"default:0" json:"coupon_discount"`
	PriceAfterDiscount float64          `gorm:"not null" json:"price_after_discount"`
	Tax                float64          `gorm:"default:0" json:"tax"`
	HandlingFee        float64          `gorm:"default:0" json:"handling_fee"`
	Total              float64          `gorm:"not null" json:"total"`
	Currency           string           `gorm:"size:10;default:'INR'" json:"currency"`
	CouponCode         *string          `gorm:"size:100" json:"coupon_code,omitempty"`
	IdempotencyKey     string           `gorm:"size:255;index" json:"-"`
	RazorpayOrderID    *string          `gorm:"size:100;uniqueIndex" json:"razorpay_order_id,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
	DeletedAt          gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	User     User        `gorm:"foreignKey:UserID" json:"-"`
	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Payments []Payment   `gorm:"foreignKey:OrderID" json:"payments,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is a line-item snapshot of the purchased course at order time
type OrderItem struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	CourseID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"course_id"`
	CourseTitle   string         `gorm:"size:255;not null" json:"course_title"`
	OriginalPrice float64        `gorm:"not null" json:"original_price"` // list price at order time
	BasePrice     float64        `gorm:"not null" json:"base_price"`    // sale price at order time
	FinalPrice    float64        `gorm:"not null" json:"final_price"`   // after coupon discount
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Order  Order  `gorm:"foreignKey:OrderID" json:"-"`
	Course Course `gorm:"foreignKey:CourseID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new order item
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
