package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/speakwise/speakwise-api/internal/domain/enum"
)

// Payment records a gateway payment attempt against an order, including the
// raw callback payload for reconciliation.
type Payment struct {
	ID                uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OrderID           uuid.UUID          `gorm:"type:uuid;not null;index" json:"order_id"`
	RazorpayOrderID   string             `gorm:"size:100;not null;index" json:"razorpay_order_id"`
	RazorpayPaymentID string             `gorm:"size:100;index" json:"razorpay_payment_id"`
	RazorpaySignature string             `gorm:"size:255" json:"-"`
	Amount            float64            `gorm:"not null" json:"amount"`
	Currency          string             `gorm:"size:10;default:'INR'" json:"currency"`
	Method            string             `gorm:"size:50" json:"method"`
	Status            enum.PaymentStatus `gorm:"default:0;index" json:"status"`
	VerifiedAt        *time.Time         `json:"verified_at,omitempty"`
	GatewayPayload    *string            `gorm:"type:text" json:"-"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
	DeletedAt         gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
