package gateway

import (
	"context"
	"errors"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

var ErrOrderCreateFailed = errors.New("failed to create gateway order")

// RazorpayClient wraps the Razorpay SDK for order creation and payment
// signature verification.
type RazorpayClient struct {
	client    *razorpay.Client
	keySecret string
}

// NewRazorpayClient creates a new Razorpay gateway client
func NewRazorpayClient(keyID, keySecret string) *RazorpayClient {
	return &RazorpayClient{
		client:    razorpay.NewClient(keyID, keySecret),
		keySecret: keySecret,
	}
}

// CreateOrder creates an order on the gateway and returns the gateway order id.
// amount is in the currency's smallest unit (paise for INR).
func (c *RazorpayClient) CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]interface{}) (string, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}

	body, err := c.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOrderCreateFailed, err)
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("%w: missing order id in response", ErrOrderCreateFailed)
	}

	return orderID, nil
}

// VerifySignature checks the checkout completion signature issued by the gateway
func (c *RazorpayClient) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifyPaymentSignature(orderID, paymentID, signature, c.keySecret)
}
