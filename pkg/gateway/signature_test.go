package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signPayload(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPaymentSignatureValid(t *testing.T) {
	sig := signPayload("order_ABC123", "pay_XYZ789", "test-secret")
	assert.True(t, VerifyPaymentSignature("order_ABC123", "pay_XYZ789", sig, "test-secret"))
}

func TestVerifyPaymentSignatureTampered(t *testing.T) {
	sig := signPayload("order_ABC123", "pay_XYZ789", "test-secret")

	assert.False(t, VerifyPaymentSignature("order_ABC124", "pay_XYZ789", sig, "test-secret"))
	assert.False(t, VerifyPaymentSignature("order_ABC123", "pay_XYZ790", sig, "test-secret"))
	assert.False(t, VerifyPaymentSignature("order_ABC123", "pay_XYZ789", sig, "other-secret"))
	assert.False(t, VerifyPaymentSignature("order_ABC123", "pay_XYZ789", "not-a-signature", "test-secret"))
}

func TestVerifyPaymentSignatureEmptyInputs(t *testing.T) {
	sig := signPayload("order_ABC123", "pay_XYZ789", "test-secret")

	assert.False(t, VerifyPaymentSignature("", "pay_XYZ789", sig, "test-secret"))
	assert.False(t, VerifyPaymentSignature("order_ABC123", "", sig, "test-secret"))
	assert.False(t, VerifyPaymentSignature("order_ABC123", "pay_XYZ789", "", "test-secret"))
}
