package sms

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendOTPPostsToGateway(t *testing.T) {
	var got struct {
		apikey, sender, to, message string
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		got.apikey = r.PostFormValue("apikey")
		got.sender = r.PostFormValue("sender")
		got.to = r.PostFormValue("to")
		got.message = r.PostFormValue("message")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewSMSService(SMSConfig{
		GatewayURL: server.URL,
		APIKey:     "test-key",
		SenderID:   "SPKWSE",
	})

	require.NoError(t, svc.SendOTP("+919876543210", "482910"))
	assert.Equal(t, "test-key", got.apikey)
	assert.Equal(t, "SPKWSE", got.sender)
	assert.Equal(t, "+919876543210", got.to)
	assert.Contains(t, got.message, "482910")
}

func TestSendOTPGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
	}))
	defer server.Close()

	svc := NewSMSService(SMSConfig{GatewayURL: server.URL})

	err := svc.SendOTP("+919876543210", "482910")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestSendOTPUnconfiguredLogsInstead(t *testing.T) {
	svc := NewSMSService(SMSConfig{})

	assert.False(t, svc.IsConfigured())
	assert.NoError(t, svc.SendOTP("+919876543210", "482910"))
}
