package sms

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SMSConfig holds the SMS gateway configuration. The gateway is a plain
// HTTP form endpoint, which is what MSG91, Textlocal and similar transactional
// SMS providers expose.
type SMSConfig struct {
	GatewayURL string
	APIKey     string
	SenderID   string
}

// SMSService delivers one-time login codes to phones
type SMSService struct {
	config SMSConfig
	client *http.Client
}

// NewSMSService creates a new SMS service
func NewSMSService(config SMSConfig) *SMSService {
	return &SMSService{
		config: config,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// IsConfigured reports whether a gateway endpoint is set
func (s *SMSService) IsConfigured() bool {
	return s.config.GatewayURL != ""
}

// SendOTP delivers a login code to the phone. Without a configured gateway
// the code is written to the server log instead, which is the development
// sink; it never reaches the API response either way.
func (s *SMSService) SendOTP(phone, code string) error {
	if !s.IsConfigured() {
		log.Printf("SMS gateway not configured; login code for %s is %s", phone, code)
		return nil
	}

	form := url.Values{}
	form.Set("apikey", s.config.APIKey)
	form.Set("sender", s.config.SenderID)
	form.Set("to", phone)
	form.Set("message", fmt.Sprintf("Your SpeakWise login code is %s. Do not share it with anyone.", code))

	resp, err := s.client.Post(s.config.GatewayURL, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("SMS gateway returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}
