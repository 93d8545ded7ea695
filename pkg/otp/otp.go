package otp

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrCodeExpired      = errors.New("verification code expired or not issued")
	ErrTooManyAttempts  = errors.New("too many verification attempts")
	ErrStoreUnavailable = errors.New("otp store unavailable")
)

// Manager issues and verifies one-time phone login codes backed by Redis.
// Codes live under "otp:<phone>" with a TTL; attempt counters under
// "otp:<phone>:attempts" share the same TTL.
type Manager struct {
	client      *redis.Client
	ttl         time.Duration
	maxAttempts int
}

// NewManager creates a new OTP manager
func NewManager(client *redis.Client, ttl time.Duration, maxAttempts int) *Manager {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &Manager{
		client:      client,
		ttl:         ttl,
		maxAttempts: maxAttempts,
	}
}

// Issue generates a 6-digit code for the phone number and stores it with a TTL.
// Issuing a new code replaces any previous one and resets the attempt counter.
func (m *Manager) Issue(ctx context.Context, phone string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}

	pipe := m.client.TxPipeline()
	pipe.Set(ctx, codeKey(phone), code, m.ttl)
	pipe.Del(ctx, attemptsKey(phone))
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return code, nil
}

// Verify checks a submitted code. The code is consumed on success. Each failed
// attempt is counted; exceeding the attempt limit invalidates the code.
func (m *Manager) Verify(ctx context.Context, phone, code string) error {
	stored, err := m.client.Get(ctx, codeKey(phone)).Result()
	if errors.Is(err, redis.Nil) {
		return ErrCodeExpired
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) == 1 {
		m.client.Del(ctx, codeKey(phone), attemptsKey(phone))
		return nil
	}

	attempts, err := m.client.Incr(ctx, attemptsKey(phone)).Result()
	if err == nil {
		m.client.Expire(ctx, attemptsKey(phone), m.ttl)
		if attempts >= int64(m.maxAttempts) {
			m.client.Del(ctx, codeKey(phone), attemptsKey(phone))
			return ErrTooManyAttempts
		}
	}

	return ErrCodeExpired
}

func codeKey(phone string) string {
	return "otp:" + phone
}

func attemptsKey(phone string) string {
	return "otp:" + phone + ":attempts"
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
