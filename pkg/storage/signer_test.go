package storage

import (
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSignedURL(t *testing.T, raw string) (expires int64, sig string) {
	t.Helper()

	u, err := url.Parse(raw)
	require.NoError(t, err)

	expires, err = strconv.ParseInt(u.Query().Get("expires"), 10, 64)
	require.NoError(t, err)

	sig = u.Query().Get("sig")
	require.NotEmpty(t, sig)
	return expires, sig
}

func TestSignedURLRoundTrip(t *testing.T) {
	signer := NewURLSigner("https://assets.example.com", "signing-secret", 15*time.Minute)

	raw := signer.SignedURL("videos", "course-1/module-3.mp4")
	assert.True(t, strings.HasPrefix(raw, "https://assets.example.com/videos/"))

	expires, sig := parseSignedURL(t, raw)
	assert.NoError(t, signer.Verify("videos", "course-1/module-3.mp4", expires, sig))
}

func TestSignedURLTamperedKey(t *testing.T) {
	signer := NewURLSigner("https://assets.example.com", "signing-secret", 15*time.Minute)

	expires, sig := parseSignedURL(t, signer.SignedURL("videos", "course-1/module-3.mp4"))

	assert.ErrorIs(t, signer.Verify("videos", "course-1/module-4.mp4", expires, sig), ErrInvalidSignature)
	assert.ErrorIs(t, signer.Verify("thumbnails", "course-1/module-3.mp4", expires, sig), ErrInvalidSignature)
	assert.ErrorIs(t, signer.Verify("videos", "course-1/module-3.mp4", expires+1, sig), ErrInvalidSignature)
}

func TestSignedURLWrongSecret(t *testing.T) {
	signer := NewURLSigner("https://assets.example.com", "signing-secret", 15*time.Minute)
	other := NewURLSigner("https://assets.example.com", "different-secret", 15*time.Minute)

	expires, sig := parseSignedURL(t, signer.SignedURL("videos", "clip.mp4"))
	assert.ErrorIs(t, other.Verify("videos", "clip.mp4", expires, sig), ErrInvalidSignature)
}

func TestSignedURLExpiry(t *testing.T) {
	signer := NewURLSigner("https://assets.example.com", "signing-secret", 15*time.Minute)

	issued := time.Now()
	signer.now = func() time.Time { return issued }
	expires, sig := parseSignedURL(t, signer.SignedURL("videos", "clip.mp4"))

	signer.now = func() time.Time { return issued.Add(14 * time.Minute) }
	assert.NoError(t, signer.Verify("videos", "clip.mp4", expires, sig))

	signer.now = func() time.Time { return issued.Add(16 * time.Minute) }
	assert.ErrorIs(t, signer.Verify("videos", "clip.mp4", expires, sig), ErrExpired)
}

func TestSignedURLDefaultTTL(t *testing.T) {
	signer := NewURLSigner("https://assets.example.com", "signing-secret", 0)
	assert.Equal(t, 15*time.Minute, signer.ttl)
}

func TestSignedURLEscapesKey(t *testing.T) {
	signer := NewURLSigner("https://assets.example.com", "signing-secret", time.Minute)

	raw := signer.SignedURL("videos", "week 1/intro.mp4")
	assert.NotContains(t, raw, " ")

	expires, sig := parseSignedURL(t, raw)
	assert.NoError(t, signer.Verify("videos", "week 1/intro.mp4", expires, sig))
}
