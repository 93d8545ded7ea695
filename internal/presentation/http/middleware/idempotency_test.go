package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/speakwise/speakwise-api/internal/domain/entity"
	"github.com/speakwise/speakwise-api/internal/infrastructure/repository"
)

func setupIdempotencyRouter(t *testing.T, userID uuid.UUID) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.IdempotencyKey{}))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	repo := repository.NewIdempotencyRepository(db)

	calls := 0
	router := gin.New()
	router.POST("/orders",
		func(c *gin.Context) { c.Set("user_id", userID) },
		IdempotencyRequired(IdempotencyConfig{Repo: repo}),
		func(c *gin.Context) {
			calls++
			c.JSON(http.StatusCreated, gin.H{"success": true, "attempt": calls})
		})
	return router
}

func TestIdempotencyRequiredRejectsMissingKey(t *testing.T) {
	router := setupIdempotencyRouter(t, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("{}"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Idempotency-Key header is required")
}

func TestIdempotencyRequiredReplaysCachedResponse(t *testing.T) {
	router := setupIdempotencyRouter(t, uuid.New())

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("{}"))
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	router.ServeHTTP(first, req)

	require.Equal(t, http.StatusCreated, first.Code)
	assert.Empty(t, first.Header().Get("X-Idempotency-Replayed"))

	second := httptest.NewRecorder()
	replay := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("{}"))
	replay.Header.Set(IdempotencyKeyHeader, "key-1")
	router.ServeHTTP(second, replay)

	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestIdempotencyRequiredDistinctKeysExecuteSeparately(t *testing.T) {
	router := setupIdempotencyRouter(t, uuid.New())

	for i := 1; i <= 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("{}"))
		req.Header.Set(IdempotencyKeyHeader, fmt.Sprintf("key-%d", i))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), fmt.Sprintf(`"attempt":%d`, i))
	}
}

func TestIdempotencyRequiredUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.IdempotencyKey{}))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	router := gin.New()
	router.POST("/orders",
		IdempotencyRequired(IdempotencyConfig{Repo: repository.NewIdempotencyRepository(db)}),
		func(c *gin.Context) { c.JSON(http.StatusCreated, gin.H{"success": true}) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("{}"))
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIdempotencyOptionalPassthroughWithoutKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.IdempotencyKey{}))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	calls := 0
	router := gin.New()
	router.POST("/things",
		Idempotency(IdempotencyConfig{Repo: repository.NewIdempotencyRepository(db)}),
		func(c *gin.Context) {
			calls++
			c.JSON(http.StatusOK, gin.H{"success": true})
		})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/things", strings.NewReader("{}"))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, 2, calls)
}
