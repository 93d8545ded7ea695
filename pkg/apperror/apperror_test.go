package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAppErrorPassthrough(t *testing.T) {
	err := NewNotFoundError("Course")

	appErr := GetAppError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Equal(t, "Course not found", appErr.Message)
}

func TestGetAppErrorUnwrapsChain(t *testing.T) {
	wrapped := fmt.Errorf("checkout: %w", ErrAmountMismatch)

	appErr := GetAppError(wrapped)
	assert.Equal(t, http.StatusConflict, appErr.Code)
	assert.True(t, errors.Is(wrapped, ErrAmountMismatch))
}

func TestGetAppErrorWrapsUnknown(t *testing.T) {
	appErr := GetAppError(errors.New("driver: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, "driver: connection reset", appErr.Message)
}

func TestIsAppError(t *testing.T) {
	assert.True(t, IsAppError(NewBadRequestError("nope")))
	assert.True(t, IsAppError(fmt.Errorf("wrapped: %w", ErrForbidden)))
	assert.False(t, IsAppError(errors.New("plain")))
}

func TestNewValidationError(t *testing.T) {
	appErr := NewValidationError([]FieldError{{Field: "email", Message: "invalid"}})

	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	assert.Len(t, appErr.Errors, 1)
	assert.Equal(t, "email", appErr.Errors[0].Field)
}
