package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromErrorKeepsTypedErrors(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", Clone(ErrNotFound, "course not found"))

	got := FromError(wrapped)
	assert.Equal(t, http.StatusNotFound, got.Status)
	assert.Equal(t, "course not found", got.Message)
}

func TestFromErrorHidesUnknownCause(t *testing.T) {
	got := FromError(errors.New("pq: relation \"courses\" does not exist"))

	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Equal(t, "internal server error", got.Message)
	assert.Error(t, got.Unwrap())
}

func TestClonedErrorsMatchSentinel(t *testing.T) {
	err := Clone(ErrInvalidCredentials, "")

	assert.True(t, errors.Is(err, ErrInvalidCredentials))
	assert.False(t, errors.Is(err, ErrUnauthorized))
	assert.Nil(t, FromError(nil))
}
