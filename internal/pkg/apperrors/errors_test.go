package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorUnwrap(t *testing.T) {
	err := NewCustomError(ErrClientNotFound, "Client session missing")

	assert.Equal(t, "Client session missing", err.Error())
	assert.True(t, errors.Is(err, ErrClientNotFound))
	assert.False(t, errors.Is(err, ErrNotAuthenticated))
}

func TestCustomErrorFallsBackToWrappedMessage(t *testing.T) {
	err := NewCustomError(ErrUserNotFound, "")
	assert.Equal(t, ErrUserNotFound.Error(), err.Error())

	empty := &CustomError{}
	assert.Equal(t, "unknown error", empty.Error())
}

func TestCustomErrorWithDetails(t *testing.T) {
	err := NewCustomError(ErrScreenNotFound, "Page not found").
		WithDetails(map[string]interface{}{"path": "/nowhere"})

	assert.Equal(t, "/nowhere", err.Details["path"])
	assert.True(t, errors.Is(err, ErrScreenNotFound))
}
