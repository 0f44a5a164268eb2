package store_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mealboardapp/mealboard-server/internal/store"
)

func TestErrorMessage(t *testing.T) {
	err := &store.Error{Code: http.StatusNotFound, Message: "not found"}
	assert.Equal(t, "not found", err.Error())

	wrapped := err.WithCause(errors.New("no rows"))
	assert.Contains(t, wrapped.Error(), "not found")
	assert.Contains(t, wrapped.Error(), "no rows")
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := &store.Error{Code: http.StatusInternalServerError, Message: "write failed", Err: cause}
	assert.Equal(t, cause, err.Unwrap())
}

func TestWithMessageKeepsCode(t *testing.T) {
	derived := store.ErrNotFound.WithMessage("recipe not found")
	assert.Equal(t, http.StatusNotFound, derived.HTTPCode())
	assert.Equal(t, "recipe not found", derived.Message)
	// The sentinel itself must be untouched.
	assert.Equal(t, "resource not found", store.ErrNotFound.Message)
}

func TestSentinelCodes(t *testing.T) {
	tests := []struct {
		err  *store.Error
		want int
	}{
		{store.ErrNotFound, http.StatusNotFound},
		{store.ErrAlreadyExists, http.StatusConflict},
		{store.ErrInvalidInput, http.StatusBadRequest},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.HTTPCode())
		assert.NotEmpty(t, tt.err.Message)
	}
}
