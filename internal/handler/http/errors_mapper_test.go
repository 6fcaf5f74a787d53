package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/task-tracker/internal/service"
	"github.com/MKhiriev/task-tracker/internal/store"
	"github.com/MKhiriev/task-tracker/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: header", ErrMissingToken), http.StatusUnauthorized},
		{service.ErrInvalidToken, http.StatusForbidden},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("user creation ended with error: %w", store.ErrUsernameAlreadyExists), http.StatusConflict},
		{fmt.Errorf("task lookup failed: %w", store.ErrTaskNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: %w", store.ErrTaskNotFound, ErrInvalidTaskID), http.StatusNotFound},
		{validators.Errors{{Field: "title", Constraint: "notEmpty"}}, http.StatusBadRequest},
		{fmt.Errorf("%w: eof", ErrInvalidJSON), http.StatusBadRequest},
		{fmt.Errorf("%w: boom", store.ErrExecutingQuery), http.StatusInternalServerError},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestLookupError_FirstListedSentinelWins(t *testing.T) {
	err := fmt.Errorf("%w: %w", store.ErrTaskNotFound, service.ErrInvalidToken)

	for range 50 {
		status, message := lookupError(err)
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, service.ErrInvalidToken.Error(), message)
	}
}
