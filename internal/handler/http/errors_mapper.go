package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/task-tracker/internal/logger"
	"github.com/MKhiriev/task-tracker/internal/service"
	"github.com/MKhiriev/task-tracker/internal/store"
	"github.com/MKhiriev/task-tracker/internal/utils"
	"github.com/MKhiriev/task-tracker/internal/validators"
)

const internalErrorMessage = "internal server error"

// errorStatuses is checked in order, so an error wrapping several
// sentinels maps to the first one listed.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrMissingToken, http.StatusUnauthorized},
	{ErrInvalidJSON, http.StatusBadRequest},

	{validators.ErrValidationFailed, http.StatusBadRequest},

	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrInvalidToken, http.StatusForbidden},
	{service.ErrInvalidUserID, http.StatusForbidden},

	{store.ErrUsernameAlreadyExists, http.StatusConflict},
	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrTaskNotFound, http.StatusNotFound},
}

// lookupError returns the status for err and the message safe to show to
// the client. Unknown errors are 500 with a generic message.
func lookupError(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status, e.err.Error()
		}
	}
	return http.StatusInternalServerError, internalErrorMessage
}

func statusFromError(err error) int {
	status, _ := lookupError(err)
	return status
}

// writeError renders err as an ErrorResponse. Validation failures carry
// their field errors; 5xx bodies never carry details.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	if fieldErrors, ok := validators.AsFieldErrors(err); ok {
		log.Debug().Err(err).Msg("request failed validation")
		utils.WriteError(w, validators.ErrValidationFailed.Error(), fieldErrors, http.StatusBadRequest)
		return
	}

	status, message := lookupError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("unexpected error occurred")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, nil, status)
}

func writeNotFound(w http.ResponseWriter) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), nil, http.StatusNotFound)
}
