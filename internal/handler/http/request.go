package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/task-tracker/internal/store"
	"github.com/MKhiriev/task-tracker/internal/utils"
)

// decodeJSON reads the request body into dst. An empty body is accepted
// only when allowEmpty is set, leaving dst untouched.
func decodeJSON(r *http.Request, dst any, allowEmpty bool) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) && allowEmpty {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// taskIDFromRequest parses the {id} path segment. A malformed id is
// reported as a missing task.
func taskIDFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %w: %q", store.ErrTaskNotFound, ErrInvalidTaskID, raw)
	}
	return id, nil
}

// userIDFromRequest returns the identity stored by the auth middleware.
func userIDFromRequest(r *http.Request) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, ErrMissingToken
	}
	return userID, nil
}
