package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/task-tracker/models"
)

// WriteJSON serializes data to JSON and writes it with the given status code.
//
// It sets the "Content-Type" header to "application/json". If marshaling
// fails it responds with 500 Internal Server Error and returns a wrapped error.
//
//	WriteJSON(w, task, http.StatusCreated)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes a models.ErrorResponse body. fieldErrors may be nil.
func WriteError(w http.ResponseWriter, message string, fieldErrors []models.FieldError, statusCode int) (int, error) {
	return WriteJSON(w, models.ErrorResponse{Message: message, Errors: fieldErrors}, statusCode)
}
