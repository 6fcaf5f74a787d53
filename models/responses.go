package models

import "time"

// SignupResponse is returned with 201 after a successful signup.
type SignupResponse struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
}

// LoginResponse is returned with 200 after a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// FieldError names a single failed constraint of a request field.
type FieldError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
}

// ErrorResponse is the JSON body of every non-2xx response.
// Errors is only populated for validation failures.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}
