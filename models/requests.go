package models

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TaskRequest is the body of POST /tasks.
// Pointer fields distinguish an absent field from an empty one.
type TaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`

	// DueDate is an ISO 8601 date-time (RFC 3339) or a plain YYYY-MM-DD date.
	DueDate *string `json:"dueDate,omitempty"`

	Status *string `json:"status,omitempty"`
}

// UpdateTaskRequest is the body of PUT /tasks/{id}. It carries the same
// fields as TaskRequest but replaces every one of them: absent fields are
// reset to their defaults.
type UpdateTaskRequest struct {
	TaskRequest
}

// StatusRequest is the body of PATCH /tasks/{id}/complete.
type StatusRequest struct {
	Status *string `json:"status,omitempty"`
}

// TaskListQuery holds the raw query-string filters of GET /tasks before
// validation and conversion into a TaskFilter.
type TaskListQuery struct {
	Status  string
	DueDate string
	Limit   string
	Offset  string
}
