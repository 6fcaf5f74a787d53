package validators

import (
	"context"
	"slices"

	"github.com/MKhiriev/task-tracker/models"
)

// RequestValidator implements Validator for every request shape accepted
// by the HTTP API. Both values and pointers are accepted.
type RequestValidator struct{}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return restrict(SignupSchema, fields).Check(signupValues(value))
	case *models.SignupRequest:
		return v.Validate(ctx, *value, fields...)

	case models.LoginRequest:
		return restrict(LoginSchema, fields).Check(loginValues(value))
	case *models.LoginRequest:
		return v.Validate(ctx, *value, fields...)

	case models.TaskRequest:
		return restrict(CreateTaskSchema, fields).Check(taskValues(value))
	case *models.TaskRequest:
		return v.Validate(ctx, *value, fields...)

	case models.UpdateTaskRequest:
		return restrict(UpdateTaskSchema, fields).Check(taskValues(value.TaskRequest))
	case *models.UpdateTaskRequest:
		return v.Validate(ctx, *value, fields...)

	case models.StatusRequest:
		return restrict(StatusSchema, fields).Check(map[string]*string{FieldStatus: value.Status})
	case *models.StatusRequest:
		return v.Validate(ctx, *value, fields...)

	case models.TaskListQuery:
		return restrict(TaskFilterSchema, fields).Check(filterValues(value))
	case *models.TaskListQuery:
		return v.Validate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// restrict keeps only the named fields of s; no names keeps all of them.
func restrict(s Schema, fields []string) Schema {
	if len(fields) == 0 {
		return s
	}

	restricted := make(Schema, 0, len(fields))
	for _, fs := range s {
		if slices.Contains(fields, fs.Field) {
			restricted = append(restricted, fs)
		}
	}
	return restricted
}

func signupValues(r models.SignupRequest) map[string]*string {
	return map[string]*string{
		FieldUsername:    &r.Username,
		FieldPassword:    &r.Password,
		FieldEmail:       &r.Email,
		FieldPhoneNumber: &r.PhoneNumber,
	}
}

func loginValues(r models.LoginRequest) map[string]*string {
	return map[string]*string{
		FieldUsername: &r.Username,
		FieldPassword: &r.Password,
	}
}

func taskValues(r models.TaskRequest) map[string]*string {
	return map[string]*string{
		FieldTitle:       r.Title,
		FieldDescription: r.Description,
		FieldStatus:      r.Status,
		FieldDueDate:     r.DueDate,
	}
}

// filterValues treats empty query parameters as absent.
func filterValues(q models.TaskListQuery) map[string]*string {
	values := make(map[string]*string, 4)
	for field, raw := range map[string]string{
		FieldStatus:  q.Status,
		FieldDueDate: q.DueDate,
		FieldLimit:   q.Limit,
		FieldOffset:  q.Offset,
	} {
		if raw != "" {
			values[field] = &raw
		}
	}
	return values
}
