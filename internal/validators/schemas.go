package validators

import "github.com/MKhiriev/task-tracker/models"

// Field names as they appear in request bodies and query strings.
const (
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldEmail       = "email"
	FieldPhoneNumber = "phoneNumber"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldDueDate     = "dueDate"
	FieldLimit       = "limit"
	FieldOffset      = "offset"
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// FieldSchema lists the rules applied to one field.
type FieldSchema struct {
	Field string
	Rules []Rule
}

// Schema is an ordered set of field rules for one request shape.
type Schema []FieldSchema

// Check runs every rule against values and collects the first violation
// per field. The result is nil when nothing failed.
func (s Schema) Check(values map[string]*string) error {
	var errs Errors
	for _, fs := range s {
		for _, rule := range fs.Rules {
			if constraint := rule(values[fs.Field]); constraint != "" {
				errs = append(errs, models.FieldError{Field: fs.Field, Constraint: constraint})
				break
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func statusValues() []string {
	values := make([]string, 0, len(models.TaskStatuses))
	for _, s := range models.TaskStatuses {
		values = append(values, s.String())
	}
	return values
}

var (
	SignupSchema = Schema{
		{Field: FieldUsername, Rules: []Rule{Required(), MinLength(3), MaxLength(50)}},
		{Field: FieldPassword, Rules: []Rule{Required(), MinLength(6), MaxBytes(MaxPasswordBytes)}},
		{Field: FieldEmail, Rules: []Rule{Required(), MinLength(6), MaxLength(100), Email()}},
		{Field: FieldPhoneNumber, Rules: []Rule{Required(), MinLength(10), MaxLength(15)}},
	}

	LoginSchema = Schema{
		{Field: FieldUsername, Rules: []Rule{Required()}},
		{Field: FieldPassword, Rules: []Rule{Required()}},
	}

	CreateTaskSchema = Schema{
		{Field: FieldTitle, Rules: []Rule{NotEmptyIfPresent(), MaxLength(255)}},
		{Field: FieldStatus, Rules: []Rule{OneOf(statusValues()...)}},
		{Field: FieldDueDate, Rules: []Rule{DateTime()}},
	}

	// UpdateTaskSchema validates a full replace. Absent fields are reset
	// to their defaults by the service, so nothing here is required.
	UpdateTaskSchema = Schema{
		{Field: FieldTitle, Rules: []Rule{NotEmptyIfPresent(), MaxLength(255)}},
		{Field: FieldStatus, Rules: []Rule{OneOf(statusValues()...)}},
		{Field: FieldDueDate, Rules: []Rule{DateTime()}},
	}

	StatusSchema = Schema{
		{Field: FieldStatus, Rules: []Rule{Required(), OneOf(statusValues()...)}},
	}

	TaskFilterSchema = Schema{
		{Field: FieldStatus, Rules: []Rule{OneOf(statusValues()...)}},
		{Field: FieldDueDate, Rules: []Rule{DateTime()}},
		{Field: FieldLimit, Rules: []Rule{NonNegativeInt()}},
		{Field: FieldOffset, Rules: []Rule{NonNegativeInt()}},
	}
)
