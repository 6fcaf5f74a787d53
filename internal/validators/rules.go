package validators

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Constraint names reported in FieldError.Constraint.
const (
	ConstraintRequired       = "required"
	ConstraintNotEmpty       = "notEmpty"
	ConstraintMinLength      = "minLength"
	ConstraintMaxLength      = "maxLength"
	ConstraintMaxBytes       = "maxBytes"
	ConstraintEmail          = "email"
	ConstraintOneOf          = "oneOf"
	ConstraintDateTime       = "datetime"
	ConstraintNonNegativeInt = "nonNegativeInt"
)

// DateOnlyLayout is the accepted date-only form of a due date.
const DateOnlyLayout = time.DateOnly

// Rule checks a single optional string value. A nil value means the field
// was absent from the request. Rule returns the violated constraint, or an
// empty string when the value passes.
//
// Every rule except Required passes on an absent value.
type Rule func(value *string) string

var primitives = validator.New(validator.WithRequiredStructEnabled())

// Required rejects an absent or blank value.
func Required() Rule {
	return func(value *string) string {
		if value == nil || strings.TrimSpace(*value) == "" {
			return ConstraintRequired
		}
		return ""
	}
}

// NotEmptyIfPresent rejects a value that was sent but is blank.
func NotEmptyIfPresent() Rule {
	return func(value *string) string {
		if value != nil && strings.TrimSpace(*value) == "" {
			return ConstraintNotEmpty
		}
		return ""
	}
}

// MinLength rejects values shorter than n characters.
func MinLength(n int) Rule {
	return func(value *string) string {
		if value != nil && utf8.RuneCountInString(*value) < n {
			return fmt.Sprintf("%s=%d", ConstraintMinLength, n)
		}
		return ""
	}
}

// MaxLength rejects values longer than n characters.
func MaxLength(n int) Rule {
	return func(value *string) string {
		if value != nil && utf8.RuneCountInString(*value) > n {
			return fmt.Sprintf("%s=%d", ConstraintMaxLength, n)
		}
		return ""
	}
}

// MaxBytes rejects values whose UTF-8 encoding is longer than n bytes.
func MaxBytes(n int) Rule {
	return func(value *string) string {
		if value != nil && len(*value) > n {
			return fmt.Sprintf("%s=%d", ConstraintMaxBytes, n)
		}
		return ""
	}
}

// Email rejects values that are not email-shaped.
func Email() Rule {
	return func(value *string) string {
		if value != nil && primitives.Var(*value, "email") != nil {
			return ConstraintEmail
		}
		return ""
	}
}

// OneOf rejects values outside allowed.
func OneOf(allowed ...string) Rule {
	return func(value *string) string {
		if value == nil {
			return ""
		}
		for _, a := range allowed {
			if *value == a {
				return ""
			}
		}
		return fmt.Sprintf("%s=%s", ConstraintOneOf, strings.Join(allowed, "|"))
	}
}

// DateTime rejects values that are neither RFC 3339 timestamps nor
// YYYY-MM-DD dates.
func DateTime() Rule {
	return func(value *string) string {
		if value == nil {
			return ""
		}
		if _, _, err := ParseDueDate(*value); err != nil {
			return ConstraintDateTime
		}
		return ""
	}
}

// NonNegativeInt rejects values that are not base-10 integers in
// [0, math.MaxInt64].
func NonNegativeInt() Rule {
	return func(value *string) string {
		if value == nil {
			return ""
		}
		if _, err := ParseNonNegativeInt(*value); err != nil {
			return ConstraintNonNegativeInt
		}
		return ""
	}
}

// ParseNonNegativeInt parses a limit or offset. Values above
// math.MaxInt64 are rejected since SQL drivers cannot bind them.
func ParseNonNegativeInt(value string) (uint64, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %d", n)
	}
	return uint64(n), nil
}

// ParseDueDate parses an ISO date-time. dateOnly reports whether the value
// named a whole calendar day, in which case t is midnight UTC of that day.
func ParseDueDate(value string) (t time.Time, dateOnly bool, err error) {
	if t, err = time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), false, nil
	}
	if t, err = time.Parse(DateOnlyLayout, value); err == nil {
		return t, true, nil
	}
	return time.Time{}, false, fmt.Errorf("invalid date-time %q", value)
}
