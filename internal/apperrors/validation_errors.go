package apperrors

import "strings"

// FieldViolation is a single structural rule violation, tied to the field a
// form would need to highlight.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors accumulates every violation found in one validation pass.
// Callers get the full list at once rather than fixing violations one at a
// time.
type ValidationErrors []FieldViolation

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, violation := range v {
		msgs[i] = violation.Field + ": " + violation.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Is makes errors.Is(err, ErrValidation) hold for any ValidationErrors value.
func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// HasField reports whether any violation concerns the given field.
func (v ValidationErrors) HasField(field string) bool {
	for _, violation := range v {
		if violation.Field == field {
			return true
		}
	}
	return false
}
