package validation

import (
	"fmt"
)

// FieldError describes why a single request field was rejected. FieldErrors are
// meant to be presented to users.
type FieldError struct {
	// Field is the wire name of the rejected field
	Field string `json:"field"`

	// Why indicates why the field was rejected
	Why string `json:"error"`
}

// Error implements error
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Why)
}
