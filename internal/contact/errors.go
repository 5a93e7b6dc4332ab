package contact

import (
	"errors"
	"fmt"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// ErrValidation is matched by every field validation failure.
var ErrValidation = errors.New(config.ErrValidation)

// FormatError reports a raw value that does not fit its field's format.
type FormatError struct {
	Field string
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s %s: %q", config.ErrInvalidFormat, e.Field, e.Value)
}

// Is lets callers match any FormatError against ErrValidation.
func (e *FormatError) Is(target error) bool {
	return target == ErrValidation
}
