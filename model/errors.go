package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// MalformedPatternError reports pattern text that does not follow its format's grammar
type MalformedPatternError struct {
	Format string
	Line   int // 1-based source line, 0 when not tied to a line
	Reason string
}

func (e *MalformedPatternError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed %s pattern (line %d): %s", e.Format, e.Line, e.Reason)
	}
	return fmt.Sprintf("malformed %s pattern: %s", e.Format, e.Reason)
}

// InvalidConfigurationError reports a requested configuration that would break a grid invariant
type InvalidConfigurationError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %q: %s", e.Field, e.Reason)
}

// NewMalformedPattern returns a MalformedPatternError carrying a stack trace
func NewMalformedPattern(format string, line int, reason string, args ...any) error {
	return errors.WithStack(&MalformedPatternError{
		Format: format,
		Line:   line,
		Reason: fmt.Sprintf(reason, args...),
	})
}

// NewInvalidConfiguration returns an InvalidConfigurationError carrying a stack trace
func NewInvalidConfiguration(field, reason string, args ...any) error {
	return errors.WithStack(&InvalidConfigurationError{
		Field:  field,
		Reason: fmt.Sprintf(reason, args...),
	})
}

// IsMalformedPattern reports whether err wraps a MalformedPatternError
func IsMalformedPattern(err error) bool {
	var target *MalformedPatternError
	return errors.As(err, &target)
}

// IsInvalidConfiguration reports whether err wraps an InvalidConfigurationError
func IsInvalidConfiguration(err error) bool {
	var target *InvalidConfigurationError
	return errors.As(err, &target)
}
