package field

import (
	"github.com/ygrebnov/errorc"

	"component-generator/internal/binding"
)

// ErrInvariantViolation is returned when a binding's origin is a declaration
// that cannot originate a binding. The binding model handed to the generator
// is inconsistent; no field name is guessed. Use errors.Is to match.
var ErrInvariantViolation = errorc.New("component: invariant violation: unexpected binding origin")

// ErrorField is a structured error field key attached to errors of this package.
type ErrorField string

// Structured error field keys attached to ErrInvariantViolation.
const (
	ErrorFieldKey    ErrorField = "component.binding.key"
	ErrorFieldOrigin ErrorField = "component.binding.origin"
)

func invariantViolation(b binding.Binding, origin *binding.Origin) error {
	return errorc.With(
		ErrInvariantViolation,
		errorc.String(ErrorFieldKey, b.Key.String()),
		errorc.String(ErrorFieldOrigin, origin.String()),
	)
}
