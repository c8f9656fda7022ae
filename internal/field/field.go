package field

import (
	"strings"

	"component-generator/internal/analyze"
	"component-generator/internal/binding"
)

// FrameworkField is a field in a generated component.
// Two fields are equal when their types are identical and their names match.
// Compare with Equal and hash with Key: == and map keys compare the type by
// pointer.
type FrameworkField struct {
	typ  *analyze.TypeInfo
	name string
}

// Create creates a framework field of type frameworkClass[valueType].
// The framework class's name is appended to fieldName as a suffix unless
// fieldName already ends with it.
func Create(frameworkClass analyze.TypeID, valueType *analyze.TypeInfo, fieldName string) FrameworkField {
	return FrameworkField{
		typ:  analyze.Parameterized(frameworkClass, valueType),
		name: ApplySuffix(fieldName, frameworkClass),
	}
}

// ForResolvedBindings creates the framework field for rb. A zero
// frameworkClass selects the bindings' own framework class.
//
// The only error is ErrInvariantViolation, for bindings whose origin cannot
// name a field.
func ForResolvedBindings(rb *binding.ResolvedBindings, frameworkClass analyze.TypeID) (FrameworkField, error) {
	if frameworkClass.IsZero() {
		frameworkClass = rb.FrameworkClass()
	}

	name, err := frameworkFieldName(rb)
	if err != nil {
		return FrameworkField{}, err
	}

	return Create(frameworkClass, fieldValueType(rb), name), nil
}

// ApplySuffix appends the framework class name to base unless base already
// ends with it. It is idempotent.
func ApplySuffix(base string, frameworkClass analyze.TypeID) string {
	suffix := frameworkClass.Name
	if strings.HasSuffix(base, suffix) {
		return base
	}

	return base + suffix
}

// Type returns the parameterized field type.
func (f FrameworkField) Type() *analyze.TypeInfo {
	return f.typ
}

// Name returns the field identifier.
func (f FrameworkField) Name() string {
	return f.name
}

// Equal reports whether f and other describe the same field.
func (f FrameworkField) Equal(other FrameworkField) bool {
	return f.name == other.name && analyze.Identical(f.typ, other.typ)
}

// Key returns a structural identity for f. Equal fields have equal keys.
func (f FrameworkField) Key() string {
	return f.name + " " + analyze.TypeKey(f.typ)
}

// String renders the field as a Go field declaration, e.g. "heaterProvider di.Provider[coffee.Heater]".
func (f FrameworkField) String() string {
	return f.name + " " + analyze.TypeString(f.typ)
}
