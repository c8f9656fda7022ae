package field

import (
	"component-generator/internal/binding"
	"component-generator/internal/naming"
)

// frameworkFieldName returns the base field name for rb, before the
// framework class suffix is applied.
//
// Contribution bindings with an origin are named after it; everything else
// is named by binding.VariableName from its key.
func frameworkFieldName(rb *binding.ResolvedBindings) (string, error) {
	if rb.Kind() == binding.KindContribution {
		if b, ok := rb.ContributionBinding(); ok && b.HasOrigin() {
			return originName(b.Origin, b)
		}
	}

	return binding.VariableName(rb.Binding()), nil
}

// originName names a field after the declaration a binding comes from.
func originName(origin *binding.Origin, b binding.Binding) (string, error) {
	if origin == nil {
		return "", invariantViolation(b, origin)
	}

	switch origin.Kind {
	case binding.OriginConstructor:
		// Constructors have no usable name of their own.
		return originName(origin.Enclosing, b)

	case binding.OriginMethod:
		return origin.Name, nil

	case binding.OriginType:
		return naming.LowerCamel(origin.Name), nil

	default:
		return "", invariantViolation(b, origin)
	}
}
