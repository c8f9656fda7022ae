package field

import (
	"component-generator/internal/analyze"
	"component-generator/internal/binding"
)

// fieldValueType returns the type the framework class is parameterized over.
//
// A single contribution into a multibound map stores the map's values with
// the framework class stripped (map[K]di.Provider[V] yields V); a single
// contribution into a set stores the set's element type. Every other key,
// including keys whose type does not have the expected collection shape,
// uses the key type as-is.
func fieldValueType(rb *binding.ResolvedBindings) *analyze.TypeInfo {
	keyType := rb.Key().Type

	if rb.IsMultibindingContribution() {
		switch rb.ContributionType() {
		case binding.ContributionMap:
			if m, ok := analyze.AsMap(keyType); ok {
				return m.UnwrappedValueType(rb.FrameworkClass())
			}

		case binding.ContributionSet:
			if s, ok := analyze.AsSet(keyType); ok {
				return s.ElementType()
			}

		default:
			// set_values contributions hold the whole collection.
		}
	}

	return keyType
}
