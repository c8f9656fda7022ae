package binding

import (
	"fmt"

	"component-generator/di"
	"component-generator/internal/analyze"
	"component-generator/internal/common"
)

// Kind is the binding-key kind: what the generated field supplies.
type Kind int

const (
	// KindContribution bindings supply values of the key type.
	KindContribution Kind = iota
	// KindMembersInjection bindings inject members of an existing instance.
	KindMembersInjection
)

// String returns the kind as written in component files.
func (k Kind) String() string {
	switch k {
	case KindContribution:
		return "contribution"
	case KindMembersInjection:
		return "members_injection"
	default:
		return common.UnknownStr
	}
}

// ParseKind parses a Kind as written in component files. Empty means contribution.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "contribution":
		return KindContribution, nil
	case "members_injection":
		return KindMembersInjection, nil
	default:
		return 0, fmt.Errorf("unknown binding kind %q", s)
	}
}

// BindingType says how a binding is executed at runtime.
type BindingType int

const (
	TypeProvision BindingType = iota
	TypeProduction
	TypeMembersInjection
)

// String returns the binding type as written in component files.
func (t BindingType) String() string {
	switch t {
	case TypeProvision:
		return "provision"
	case TypeProduction:
		return "production"
	case TypeMembersInjection:
		return "members_injection"
	default:
		return common.UnknownStr
	}
}

// ParseBindingType parses a BindingType. Empty means provision.
func ParseBindingType(s string) (BindingType, error) {
	switch s {
	case "", "provision":
		return TypeProvision, nil
	case "production":
		return TypeProduction, nil
	case "members_injection":
		return TypeMembersInjection, nil
	default:
		return 0, fmt.Errorf("unknown binding type %q", s)
	}
}

// FrameworkClass returns the framework class that fields for this binding type use.
func (t BindingType) FrameworkClass() analyze.TypeID {
	switch t {
	case TypeProduction:
		return FrameworkClass(di.ProducerClass)
	case TypeMembersInjection:
		return FrameworkClass(di.MembersInjectorClass)
	default:
		return FrameworkClass(di.ProviderClass)
	}
}

// FrameworkClass returns the TypeID of a framework class declared in package di.
func FrameworkClass(name string) analyze.TypeID {
	return analyze.TypeID{PkgPath: di.PkgPath, Name: name}
}

// ContributionType is the shape a contribution binding contributes in.
type ContributionType int

const (
	// ContributionUnique provides the whole value of its key.
	ContributionUnique ContributionType = iota
	// ContributionMap contributes one entry into a multibound map.
	ContributionMap
	// ContributionSet contributes one element into a multibound set.
	ContributionSet
	// ContributionSetValues contributes a whole collection of elements into a multibound set.
	ContributionSetValues
)

// String returns the contribution type as written in component files.
func (c ContributionType) String() string {
	switch c {
	case ContributionUnique:
		return "unique"
	case ContributionMap:
		return "map"
	case ContributionSet:
		return "set"
	case ContributionSetValues:
		return "set_values"
	default:
		return common.UnknownStr
	}
}

// IsMultibinding reports whether the contribution feeds a multibound collection.
func (c ContributionType) IsMultibinding() bool {
	return c == ContributionMap || c == ContributionSet || c == ContributionSetValues
}

// ParseContributionType parses a ContributionType. Empty means unique.
func ParseContributionType(s string) (ContributionType, error) {
	switch s {
	case "", "unique":
		return ContributionUnique, nil
	case "map":
		return ContributionMap, nil
	case "set":
		return ContributionSet, nil
	case "set_values":
		return ContributionSetValues, nil
	default:
		return 0, fmt.Errorf("unknown contribution type %q", s)
	}
}
