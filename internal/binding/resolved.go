package binding

import (
	"slices"

	"component-generator/internal/analyze"
	"component-generator/internal/common"
)

// ResolvedBindings aggregates the bindings that jointly satisfy a Key within
// a component, together with the framework class its field is wrapped in.
type ResolvedBindings struct {
	key            Key
	kind           Kind
	bindings       []Binding
	frameworkClass analyze.TypeID
}

// NewResolvedBindings aggregates bindings for key.
//
// The framework class follows the bindings: members injection uses
// MembersInjector, any production binding makes the whole key produced
// (Producer), everything else is provided (Provider).
func NewResolvedBindings(key Key, kind Kind, bindings ...Binding) *ResolvedBindings {
	rb := &ResolvedBindings{
		key:      key,
		kind:     kind,
		bindings: slices.Clone(bindings),
	}

	rb.frameworkClass = rb.bindingType().FrameworkClass()

	return rb
}

// Key returns the key the bindings satisfy.
func (r *ResolvedBindings) Key() Key {
	return r.key
}

// Kind returns the binding-key kind.
func (r *ResolvedBindings) Kind() Kind {
	return r.kind
}

// Bindings returns a copy of the aggregated bindings.
func (r *ResolvedBindings) Bindings() []Binding {
	return slices.Clone(r.bindings)
}

// FrameworkClass returns the framework class the generated field is wrapped in.
func (r *ResolvedBindings) FrameworkClass() analyze.TypeID {
	return r.frameworkClass
}

// IsMultibindingContribution reports whether this is a single contribution
// into a multibound map or set rather than a provider of the whole value.
func (r *ResolvedBindings) IsMultibindingContribution() bool {
	b, ok := r.ContributionBinding()

	return ok && b.ContributionType.IsMultibinding()
}

// ContributionType returns the contribution shape of the aggregated bindings.
// Keys without contribution bindings are unique.
func (r *ResolvedBindings) ContributionType() ContributionType {
	if r.kind != KindContribution {
		return ContributionUnique
	}

	if first, ok := common.First(r.bindings); ok {
		return first.ContributionType
	}

	return ContributionUnique
}

// ContributionBinding returns the only contribution binding. ok is false when
// the key is not a contribution key or is satisfied by zero or several bindings.
func (r *ResolvedBindings) ContributionBinding() (Binding, bool) {
	if r.kind != KindContribution || !common.IsSingle(r.bindings) {
		return Binding{}, false
	}

	return r.bindings[0], true
}

// Binding returns the binding that represents this key for naming: the only
// binding when there is exactly one, otherwise a synthesized binding for the
// aggregated key without an origin.
func (r *ResolvedBindings) Binding() Binding {
	if common.IsSingle(r.bindings) {
		return r.bindings[0]
	}

	return Binding{
		Key:              r.key,
		Kind:             r.kind,
		BindingType:      r.bindingType(),
		ContributionType: r.ContributionType(),
	}
}

func (r *ResolvedBindings) bindingType() BindingType {
	if r.kind == KindMembersInjection {
		return TypeMembersInjection
	}

	for _, b := range r.bindings {
		if b.BindingType == TypeProduction {
			return TypeProduction
		}
	}

	return TypeProvision
}
