package binding

// Binding describes how one Key is satisfied.
type Binding struct {
	Key              Key
	Kind             Kind
	BindingType      BindingType
	ContributionType ContributionType
	// Origin is the declaration the binding came from; nil for synthesized
	// or implicit bindings.
	Origin *Origin
}

// HasOrigin reports whether the binding exposes an originating declaration.
func (b Binding) HasOrigin() bool {
	return b.Origin != nil
}
