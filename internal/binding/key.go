package binding

import "component-generator/internal/analyze"

// Key identifies a dependency target: a type plus an optional qualifier.
type Key struct {
	Type      *analyze.TypeInfo
	Qualifier string
}

// NewKey returns a Key for typ with an optional qualifier.
func NewKey(typ *analyze.TypeInfo, qualifier string) Key {
	return Key{Type: typ, Qualifier: qualifier}
}

// Equal reports whether k and other denote the same dependency.
func (k Key) Equal(other Key) bool {
	return k.Qualifier == other.Qualifier && analyze.Identical(k.Type, other.Type)
}

// String renders the key as "qualifier:type", or just "type" when unqualified.
func (k Key) String() string {
	typ := analyze.TypeString(k.Type)
	if k.Qualifier == "" {
		return typ
	}

	return k.Qualifier + ":" + typ
}
