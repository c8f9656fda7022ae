package binding

import (
	"fmt"
)

//go:generate go tool stringer -type=OriginKind -linecomment -output=originkind_string.go

// OriginKind is the shape of the declaration a binding originates from.
type OriginKind int

const (
	OriginUnknown     OriginKind = iota // unknown
	OriginConstructor                   // constructor
	OriginMethod                        // method
	OriginType                          // type
	OriginOther                         // other
)

// ParseOriginKind parses the kinds that may be declared in component files.
func ParseOriginKind(s string) (OriginKind, error) {
	switch s {
	case OriginConstructor.String():
		return OriginConstructor, nil
	case OriginMethod.String():
		return OriginMethod, nil
	case OriginType.String():
		return OriginType, nil
	default:
		return OriginUnknown, fmt.Errorf("unknown origin kind %q", s)
	}
}

// Origin is the declaration a binding comes from.
//
// Constructors carry their enclosing type in Enclosing; methods and types
// carry their simple name in Name; OriginOther carries a description of the
// unsupported declaration in Name.
type Origin struct {
	Kind      OriginKind
	Name      string
	Enclosing *Origin
}

// ConstructorOrigin returns the origin of a binding built by constructing enclosing.
func ConstructorOrigin(enclosing Origin) *Origin {
	return &Origin{Kind: OriginConstructor, Enclosing: &enclosing}
}

// MethodOrigin returns the origin of a binding provided by a factory method or function.
func MethodOrigin(name string) *Origin {
	return &Origin{Kind: OriginMethod, Name: name}
}

// TypeOrigin returns the origin of a binding declared by a type.
func TypeOrigin(name string) *Origin {
	return &Origin{Kind: OriginType, Name: name}
}

// OtherOrigin returns the origin of a binding declared by something that cannot
// originate bindings, such as a variable.
func OtherOrigin(description string) *Origin {
	return &Origin{Kind: OriginOther, Name: description}
}

// String renders the origin for diagnostics.
func (o *Origin) String() string {
	if o == nil {
		return "<none>"
	}

	if o.Kind == OriginConstructor {
		return fmt.Sprintf("%s of %s", o.Kind, o.Enclosing)
	}

	return fmt.Sprintf("%s %s", o.Kind, o.Name)
}
