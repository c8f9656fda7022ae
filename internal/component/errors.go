package component

import (
	"errors"
	"fmt"
)

var (
	// ErrSymbolNeedsGraph is returned when a symbol reference is resolved
	// without a loaded type graph.
	ErrSymbolNeedsGraph = errors.New("symbol references need loaded packages")
	// ErrInvalidOriginKind is returned for origin kinds other than constructor, method and type.
	ErrInvalidOriginKind = errors.New("invalid origin kind")
	// ErrMissingOriginName is returned for method and type origins without a name.
	ErrMissingOriginName = errors.New("origin name is required")
	// ErrMissingEnclosing is returned for constructor origins without an enclosing type.
	ErrMissingEnclosing = errors.New("constructor origin needs an enclosing type")
)

// InvalidIdentifierError reports a component file value that cannot become
// part of a Go field name.
type InvalidIdentifierError struct {
	// Field is the component file field holding Value, e.g. "origin.name".
	Field string
	Value string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("%s %q is not a valid Go identifier", e.Field, e.Value)
}

// UnknownSymbolError reports a symbol reference that matches no declaration.
type UnknownSymbolError struct {
	Symbol string
	// Candidates are the declarations known in the referenced package.
	Candidates []string
	Reason     string
}

func (e *UnknownSymbolError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("symbol %q: %s", e.Symbol, e.Reason)
	}

	return fmt.Sprintf("unknown symbol %q", e.Symbol)
}
