// Package binding models resolved dependency-injection bindings as handed to
// the field generator by the binding-graph resolver.
//
// A Key names what is injected (a type plus an optional qualifier), a Binding
// says how one Key is satisfied and where it came from (its Origin), and
// ResolvedBindings aggregates the bindings that satisfy a Key together with
// the framework class the generated field is wrapped in.
//
// All values are treated as immutable once constructed.
package binding
