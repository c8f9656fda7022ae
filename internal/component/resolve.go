package component

import (
	"fmt"
	"go/token"
	"strings"

	"component-generator/internal/analyze"
	"component-generator/internal/binding"
	"component-generator/internal/naming"
)

// Entry is one binding of a component, ready for field computation.
type Entry struct {
	// Index is the binding's position in the component file.
	Index    int
	Bindings *binding.ResolvedBindings
	// Framework overrides the bindings' framework class when non-zero.
	Framework analyze.TypeID
}

// Label names the entry in diagnostics.
func (e Entry) Label() string {
	return bindingLabel(e.Index)
}

// Resolver turns binding specs into resolved bindings, using the file's
// import table and, for symbol references, a loaded type graph.
type Resolver struct {
	imports map[string]string
	graph   *analyze.TypeGraph
	parser  *analyze.TypeParser
}

// NewResolver creates a Resolver for cf. graph may be nil when no binding
// uses a symbol reference.
func NewResolver(cf *ComponentFile, graph *analyze.TypeGraph) *Resolver {
	return &Resolver{
		imports: cf.Imports,
		graph:   graph,
		parser:  analyze.NewTypeParser(cf.Imports, graph),
	}
}

// Resolve resolves every binding of cf in file order.
func (r *Resolver) Resolve(cf *ComponentFile) ([]Entry, error) {
	entries := make([]Entry, 0, len(cf.Bindings))

	for i := range cf.Bindings {
		spec := &cf.Bindings[i]

		rb, err := r.ResolveBinding(spec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", bindingLabel(i), err)
		}

		framework, err := r.ResolveFramework(spec.Framework)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", bindingLabel(i), err)
		}

		entries = append(entries, Entry{Index: i, Bindings: rb, Framework: framework})
	}

	return entries, nil
}

// ResolveBinding builds the resolved bindings for a single spec.
func (r *Resolver) ResolveBinding(spec *BindingSpec) (*binding.ResolvedBindings, error) {
	kind, err := binding.ParseKind(spec.Kind)
	if err != nil {
		return nil, err
	}

	bindingType, err := binding.ParseBindingType(spec.Type)
	if err != nil {
		return nil, err
	}

	contribution, err := binding.ParseContributionType(spec.Contribution)
	if err != nil {
		return nil, err
	}

	keyType, err := r.parser.Parse(spec.Key)
	if err != nil {
		return nil, err
	}

	if err := checkQualifier(spec.Qualifier); err != nil {
		return nil, err
	}

	origin, err := r.Origin(spec)
	if err != nil {
		return nil, err
	}

	key := binding.NewKey(keyType, spec.Qualifier)

	return binding.NewResolvedBindings(key, kind, binding.Binding{
		Key:              key,
		Kind:             kind,
		BindingType:      bindingType,
		ContributionType: contribution,
		Origin:           origin,
	}), nil
}

// ResolveFramework resolves a framework override such as "di.Lazy".
// An empty string yields the zero TypeID.
func (r *Resolver) ResolveFramework(expr string) (analyze.TypeID, error) {
	if expr == "" {
		return analyze.TypeID{}, nil
	}

	t, err := r.parser.Parse(expr)
	if err != nil {
		return analyze.TypeID{}, err
	}

	if !t.IsNamed() || t.Kind == analyze.TypeKindBasic || t.IsParameterized() {
		return analyze.TypeID{}, fmt.Errorf("framework %q must name an uninstantiated generic type such as di.Lazy", expr)
	}

	return t.ID, nil
}

// Origin returns the origin declared by spec: the explicit origin, the
// declaration its symbol refers to, or nil when it declares neither.
func (r *Resolver) Origin(spec *BindingSpec) (*binding.Origin, error) {
	switch {
	case spec.Origin != nil:
		return OriginFromSpec(spec.Origin)

	case spec.Symbol != "":
		ref, err := ParseSymbolRef(spec.Symbol)
		if err != nil {
			return nil, err
		}

		sym, err := r.ResolveSymbol(ref)
		if err != nil {
			return nil, err
		}

		return symbolOrigin(ref, sym), nil

	default:
		return nil, nil
	}
}

// checkQualifier reports a qualifier whose camel-cased form cannot prefix a
// variable name, such as "2nd" or "--".
func checkQualifier(q string) error {
	if q == "" || token.IsIdentifier(naming.UpperCamel(q)) {
		return nil
	}

	return &InvalidIdentifierError{Field: "qualifier", Value: q}
}

// OriginFromSpec converts an explicit origin declaration. Names must be Go
// identifiers.
func OriginFromSpec(o *OriginSpec) (*binding.Origin, error) {
	kind, err := binding.ParseOriginKind(o.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOriginKind, o.Kind)
	}

	switch kind {
	case binding.OriginConstructor:
		if o.Enclosing == "" {
			return nil, ErrMissingEnclosing
		}

		if !token.IsIdentifier(o.Enclosing) {
			return nil, &InvalidIdentifierError{Field: "origin.enclosing", Value: o.Enclosing}
		}

		return binding.ConstructorOrigin(*binding.TypeOrigin(o.Enclosing)), nil

	default:
		if o.Name == "" {
			return nil, fmt.Errorf("%w for %s origins", ErrMissingOriginName, kind)
		}

		if !token.IsIdentifier(o.Name) {
			return nil, &InvalidIdentifierError{Field: "origin.name", Value: o.Name}
		}

		if kind == binding.OriginMethod {
			return binding.MethodOrigin(o.Name), nil
		}

		return binding.TypeOrigin(o.Name), nil
	}
}

// SymbolRef is a parsed symbol reference: "coffee.NewPump",
// "coffee.DripCoffeeModule.ProvideHeater", "coffee.CoffeeMaker" or
// "coffee.CoffeeMaker{}".
type SymbolRef struct {
	Alias string
	// Name is "Decl" or "Recv.Method".
	Name string
	// Constructor is set by a trailing "{}".
	Constructor bool
}

// String renders the reference as written.
func (s SymbolRef) String() string {
	ref := s.Alias + "." + s.Name
	if s.Constructor {
		ref += "{}"
	}

	return ref
}

// ParseSymbolRef parses a symbol reference.
func ParseSymbolRef(s string) (SymbolRef, error) {
	var ref SymbolRef

	if trimmed, ok := strings.CutSuffix(s, "{}"); ok {
		ref.Constructor = true
		s = trimmed
	}

	alias, name, ok := strings.Cut(s, ".")
	if !ok || alias == "" || name == "" || strings.HasSuffix(name, ".") {
		return SymbolRef{}, &UnknownSymbolError{Symbol: s, Reason: "must be written as alias.Name or alias.Type.Method"}
	}

	ref.Alias = alias
	ref.Name = name

	return ref, nil
}

// ResolveSymbol looks ref up in the type graph.
func (r *Resolver) ResolveSymbol(ref SymbolRef) (*analyze.SymbolInfo, error) {
	if r.graph == nil {
		return nil, ErrSymbolNeedsGraph
	}

	path, ok := r.imports[ref.Alias]
	if !ok {
		return nil, &analyze.UnknownPackageError{Alias: ref.Alias}
	}

	sym := r.graph.GetSymbol(analyze.TypeID{PkgPath: path, Name: ref.Name})
	if sym == nil {
		return nil, &UnknownSymbolError{Symbol: ref.String(), Candidates: r.graph.SymbolNames(path)}
	}

	if ref.Constructor && sym.Kind != analyze.SymbolType {
		return nil, &UnknownSymbolError{Symbol: ref.String(), Reason: fmt.Sprintf("%s %s is not a type", sym.Kind, sym.Name)}
	}

	return sym, nil
}

// symbolOrigin maps a declaration to the origin of the binding it provides.
// Declarations that cannot provide bindings map to binding.OriginOther.
func symbolOrigin(ref SymbolRef, sym *analyze.SymbolInfo) *binding.Origin {
	if ref.Constructor {
		return binding.ConstructorOrigin(*binding.TypeOrigin(sym.Name))
	}

	switch sym.Kind {
	case analyze.SymbolFunc, analyze.SymbolMethod:
		return binding.MethodOrigin(sym.Name)

	case analyze.SymbolType:
		return binding.TypeOrigin(sym.Name)

	default:
		return binding.OtherOrigin(sym.Kind.String() + " " + sym.Name)
	}
}

func bindingLabel(i int) string {
	return fmt.Sprintf("bindings[%d]", i)
}
