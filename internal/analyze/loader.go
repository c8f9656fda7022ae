package analyze

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph plus a table of the
// exported declarations that can originate bindings.
type Analyzer struct {
	graph     *TypeGraph
	typeCache map[types.Type]*TypeInfo // Cache to handle recursive types
	loading   map[string]bool          // Package paths requested by the current load
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph:     NewTypeGraph(),
		typeCache: make(map[types.Type]*TypeInfo),
		loading:   make(map[string]bool),
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./examples/coffee").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	// Register packages first so that isExternalPackage sees all of them.
	for _, pkg := range pkgs {
		a.loading[pkg.PkgPath] = true
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage extracts types and declarations from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	if pkg.Types == nil {
		return fmt.Errorf("no type information")
	}

	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if !obj.Exported() {
			continue
		}

		id := TypeID{PkgPath: pkg.PkgPath, Name: name}

		switch o := obj.(type) {
		case *types.TypeName:
			typeInfo := a.analyzeType(o.Type())
			typeInfo.ID = id

			a.graph.Types[id] = typeInfo
			a.graph.Symbols[id] = &SymbolInfo{ID: id, Kind: SymbolType, Name: name}
			pkgInfo.Types = append(pkgInfo.Types, id)

			if named, ok := o.Type().(*types.Named); ok {
				a.processMethods(named, id)
			}

		case *types.Func:
			a.graph.Symbols[id] = &SymbolInfo{ID: id, Kind: SymbolFunc, Name: name}

		case *types.Var:
			a.graph.Symbols[id] = &SymbolInfo{ID: id, Kind: SymbolVar, Name: name}

		case *types.Const:
			a.graph.Symbols[id] = &SymbolInfo{ID: id, Kind: SymbolConst, Name: name}
		}
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo

	return nil
}

// processMethods records the exported methods declared on a named type.
func (a *Analyzer) processMethods(named *types.Named, recv TypeID) {
	for i := range named.NumMethods() {
		m := named.Method(i)
		if !m.Exported() {
			continue
		}

		id := TypeID{PkgPath: recv.PkgPath, Name: recv.Name + "." + m.Name()}
		a.graph.Symbols[id] = &SymbolInfo{ID: id, Kind: SymbolMethod, Recv: recv, Name: m.Name()}
	}
}

// analyzeType recursively analyzes a go/types.Type and returns a TypeInfo.
func (a *Analyzer) analyzeType(t types.Type) *TypeInfo {
	// Check cache to handle recursive types
	if cached, ok := a.typeCache[t]; ok {
		return cached
	}

	info := &TypeInfo{
		GoType: t,
	}

	// Pre-cache to handle recursive types (we'll fill in details)
	a.typeCache[t] = info

	switch tt := t.(type) {
	case *types.Named:
		a.analyzeNamedType(tt, info)

	case *types.Alias:
		// Aliases are transparent: describe the aliased type in place.
		*info = *a.analyzeType(types.Unalias(tt))

	case *types.Basic:
		info.Kind = TypeKindBasic
		info.ID = TypeID{Name: tt.Name()}

	case *types.Pointer:
		info.Kind = TypeKindPointer
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Slice:
		info.Kind = TypeKindSlice
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Array:
		info.Kind = TypeKindArray
		info.Len = tt.Len()
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Map:
		info.Kind = TypeKindMap
		info.KeyType = a.analyzeType(tt.Key())
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(tt, info)

	case *types.Interface:
		info.Kind = TypeKindInterface

	default:
		// Channels, functions, type parameters etc. are not binding keys.
		info.Kind = TypeKindUnknown
	}

	return info
}

// analyzeNamedType analyzes a named type.
func (a *Analyzer) analyzeNamedType(named *types.Named, info *TypeInfo) {
	obj := named.Obj()

	pkgPath := ""
	if obj.Pkg() != nil {
		pkgPath = obj.Pkg().Path()
	}

	info.ID = TypeID{
		PkgPath: pkgPath,
		Name:    obj.Name(),
	}

	if args := named.TypeArgs(); args != nil {
		for i := range args.Len() {
			info.TypeArgs = append(info.TypeArgs, a.analyzeType(args.At(i)))
		}
	}

	if pkgPath == "" {
		// Universe-scope named types such as error.
		info.Kind = TypeKindInterface
		return
	}

	underlying := named.Underlying()

	switch ut := underlying.(type) {
	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(ut, info)

	case *types.Interface:
		info.Kind = TypeKindInterface

	default:
		if a.isExternalPackage(pkgPath) {
			info.Kind = TypeKindExternal
		} else {
			// Named type wrapping something else in our packages (e.g. type Flavor string)
			info.Kind = TypeKindAlias
			info.Underlying = a.analyzeType(ut)
		}
	}
}

// isExternalPackage returns true if the package is not in our analyzed set.
func (a *Analyzer) isExternalPackage(pkgPath string) bool {
	if a.loading[pkgPath] {
		return false
	}

	_, ok := a.graph.Packages[pkgPath]

	return !ok
}

// analyzeStructFields extracts exported fields from a struct type.
func (a *Analyzer) analyzeStructFields(st *types.Struct, info *TypeInfo) {
	for i := range st.NumFields() {
		field := st.Field(i)

		if !field.Exported() {
			continue
		}

		fieldInfo := FieldInfo{
			Name:     field.Name(),
			Exported: field.Exported(),
			Type:     a.analyzeType(field.Type()),
			Embedded: field.Embedded(),
			Index:    i,
		}

		info.Fields = append(info.Fields, fieldInfo)
	}
}

// GetSymbol returns the declaration for "Name" or "Recv.Method" in pkgPath.
func (a *Analyzer) GetSymbol(pkgPath, name string) (*SymbolInfo, error) {
	id := TypeID{PkgPath: pkgPath, Name: name}

	sym := a.graph.GetSymbol(id)
	if sym == nil {
		return nil, fmt.Errorf("symbol %s not found", id)
	}

	return sym, nil
}
