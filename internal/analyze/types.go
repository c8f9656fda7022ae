package analyze

import (
	"go/types"

	"component-generator/internal/common"
)

// TypeID uniquely identifies a named type (or framework class) by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "component-generator/di"
	Name    string // e.g., "Provider"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// IsZero reports whether the TypeID is unset.
func (t TypeID) IsZero() bool {
	return t.PkgPath == "" && t.Name == ""
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice of another type
	TypeKindArray              // array of another type
	TypeKindMap                // map from KeyType to ElemType
	TypeKindInterface          // interface type
	TypeKindAlias              // named type wrapping another
	TypeKindExternal           // named type outside the loaded graph
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	case TypeKindInterface:
		return "interface"
	case TypeKindAlias:
		return "alias"
	case TypeKindExternal:
		return "external"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type in the type graph.
//
// Named types carry an ID; instantiated generic types additionally carry
// TypeArgs. Composite types (pointer, slice, array, map) carry ElemType and,
// for maps, KeyType.
type TypeInfo struct {
	ID         TypeID      // Unique identifier (empty for unnamed types like *T or []T)
	Kind       TypeKind    // Kind of type
	Underlying *TypeInfo   // For named types, the underlying type
	ElemType   *TypeInfo   // For pointers, slices, arrays and maps, the element type
	KeyType    *TypeInfo   // For maps, the key type
	TypeArgs   []*TypeInfo // For instantiated generic types, the type arguments
	Len        int64       // For arrays, the length
	Fields     []FieldInfo // For structs, the list of fields
	GoType     types.Type  // The original go/types.Type, nil for parsed types
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// IsParameterized returns true if this is an instantiated generic type.
func (t *TypeInfo) IsParameterized() bool {
	return t.IsNamed() && len(t.TypeArgs) > 0
}

// Named returns a reference to a named type with the given kind.
func Named(id TypeID, kind TypeKind) *TypeInfo {
	return &TypeInfo{ID: id, Kind: kind}
}

// Basic returns a predeclared basic type such as int or string.
func Basic(name string) *TypeInfo {
	return &TypeInfo{ID: TypeID{Name: name}, Kind: TypeKindBasic}
}

// Parameterized applies the generic type class to args, e.g. di.Provider[Heater].
func Parameterized(class TypeID, args ...*TypeInfo) *TypeInfo {
	return &TypeInfo{
		ID:       class,
		Kind:     TypeKindExternal,
		TypeArgs: args,
	}
}

// PointerTo returns *elem.
func PointerTo(elem *TypeInfo) *TypeInfo {
	return &TypeInfo{Kind: TypeKindPointer, ElemType: elem}
}

// SliceOf returns []elem.
func SliceOf(elem *TypeInfo) *TypeInfo {
	return &TypeInfo{Kind: TypeKindSlice, ElemType: elem}
}

// MapOf returns map[key]elem.
func MapOf(key, elem *TypeInfo) *TypeInfo {
	return &TypeInfo{Kind: TypeKindMap, KeyType: key, ElemType: elem}
}

// EmptyStruct returns struct{}.
func EmptyStruct() *TypeInfo {
	return &TypeInfo{Kind: TypeKindStruct}
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string    // Go field name
	Exported bool      // Whether the field is exported
	Type     *TypeInfo // Field type
	Embedded bool      // Whether the field is embedded (anonymous)
	Index    int       // Field index in the struct
}

// SymbolKind classifies a package-level declaration.
type SymbolKind int

const (
	SymbolUnknown SymbolKind = iota
	SymbolType
	SymbolFunc
	SymbolMethod
	SymbolVar
	SymbolConst
)

// String returns a human-readable representation of the SymbolKind.
func (k SymbolKind) String() string {
	switch k {
	case SymbolType:
		return "type"
	case SymbolFunc:
		return "func"
	case SymbolMethod:
		return "method"
	case SymbolVar:
		return "var"
	case SymbolConst:
		return "const"
	default:
		return common.UnknownStr
	}
}

// SymbolInfo describes an exported declaration that may originate a binding.
type SymbolInfo struct {
	// ID is the package path plus the declared name; methods use "Recv.Method".
	ID   TypeID
	Kind SymbolKind
	// Recv is the receiver's named type for methods.
	Recv TypeID
	// Name is the simple name (the method name for methods).
	Name string
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Symbols maps declaration IDs to their descriptions.
	Symbols map[TypeID]*SymbolInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Symbols:  make(map[TypeID]*SymbolInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// GetSymbol returns the SymbolInfo for a given declaration ID, or nil if not found.
func (g *TypeGraph) GetSymbol(id TypeID) *SymbolInfo {
	return g.Symbols[id]
}

// SymbolNames returns the declared names known for pkgPath, for suggestions.
func (g *TypeGraph) SymbolNames(pkgPath string) []string {
	var names []string

	for id := range g.Symbols {
		if id.PkgPath == pkgPath {
			names = append(names, id.Name)
		}
	}

	return names
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package
}
