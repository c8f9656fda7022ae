package analyze

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
)

// basicTypes lists the predeclared type names accepted in type expressions.
var basicTypes = map[string]bool{
	"bool": true, "string": true, "error": true, "rune": true, "byte": true,
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true, "uintptr": true,
	"float32": true, "float64": true, "complex64": true, "complex128": true,
}

// UnknownPackageError reports a package qualifier missing from the import table.
type UnknownPackageError struct {
	Alias string
}

func (e *UnknownPackageError) Error() string {
	return fmt.Sprintf("unknown package %q", e.Alias)
}

// TypeParser turns Go type expressions such as "map[string]di.Provider[coffee.Heater]"
// into TypeInfo values. Package qualifiers are resolved through Imports
// (alias -> import path). When Graph is set, named types found in it are
// returned with their analyzed kind and structure.
type TypeParser struct {
	Imports map[string]string
	Graph   *TypeGraph
}

// NewTypeParser creates a TypeParser. graph may be nil.
func NewTypeParser(imports map[string]string, graph *TypeGraph) *TypeParser {
	return &TypeParser{Imports: imports, Graph: graph}
}

// Parse parses a single type expression.
func (p *TypeParser) Parse(expr string) (*TypeInfo, error) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return nil, fmt.Errorf("parsing type %q: %w", expr, err)
	}

	t, err := p.convert(node)
	if err != nil {
		return nil, fmt.Errorf("type %q: %w", expr, err)
	}

	return t, nil
}

// ResolveQualified resolves "alias.Name" into a TypeID using the import table.
func (p *TypeParser) ResolveQualified(alias, name string) (TypeID, error) {
	path, ok := p.Imports[alias]
	if !ok {
		return TypeID{}, &UnknownPackageError{Alias: alias}
	}

	return TypeID{PkgPath: path, Name: name}, nil
}

func (p *TypeParser) convert(node ast.Expr) (*TypeInfo, error) {
	switch n := node.(type) {
	case *ast.ParenExpr:
		return p.convert(n.X)

	case *ast.Ident:
		return p.ident(n)

	case *ast.SelectorExpr:
		return p.selector(n)

	case *ast.StarExpr:
		elem, err := p.convert(n.X)
		if err != nil {
			return nil, err
		}

		return PointerTo(elem), nil

	case *ast.ArrayType:
		return p.array(n)

	case *ast.MapType:
		key, err := p.convert(n.Key)
		if err != nil {
			return nil, err
		}

		elem, err := p.convert(n.Value)
		if err != nil {
			return nil, err
		}

		return MapOf(key, elem), nil

	case *ast.StructType:
		if n.Fields != nil && len(n.Fields.List) > 0 {
			return nil, fmt.Errorf("only struct{} is supported as an inline struct type")
		}

		return EmptyStruct(), nil

	case *ast.InterfaceType:
		if n.Methods != nil && len(n.Methods.List) > 0 {
			return nil, fmt.Errorf("only interface{} is supported as an inline interface type")
		}

		return &TypeInfo{Kind: TypeKindInterface}, nil

	case *ast.IndexExpr:
		return p.instantiate(n.X, []ast.Expr{n.Index})

	case *ast.IndexListExpr:
		return p.instantiate(n.X, n.Indices)

	default:
		return nil, fmt.Errorf("unsupported type expression %T", node)
	}
}

func (p *TypeParser) ident(n *ast.Ident) (*TypeInfo, error) {
	switch {
	case n.Name == "any":
		return &TypeInfo{Kind: TypeKindInterface}, nil
	case basicTypes[n.Name]:
		return Basic(n.Name), nil
	default:
		return nil, fmt.Errorf("unqualified type %q: named types must be package-qualified", n.Name)
	}
}

func (p *TypeParser) selector(n *ast.SelectorExpr) (*TypeInfo, error) {
	pkg, ok := n.X.(*ast.Ident)
	if !ok {
		return nil, fmt.Errorf("unsupported qualifier in %s", n.Sel.Name)
	}

	id, err := p.ResolveQualified(pkg.Name, n.Sel.Name)
	if err != nil {
		return nil, err
	}

	if p.Graph != nil {
		if known := p.Graph.GetType(id); known != nil {
			return known, nil
		}
	}

	return Named(id, TypeKindExternal), nil
}

func (p *TypeParser) array(n *ast.ArrayType) (*TypeInfo, error) {
	elem, err := p.convert(n.Elt)
	if err != nil {
		return nil, err
	}

	if n.Len == nil {
		return SliceOf(elem), nil
	}

	lit, ok := n.Len.(*ast.BasicLit)
	if !ok || lit.Kind != token.INT {
		return nil, fmt.Errorf("array length must be an integer literal")
	}

	size, err := strconv.ParseInt(lit.Value, 0, 64)
	if err != nil {
		return nil, fmt.Errorf("array length %s: %w", lit.Value, err)
	}

	return &TypeInfo{Kind: TypeKindArray, ElemType: elem, Len: size}, nil
}

func (p *TypeParser) instantiate(generic ast.Expr, indices []ast.Expr) (*TypeInfo, error) {
	base, err := p.convert(generic)
	if err != nil {
		return nil, err
	}

	if !base.IsNamed() || base.Kind == TypeKindBasic {
		return nil, fmt.Errorf("%s is not a generic type", TypeString(base))
	}

	args := make([]*TypeInfo, 0, len(indices))

	for _, idx := range indices {
		arg, err := p.convert(idx)
		if err != nil {
			return nil, err
		}

		args = append(args, arg)
	}

	// Copy so the graph's shared generic declaration stays uninstantiated.
	inst := *base
	inst.TypeArgs = args
	inst.GoType = nil

	return &inst, nil
}
