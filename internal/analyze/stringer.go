package analyze

import (
	"go/types"
	"strconv"
	"strings"

	"component-generator/internal/common"
)

// TypeStringer renders TypeInfo values in Go syntax, qualifying named types
// by their package name (e.g. "map[string]di.Provider[coffee.Heater]").
type TypeStringer struct {
	graph *TypeGraph
}

// NewTypeStringer creates a new TypeStringer. The graph is optional; when
// present it supplies declared package names instead of path-derived aliases.
func NewTypeStringer(graph *TypeGraph) *TypeStringer {
	return &TypeStringer{graph: graph}
}

// TypeString returns the Go source representation of t.
func (s *TypeStringer) TypeString(t *TypeInfo) string {
	var sb strings.Builder

	s.write(&sb, t)

	return sb.String()
}

func (s *TypeStringer) write(sb *strings.Builder, t *TypeInfo) {
	if t == nil {
		sb.WriteString(common.InterfaceTypeStr)
		return
	}

	if t.IsNamed() {
		s.writeNamed(sb, t)
		return
	}

	switch t.Kind {
	case TypeKindPointer:
		sb.WriteString("*")
		s.write(sb, t.ElemType)

	case TypeKindSlice:
		sb.WriteString("[]")
		s.write(sb, t.ElemType)

	case TypeKindArray:
		sb.WriteString("[" + strconv.FormatInt(t.Len, 10) + "]")
		s.write(sb, t.ElemType)

	case TypeKindMap:
		sb.WriteString("map[")
		s.write(sb, t.KeyType)
		sb.WriteString("]")
		s.write(sb, t.ElemType)

	case TypeKindStruct:
		if len(t.Fields) == 0 {
			sb.WriteString(common.EmptyStructStr)
			return
		}

		sb.WriteString("struct{...}")

	case TypeKindInterface:
		if iface, ok := t.GoType.(*types.Interface); ok && !iface.Empty() {
			sb.WriteString(iface.String())
			return
		}

		sb.WriteString(common.InterfaceTypeStr)

	default:
		if t.GoType != nil {
			sb.WriteString(t.GoType.String())
			return
		}

		sb.WriteString(common.InterfaceTypeStr)
	}
}

func (s *TypeStringer) writeNamed(sb *strings.Builder, t *TypeInfo) {
	if pkg := s.pkgName(t.ID.PkgPath); pkg != "" {
		sb.WriteString(pkg)
		sb.WriteString(".")
	}

	sb.WriteString(t.ID.Name)

	if len(t.TypeArgs) == 0 {
		return
	}

	sb.WriteString("[")

	for i, arg := range t.TypeArgs {
		if i > 0 {
			sb.WriteString(", ")
		}

		s.write(sb, arg)
	}

	sb.WriteString("]")
}

// pkgName returns the package name for a given package path.
// It tries to look up the name from the type graph, falling back to the path base alias.
func (s *TypeStringer) pkgName(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	if s.graph != nil {
		if pkgInfo, ok := s.graph.Packages[pkgPath]; ok {
			return pkgInfo.Name
		}
	}

	return common.PkgAlias(pkgPath)
}

// TypeString renders t without a type graph.
func TypeString(t *TypeInfo) string {
	return NewTypeStringer(nil).TypeString(t)
}

// TypeKey renders t with full package paths. Identical types have equal keys,
// so the key can stand in for t where types are hashed.
func TypeKey(t *TypeInfo) string {
	var sb strings.Builder

	writeKey(&sb, t)

	return sb.String()
}

func writeKey(sb *strings.Builder, t *TypeInfo) {
	if t == nil {
		return
	}

	if t.IsNamed() {
		sb.WriteString(t.ID.String())

		if len(t.TypeArgs) == 0 {
			return
		}

		sb.WriteString("[")

		for i, arg := range t.TypeArgs {
			if i > 0 {
				sb.WriteString(", ")
			}

			writeKey(sb, arg)
		}

		sb.WriteString("]")

		return
	}

	switch t.Kind {
	case TypeKindPointer:
		sb.WriteString("*")
		writeKey(sb, t.ElemType)

	case TypeKindSlice:
		sb.WriteString("[]")
		writeKey(sb, t.ElemType)

	case TypeKindArray:
		sb.WriteString("[" + strconv.FormatInt(t.Len, 10) + "]")
		writeKey(sb, t.ElemType)

	case TypeKindMap:
		sb.WriteString("map[")
		writeKey(sb, t.KeyType)
		sb.WriteString("]")
		writeKey(sb, t.ElemType)

	case TypeKindStruct:
		if len(t.Fields) == 0 {
			sb.WriteString(common.EmptyStructStr)
			return
		}

		sb.WriteString("struct{...}")

	case TypeKindInterface:
		sb.WriteString(common.InterfaceTypeStr)

	default:
		if t.GoType != nil {
			sb.WriteString(t.GoType.String())
		}
	}
}

// Identical reports whether a and b describe the same type.
// Named types compare by ID and type arguments; composite types compare structurally.
func Identical(a, b *TypeInfo) bool {
	if a == b {
		return true
	}

	if a == nil || b == nil {
		return false
	}

	if a.IsNamed() || b.IsNamed() {
		return a.ID == b.ID && identicalList(a.TypeArgs, b.TypeArgs)
	}

	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case TypeKindPointer, TypeKindSlice:
		return Identical(a.ElemType, b.ElemType)

	case TypeKindArray:
		return a.Len == b.Len && Identical(a.ElemType, b.ElemType)

	case TypeKindMap:
		return Identical(a.KeyType, b.KeyType) && Identical(a.ElemType, b.ElemType)

	case TypeKindStruct:
		return len(a.Fields) == 0 && len(b.Fields) == 0

	case TypeKindInterface:
		return true

	default:
		return a.GoType != nil && b.GoType != nil && a.GoType.String() == b.GoType.String()
	}
}

func identicalList(a, b []*TypeInfo) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !Identical(a[i], b[i]) {
			return false
		}
	}

	return true
}
