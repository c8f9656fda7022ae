package binding

import (
	"strings"

	"component-generator/internal/analyze"
	"component-generator/internal/naming"
)

// fallbackVariableName is used when a binding's key yields no name at all.
const fallbackVariableName = "binding"

// VariableName derives a deterministic variable name for a binding from its
// key alone. It is used when a binding has no originating declaration to
// borrow a name from.
//
// The name is the qualifier (upper-camel), then the key type's simple name,
// then any type arguments as "Of<A>And<B>", lower-camel cased:
//
//	coffee.Heater                  -> heater
//	backup:coffee.Heater           -> backupHeater
//	map[string]di.Provider[Price]  -> mapOfStringAndProviderOfPrice
//
// Set contributions are named after their element type. Names that are Go
// keywords get a trailing underscore and names starting with a digit a
// leading one.
func VariableName(b Binding) string {
	var sb strings.Builder

	if b.Key.Qualifier != "" {
		sb.WriteString(naming.UpperCamel(b.Key.Qualifier))
	}

	writeTypeName(&sb, typeToName(b))

	name := naming.LowerCamel(sb.String())
	if name == "" {
		name = fallbackVariableName
	}

	return naming.ProtectKeyword(naming.ProtectLeadingDigit(name))
}

func typeToName(b Binding) *analyze.TypeInfo {
	if b.Kind == KindContribution && b.ContributionType == ContributionSet {
		if set, ok := analyze.AsSet(b.Key.Type); ok {
			return set.ElementType()
		}
	}

	return b.Key.Type
}

func writeTypeName(sb *strings.Builder, t *analyze.TypeInfo) {
	if t == nil {
		return
	}

	if t.IsNamed() {
		sb.WriteString(naming.UpperCamel(t.ID.Name))
		writeTypeArgs(sb, t.TypeArgs...)

		return
	}

	switch t.Kind {
	case analyze.TypeKindPointer:
		writeTypeName(sb, t.ElemType)

	case analyze.TypeKindSlice:
		sb.WriteString("Slice")
		writeTypeArgs(sb, t.ElemType)

	case analyze.TypeKindArray:
		sb.WriteString("Array")
		writeTypeArgs(sb, t.ElemType)

	case analyze.TypeKindMap:
		sb.WriteString("Map")
		writeTypeArgs(sb, t.KeyType, t.ElemType)

	case analyze.TypeKindStruct:
		sb.WriteString("Struct")

	case analyze.TypeKindInterface:
		sb.WriteString("Any")
	}
}

func writeTypeArgs(sb *strings.Builder, args ...*analyze.TypeInfo) {
	for i, arg := range args {
		if i == 0 {
			sb.WriteString("Of")
		} else {
			sb.WriteString("And")
		}

		writeTypeName(sb, arg)
	}
}
