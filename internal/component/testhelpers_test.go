package component

import (
	"testing"

	"github.com/stretchr/testify/require"

	"component-generator/internal/analyze"
)

const coffeePkg = "component-generator/examples/coffee"

// coffeeGraph mirrors what the analyzer records for examples/coffee.
func coffeeGraph() *analyze.TypeGraph {
	g := analyze.NewTypeGraph()
	g.Packages[coffeePkg] = &analyze.PackageInfo{Path: coffeePkg, Name: "coffee"}

	addType := func(name string, kind analyze.TypeKind) *analyze.TypeInfo {
		id := analyze.TypeID{PkgPath: coffeePkg, Name: name}
		t := analyze.Named(id, kind)
		g.Types[id] = t
		g.Symbols[id] = &analyze.SymbolInfo{ID: id, Kind: analyze.SymbolType, Name: name}

		return t
	}

	addSymbol := func(name string, kind analyze.SymbolKind) {
		id := analyze.TypeID{PkgPath: coffeePkg, Name: name}
		g.Symbols[id] = &analyze.SymbolInfo{ID: id, Kind: kind, Name: name}
	}

	addMethod := func(recv, name string) {
		id := analyze.TypeID{PkgPath: coffeePkg, Name: recv + "." + name}
		g.Symbols[id] = &analyze.SymbolInfo{
			ID:   id,
			Kind: analyze.SymbolMethod,
			Recv: analyze.TypeID{PkgPath: coffeePkg, Name: recv},
			Name: name,
		}
	}

	addType("Heater", analyze.TypeKindInterface)
	addType("Pump", analyze.TypeKindInterface)
	addType("ElectricHeater", analyze.TypeKindStruct)
	addType("Thermosiphon", analyze.TypeKindStruct)
	addType("CoffeeMaker", analyze.TypeKindStruct)
	addType("DripCoffeeModule", analyze.TypeKindStruct)
	addType("Flavor", analyze.TypeKindAlias).Underlying = analyze.Basic("string")

	addSymbol("NewThermosiphon", analyze.SymbolFunc)
	addSymbol("DefaultStrength", analyze.SymbolVar)

	for _, m := range []string{"ProvideHeater", "ProvidePump", "ProvideVanilla", "ProvideEspressoPrice"} {
		addMethod("DripCoffeeModule", m)
	}

	return g
}

const header = `
version: "1"
component: TestComponent
imports:
  coffee: component-generator/examples/coffee
`

func mustParse(t *testing.T, body string) *ComponentFile {
	t.Helper()

	cf, err := Parse([]byte(header + body))
	require.NoError(t, err)

	return cf
}
