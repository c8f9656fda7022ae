package binding

import "component-generator/internal/analyze"

const coffeePkg = "component-generator/examples/coffee"

func coffeeType(name string) *analyze.TypeInfo {
	return analyze.Named(analyze.TypeID{PkgPath: coffeePkg, Name: name}, analyze.TypeKindStruct)
}

func providerOf(t *analyze.TypeInfo) *analyze.TypeInfo {
	return analyze.Parameterized(analyze.TypeID{PkgPath: "component-generator/di", Name: "Provider"}, t)
}
