// Package component loads YAML component descriptions and turns their
// binding entries into binding.ResolvedBindings.
//
// A component file lists the packages to analyze, the import aliases used
// by type expressions, and one entry per binding:
//
//	version: "1"
//	component: CoffeeComponent
//	imports:
//	  coffee: component-generator/examples/coffee
//	bindings:
//	  - key: coffee.Heater
//	    origin: {kind: method, name: ProvideHeater}
//	  - key: "*coffee.CoffeeMaker"
//	    symbol: coffee.CoffeeMaker{}
//
// The "di" alias always refers to the runtime package component-generator/di.
package component
