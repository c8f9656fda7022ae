// Package di holds the runtime framework classes that generated containers
// store their bindings in.
//
// A generated container keeps one field per binding, typed as one of the
// framework classes parameterized over the binding's value type:
//
//	heaterProvider  di.Provider[coffee.Heater]
//	pumpProducer    di.Producer[coffee.Pump]
//	coffeeMakerLazy di.Lazy[*coffee.CoffeeMaker]
//
// The code generator refers to these types by name only, through PkgPath
// and the *Class constants.
package di

// PkgPath is the import path of this package as seen by the code generator.
const PkgPath = "component-generator/di"

// Framework class names, as they appear in generated field types.
const (
	ProviderClass        = "Provider"
	ProducerClass        = "Producer"
	LazyClass            = "Lazy"
	MembersInjectorClass = "MembersInjector"
)
