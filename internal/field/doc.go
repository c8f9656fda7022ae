// Package field computes the framework fields of a generated component: the
// storage field that holds a binding's runtime supplier.
//
// A FrameworkField has a type, the framework class parameterized over the
// binding's value type (di.Provider[coffee.Heater]), and a name derived from
// the binding's origin plus the framework class as suffix (heaterProvider).
//
// Examples:
//   - di.Provider[string] stringProvider
//   - di.Producer[shop.Widget] widgetProducer
//   - di.Provider[map[string]di.Provider[int]] mapOfStringAndProviderOfIntProvider
//
// Everything here is a pure function of its arguments.
package field
