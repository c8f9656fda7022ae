// Package analyze provides the semantic type model used for binding keys,
// package loading, and type graph extraction.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to build a
// canonical in-memory model of named types and of the exported declarations
// (types, functions, methods, variables) that may originate bindings.
// Type expressions written by hand are parsed with go/parser.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (basic/struct/pointer/slice/array/map/interface/alias/external)
//     plus type arguments for instantiated generics
//   - SymbolInfo: an exported declaration and its kind
//   - MapType, SetType: views used when unwrapping multibinding keys
package analyze
