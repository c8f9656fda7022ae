package field_test

import (
	"fmt"

	"component-generator/internal/analyze"
	"component-generator/internal/binding"
	"component-generator/internal/field"
)

func ExampleForResolvedBindings() {
	heater := analyze.Named(analyze.TypeID{PkgPath: "example.com/coffee", Name: "Heater"}, analyze.TypeKindInterface)
	key := binding.NewKey(heater, "")

	rb := binding.NewResolvedBindings(key, binding.KindContribution, binding.Binding{
		Key:    key,
		Origin: binding.MethodOrigin("ProvideHeater"),
	})

	f, err := field.ForResolvedBindings(rb, analyze.TypeID{})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(f)
	// Output: ProvideHeaterProvider di.Provider[coffee.Heater]
}
