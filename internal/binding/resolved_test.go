package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"component-generator/di"
	"component-generator/internal/analyze"
)

func TestNewResolvedBindings_FrameworkClass(t *testing.T) {
	key := NewKey(coffeeType("Heater"), "")

	tests := []struct {
		name     string
		kind     Kind
		bindings []Binding
		expected string
	}{
		{"provision", KindContribution, []Binding{{Key: key}}, di.ProviderClass},
		{"no bindings", KindContribution, nil, di.ProviderClass},
		{
			"any production",
			KindContribution,
			[]Binding{{Key: key}, {Key: key, BindingType: TypeProduction}},
			di.ProducerClass,
		},
		{
			"members injection",
			KindMembersInjection,
			[]Binding{{Key: key, Kind: KindMembersInjection, BindingType: TypeMembersInjection}},
			di.MembersInjectorClass,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rb := NewResolvedBindings(key, tt.kind, tt.bindings...)
			assert.Equal(t, FrameworkClass(tt.expected), rb.FrameworkClass())
		})
	}
}

func TestResolvedBindings_Multibinding(t *testing.T) {
	mapKey := NewKey(analyze.MapOf(analyze.Basic("string"), providerOf(analyze.Basic("int"))), "")

	single := NewResolvedBindings(mapKey, KindContribution,
		Binding{Key: mapKey, ContributionType: ContributionMap})
	assert.True(t, single.IsMultibindingContribution())
	assert.Equal(t, ContributionMap, single.ContributionType())

	several := NewResolvedBindings(mapKey, KindContribution,
		Binding{Key: mapKey, ContributionType: ContributionMap},
		Binding{Key: mapKey, ContributionType: ContributionMap})
	assert.False(t, several.IsMultibindingContribution())
	assert.Equal(t, ContributionMap, several.ContributionType())

	unique := NewResolvedBindings(mapKey, KindContribution, Binding{Key: mapKey})
	assert.False(t, unique.IsMultibindingContribution())

	members := NewResolvedBindings(mapKey, KindMembersInjection,
		Binding{Key: mapKey, Kind: KindMembersInjection, ContributionType: ContributionMap})
	assert.False(t, members.IsMultibindingContribution())
	assert.Equal(t, ContributionUnique, members.ContributionType())
}

func TestResolvedBindings_Binding(t *testing.T) {
	key := NewKey(coffeeType("Pump"), "")
	origin := MethodOrigin("ProvidePump")

	only := NewResolvedBindings(key, KindContribution, Binding{Key: key, Origin: origin})

	b, ok := only.ContributionBinding()
	require.True(t, ok)
	assert.Same(t, origin, b.Origin)
	assert.True(t, only.Binding().HasOrigin())

	several := NewResolvedBindings(key, KindContribution,
		Binding{Key: key, Origin: origin, BindingType: TypeProduction},
		Binding{Key: key, Origin: origin})

	_, ok = several.ContributionBinding()
	assert.False(t, ok)

	synthesized := several.Binding()
	assert.False(t, synthesized.HasOrigin())
	assert.Equal(t, TypeProduction, synthesized.BindingType)
	assert.True(t, synthesized.Key.Equal(key))
}

func TestResolvedBindings_BindingsIsACopy(t *testing.T) {
	key := NewKey(coffeeType("Pump"), "")
	rb := NewResolvedBindings(key, KindContribution, Binding{Key: key})

	got := rb.Bindings()
	got[0].Origin = TypeOrigin("Mutated")

	assert.Nil(t, rb.Bindings()[0].Origin)
}

func TestKey(t *testing.T) {
	heater := coffeeType("Heater")

	assert.True(t, NewKey(heater, "").Equal(NewKey(coffeeType("Heater"), "")))
	assert.False(t, NewKey(heater, "").Equal(NewKey(heater, "backup")))
	assert.False(t, NewKey(heater, "").Equal(NewKey(coffeeType("Pump"), "")))

	assert.Equal(t, "coffee.Heater", NewKey(heater, "").String())
	assert.Equal(t, "backup:*coffee.Heater", NewKey(analyze.PointerTo(heater), "backup").String())
}
