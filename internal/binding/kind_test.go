package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKinds_RoundTrip(t *testing.T) {
	for _, k := range []Kind{KindContribution, KindMembersInjection} {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	for _, bt := range []BindingType{TypeProvision, TypeProduction, TypeMembersInjection} {
		got, err := ParseBindingType(bt.String())
		require.NoError(t, err)
		assert.Equal(t, bt, got)
	}

	for _, ct := range []ContributionType{ContributionUnique, ContributionMap, ContributionSet, ContributionSetValues} {
		got, err := ParseContributionType(ct.String())
		require.NoError(t, err)
		assert.Equal(t, ct, got)
	}

	for _, o := range []OriginKind{OriginConstructor, OriginMethod, OriginType} {
		got, err := ParseOriginKind(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}
}

func TestParseKinds_Defaults(t *testing.T) {
	k, err := ParseKind("")
	require.NoError(t, err)
	assert.Equal(t, KindContribution, k)

	bt, err := ParseBindingType("")
	require.NoError(t, err)
	assert.Equal(t, TypeProvision, bt)

	ct, err := ParseContributionType("")
	require.NoError(t, err)
	assert.Equal(t, ContributionUnique, ct)
}

func TestParseKinds_Errors(t *testing.T) {
	_, err := ParseKind("provider")
	assert.Error(t, err)

	_, err = ParseBindingType("lazy")
	assert.Error(t, err)

	_, err = ParseContributionType("list")
	assert.Error(t, err)

	_, err = ParseOriginKind("other")
	assert.Error(t, err, "other origins cannot be declared")

	_, err = ParseOriginKind("field")
	assert.Error(t, err)
}

func TestContributionType_IsMultibinding(t *testing.T) {
	assert.False(t, ContributionUnique.IsMultibinding())
	assert.True(t, ContributionMap.IsMultibinding())
	assert.True(t, ContributionSet.IsMultibinding())
	assert.True(t, ContributionSetValues.IsMultibinding())
}

func TestOrigin_String(t *testing.T) {
	assert.Equal(t, "method ProvideHeater", MethodOrigin("ProvideHeater").String())
	assert.Equal(t, "type CoffeeMaker", TypeOrigin("CoffeeMaker").String())
	assert.Equal(t, "constructor of type CoffeeMaker", ConstructorOrigin(*TypeOrigin("CoffeeMaker")).String())
	assert.Equal(t, "other var DefaultStrength", OtherOrigin("var DefaultStrength").String())
	assert.Equal(t, "<none>", (*Origin)(nil).String())
	assert.Equal(t, "OriginKind(9)", OriginKind(9).String())
}
