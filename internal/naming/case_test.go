package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowerCamel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"WidgetFactory", "widgetFactory"},
		{"Heater", "heater"},
		{"CoffeeMaker", "coffeeMaker"},
		{"HTTPClient", "hTTPClient"},
		{"X", "x"},
		{"alreadyLower", "alreadyLower"},
		{"Über", "über"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, LowerCamel(tt.input))
		})
	}
}

func TestUpperCamel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"backup", "Backup"},
		{"primary-db", "PrimaryDb"},
		{"fast.lane", "FastLane"},
		{"read_only replica", "ReadOnlyReplica"},
		{"XMLParser", "XMLParser"},
		{"v2", "V2"},
		{"--", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, UpperCamel(tt.input))
		})
	}
}

func TestProtectLeadingDigit(t *testing.T) {
	assert.Equal(t, "_2ndHeater", ProtectLeadingDigit("2ndHeater"))
	assert.Equal(t, "heater2", ProtectLeadingDigit("heater2"))
	assert.Equal(t, "_heater", ProtectLeadingDigit("_heater"))
	assert.Equal(t, "", ProtectLeadingDigit(""))
}

func TestProtectKeyword(t *testing.T) {
	assert.Equal(t, "type_", ProtectKeyword("type"))
	assert.Equal(t, "func_", ProtectKeyword("func"))
	assert.Equal(t, "map_", ProtectKeyword("map"))
	assert.Equal(t, "heater", ProtectKeyword("heater"))
	// Predeclared identifiers are not keywords.
	assert.Equal(t, "string", ProtectKeyword("string"))
}

func TestTokenizeCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"OrderID", []string{"Order", "ID"}},
		{"customerName", []string{"customer", "Name"}},
		{"XMLParser", []string{"XML", "Parser"}},
		{"getHTTPResponse", []string{"get", "HTTP", "Response"}},
		{"order_item-ID", []string{"order", "item", "ID"}},
		{"Widget2Factory", []string{"Widget2", "Factory"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, tokenizeCamelCase(tt.input))
		})
	}
}

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ProvideHeater", "provideheater"},
		{"provide_heater", "provideheater"},
		{"PROVIDE-HEATER", "provideheater"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}
