package component

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"component-generator/internal/common"
)

// SupportedVersion is the only component file version understood.
const SupportedVersion = "1"

// ComponentFile is the root of a component description.
type ComponentFile struct {
	Version   string            `yaml:"version"`
	Component string            `yaml:"component"`
	Packages  StringOrArray     `yaml:"packages,omitempty"`
	Imports   map[string]string `yaml:"imports,omitempty"`
	Bindings  []BindingSpec     `yaml:"bindings"`
}

// BindingSpec describes one binding of the component.
type BindingSpec struct {
	// Key is a Go type expression using the file's import aliases.
	Key       string `yaml:"key"`
	Qualifier string `yaml:"qualifier,omitempty"`
	// Kind is contribution or members_injection.
	Kind string `yaml:"kind,omitempty"`
	// Type is provision, production or members_injection.
	Type string `yaml:"type,omitempty"`
	// Contribution is unique, map, set or set_values.
	Contribution string      `yaml:"contribution,omitempty"`
	Origin       *OriginSpec `yaml:"origin,omitempty"`
	// Symbol names the originating declaration in a loaded package:
	// "alias.Func", "alias.Type.Method", "alias.Type" or "alias.Type{}" for
	// the type's constructor.
	Symbol string `yaml:"symbol,omitempty"`
	// Framework overrides the framework class, e.g. "di.Lazy".
	Framework string `yaml:"framework,omitempty"`
}

// OriginSpec declares a binding's origin explicitly.
type OriginSpec struct {
	Kind      string `yaml:"kind"`
	Name      string `yaml:"name,omitempty"`
	Enclosing string `yaml:"enclosing,omitempty"`
}

// StringOrArray is a list that may be written as a single string.
type StringOrArray []string

// UnmarshalYAML accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if common.IsSingle(s) {
		return s[0], nil
	}

	return []string(s), nil
}

// IsEmpty returns true if the array is empty.
func (s StringOrArray) IsEmpty() bool {
	return common.IsEmpty(s)
}
