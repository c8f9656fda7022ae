package component

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"component-generator/di"
	"component-generator/internal/binding"
)

// DIAlias is the import alias reserved for the runtime package.
const DIAlias = "di"

// LoadFile loads and parses a YAML component file from the given path.
func LoadFile(path string) (*ComponentFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read component file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a ComponentFile.
func Parse(data []byte) (*ComponentFile, error) {
	var cf ComponentFile

	err := yaml.Unmarshal(data, &cf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse component YAML: %w", err)
	}

	applyDefaults(&cf)

	return &cf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cf *ComponentFile) {
	if cf.Version == "" {
		cf.Version = SupportedVersion
	}

	if cf.Imports == nil {
		cf.Imports = make(map[string]string)
	}

	if _, ok := cf.Imports[DIAlias]; !ok {
		cf.Imports[DIAlias] = di.PkgPath
	}

	for i := range cf.Bindings {
		b := &cf.Bindings[i]

		if b.Kind == "" {
			b.Kind = binding.KindContribution.String()
		}

		if b.Type == "" {
			if b.Kind == binding.KindMembersInjection.String() {
				b.Type = binding.TypeMembersInjection.String()
			} else {
				b.Type = binding.TypeProvision.String()
			}
		}

		if b.Contribution == "" {
			b.Contribution = binding.ContributionUnique.String()
		}
	}
}
