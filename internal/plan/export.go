package plan

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// FieldsFile is the YAML form of a field plan.
type FieldsFile struct {
	Component string        `yaml:"component"`
	Fields    []FieldRecord `yaml:"fields"`
	Warnings  []string      `yaml:"warnings,omitempty"`
}

// FieldRecord is one exported field.
type FieldRecord struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Key  string `yaml:"key"`
}

// Export converts the plan into its serializable form.
func Export(p *FieldPlan) *FieldsFile {
	out := &FieldsFile{
		Component: p.Component,
		Fields:    make([]FieldRecord, 0, len(p.Fields)),
	}

	for _, pf := range p.Fields {
		out.Fields = append(out.Fields, FieldRecord{
			Name: pf.Field.Name(),
			Type: p.TypeString(pf.Field.Type()),
			Key:  pf.Entry.Bindings.Key().String(),
		})
	}

	for _, w := range p.Diagnostics.Warnings {
		out.Warnings = append(out.Warnings, w.String())
	}

	return out
}

// ExportYAML renders the plan as YAML.
func ExportYAML(p *FieldPlan) ([]byte, error) {
	return yaml.Marshal(Export(p))
}

// ExportText renders the plan one field per line as "<name> <type>".
func ExportText(p *FieldPlan) string {
	var sb strings.Builder

	for _, pf := range p.Fields {
		sb.WriteString(pf.Field.Name())
		sb.WriteString(" ")
		sb.WriteString(p.TypeString(pf.Field.Type()))
		sb.WriteString("\n")
	}

	return sb.String()
}
