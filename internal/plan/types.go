package plan

import (
	"component-generator/internal/analyze"
	"component-generator/internal/component"
	"component-generator/internal/diagnostic"
	"component-generator/internal/field"
)

// FieldPlan is the output of the planning pipeline.
type FieldPlan struct {
	// Component is the component name from the component file.
	Component string
	// Fields lists one field per binding, in file order.
	Fields []PlannedField
	// TypeGraph holds the analyzed packages, used to render package names. May be nil.
	TypeGraph *analyze.TypeGraph
	// Diagnostics contains all warnings and errors from planning.
	Diagnostics diagnostic.Diagnostics
}

// PlannedField is the framework field computed for one binding.
type PlannedField struct {
	Entry component.Entry
	Field field.FrameworkField
}

// Config controls planning.
type Config struct {
	// StrictMode fails planning when warnings were reported.
	StrictMode bool
}

// DefaultConfig returns the default planning configuration.
func DefaultConfig() Config {
	return Config{}
}

// TypeString renders t with the plan's package names.
func (p *FieldPlan) TypeString(t *analyze.TypeInfo) string {
	return analyze.NewTypeStringer(p.TypeGraph).TypeString(t)
}
