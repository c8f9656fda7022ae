package plan

import (
	"errors"
	"fmt"

	"component-generator/internal/analyze"
	"component-generator/internal/component"
	"component-generator/internal/field"
)

// ErrStrict is returned in strict mode when planning produced warnings.
var ErrStrict = errors.New("strict mode: planning produced warnings")

// Planner computes the field plan of a component file.
type Planner struct {
	graph  *analyze.TypeGraph
	file   *component.ComponentFile
	config Config
}

// NewPlanner creates a Planner. graph may be nil when the file uses no
// symbol references.
func NewPlanner(file *component.ComponentFile, graph *analyze.TypeGraph, config Config) *Planner {
	return &Planner{
		graph:  graph,
		file:   file,
		config: config,
	}
}

// Build runs the planning pipeline.
//
// On validation errors the returned plan carries the diagnostics and the
// error wraps diagnostic.ErrInvalid. A binding whose origin cannot name a
// field aborts planning with an error wrapping field.ErrInvariantViolation.
func (p *Planner) Build() (*FieldPlan, error) {
	if p.file == nil {
		return nil, errors.New("component file is required")
	}

	plan := &FieldPlan{
		Component: p.file.Component,
		TypeGraph: p.graph,
	}

	plan.Diagnostics.Merge(*component.Validate(p.file, p.graph))

	if plan.Diagnostics.HasErrors() {
		return plan, plan.Diagnostics.Error()
	}

	entries, err := component.NewResolver(p.file, p.graph).Resolve(p.file)
	if err != nil {
		return plan, fmt.Errorf("resolving bindings: %w", err)
	}

	// Field names already planned, mapped to the first field taking them.
	names := make(map[string]PlannedField, len(entries))

	for _, e := range entries {
		f, err := field.ForResolvedBindings(e.Bindings, e.Framework)
		if err != nil {
			plan.Diagnostics.AddError("invariant_violation", err.Error(), e.Label(), "")
			return plan, fmt.Errorf("%s: %w", e.Label(), err)
		}

		if first, ok := names[f.Name()]; ok {
			msg := fmt.Sprintf("field name %q is also used by %s", f.Name(), first.Entry.Label())
			if first.Field.Key() == f.Key() {
				msg = fmt.Sprintf("field %s is identical to the one planned for %s", f, first.Entry.Label())
			}

			plan.Diagnostics.AddWarning("duplicate_field_name", msg, e.Label(), "")
		} else {
			names[f.Name()] = PlannedField{Entry: e, Field: f}
		}

		plan.Fields = append(plan.Fields, PlannedField{Entry: e, Field: f})
	}

	if p.config.StrictMode && len(plan.Diagnostics.Warnings) > 0 {
		return plan, ErrStrict
	}

	return plan, nil
}

// Build plans file with the default configuration.
func Build(file *component.ComponentFile, graph *analyze.TypeGraph) (*FieldPlan, error) {
	return NewPlanner(file, graph, DefaultConfig()).Build()
}
