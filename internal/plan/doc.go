// Package plan computes the framework fields of a component described by a
// component file.
//
// Planning pipeline:
//  1. Analyze packages → type graph (optional, needed for symbol references)
//  2. Load YAML → validate (all problems are reported at once)
//  3. Resolve every binding into binding.ResolvedBindings
//  4. Compute one field.FrameworkField per binding, in file order
//  5. Warn about field names used more than once
//
// The plan reports duplicate names but never renames fields; callers that
// emit code own name uniqueness within a generated type.
package plan
