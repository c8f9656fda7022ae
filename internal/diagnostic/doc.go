// Package diagnostic collects the errors and warnings found while loading a
// component file and planning its fields.
//
// Diagnostics never stop collection: a loader reports every problem it finds
// and callers decide afterwards whether to continue (see Diagnostics.Error).
package diagnostic
