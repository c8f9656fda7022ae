// Package naming derives Go identifiers for generated fields.
//
// Key functions:
//   - LowerCamel: upper-camel type names to lower-camel field names
//   - UpperCamel: free-form words (qualifiers) to an upper-camel identifier fragment
//   - ProtectKeyword: keeps derived names from colliding with Go keywords
//   - Suggest: ranks known names by edit distance for diagnostics
package naming
