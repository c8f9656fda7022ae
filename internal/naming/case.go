package naming

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

// LowerCamel converts an upper-camel identifier to lower camel by lowering
// its first rune: "WidgetFactory" -> "widgetFactory", "HTTPClient" -> "hTTPClient".
// Names that already start lower-case are returned unchanged.
func LowerCamel(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || unicode.IsLower(r) {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}

// UpperCamel joins the words of s into one upper-camel fragment.
// Word boundaries are camel-case transitions and any rune that cannot appear
// in an identifier: "primary-db" -> "PrimaryDb", "fast.lane" -> "FastLane".
func UpperCamel(s string) string {
	var sb strings.Builder

	for _, tok := range tokenizeCamelCase(s) {
		r, size := utf8.DecodeRuneInString(tok)
		sb.WriteRune(unicode.ToUpper(r))
		sb.WriteString(tok[size:])
	}

	return sb.String()
}

// ProtectKeyword appends an underscore to names that are Go keywords.
func ProtectKeyword(name string) string {
	if token.IsKeyword(name) {
		return name + "_"
	}

	return name
}

// ProtectLeadingDigit prefixes names starting with a digit with an
// underscore: "2ndHeater" -> "_2ndHeater".
func ProtectLeadingDigit(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	if unicode.IsDigit(r) {
		return "_" + name
	}

	return name
}

// NormalizeIdent normalizes an identifier for fuzzy comparison:
// CamelCase is tokenized, tokens are lowered and joined without separators.
func NormalizeIdent(s string) string {
	return strings.ToLower(strings.Join(tokenizeCamelCase(s), ""))
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "customerName" -> ["customer", "Name"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "primary-db" -> ["primary", "db"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		// Handle separators - start a new token
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// isSeparator returns true for runes that cannot be part of an identifier.
func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)
	isPrevSep := isSeparator(prevRune)

	// Transition from lowercase to uppercase: start new token
	// e.g., "orderID" -> split before 'I'
	if isUpper && !isPrevUpper && !isPrevSep {
		return true
	}

	// End of acronym: check if next character is lowercase
	// e.g., "XMLParser" -> "XML" + "Parser", split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
	if isUpper && isPrevUpper && hasNextLower {
		return true
	}

	return false
}
