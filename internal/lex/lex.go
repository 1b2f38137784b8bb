// Package lex holds the identifier validity check the encoder consults
// before encoding a name.
package lex

import "strings"

// InvalidMarker is substituted into an identifier by the lexer once it has
// reported a diagnostic for it, so later stages can recognise the name and
// avoid knock-on errors.
const InvalidMarker = "$INVALID$"

// Checker is the default identifier validity check.
type Checker struct{}

// IsInvalidIdentifier reports whether name is empty or carries the
// InvalidMarker.
func (Checker) IsInvalidIdentifier(name string) bool {
	return name == "" || strings.Contains(name, InvalidMarker)
}

// Invalidate returns name marked as invalid.
func Invalidate(name string) string {
	return name + InvalidMarker
}
