package analyze

import (
	"strings"
)

// TypePath builds a readable owner path for a struct type literal.
// Examples:
//   - "Café" for a named struct
//   - "Café.Menü" for a struct literal in a field
//   - "Order.Items[]" for a slice field
//   - "Order.Items[].Extra" for a struct within slice elements
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath from a root type name.
func NewTypePath(root string) *TypePath {
	return &TypePath{
		parts: []string{root},
	}
}

// Field appends a field name to the path.
func (p *TypePath) Field(name string) *TypePath {
	return &TypePath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// Slice appends a slice indicator "[]" to the last element.
func (p *TypePath) Slice() *TypePath {
	return p.withLast(func(s string) string { return s + "[]" })
}

// Pointer prepends a pointer indicator "*" to the last element.
func (p *TypePath) Pointer() *TypePath {
	return p.withLast(func(s string) string { return "*" + s })
}

func (p *TypePath) withLast(f func(string) string) *TypePath {
	if len(p.parts) == 0 {
		return &TypePath{parts: []string{f("")}}
	}

	newParts := make([]string, len(p.parts))
	copy(newParts, p.parts)
	newParts[len(newParts)-1] = f(newParts[len(newParts)-1])

	return &TypePath{parts: newParts}
}

// String returns the full path string.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}
