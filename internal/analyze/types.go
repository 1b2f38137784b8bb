package analyze

import (
	"reflect"
	"sort"

	"asmname/internal/diagnostic"
)

const unknownStr = "unknown"

// ObjectKind represents the kind of a package-level object.
type ObjectKind int

const (
	ObjectUnknown ObjectKind = iota
	ObjectType               // named type or alias
	ObjectFunc               // package-level function
	ObjectMethod             // method declared on a named type
	ObjectVar                // package-level variable
	ObjectConst              // package-level constant
)

// String returns a human-readable representation of the ObjectKind.
func (k ObjectKind) String() string {
	switch k {
	case ObjectType:
		return "type"
	case ObjectFunc:
		return "func"
	case ObjectMethod:
		return "method"
	case ObjectVar:
		return "var"
	case ObjectConst:
		return "const"
	default:
		return unknownStr
	}
}

// MarshalText encodes the kind by name.
func (k ObjectKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Object is a named object that becomes an assembler symbol.
type Object struct {
	Kind     ObjectKind
	Name     string // Go identifier, e.g. "Señal"
	Recv     string // receiver type name, methods only
	Exported bool
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// Tagged returns true if the field carries a non-empty tag.
func (f *FieldInfo) Tagged() bool {
	return f.Tag != ""
}

// StructInfo describes a struct type whose fields may carry tags.
type StructInfo struct {
	// Owner is the type name, or a path such as "Café.Menü" for a struct
	// type literal nested in a field.
	Owner     string
	Anonymous bool
	Fields    []FieldInfo
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path    string // Import path
	Name    string // Package name
	Objects []Object
	Structs []StructInfo
}

// Graph holds everything extracted from the loaded packages.
type Graph struct {
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
	// Diagnostics holds package errors reported while loading.
	Diagnostics diagnostic.Diagnostics
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		Packages: make(map[string]*PackageInfo),
	}
}

// Package returns the PackageInfo for path, or nil if not loaded.
func (g *Graph) Package(path string) *PackageInfo {
	return g.Packages[path]
}

// Paths returns the loaded package paths in sorted order.
func (g *Graph) Paths() []string {
	paths := make([]string, 0, len(g.Packages))
	for p := range g.Packages {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	return paths
}
