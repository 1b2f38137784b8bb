// Package analyze loads Go packages and extracts the names and struct tags
// that end up in assembler symbols and type descriptors.
//
// It uses golang.org/x/tools/go/packages with AST and go/types.
//
// Key types:
//   - Object: a package-level type, func, method, var or const
//   - StructInfo: a named struct or a struct literal nested in a field
//   - FieldInfo: describes field name, tag, and embedding
//   - Graph: per-package results plus load diagnostics
package analyze
