package analyze

import (
	"fmt"
	"go/types"
	"reflect"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Options controls what the Analyzer extracts.
type Options struct {
	// IncludeUnexported also extracts unexported objects and fields.
	IncludeUnexported bool
}

// Analyzer loads Go packages and collects the names and struct tags that
// need assembler-safe forms.
type Analyzer struct {
	graph *Graph
	opts  Options
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts Options) *Analyzer {
	return &Analyzer{
		graph: NewGraph(),
		opts:  opts,
	}
}

// LoadPackages loads the specified packages and fills the graph.
// Patterns are standard Go package patterns (e.g., "./sample", "asmname/...").
//
// Errors inside packages do not fail the load; they are recorded on the
// graph's Diagnostics and whatever type information survived is used.
func (a *Analyzer) LoadPackages(patterns ...string) (*Graph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			a.graph.Diagnostics.AddError("package", e.Error(), pkg.PkgPath, "")
		}

		if pkg.Types == nil {
			continue
		}

		a.processPackage(pkg.PkgPath, pkg.Name, pkg.Types)
	}

	return a.graph, nil
}

// Graph returns the current graph.
func (a *Analyzer) Graph() *Graph {
	return a.graph
}

func (a *Analyzer) wanted(name string, exported bool) bool {
	return name != "_" && (exported || a.opts.IncludeUnexported)
}

// processPackage extracts objects and structs from a type-checked package.
func (a *Analyzer) processPackage(path, pkgName string, tpkg *types.Package) {
	pkgInfo := &PackageInfo{
		Path: path,
		Name: pkgName,
	}

	scope := tpkg.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if !a.wanted(name, obj.Exported()) {
			continue
		}

		switch o := obj.(type) {
		case *types.TypeName:
			pkgInfo.Objects = append(pkgInfo.Objects, Object{Kind: ObjectType, Name: name, Exported: o.Exported()})
			a.processTypeName(pkgInfo, o)

		case *types.Func:
			pkgInfo.Objects = append(pkgInfo.Objects, Object{Kind: ObjectFunc, Name: name, Exported: o.Exported()})

		case *types.Var:
			pkgInfo.Objects = append(pkgInfo.Objects, Object{Kind: ObjectVar, Name: name, Exported: o.Exported()})

		case *types.Const:
			pkgInfo.Objects = append(pkgInfo.Objects, Object{Kind: ObjectConst, Name: name, Exported: o.Exported()})
		}
	}

	a.graph.Packages[path] = pkgInfo
}

// processTypeName records methods and struct fields of a defined type.
// Aliases are skipped: their methods and fields belong to the aliased type.
func (a *Analyzer) processTypeName(pkgInfo *PackageInfo, tn *types.TypeName) {
	if tn.IsAlias() {
		return
	}

	named, ok := tn.Type().(*types.Named)
	if !ok {
		return
	}

	for i := 0; i < named.NumMethods(); i++ {
		m := named.Method(i)
		if !a.wanted(m.Name(), m.Exported()) {
			continue
		}

		pkgInfo.Objects = append(pkgInfo.Objects, Object{
			Kind:     ObjectMethod,
			Name:     m.Name(),
			Recv:     tn.Name(),
			Exported: m.Exported(),
		})
	}

	if st, ok := named.Underlying().(*types.Struct); ok {
		a.processStruct(pkgInfo, st, NewTypePath(tn.Name()), false)
	}
}

// processStruct records st and then any struct type literals nested in its
// fields.
func (a *Analyzer) processStruct(pkgInfo *PackageInfo, st *types.Struct, path *TypePath, anonymous bool) {
	info := StructInfo{
		Owner:     path.String(),
		Anonymous: anonymous,
	}

	var nested []int
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if !a.wanted(field.Name(), field.Exported()) {
			continue
		}

		info.Fields = append(info.Fields, FieldInfo{
			Name:     field.Name(),
			Exported: field.Exported(),
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: field.Embedded(),
			Index:    i,
		})
		nested = append(nested, i)
	}

	pkgInfo.Structs = append(pkgInfo.Structs, info)

	for _, i := range nested {
		field := st.Field(i)
		a.processNested(pkgInfo, field.Type(), path.Field(field.Name()))
	}
}

func (a *Analyzer) processNested(pkgInfo *PackageInfo, t types.Type, path *TypePath) {
	switch tt := t.(type) {
	case *types.Struct:
		a.processStruct(pkgInfo, tt, path, true)

	case *types.Pointer:
		a.processNested(pkgInfo, tt.Elem(), path.Pointer())

	case *types.Slice:
		a.processNested(pkgInfo, tt.Elem(), path.Slice())

	case *types.Array:
		a.processNested(pkgInfo, tt.Elem(), path.Slice())

	case *types.Map:
		a.processNested(pkgInfo, tt.Elem(), path.Slice())
	}
}
