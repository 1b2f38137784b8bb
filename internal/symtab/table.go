package symtab

import (
	"sort"

	"asmname/encodeid"
	"asmname/internal/analyze"
	"asmname/internal/diagnostic"
)

// Symbol is the assembler name of one package-level object.
type Symbol struct {
	Kind    analyze.ObjectKind `json:"kind" yaml:"kind"`
	Package string             `json:"package" yaml:"package"`
	// Source is the object name, qualified by its receiver for methods.
	Source  string           `json:"source" yaml:"source"`
	Asm     string           `json:"asm" yaml:"asm"`
	Outcome encodeid.Outcome `json:"outcome" yaml:"outcome"`
}

// TagEntry is the type-descriptor form of one struct field tag.
type TagEntry struct {
	Package   string           `json:"package" yaml:"package"`
	Owner     string           `json:"owner" yaml:"owner"`
	Field     string           `json:"field" yaml:"field"`
	Anonymous bool             `json:"anonymous,omitempty" yaml:"anonymous,omitempty"`
	Raw       string           `json:"raw" yaml:"raw"`
	Mangled   string           `json:"mangled" yaml:"mangled"`
	Asm       string           `json:"asm" yaml:"asm"`
	Outcome   encodeid.Outcome `json:"outcome" yaml:"outcome"`
}

// Table holds the symbols and tags built for a set of packages.
type Table struct {
	Symbols     []Symbol               `json:"symbols" yaml:"symbols"`
	Tags        []TagEntry             `json:"tags,omitempty" yaml:"tags,omitempty"`
	Diagnostics diagnostic.Diagnostics `json:"diagnostics" yaml:"diagnostics,omitempty"`
}

// Lookup returns the symbol for source in package pkg.
func (t *Table) Lookup(pkg, source string) (Symbol, bool) {
	for _, s := range t.Symbols {
		if s.Package == pkg && s.Source == source {
			return s, true
		}
	}

	return Symbol{}, false
}

// Duplicates returns every assembler name produced by more than one source
// name, mapped to the sorted "package.source" names that produced it.
func (t *Table) Duplicates() map[string][]string {
	bySym := make(map[string][]string)
	for _, s := range t.Symbols {
		bySym[s.Asm] = append(bySym[s.Asm], s.Package+"."+s.Source)
	}

	dups := make(map[string][]string)
	for asm, sources := range bySym {
		if len(sources) > 1 {
			sort.Strings(sources)
			dups[asm] = sources
		}
	}

	return dups
}
