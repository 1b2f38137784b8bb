package symtab

import (
	"fmt"
	"log/slog"

	"asmname/encodeid"
	"asmname/internal/analyze"
)

// Builder builds a Table with a given encoder.
type Builder struct {
	enc    *encodeid.Encoder
	logger *slog.Logger
}

// NewBuilder creates a Builder. A nil logger discards output.
func NewBuilder(enc *encodeid.Encoder, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Builder{enc: enc, logger: logger}
}

// Build encodes every object and tagged field in g. A contract violation
// aborts the build; passthroughs are kept and reported as warnings.
func (b *Builder) Build(g *analyze.Graph) (*Table, error) {
	t := &Table{}
	t.Diagnostics.Merge(g.Diagnostics)

	for _, path := range g.Paths() {
		pkg := g.Package(path)

		prefix, err := b.enc.EncodeStructTag(path)
		if err != nil {
			return nil, fmt.Errorf("package path %s: %w", path, err)
		}

		for _, obj := range pkg.Objects {
			sym, err := b.symbol(prefix, path, obj)
			if err != nil {
				return nil, err
			}

			b.notePassthrough(t, path, sym.Source, sym.Outcome)
			t.Symbols = append(t.Symbols, sym)
		}

		tags, err := b.tags(path, pkg.Structs)
		if err != nil {
			return nil, err
		}

		for _, e := range tags {
			b.notePassthrough(t, path, e.Owner+"."+e.Field, e.Outcome)
		}
		t.Tags = append(t.Tags, tags...)

		b.logger.Debug("encoded package", "path", path, "prefix", prefix.Text,
			"symbols", len(pkg.Objects), "tags", len(tags))
	}

	return t, nil
}

func (b *Builder) symbol(prefix encodeid.Result, path string, obj analyze.Object) (Symbol, error) {
	parts := []string{obj.Name}
	source := obj.Name
	if obj.Recv != "" {
		parts = []string{obj.Recv, obj.Name}
		source = obj.Recv + "." + obj.Name
	}

	asm := prefix.Text
	outcome := prefix.Outcome
	for _, part := range parts {
		res, err := b.enc.SelectiveEncode(part)
		if err != nil {
			return Symbol{}, fmt.Errorf("symbol %s.%s: %w", path, source, err)
		}

		asm += "." + res.Text
		outcome = combine(outcome, res.Outcome)
	}

	return Symbol{
		Kind:    obj.Kind,
		Package: path,
		Source:  source,
		Asm:     asm,
		Outcome: outcome,
	}, nil
}

func (b *Builder) tags(path string, structs []analyze.StructInfo) ([]TagEntry, error) {
	var entries []TagEntry
	for _, st := range structs {
		for _, f := range st.Fields {
			if !f.Tagged() {
				continue
			}

			raw := string(f.Tag)
			mangled := b.enc.MangleStructTag(raw)
			res, err := b.enc.SelectiveEncode(mangled)
			if err != nil {
				return nil, fmt.Errorf("tag of %s.%s.%s: %w", path, st.Owner, f.Name, err)
			}

			entries = append(entries, TagEntry{
				Package:   path,
				Owner:     st.Owner,
				Field:     f.Name,
				Anonymous: st.Anonymous,
				Raw:       raw,
				Mangled:   mangled,
				Asm:       res.Text,
				Outcome:   res.Outcome,
			})
		}
	}

	return entries, nil
}

func (b *Builder) notePassthrough(t *Table, path, object string, o encodeid.Outcome) {
	if o != encodeid.OutcomePassthrough {
		return
	}

	t.Diagnostics.AddWarning("passthrough", "left unencoded after earlier errors", path, object)
	b.logger.Warn("identifier left unencoded", "package", path, "object", object)
}

// combine folds the outcomes of the parts of one symbol: any passthrough
// wins, then any encoding.
func combine(a, b encodeid.Outcome) encodeid.Outcome {
	switch {
	case a == encodeid.OutcomePassthrough || b == encodeid.OutcomePassthrough:
		return encodeid.OutcomePassthrough
	case a == encodeid.OutcomeEncoded || b == encodeid.OutcomeEncoded:
		return encodeid.OutcomeEncoded
	default:
		return encodeid.OutcomeUnchanged
	}
}
