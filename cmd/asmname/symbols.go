package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/scott-cotton/cli"

	"asmname/internal/analyze"
	"asmname/internal/diagnostic"
	"asmname/internal/report"
	"asmname/internal/symtab"
)

func symbols(cfg *SymbolsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Symbols.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: symbols requires at least one package pattern", cli.ErrUsage)
	}

	table, err := buildTable(cfg, args)
	if err != nil {
		return err
	}

	format := cfg.Settings.Format
	if cfg.Format != "" {
		format = cfg.Format
	}
	opts := report.Options{Format: format}

	if cfg.Out == "" {
		opts.Color = cfg.useColor(cc.Out)
		return report.Write(cc.Out, table, opts)
	}

	data, err := report.Render(table, opts)
	if err != nil {
		return err
	}
	if err := report.WriteFile(cfg.Out, data); err != nil {
		return err
	}
	cfg.Log.Info("wrote symbol table", "path", cfg.Out, "symbols", len(table.Symbols), "tags", len(table.Tags))

	return nil
}

func buildTable(cfg *SymbolsConfig, patterns []string) (*symtab.Table, error) {
	a := analyze.NewAnalyzer(analyze.Options{
		IncludeUnexported: cfg.All || cfg.Settings.IncludeUnexported,
	})
	g, err := a.LoadPackages(patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}
	cfg.Log.Debug("loaded packages", "count", len(g.Packages))

	tracker := diagnostic.NewTracker()
	tracker.ReportAll(g.Diagnostics)

	table, err := symtab.NewBuilder(cfg.encoder(tracker), cfg.Log).Build(g)
	if err != nil {
		return nil, err
	}

	if err := duplicateError(table.Duplicates()); err != nil {
		return nil, err
	}

	return table, nil
}

// duplicateError reports symbols shared by more than one source name.
func duplicateError(dups map[string][]string) error {
	if len(dups) == 0 {
		return nil
	}

	syms := make([]string, 0, len(dups))
	for s := range dups {
		syms = append(syms, s)
	}
	sort.Strings(syms)

	var b strings.Builder
	for _, s := range syms {
		fmt.Fprintf(&b, "\n  %s: %s", s, strings.Join(dups[s], ", "))
	}

	return fmt.Errorf("duplicate assembler symbols:%s", b.String())
}
