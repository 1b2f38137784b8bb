// Package report renders a symbol table as text, YAML or JSON.
package report

import (
	"bytes"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"asmname/internal/config"
	"asmname/internal/diagnostic"
	"asmname/internal/symtab"
)

// Options controls rendering.
type Options struct {
	// Format is one of config.FormatText, config.FormatYAML, config.FormatJSON.
	Format string
	// Color highlights escape markers in text output.
	Color bool
}

// Render returns t rendered according to opts.
func Render(t *symtab.Table, opts Options) ([]byte, error) {
	switch opts.Format {
	case config.FormatYAML:
		return yaml.Marshal(t)

	case config.FormatJSON:
		data, err := json.MarshalIndent(t, "", "  ")
		if err != nil {
			return nil, err
		}

		return append(data, '\n'), nil

	case config.FormatText, "":
		var buf bytes.Buffer
		renderText(&buf, t, Painter(opts.Color))

		return buf.Bytes(), nil

	default:
		return nil, fmt.Errorf("unknown report format %q", opts.Format)
	}
}

// Write renders t to w.
func Write(w io.Writer, t *symtab.Table, opts Options) error {
	data, err := Render(t, opts)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}

// Painter returns the function used to colour escape markers.
func Painter(enabled bool) func(a ...any) string {
	c := color.New(color.FgCyan, color.Bold)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c.SprintFunc()
}

// renderText writes one section per non-empty part of t. The highlighted
// column is always last so ANSI codes do not disturb the alignment.
func renderText(w io.Writer, t *symtab.Table, paint func(a ...any) string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if len(t.Symbols) > 0 {
		fmt.Fprintln(tw, "KIND\tSOURCE\tOUTCOME\tSYMBOL")
		for _, s := range t.Symbols {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Kind, s.Package+"."+s.Source, s.Outcome, Highlight(s.Asm, paint))
		}
		tw.Flush()
	}

	if len(t.Tags) > 0 {
		if len(t.Symbols) > 0 {
			fmt.Fprintln(w)
		}

		fmt.Fprintln(tw, "FIELD\tTAG\tOUTCOME\tDESCRIPTOR")
		for _, e := range t.Tags {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Package+"."+e.Owner+"."+e.Field, e.Raw, e.Outcome, Highlight(e.Asm, paint))
		}
		tw.Flush()
	}

	ds := t.Diagnostics
	if ds.Len() == 0 {
		return
	}

	fmt.Fprintln(w)
	for _, group := range [][]diagnostic.Diagnostic{ds.Errors, ds.Warnings, ds.Infos} {
		for _, d := range group {
			fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
		}
	}
}
