package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"

	"asmname/encodeid"
	"asmname/internal/diagnostic"
	"asmname/internal/report"
)

func encode(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		return err
	}
	ids, err := inputs(cc.In, args)
	if err != nil {
		return err
	}

	tracker := diagnostic.NewTracker()
	if cfg.Errors {
		tracker.Report(diagnostic.Diagnostic{
			Severity: diagnostic.SeverityError,
			Code:     "cli",
			Message:  "errors requested with -errors",
		})
	}
	enc := cfg.encoder(tracker)
	paint := report.Painter(cfg.useColor(cc.Out))

	return encodeAll(cc.Out, enc, paint, ids)
}

// encodeAll writes one encoded identifier per line. Passthrough results
// are marked so degraded output is never mistaken for an encoding.
func encodeAll(w io.Writer, enc *encodeid.Encoder, paint func(a ...any) string, ids []string) error {
	for _, id := range ids {
		res, err := enc.Encode(id)
		if err != nil {
			return err
		}
		line := report.Highlight(res.Text, paint)
		if res.Outcome == encodeid.OutcomePassthrough {
			line += "\t(passthrough)"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	ids, err := inputs(cc.In, args)
	if err != nil {
		return err
	}

	return checkAll(cc.Out, ids)
}

func checkAll(w io.Writer, ids []string) error {
	for _, id := range ids {
		if _, err := fmt.Fprintf(w, "%s\t%t\n", id, encodeid.NeedsEncoding(id)); err != nil {
			return err
		}
	}

	return nil
}

func tag(cfg *TagConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tag.Parse(cc, args)
	if err != nil {
		return err
	}
	tags, err := inputs(cc.In, args)
	if err != nil {
		return err
	}

	enc := cfg.encoder(diagnostic.NewTracker())
	paint := report.Painter(cfg.useColor(cc.Out))

	return tagAll(cc.Out, enc, paint, tags)
}

// tagAll writes the mangled and the fully encoded form of each tag.
func tagAll(w io.Writer, enc *encodeid.Encoder, paint func(a ...any) string, tags []string) error {
	for _, t := range tags {
		mangled := enc.MangleStructTag(t)
		res, err := enc.EncodeStructTag(t)
		if err != nil {
			return fmt.Errorf("tag %q: %w", t, err)
		}
		_, err = fmt.Fprintf(w, "%s\t%s\n", report.Highlight(mangled, paint), report.Highlight(res.Text, paint))
		if err != nil {
			return err
		}
	}

	return nil
}

// inputs returns args, or the lines of r when there are none.
func inputs(r io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if r == nil {
		return nil, fmt.Errorf("%w: no input", cli.ErrUsage)
	}

	// Lines may be arbitrarily long.
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading input: %w", err)
		}
	}

	return lines, nil
}
