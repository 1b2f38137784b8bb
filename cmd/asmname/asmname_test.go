package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scott-cotton/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asmname/encodeid"
	"asmname/internal/config"
	"asmname/internal/diagnostic"
	"asmname/internal/report"
)

func plain(a ...any) string { return a[0].(string) }

func testConfig(t *testing.T) *MainConfig {
	t.Helper()

	cfg := &MainConfig{}
	require.NoError(t, cfg.load(io.Discard))

	return cfg
}

func TestEncodeAll(t *testing.T) {
	enc := encodeid.New(encodeid.Config{})

	var buf bytes.Buffer
	err := encodeAll(&buf, enc, plain, []string{"déjà", "x", "😀"})
	require.NoError(t, err)
	assert.Equal(t, "d..u00e9j..u00e0\nx\n..U0001f600\n", buf.String())
}

func TestEncodeAllViolation(t *testing.T) {
	enc := encodeid.New(encodeid.Config{})

	var buf bytes.Buffer
	err := encodeAll(&buf, enc, plain, []string{"ok", "a b"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, encodeid.ErrContractViolation))
	assert.Equal(t, "ok\n", buf.String())
}

func TestEncodeAllPassthrough(t *testing.T) {
	tracker := diagnostic.NewTracker()
	tracker.Report(diagnostic.Diagnostic{Severity: diagnostic.SeverityError, Code: "test"})
	enc := encodeid.New(encodeid.Config{Errors: tracker})

	var buf bytes.Buffer
	require.NoError(t, encodeAll(&buf, enc, plain, []string{"a..u0041"}))
	assert.Equal(t, "a..u0041\t(passthrough)\n", buf.String())
}

func TestEncodeAllHighlight(t *testing.T) {
	enc := encodeid.New(encodeid.Config{})
	brackets := func(a ...any) string { return "[" + a[0].(string) + "]" }

	var buf bytes.Buffer
	require.NoError(t, encodeAll(&buf, enc, brackets, []string{"né"}))
	assert.Equal(t, "n[..u00e9]\n", buf.String())
}

func TestCheckAll(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, checkAll(&buf, []string{"plain", "café", ""}))
	assert.Equal(t, "plain\tfalse\ncafé\ttrue\n\tfalse\n", buf.String())
}

func TestTagAll(t *testing.T) {
	enc := encodeid.New(encodeid.Config{})

	var buf bytes.Buffer
	require.NoError(t, tagAll(&buf, enc, plain, []string{`json:"größe"`, "ab"}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "json.x3a.x22größe.x22\tjson.x3a.x22gr..u00f6..u00dfe.x22", lines[0])
	assert.Equal(t, "ab\tab", lines[1])
}

func TestInputs(t *testing.T) {
	got, err := inputs(strings.NewReader("ignored\n"), []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	got, err = inputs(strings.NewReader("x\ny\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, got)

	got, err = inputs(strings.NewReader("a\r\n\nlast"), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "", "last"}, got)

	long := strings.Repeat("é", 100_000)
	got, err = inputs(strings.NewReader(long+"\nx\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{long, "x"}, got)

	_, err = inputs(nil, nil)
	assert.ErrorIs(t, err, cli.ErrUsage)
}

func TestDuplicateError(t *testing.T) {
	assert.NoError(t, duplicateError(nil))

	err := duplicateError(map[string][]string{
		"p.b": {"p.b", "q.b"},
		"p.a": {"p.a", "r.a"},
	})
	require.Error(t, err)
	assert.Equal(t, "duplicate assembler symbols:\n  p.a: p.a, r.a\n  p.b: p.b, q.b", err.Error())
}

func TestLoad(t *testing.T) {
	cfg := testConfig(t)
	assert.Equal(t, config.Default(), cfg.Settings)
	assert.NotNil(t, cfg.Log)

	path := filepath.Join(t.TempDir(), "asmname.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\ncolor: never\n"), 0o644))

	cfg = &MainConfig{ConfigFile: path, Strict: true, Color: true, Verbose: true}
	require.NoError(t, cfg.load(io.Discard))
	assert.Equal(t, config.FormatJSON, cfg.Settings.Format)
	assert.Equal(t, config.ColorAlways, cfg.Settings.Color)
	assert.Equal(t, "debug", cfg.Settings.LogLevel)
	assert.True(t, cfg.Settings.StrictUTF8)
	assert.True(t, cfg.encoder(diagnostic.NewTracker()).Strict())
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asmname.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: xml\n"), 0o644))

	cfg := &MainConfig{ConfigFile: path}
	err := cfg.load(io.Discard)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestUseColor(t *testing.T) {
	cfg := testConfig(t)

	var buf bytes.Buffer
	assert.False(t, cfg.useColor(&buf))

	cfg.Settings.Color = config.ColorAlways
	assert.True(t, cfg.useColor(&buf))

	cfg.Settings.Color = config.ColorNever
	assert.False(t, cfg.useColor(&buf))
}

func TestBuildTable(t *testing.T) {
	cfg := &SymbolsConfig{MainConfig: testConfig(t)}

	table, err := buildTable(cfg, []string{"asmname/sample"})
	require.NoError(t, err)

	sym, ok := table.Lookup("asmname/sample", "Café")
	require.True(t, ok)
	assert.Equal(t, "asmname.x2fsample.Caf..u00e9", sym.Asm)

	_, ok = table.Lookup("asmname/sample", "hilfsfunktion")
	assert.False(t, ok)

	cfg.All = true
	table, err = buildTable(cfg, []string{"asmname/sample"})
	require.NoError(t, err)

	_, ok = table.Lookup("asmname/sample", "hilfsfunktion")
	assert.True(t, ok)

	data, err := report.Render(table, report.Options{Format: config.FormatYAML})
	require.NoError(t, err)
	assert.Contains(t, string(data), "asm: asmname.x2fsample.Caf..u00e9")
}
