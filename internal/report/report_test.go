package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"asmname/encodeid"
	"asmname/internal/analyze"
	"asmname/internal/config"
	"asmname/internal/symtab"
)

func sampleTable() *symtab.Table {
	t := &symtab.Table{
		Symbols: []symtab.Symbol{
			{Kind: analyze.ObjectType, Package: "p", Source: "Café", Asm: "p.Caf..u00e9", Outcome: encodeid.OutcomeEncoded},
			{Kind: analyze.ObjectFunc, Package: "p", Source: "F", Asm: "p.F", Outcome: encodeid.OutcomeUnchanged},
		},
		Tags: []symtab.TagEntry{
			{
				Package: "p", Owner: "Café", Field: "X", Raw: `json:"x"`,
				Mangled: "json.x3a.x22x.x22", Asm: "json.x3a.x22x.x22", Outcome: encodeid.OutcomeUnchanged,
			},
		},
	}
	t.Diagnostics.AddWarning("passthrough", "left unencoded after earlier errors", "p", "G")

	return t
}

func TestRender_Text(t *testing.T) {
	data, err := Render(sampleTable(), Options{Format: config.FormatText})
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "p.Caf..u00e9")
	assert.Contains(t, out, "Encoded")
	assert.Contains(t, out, "p.Café.X")
	assert.Contains(t, out, "warning: [p] G: [passthrough] left unencoded after earlier errors")
	assert.NotContains(t, out, "\x1b[")

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	// Columns are aligned: the symbol column starts at the same rune offset.
	header := utf8.RuneCountInString(lines[0][:strings.Index(lines[0], "SYMBOL")])
	row := utf8.RuneCountInString(lines[1][:strings.Index(lines[1], "p.Caf..u")])
	assert.Equal(t, header, row)
}

func TestRender_TextColor(t *testing.T) {
	data, err := Render(sampleTable(), Options{Format: config.FormatText, Color: true})
	require.NoError(t, err)
	assert.Contains(t, string(data), "\x1b[")
}

func TestRender_YAML(t *testing.T) {
	data, err := Render(sampleTable(), Options{Format: config.FormatYAML})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))

	symbols, ok := doc["symbols"].([]any)
	require.True(t, ok)
	require.Len(t, symbols, 2)

	first := symbols[0].(map[string]any)
	assert.Equal(t, "type", first["kind"])
	assert.Equal(t, "Encoded", first["outcome"])
	assert.Equal(t, "p.Caf..u00e9", first["asm"])
}

func TestRender_JSON(t *testing.T) {
	data, err := Render(sampleTable(), Options{Format: config.FormatJSON})
	require.NoError(t, err)

	var doc struct {
		Symbols []struct {
			Kind    string `json:"kind"`
			Source  string `json:"source"`
			Outcome string `json:"outcome"`
		} `json:"symbols"`
		Diagnostics struct {
			Warnings []struct {
				Severity string `json:"severity"`
				Code     string `json:"code"`
			} `json:"warnings"`
		} `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Len(t, doc.Symbols, 2)
	assert.Equal(t, "func", doc.Symbols[1].Kind)
	assert.Equal(t, "Unchanged", doc.Symbols[1].Outcome)
	require.Len(t, doc.Diagnostics.Warnings, 1)
	assert.Equal(t, "warning", doc.Diagnostics.Warnings[0].Severity)
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := Render(sampleTable(), Options{Format: "xml"})
	assert.Error(t, err)
}

func TestHighlight(t *testing.T) {
	brackets := func(a ...any) string { return "[" + a[0].(string) + "]" }

	tests := []struct {
		input    string
		expected string
	}{
		{"plain", "plain"},
		{"caf..u00e9", "caf[..u00e9]"},
		{"..U0001f600x", "[..U0001f600]x"},
		{"json.x3a.x22", "json[.x3a][.x22]"},
		{"a.b", "a.b"},
		{"a.xz1", "a.xz1"},
		{"..u00E9", "..u00E9"},
		{"..u00", "..u00"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Highlight(tt.input, brackets))
		})
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "symbols.txt")
	require.NoError(t, WriteFile(path, []byte("x\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x\n", string(data))
}
