// Command asmname shows the assembler-safe forms of Go identifiers and
// struct tags.
//
// Usage:
//
//	asmname [-config file] [-strict] [-color] [-v] <command> [opts] [args]
//
// Commands:
//   - encode: encode identifiers
//   - check: report whether identifiers need encoding
//   - tag: mangle and encode struct tags
//   - symbols: build the symbol table of Go packages
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
