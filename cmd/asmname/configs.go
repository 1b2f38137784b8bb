package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"asmname/encodeid"
	"asmname/internal/config"
	"asmname/internal/diagnostic"
)

type MainConfig struct {
	ConfigFile string `cli:"name=config desc='YAML configuration file'"`
	Strict     bool   `cli:"name=strict desc='reject malformed UTF-8'"`
	Color      bool   `cli:"name=color desc='always highlight escape markers'"`
	Verbose    bool   `cli:"name=v desc='log debug messages'"`

	Settings *config.Config
	Log      *slog.Logger

	Main *cli.Command
}

// load reads the configuration file, if any, and applies flag overrides.
func (cfg *MainConfig) load(errOut io.Writer) error {
	settings := config.Default()
	if cfg.ConfigFile != "" {
		var err error
		settings, err = config.LoadFile(cfg.ConfigFile)
		if err != nil {
			return err
		}
	}

	if cfg.Strict {
		settings.StrictUTF8 = true
	}
	if cfg.Color {
		settings.Color = config.ColorAlways
	}
	if cfg.Verbose {
		settings.LogLevel = "debug"
	}

	cfg.Settings = settings
	cfg.Log = newLogger(errOut, settings.SlogLevel())

	return nil
}

func (cfg *MainConfig) encoder(errs *diagnostic.Tracker) *encodeid.Encoder {
	return encodeid.New(encodeid.Config{
		Errors:     errs,
		StrictUTF8: cfg.Settings.StrictUTF8,
	})
}

// useColor decides whether output written to w is highlighted.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	switch cfg.Settings.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type EncodeConfig struct {
	*MainConfig
	Errors bool `cli:"name=errors desc='behave as if an error was already reported'"`

	Encode *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type TagConfig struct {
	*MainConfig

	Tag *cli.Command
}

type SymbolsConfig struct {
	*MainConfig
	Format string `cli:"name=format desc='output format: text, yaml or json'"`
	Out    string `cli:"name=o desc='output file (default stdout)'"`
	All    bool   `cli:"name=all desc='include unexported objects and fields'"`

	Symbols *cli.Command
}
