package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Main, "asmname").
		WithSynopsis("asmname [opts] command [opts]").
		WithDescription("asmname shows the assembler-safe forms of Go identifiers and struct tags.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return asmnameMain(cfg, cc, args)
		}).
		WithSubs(
			EncodeCommand(cfg),
			CheckCommand(cfg),
			TagCommand(cfg),
			SymbolsCommand(cfg))
}

func EncodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EncodeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Encode, "encode").
		WithAliases("e", "enc").
		WithSynopsis("encode [-errors] [identifiers]").
		WithDescription("encode identifiers, one per argument or one per input line").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return encode(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}

	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [identifiers]").
		WithDescription("report whether identifiers need encoding").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func TagCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TagConfig{MainConfig: mainCfg}

	return cli.NewCommandAt(&cfg.Tag, "tag").
		WithAliases("t").
		WithSynopsis("tag [tags]").
		WithDescription("mangle and encode struct field tags").
		WithRun(func(cc *cli.Context, args []string) error {
			return tag(cfg, cc, args)
		})
}

func SymbolsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SymbolsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Symbols, "symbols").
		WithAliases("s", "sym").
		WithSynopsis("symbols [-format f] [-o file] [-all] packages...").
		WithDescription("build the assembler symbol table of Go packages").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return symbols(cfg, cc, args)
		})
}
