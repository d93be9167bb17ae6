package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "config",
			Aliases:     []string{"c"},
			Description: "YAML configuration file",
			Type:        cli.NamedFuncOpt(cfg.configOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "preserve",
			Aliases:     []string{"p"},
			Description: "keep whitespace verbatim under this element (repeatable)",
			Type:        cli.NamedFuncOpt(cfg.preserveOpt, "(element)"),
		},
		&cli.Opt{
			Name:        "ignore",
			Description: "exclude elements matching this expr rule (repeatable)",
			Type:        cli.NamedFuncOpt(cfg.ignoreOpt, "(rule)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "xmldiffs").
		WithSynopsis("xmldiffs [opts] command [opts] | xmldiffs [opts] a.xml b.xml").
		WithDescription("xmldiffs compares XML files semantically.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return xmldiffsMain(cfg, cc, args)
		}).
		WithSubs(
			DiffCommand(cfg),
			CanonCommand(cfg))
}

// xmldiffsMain keeps the original two-file invocation working:
// "xmldiffs a.xml b.xml" behaves like "xmldiffs diff a.xml b.xml".
func xmldiffsMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		cfg.Main.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: expected a command or two files, got %v", cli.ErrUsage, args)
	}
	dcfg := &DiffConfig{MainConfig: cfg}
	return diffFiles(dcfg, cc, args[0], args[1])
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff a.xml b.xml").
		WithDescription("diff two XML documents; exit status 1 when they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func CanonCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CanonConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("canon").
		WithAliases("ca").
		WithSynopsis("canon [files]").
		WithDescription("print the canonical form of XML documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return canonCmd(cfg, cc, args)
		})
	cfg.Canon = cmd
	return cmd
}
