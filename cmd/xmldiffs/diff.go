package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/xmldiffs/xmldiffs/encode"
	"github.com/xmldiffs/xmldiffs/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	return diffFiles(cfg, cc, args[0], args[1])
}

func diffFiles(cfg *DiffConfig, cc *cli.Context, a, b string) error {
	ccfg, err := cfg.canonConfig()
	if err != nil {
		return err
	}
	da, err := getDocFile(cc, a, ccfg)
	if err != nil {
		return fmt.Errorf("error loading %s: %w", a, err)
	}
	db, err := getDocFile(cc, b, ccfg)
	if err != nil {
		return fmt.Errorf("error loading %s: %w", b, err)
	}
	res := libdiff.Diff(da, db)
	if res.IsEmpty() {
		return nil
	}
	if !cfg.Quiet {
		if err := render(cfg, cc, res); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}

func render(cfg *DiffConfig, cc *cli.Context, res *libdiff.Result) error {
	if cfg.JSON {
		return encode.EncodeJSON(res, cc.Out)
	}
	return encode.Encode(res, cc.Out, cfg.encOpts()...)
}
