package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/xmldiffs/xmldiffs/encode"
)

func canonCmd(cfg *CanonConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Canon.Parse(cc, args)
	if err != nil {
		cfg.Canon.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	ccfg, err := cfg.canonConfig()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		doc, err := getDocFile(cc, file, ccfg)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("\n")); err != nil {
				return err
			}
		}
		if err := encode.EncodeXML(doc, cc.Out); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
