package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/xmldiffs/xmldiffs/canon"
	"github.com/xmldiffs/xmldiffs/ir"
	"github.com/xmldiffs/xmldiffs/parse"
)

// getDocFile reads, parses and canonicalizes one input; "-" is stdin.
func getDocFile(cc *cli.Context, path string, cfg *canon.Config) (*ir.Document, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	doc, err := parse.Parse(d)
	if err != nil {
		return nil, err
	}
	return canon.Canonicalize(doc, cfg)
}
