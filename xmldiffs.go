// Package xmldiffs compares XML documents for semantic equivalence:
// incidental formatting (attribute order, insignificant whitespace,
// namespace-prefix spelling) is ignored, meaningful changes (added,
// removed, renamed, moved elements, changed attributes or text) are
// reported.
package xmldiffs

import (
	"github.com/xmldiffs/xmldiffs/canon"
	"github.com/xmldiffs/xmldiffs/ir"
	"github.com/xmldiffs/xmldiffs/libdiff"
	"github.com/xmldiffs/xmldiffs/parse"
)

// Config aliases the canonicalization options.
type Config = canon.Config

// Compare parses, canonicalizes and diffs two serialized documents.
func Compare(a, b []byte, cfg *Config) (*libdiff.Result, error) {
	ca, err := load(a, cfg)
	if err != nil {
		return nil, err
	}
	cb, err := load(b, cfg)
	if err != nil {
		return nil, err
	}
	return libdiff.Diff(ca, cb), nil
}

// Equal reports whether two serialized documents are semantically
// equivalent.
func Equal(a, b []byte, cfg *Config) (bool, error) {
	res, err := Compare(a, b, cfg)
	if err != nil {
		return false, err
	}
	return res.IsEmpty(), nil
}

// Diff compares two canonical documents.
func Diff(from, to *ir.Document) *libdiff.Result {
	return libdiff.Diff(from, to)
}

func load(d []byte, cfg *Config) (*ir.Document, error) {
	doc, err := parse.Parse(d)
	if err != nil {
		return nil, err
	}
	return canon.Canonicalize(doc, cfg)
}
