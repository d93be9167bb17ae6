// Package canon normalizes raw parsed trees into canonical form:
// namespace prefixes resolved to URIs, xmlns declarations stripped,
// attributes sorted, comments and processing instructions dropped, and
// insignificant whitespace removed.  Canonical trees are what the differ
// compares; two documents are semantically equivalent iff their
// canonical trees are structurally equal.
package canon

import (
	"strings"

	"github.com/xmldiffs/xmldiffs/debug"
	"github.com/xmldiffs/xmldiffs/ir"
)

// Canonicalize produces a new, independent canonical document.  It
// never modifies doc and fails only when cfg is invalid.
func Canonicalize(doc *ir.Document, cfg *Config) (*ir.Document, error) {
	c, err := newCanonicalizer(cfg)
	if err != nil {
		return nil, err
	}
	res := &ir.Document{
		Version:    doc.Version,
		Encoding:   doc.Encoding,
		Standalone: doc.Standalone,
	}
	root, err := c.element(doc.Root, rootScope(), "", false)
	if err != nil {
		return nil, err
	}
	res.Root = root
	return res, nil
}

type canonicalizer struct {
	preserve map[string]bool
	ignoreNS bool
	filters  []*filter
}

func newCanonicalizer(cfg *Config) (*canonicalizer, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.validateNames(); err != nil {
		return nil, err
	}
	// compiling doubles as validation; each rule is compiled once
	filters, err := cfg.compileFilters()
	if err != nil {
		return nil, err
	}
	c := &canonicalizer{
		preserve: make(map[string]bool, len(cfg.PreserveWhitespaceIn)),
		ignoreNS: cfg.IgnoreNamespaces,
		filters:  filters,
	}
	for _, name := range cfg.PreserveWhitespaceIn {
		c.preserve[name] = true
	}
	return c, nil
}

// element canonicalizes one element.  path is the canonical path of the
// element's parent, preserve tells whether an ancestor suppresses
// whitespace normalization.
func (c *canonicalizer) element(raw *ir.Node, scope *nsScope, path string, preserve bool) (*ir.Node, error) {
	if raw == nil || raw.Type != ir.ElementType || raw.Name.Local == "" {
		panic("canon: element node with no name")
	}
	scope = scope.push(raw.Attrs)

	el := ir.Element(c.resolveElem(raw.Name, scope))
	path = path + "/" + el.Name.Local
	preserve = preserve || c.preserve[el.Name.Local]

	for _, a := range raw.Attrs {
		if isNSDecl(a.Name) {
			continue
		}
		name := c.resolve(a.Name)
		if _, dup := el.AttrValue(name); dup {
			if debug.Canon() {
				debug.Logf("canon: dropping duplicate attribute %s at %s\n", name, path)
			}
			continue
		}
		el.Attrs = append(el.Attrs, ir.Attr{Name: name, Value: a.Value})
	}
	el.SortAttrs()

	var pending []string
	flush := func() {
		if len(pending) == 0 {
			return
		}
		text := strings.Join(pending, "")
		pending = pending[:0]
		if !preserve {
			text = collapse(text)
		}
		if text == "" {
			return
		}
		el.Append(ir.Text(text))
	}

	for _, child := range raw.Children {
		switch child.Type {
		case ir.TextType:
			pending = append(pending, child.Text)
		case ir.CommentType, ir.ProcInstType:
			// no semantic weight; adjacent text runs merge across them
		case ir.ElementType:
			drop, err := c.ignored(child, scope, path)
			if err != nil {
				return nil, err
			}
			if drop {
				continue
			}
			flush()
			sub, err := c.element(child, scope, path, preserve)
			if err != nil {
				return nil, err
			}
			el.Append(sub)
		default:
			panic("canon: unknown node type")
		}
	}
	flush()
	return el, nil
}

// collapse trims text at element boundaries and squeezes interior
// whitespace runs to a single space.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// resolve normalizes a parsed name.  encoding/xml already resolves
// declared prefixes to URIs, so a non-empty Space is a URI (or an
// undeclared prefix, kept verbatim) and must never be looked up in the
// declaration scope again: a URI may textually collide with an in-scope
// prefix.  The reserved "xml" prefix is the one spelling the decoder
// leaves unresolved.
func (c *canonicalizer) resolve(n ir.Name) ir.Name {
	if c.ignoreNS {
		return ir.Name{Local: n.Local}
	}
	if n.Space == "xml" {
		return ir.Name{Space: ir.XMLNamespace, Local: n.Local}
	}
	return n
}

// resolveElem additionally applies the in-scope default namespace to
// unprefixed element names (hand-built trees; the decoder does this
// itself for parsed input).  Attributes never take the default
// namespace.
func (c *canonicalizer) resolveElem(n ir.Name, scope *nsScope) ir.Name {
	if n.Space == "" && !c.ignoreNS {
		if uri, ok := scope.defaultNS(); ok {
			return ir.Name{Space: uri, Local: n.Local}
		}
	}
	return c.resolve(n)
}
