// Package parse adapts encoding/xml's token stream into a raw ir tree.
// The raw tree keeps text verbatim and retains comments and processing
// instructions; canonicalization decides what is semantic.
package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"encoding/xml"

	"github.com/xmldiffs/xmldiffs/debug"
	"github.com/xmldiffs/xmldiffs/ir"
)

var ErrParse = errors.New("parse error")

type config struct {
	charset func(label string, input io.Reader) (io.Reader, error)
}

type ParseOption func(*config)

// WithCharsetReader overrides the decoder used for documents that
// declare a non-UTF-8 encoding.
func WithCharsetReader(fn func(label string, input io.Reader) (io.Reader, error)) ParseOption {
	return func(c *config) { c.charset = fn }
}

func Parse(d []byte, opts ...ParseOption) (*ir.Document, error) {
	return ParseReader(bytes.NewReader(d), opts...)
}

func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Document, error) {
	cfg := config{charset: CharsetReader}
	for _, opt := range opts {
		opt(&cfg)
	}

	dec := xml.NewDecoder(r)
	dec.Strict = true
	dec.CharsetReader = cfg.charset

	doc := &ir.Document{Version: "1.0"}
	var cur *ir.Node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := ir.Element(ir.Name{Space: t.Name.Space, Local: t.Name.Local})
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, ir.Attr{
					Name:  ir.Name{Space: a.Name.Space, Local: a.Name.Local},
					Value: a.Value,
				})
			}
			if cur == nil {
				if doc.Root != nil {
					return nil, fmt.Errorf("%w: multiple root elements", ErrParse)
				}
				doc.Root = el
			} else {
				cur.Append(el)
			}
			cur = el
		case xml.EndElement:
			cur = cur.Parent
		case xml.CharData:
			// character data outside the root carries no content
			if cur != nil {
				cur.Append(ir.Text(string(t)))
			}
		case xml.Comment:
			if cur != nil {
				cur.Append(&ir.Node{Type: ir.CommentType, Text: string(t)})
			}
		case xml.ProcInst:
			if t.Target == "xml" && cur == nil {
				readProlog(doc, string(t.Inst))
				continue
			}
			if cur != nil {
				cur.Append(&ir.Node{Type: ir.ProcInstType, Target: t.Target, Text: string(t.Inst)})
			}
		case xml.Directive:
			// DOCTYPE and friends; nothing to keep
		}
	}
	if doc.Root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrParse)
	}
	if debug.Parse() {
		debug.Logf("parse: %s\n", debug.JSON(parseTrace{
			Version:    doc.Version,
			Encoding:   doc.Encoding,
			Standalone: doc.Standalone,
			Root:       doc.Root.Name.String(),
			Nodes:      countNodes(doc.Root),
		}))
	}
	return doc, nil
}

type parseTrace struct {
	Version    string `json:"version"`
	Encoding   string `json:"encoding,omitempty"`
	Standalone bool   `json:"standalone,omitempty"`
	Root       string `json:"root"`
	Nodes      int    `json:"nodes"`
}

func countNodes(n *ir.Node) int {
	res := 1
	for _, c := range n.Children {
		res += countNodes(c)
	}
	return res
}

// readProlog extracts version/encoding/standalone from the XML
// declaration's pseudo-attributes.
func readProlog(doc *ir.Document, inst string) {
	if v, ok := prologAttr(inst, "version"); ok {
		doc.Version = v
	}
	if v, ok := prologAttr(inst, "encoding"); ok {
		doc.Encoding = v
	}
	if v, ok := prologAttr(inst, "standalone"); ok {
		doc.Standalone = v == "yes"
	}
}

func prologAttr(inst, name string) (string, bool) {
	rest := inst
	for {
		i := strings.Index(rest, name)
		if i < 0 {
			return "", false
		}
		rest = rest[i+len(name):]
		trimmed := strings.TrimLeft(rest, " \t\r\n")
		if !strings.HasPrefix(trimmed, "=") {
			continue
		}
		trimmed = strings.TrimLeft(trimmed[1:], " \t\r\n")
		if len(trimmed) < 2 {
			return "", false
		}
		quote := trimmed[0]
		if quote != '"' && quote != '\'' {
			continue
		}
		end := strings.IndexByte(trimmed[1:], quote)
		if end < 0 {
			return "", false
		}
		return trimmed[1 : 1+end], true
	}
}
