package encode

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"encoding/xml"

	"github.com/xmldiffs/xmldiffs/ir"
)

// EncodeXML writes a canonical tree back out as indented XML.  Prefixes
// are invented (ns1, ns2, ... in first-appearance order) and declared on
// the root element, so equivalent canonical trees serialize identically.
func EncodeXML(doc *ir.Document, w io.Writer) error {
	bw := bufio.NewWriter(w)
	p := &xmlPrinter{w: bw, prefix: map[string]string{}}
	p.assign(doc.Root)
	p.element(doc.Root, 0, true)
	return bw.Flush()
}

type xmlPrinter struct {
	w      *bufio.Writer
	uris   []string
	prefix map[string]string
}

func (p *xmlPrinter) assign(n *ir.Node) {
	if n.Type != ir.ElementType {
		return
	}
	p.note(n.Name.Space)
	for _, a := range n.Attrs {
		p.note(a.Name.Space)
	}
	for _, c := range n.Children {
		p.assign(c)
	}
}

func (p *xmlPrinter) note(uri string) {
	if uri == "" || uri == ir.XMLNamespace {
		return
	}
	if _, ok := p.prefix[uri]; ok {
		return
	}
	p.uris = append(p.uris, uri)
	p.prefix[uri] = "ns" + strconv.Itoa(len(p.uris))
}

func (p *xmlPrinter) name(n ir.Name) string {
	switch n.Space {
	case "":
		return n.Local
	case ir.XMLNamespace:
		return "xml:" + n.Local
	}
	return p.prefix[n.Space] + ":" + n.Local
}

func (p *xmlPrinter) element(n *ir.Node, depth int, root bool) {
	indent := strings.Repeat("  ", depth)
	p.w.WriteString(indent)
	p.w.WriteByte('<')
	tag := p.name(n.Name)
	p.w.WriteString(tag)
	if root {
		for i, uri := range p.uris {
			p.w.WriteString(" xmlns:ns" + strconv.Itoa(i+1) + "=\"")
			p.escape(uri)
			p.w.WriteByte('"')
		}
	}
	for _, a := range n.Attrs {
		p.w.WriteByte(' ')
		p.w.WriteString(p.name(a.Name))
		p.w.WriteString("=\"")
		p.escape(a.Value)
		p.w.WriteByte('"')
	}
	switch {
	case len(n.Children) == 0:
		p.w.WriteString("/>\n")
	case len(n.Children) == 1 && n.Children[0].Type == ir.TextType:
		p.w.WriteByte('>')
		p.escape(n.Children[0].Text)
		p.w.WriteString("</" + tag + ">\n")
	default:
		p.w.WriteString(">\n")
		for _, c := range n.Children {
			if c.Type == ir.TextType {
				p.w.WriteString(indent + "  ")
				p.escape(c.Text)
				p.w.WriteByte('\n')
				continue
			}
			p.element(c, depth+1, false)
		}
		p.w.WriteString(indent + "</" + tag + ">\n")
	}
}

func (p *xmlPrinter) escape(s string) {
	xml.EscapeText(p.w, []byte(s))
}
