// Package ir holds the document tree shared by the parser adapter, the
// canonicalizer and the differ.  A Node is a tagged variant over the XML
// node kinds; Comment and ProcInst nodes occur only in raw trees and are
// dropped by canonicalization.
package ir

import (
	"sort"
	"strings"
)

// XMLNamespace is the URI bound to the reserved "xml" prefix.
const XMLNamespace = "http://www.w3.org/XML/1998/namespace"

// Name is an XML name with its namespace resolved to a URI.  Space is
// empty for names in no namespace.
type Name struct {
	Space, Local string
}

// String renders n in Clark notation ({uri}local) when Space is set.
func (n Name) String() string {
	if n.Space == "" {
		return n.Local
	}
	return "{" + n.Space + "}" + n.Local
}

type Attr struct {
	Name  Name
	Value string
}

type Node struct {
	Type Type
	Name Name // elements only

	// Attrs is logically a mapping keyed by Name.  Canonical trees keep
	// it sorted by (Space, Local) with unique keys.
	Attrs []Attr

	Children []*Node

	Text   string // text content, comment text, or proc-inst data
	Target string // proc-inst target

	Parent      *Node
	ParentIndex int
}

func Element(name Name) *Node {
	return &Node{Type: ElementType, Name: name}
}

func Text(s string) *Node {
	return &Node{Type: TextType, Text: s}
}

// Append adds child to n, maintaining parent links.
func (n *Node) Append(child *Node) {
	child.Parent = n
	child.ParentIndex = len(n.Children)
	n.Children = append(n.Children, child)
}

// AttrValue looks up an attribute by resolved name.
func (n *Node) AttrValue(name Name) (string, bool) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			return n.Attrs[i].Value, true
		}
	}
	return "", false
}

// SetAttr sets or replaces an attribute value.
func (n *Node) SetAttr(name Name, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

// SortAttrs orders Attrs by (Space, Local).  Canonical trees hold this
// invariant so that attribute comparisons never depend on source order.
func (n *Node) SortAttrs() {
	sort.Slice(n.Attrs, func(i, j int) bool {
		a, b := n.Attrs[i].Name, n.Attrs[j].Name
		if a.Space != b.Space {
			return a.Space < b.Space
		}
		return a.Local < b.Local
	})
}

// Content returns the concatenated text content of the subtree.
func (n *Node) Content() string {
	if n.Type != ElementType {
		return n.Text
	}
	var b strings.Builder
	for _, c := range n.Children {
		b.WriteString(c.Content())
	}
	return b.String()
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Type = n.Type
	dst.Name = n.Name
	dst.Text = n.Text
	dst.Target = n.Target
	dst.Parent = n.Parent
	dst.ParentIndex = n.ParentIndex
	if n.Attrs != nil {
		dst.Attrs = make([]Attr, len(n.Attrs))
		copy(dst.Attrs, n.Attrs)
	}
	if n.Children != nil {
		dst.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			cc := &Node{}
			c.CloneTo(cc)
			cc.Parent = dst
			cc.ParentIndex = i
			dst.Children[i] = cc
		}
	}
	return dst
}

// Document owns exactly one root element plus the prolog facts the
// parser observed.
type Document struct {
	Root       *Node
	Version    string
	Encoding   string
	Standalone bool
}

func (d *Document) Clone() *Document {
	res := &Document{
		Version:    d.Version,
		Encoding:   d.Encoding,
		Standalone: d.Standalone,
	}
	if d.Root != nil {
		res.Root = d.Root.Clone()
		res.Root.Parent = nil
		res.Root.ParentIndex = 0
	}
	return res
}
