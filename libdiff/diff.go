// Package libdiff aligns two canonical trees and reports their semantic
// differences as an ordered list of entries.  Both inputs must come out
// of canon; the differ is total over canonical trees and panics on
// broken upstream contracts rather than producing a wrong diff.
package libdiff

import (
	"github.com/xmldiffs/xmldiffs/debug"
	"github.com/xmldiffs/xmldiffs/ir"
)

// Diff compares two canonical documents.  Deterministic: the same two
// inputs always yield the same ordered result.
func Diff(from, to *ir.Document) *Result {
	fr, tr := from.Root, to.Root
	checkElement(fr)
	checkElement(tr)

	d := &differ{}
	if fr.Name != tr.Name {
		// unrelated roots; no attempt to diff their interiors
		d.emit(Entry{Kind: Removed, Path: ir.Path{ir.Step{Name: fr.Name}}})
		d.emit(Entry{Kind: Added, Path: ir.Path{ir.Step{Name: tr.Name}}})
		return d.result()
	}
	d.element(fr, tr, ir.Path{ir.Step{Name: tr.Name}})
	return d.result()
}

type differ struct {
	entries []Entry
}

func (d *differ) emit(e Entry) {
	if debug.Diff() {
		debug.Logf("libdiff: %s\n", e)
	}
	d.entries = append(d.entries, e)
}

func (d *differ) result() *Result {
	return &Result{entries: d.entries}
}

// element diffs a matched element pair: attributes first, then the
// aligned child lists.  path locates the pair (new-tree form).
func (d *differ) element(from, to *ir.Node, path ir.Path) {
	d.attrs(from, to, path)
	d.children(from, to, path)
}

// attrs merge-walks the two sorted attribute lists and emits one
// AttrChanged per key whose value differs or is absent on one side.
func (d *differ) attrs(from, to *ir.Node, path ir.Path) {
	i, j := 0, 0
	for i < len(from.Attrs) || j < len(to.Attrs) {
		switch {
		case j >= len(to.Attrs) || (i < len(from.Attrs) && nameLess(from.Attrs[i].Name, to.Attrs[j].Name)):
			v := from.Attrs[i].Value
			d.emit(Entry{Kind: AttrChanged, Path: path, Attr: from.Attrs[i].Name, Old: &v})
			i++
		case i >= len(from.Attrs) || nameLess(to.Attrs[j].Name, from.Attrs[i].Name):
			v := to.Attrs[j].Value
			d.emit(Entry{Kind: AttrChanged, Path: path, Attr: to.Attrs[j].Name, New: &v})
			j++
		default:
			if from.Attrs[i].Value != to.Attrs[j].Value {
				ov, nv := from.Attrs[i].Value, to.Attrs[j].Value
				d.emit(Entry{Kind: AttrChanged, Path: path, Attr: to.Attrs[j].Name, Old: &ov, New: &nv})
			}
			i++
			j++
		}
	}
}

func nameLess(a, b ir.Name) bool {
	if a.Space != b.Space {
		return a.Space < b.Space
	}
	return a.Local < b.Local
}

func checkElement(n *ir.Node) {
	if n == nil || n.Type != ir.ElementType || n.Name.Local == "" {
		panic("libdiff: contract violation: not a well-formed element node")
	}
}
