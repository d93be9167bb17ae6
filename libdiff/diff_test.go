package libdiff

import (
	"strings"
	"testing"

	"github.com/xmldiffs/xmldiffs/canon"
	"github.com/xmldiffs/xmldiffs/ir"
	"github.com/xmldiffs/xmldiffs/parse"
)

type diffTest struct {
	name string
	a    string
	b    string
	diff string
}

var diffTests = []diffTest{
	{
		name: "identical",
		a:    `<a><b/></a>`,
		b:    `<a><b/></a>`,
		diff: ``,
	},
	{
		name: "attr change",
		a:    `<a x="1"/>`,
		b:    `<a x="2"/>`,
		diff: `attr /a x: "1" -> "2"`,
	},
	{
		name: "attr added",
		a:    `<a/>`,
		b:    `<a x="2"/>`,
		diff: `attr /a x: null -> "2"`,
	},
	{
		name: "attr removed",
		a:    `<a x="1"/>`,
		b:    `<a/>`,
		diff: `attr /a x: "1" -> null`,
	},
	{
		name: "attr order is not a change",
		a:    `<a x="1" y="2"/>`,
		b:    `<a y="2" x="1"/>`,
		diff: ``,
	},
	{
		name: "added element",
		a:    `<a><b/></a>`,
		b:    `<a><b/><c/></a>`,
		diff: `added /a/c`,
	},
	{
		name: "removed element",
		a:    `<a><b/><c/></a>`,
		b:    `<a><b/></a>`,
		diff: `removed /a/c`,
	},
	{
		name: "text change",
		a:    `<a>hello</a>`,
		b:    `<a>world</a>`,
		diff: `text /a/#text: "hello" -> "world"`,
	},
	{
		name: "sibling reorder is a move, not add/remove",
		a:    `<a><b/><c/></a>`,
		b:    `<a><c/><b/></a>`,
		diff: `
moved /a/c: 1 -> 0
moved /a/b: 0 -> 1`,
	},
	{
		name: "repeated siblings match by occurrence",
		a:    `<a><b>1</b><b>2</b></a>`,
		b:    `<a><b>1</b><b>3</b></a>`,
		diff: `text /a/b[1]/#text: "2" -> "3"`,
	},
	{
		name: "rename",
		a:    `<a><b>hi</b></a>`,
		b:    `<a><c>hi</c></a>`,
		diff: `renamed /a/c: "b" -> "c"`,
	},
	{
		name: "rename ambiguous falls back to add and remove",
		a:    `<a><x/><z/></a>`,
		b:    `<a><y/></a>`,
		diff: `
removed /a/x
removed /a/z
added /a/y`,
	},
	{
		name: "root mismatch stops at the roots",
		a:    `<a><b/></a>`,
		b:    `<b><a/></b>`,
		diff: `
removed /a
added /b`,
	},
	{
		name: "namespace change at root",
		a:    `<a xmlns="u1"/>`,
		b:    `<a xmlns="u2"/>`,
		diff: `
removed /{u1}a
added /{u2}a`,
	},
	{
		name: "removed interleaved at mapped position",
		a:    `<a><b/><x/><c/></a>`,
		b:    `<a><b/><c/></a>`,
		diff: `removed /a/x`,
	},
	{
		name: "changed subtree is not a move",
		a:    `<a><b>1</b><c/></a>`,
		b:    `<a><c/><b>2</b></a>`,
		diff: `
moved /a/c: 1 -> 0
text /a/b/#text: "1" -> "2"`,
	},
	{
		name: "nested change before trailing removal",
		a:    `<r><p><q x="1"/></p><s/></r>`,
		b:    `<r><p><q x="2"/></p></r>`,
		diff: `
attr /r/p/q x: "1" -> "2"
removed /r/s`,
	},
	{
		name: "whitespace is insignificant",
		a:    "<a>\n  <b> x </b>\n</a>",
		b:    `<a><b>x</b></a>`,
		diff: ``,
	},
	{
		name: "prefix spelling is insignificant",
		a:    `<x:a xmlns:x="u"><x:b p="1"/></x:a>`,
		b:    `<y:a xmlns:y="u"><y:b p="1"/></y:a>`,
		diff: ``,
	},
}

func mustCanon(t *testing.T, src string) *ir.Document {
	t.Helper()
	doc, err := parse.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	cd, err := canon.Canonicalize(doc, nil)
	if err != nil {
		t.Fatalf("canonicalize %q: %v", src, err)
	}
	return cd
}

func TestDiff(t *testing.T) {
	for _, tt := range diffTests {
		t.Run(tt.name, func(t *testing.T) {
			res := Diff(mustCanon(t, tt.a), mustCanon(t, tt.b))
			got := strings.TrimSpace(res.String())
			want := strings.TrimSpace(tt.diff)
			if got != want {
				t.Errorf("got:\n%s\nwant:\n%s", got, want)
			}
			if (got == "") != res.IsEmpty() {
				t.Errorf("IsEmpty() = %v with %d entries", res.IsEmpty(), res.Len())
			}
		})
	}
}

func TestDiffReflexive(t *testing.T) {
	for _, tt := range diffTests {
		d := mustCanon(t, tt.a)
		if res := Diff(d, d); !res.IsEmpty() {
			t.Errorf("%s: diff(D, D) = %q, want empty", tt.name, res)
		}
	}
}

func TestDiffDeterministic(t *testing.T) {
	for _, tt := range diffTests {
		a1, b1 := mustCanon(t, tt.a), mustCanon(t, tt.b)
		first := Diff(a1, b1).String()
		second := Diff(a1, b1).String()
		if first != second {
			t.Errorf("%s: repeated diff disagrees:\n%s\nvs\n%s", tt.name, first, second)
		}
	}
}

func TestDiffContractViolation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on element with empty name")
		}
	}()
	bad := &ir.Document{Root: &ir.Node{Type: ir.ElementType}}
	Diff(bad, bad)
}

func TestEntriesAreSnapshots(t *testing.T) {
	res := Diff(mustCanon(t, `<a x="1"/>`), mustCanon(t, `<a x="2"/>`))
	es := res.Entries()
	if len(es) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(es))
	}
	es[0].Kind = Removed
	if res.Entries()[0].Kind != AttrChanged {
		t.Error("Entries() must not expose internal state")
	}
}
