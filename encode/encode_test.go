package encode

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/xmldiffs/xmldiffs/canon"
	"github.com/xmldiffs/xmldiffs/ir"
	"github.com/xmldiffs/xmldiffs/libdiff"
	"github.com/xmldiffs/xmldiffs/parse"
)

func mustCanon(t *testing.T, src string) *ir.Document {
	t.Helper()
	doc, err := parse.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	res, err := canon.Canonicalize(doc, nil)
	if err != nil {
		t.Fatalf("canonicalize %q: %v", src, err)
	}
	return res
}

func mustDiff(t *testing.T, from, to string) *libdiff.Result {
	t.Helper()
	return libdiff.Diff(mustCanon(t, from), mustCanon(t, to))
}

func TestEncodeText(t *testing.T) {
	res := mustDiff(t, `<a x="1"><b>1</b></a>`, `<a x="2"><c/></a>`)
	var b strings.Builder
	if err := Encode(res, &b); err != nil {
		t.Fatal(err)
	}
	want := `~ attr /a x: "1" -> "2"
- removed /a/b
+ added /a/c
`
	if b.String() != want {
		t.Errorf("got:\n%swant:\n%s", b.String(), want)
	}
}

func TestEncodeMarkers(t *testing.T) {
	tests := []struct {
		kind libdiff.Kind
		want string
	}{
		{libdiff.Added, "+"},
		{libdiff.Removed, "-"},
		{libdiff.AttrChanged, "~"},
		{libdiff.TextChanged, "~"},
		{libdiff.Moved, ">"},
		{libdiff.Renamed, "%"},
	}
	for _, tc := range tests {
		if got := marker(tc.kind); got != tc.want {
			t.Errorf("marker(%s) = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestEncodeColorized(t *testing.T) {
	was := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = was }()

	res := mustDiff(t, `<a><b>hello</b></a>`, `<a><b>help</b></a>`)
	var b strings.Builder
	if err := Encode(res, &b, EncodeColors(NewColors())); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("expected escape sequences in %q", out)
	}
	if !strings.Contains(out, "text /a/b/#text: ") {
		t.Errorf("missing entry head in %q", out)
	}
	// the shared prefix of the two values stays uncolored red/green
	if !strings.Contains(out, "hel") {
		t.Errorf("missing value text in %q", out)
	}
}

func TestEncodeJSON(t *testing.T) {
	res := mustDiff(t, `<a><b>1</b></a>`, `<a><b>2</b></a>`)
	var b strings.Builder
	if err := EncodeJSON(res, &b); err != nil {
		t.Fatal(err)
	}
	var out []map[string]any
	if err := json.Unmarshal([]byte(b.String()), &out); err != nil {
		t.Fatalf("invalid JSON %q: %v", b.String(), err)
	}
	if len(out) != 1 {
		t.Fatalf("expected one entry, got %v", out)
	}
	e := out[0]
	if e["kind"] != "TextChanged" || e["path"] != "/a/b/#text" ||
		e["old"] != "1" || e["new"] != "2" {
		t.Errorf("unexpected entry %v", e)
	}
	if _, ok := e["attr"]; ok {
		t.Error("attr must be omitted for text changes")
	}
}

func TestEncodeJSONEmpty(t *testing.T) {
	var b strings.Builder
	if err := EncodeJSON(nil, &b); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(b.String()) != "[]" {
		t.Errorf("empty result must encode as [], got %q", b.String())
	}
}

func TestEncodeXML(t *testing.T) {
	doc := mustCanon(t, `<x:r xmlns:x="u" x:k="v &amp; w"><x:b> hi </x:b><empty/></x:r>`)
	var b strings.Builder
	if err := EncodeXML(doc, &b); err != nil {
		t.Fatal(err)
	}
	want := `<ns1:r xmlns:ns1="u" ns1:k="v &amp; w">
  <ns1:b>hi</ns1:b>
  <empty/>
</ns1:r>
`
	if b.String() != want {
		t.Errorf("got:\n%swant:\n%s", b.String(), want)
	}
}

func TestEncodeXMLRoundTrip(t *testing.T) {
	for _, src := range []string{
		`<a/>`,
		`<a x="1" y="2"><b>text</b><b/></a>`,
		`<x:a xmlns:x="u1" xmlns:y="u2" y:k="v"><y:b/>mixed<x:c/></x:a>`,
	} {
		doc := mustCanon(t, src)
		var b strings.Builder
		if err := EncodeXML(doc, &b); err != nil {
			t.Fatal(err)
		}
		back, err := parse.Parse([]byte(b.String()))
		if err != nil {
			t.Fatalf("re-parse of %q: %v", b.String(), err)
		}
		cback, err := canon.Canonicalize(back, nil)
		if err != nil {
			t.Fatal(err)
		}
		if !ir.Equal(doc.Root, cback.Root) {
			t.Errorf("round trip of %q lost information:\n%s", src, b.String())
		}
	}
}
