package xmldiffs

import (
	"strings"
	"testing"

	"github.com/xmldiffs/xmldiffs/canon"
	"github.com/xmldiffs/xmldiffs/ir"
	"github.com/xmldiffs/xmldiffs/libdiff"
	"github.com/xmldiffs/xmldiffs/parse"
)

func mustEqual(t *testing.T, a, b string, cfg *Config) bool {
	t.Helper()
	eq, err := Equal([]byte(a), []byte(b), cfg)
	if err != nil {
		t.Fatalf("Equal(%q, %q): %v", a, b, err)
	}
	return eq
}

func TestEquivalence(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		cfg  *Config
		eq   bool
	}{
		{
			name: "self",
			a:    `<a x="1"><b>hi</b></a>`,
			b:    `<a x="1"><b>hi</b></a>`,
			eq:   true,
		},
		{
			name: "attribute order",
			a:    `<a x="1" y="2"/>`,
			b:    `<a y="2" x="1"/>`,
			eq:   true,
		},
		{
			name: "whitespace",
			a:    "<a>\n  <b>hello   world</b>\n</a>",
			b:    `<a><b>hello world</b></a>`,
			eq:   true,
		},
		{
			name: "prefix spelling",
			a:    `<x:a xmlns:x="u"><x:b/></x:a>`,
			b:    `<y:a xmlns:y="u"><y:b/></y:a>`,
			eq:   true,
		},
		{
			name: "default vs prefixed namespace",
			a:    `<a xmlns="u"><b/></a>`,
			b:    `<x:a xmlns:x="u"><x:b/></x:a>`,
			eq:   true,
		},
		{
			name: "comments and instructions",
			a:    `<a><!-- note --><b/><?pi x?></a>`,
			b:    `<a><b/></a>`,
			eq:   true,
		},
		{
			name: "different text",
			a:    `<a><b>1</b></a>`,
			b:    `<a><b>2</b></a>`,
			eq:   false,
		},
		{
			name: "different namespace",
			a:    `<a xmlns="u1"/>`,
			b:    `<a xmlns="u2"/>`,
			eq:   false,
		},
		{
			name: "namespaces ignored",
			a:    `<a xmlns="u1"/>`,
			b:    `<a xmlns="u2"/>`,
			cfg:  &Config{IgnoreNamespaces: true},
			eq:   true,
		},
		{
			name: "preserved whitespace differs",
			a:    `<a><pre>x  y</pre></a>`,
			b:    `<a><pre>x y</pre></a>`,
			cfg:  &Config{PreserveWhitespaceIn: []string{"pre"}},
			eq:   false,
		},
		{
			name: "ignored subtree differs",
			a:    `<a><meta>1</meta><b/></a>`,
			b:    `<a><meta>2</meta><b/></a>`,
			cfg:  &Config{Ignore: []string{`name == "meta"`}},
			eq:   true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := mustEqual(t, tc.a, tc.b, tc.cfg); got != tc.eq {
				t.Errorf("Equal = %v, want %v", got, tc.eq)
			}
			// equivalence is symmetric
			if got := mustEqual(t, tc.b, tc.a, tc.cfg); got != tc.eq {
				t.Errorf("Equal reversed = %v, want %v", got, tc.eq)
			}
		})
	}
}

func TestCompareReportsChanges(t *testing.T) {
	res, err := Compare(
		[]byte(`<a><b>1</b></a>`),
		[]byte(`<a x="2"><b>1</b><c/></a>`),
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	got := res.String()
	want := `attr /a x: null -> "2"
added /a/c
`
	if got != want {
		t.Errorf("got:\n%swant:\n%s", got, want)
	}
}

func TestCompareParseError(t *testing.T) {
	_, err := Compare([]byte(`<a>`), []byte(`<a/>`), nil)
	if err == nil || !strings.Contains(err.Error(), "parse error") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestCompareConfigError(t *testing.T) {
	_, err := Compare([]byte(`<a/>`), []byte(`<a/>`), &Config{Ignore: []string{"(("}})
	if err == nil || !strings.Contains(err.Error(), "configuration error") {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestDiffOnCanonicalDocuments(t *testing.T) {
	mk := func(src string) *ir.Document {
		doc, err := parse.Parse([]byte(src))
		if err != nil {
			t.Fatal(err)
		}
		cd, err := canon.Canonicalize(doc, nil)
		if err != nil {
			t.Fatal(err)
		}
		return cd
	}
	res := Diff(mk(`<a><b/></a>`), mk(`<a><c/></a>`))
	if res.IsEmpty() {
		t.Fatal("expected differences")
	}
	entries := res.Entries()
	if len(entries) != 1 || entries[0].Kind != libdiff.Renamed {
		t.Errorf("expected a single rename, got %v", res)
	}
}
