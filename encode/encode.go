// Package encode renders diff results and canonical trees: colorized
// text lines for terminals, JSON for machine consumers, and indented
// canonical XML.
package encode

import (
	"io"
	"strconv"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/xmldiffs/xmldiffs/libdiff"
)

type encCfg struct {
	colors *Colors
}

type EncodeOption func(*encCfg)

// EncodeColors enables colorized output.
func EncodeColors(c *Colors) EncodeOption {
	return func(cfg *encCfg) { cfg.colors = c }
}

// Encode writes one line per diff entry.
func Encode(res *libdiff.Result, w io.Writer, opts ...EncodeOption) error {
	cfg := &encCfg{}
	for _, opt := range opts {
		opt(cfg)
	}
	for _, e := range res.Entries() {
		if _, err := io.WriteString(w, cfg.line(e)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func marker(k libdiff.Kind) string {
	switch k {
	case libdiff.Added:
		return "+"
	case libdiff.Removed:
		return "-"
	case libdiff.Moved:
		return ">"
	case libdiff.Renamed:
		return "%"
	default:
		return "~"
	}
}

func (cfg *encCfg) line(e libdiff.Entry) string {
	plain := marker(e.Kind) + " " + e.String()
	if cfg.colors == nil {
		return plain
	}
	f := cfg.colors.kind(e.Kind)
	switch e.Kind {
	case libdiff.AttrChanged, libdiff.TextChanged:
		if e.Old != nil && e.New != nil {
			head := marker(e.Kind) + " "
			if e.Kind == libdiff.AttrChanged {
				head += "attr " + e.Path.String() + " " + e.Attr.String() + ": "
			} else {
				head += "text " + e.Path.String() + ": "
			}
			return f(head) + cfg.inline(*e.Old, *e.New)
		}
	}
	return f(plain)
}

// inline renders the changed spans of a value pair, deletions and
// insertions highlighted in place.
func (cfg *encCfg) inline(old, new string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(old, new, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	var out string
	for i := range diffs {
		d := &diffs[i]
		text := strconv.Quote(d.Text)
		text = text[1 : len(text)-1]
		switch d.Type {
		case diffpatch.DiffDelete:
			out += cfg.colors.Del(text)
		case diffpatch.DiffInsert:
			out += cfg.colors.Ins(text)
		case diffpatch.DiffEqual:
			out += cfg.colors.Default(text)
		}
	}
	return out
}
