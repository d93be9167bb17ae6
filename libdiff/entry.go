package libdiff

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xmldiffs/xmldiffs/ir"
)

type Kind int

const (
	Added Kind = iota + 1
	Removed
	AttrChanged
	TextChanged
	Moved
	Renamed
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		Added:       "Added",
		Removed:     "Removed",
		AttrChanged: "AttrChanged",
		TextChanged: "TextChanged",
		Moved:       "Moved",
		Renamed:     "Renamed",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Added":       Added,
		"Removed":     Removed,
		"AttrChanged": AttrChanged,
		"TextChanged": TextChanged,
		"Moved":       Moved,
		"Renamed":     Renamed,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized diff kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{Added, Removed, AttrChanged, TextChanged, Moved, Renamed}
}

// Entry is one reported difference.  Entries are immutable snapshots:
// every string is copied out of the trees at creation time.
type Entry struct {
	Kind Kind

	// Path locates the affected node in the new tree; for Removed
	// entries it locates the node in the old tree (the parent steps are
	// valid in both, matched parents share their occurrence index).
	Path ir.Path

	// Attr names the changed attribute for AttrChanged.
	Attr ir.Name

	// Old and New carry the kind-specific payload: attribute values or
	// text for AttrChanged/TextChanged (nil marks an absent side), the
	// old and new element names for Renamed.
	Old *string
	New *string

	// OldIndex and NewIndex are the sibling positions of a Moved node.
	OldIndex int
	NewIndex int
}

func (e Entry) String() string {
	switch e.Kind {
	case Added:
		return "added " + e.Path.String()
	case Removed:
		return "removed " + e.Path.String()
	case AttrChanged:
		return "attr " + e.Path.String() + " " + e.Attr.String() + ": " +
			optStr(e.Old) + " -> " + optStr(e.New)
	case TextChanged:
		return "text " + e.Path.String() + ": " + optStr(e.Old) + " -> " + optStr(e.New)
	case Moved:
		return "moved " + e.Path.String() + ": " + strconv.Itoa(e.OldIndex) +
			" -> " + strconv.Itoa(e.NewIndex)
	case Renamed:
		return "renamed " + e.Path.String() + ": " + optStr(e.Old) + " -> " + optStr(e.New)
	}
	return "<unknown entry>"
}

func optStr(s *string) string {
	if s == nil {
		return "null"
	}
	return strconv.Quote(*s)
}

// Result is the ordered outcome of a diff.  The zero value and nil are
// both the empty result.
type Result struct {
	entries []Entry
}

// IsEmpty reports semantic equivalence of the two compared documents.
func (r *Result) IsEmpty() bool {
	return r == nil || len(r.entries) == 0
}

func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Entries returns the differences in depth-first document order of the
// new tree.  The returned slice is the caller's to keep.
func (r *Result) Entries() []Entry {
	if r == nil {
		return nil
	}
	res := make([]Entry, len(r.entries))
	copy(res, r.entries)
	return res
}

func (r *Result) String() string {
	if r.IsEmpty() {
		return ""
	}
	var b strings.Builder
	for _, e := range r.entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
