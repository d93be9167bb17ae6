package encode

import (
	"encoding/json"
	"io"

	"github.com/xmldiffs/xmldiffs/libdiff"
)

type jsonEntry struct {
	Kind     libdiff.Kind `json:"kind"`
	Path     string       `json:"path"`
	Attr     string       `json:"attr,omitempty"`
	Old      *string      `json:"old,omitempty"`
	New      *string      `json:"new,omitempty"`
	OldIndex *int         `json:"oldIndex,omitempty"`
	NewIndex *int         `json:"newIndex,omitempty"`
}

// EncodeJSON writes the diff entries as a JSON array, stable across
// runs for the same inputs.
func EncodeJSON(res *libdiff.Result, w io.Writer) error {
	entries := res.Entries()
	out := make([]jsonEntry, 0, len(entries))
	for _, e := range entries {
		je := jsonEntry{
			Kind: e.Kind,
			Path: e.Path.String(),
			Old:  e.Old,
			New:  e.New,
		}
		if e.Kind == libdiff.AttrChanged {
			je.Attr = e.Attr.String()
		}
		if e.Kind == libdiff.Moved {
			oi, ni := e.OldIndex, e.NewIndex
			je.OldIndex = &oi
			je.NewIndex = &ni
		}
		out = append(out, je)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
