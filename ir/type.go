package ir

import "fmt"

type Type int

const (
	ElementType Type = iota + 1
	TextType
	CommentType
	ProcInstType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ElementType:  "Element",
		TextType:     "Text",
		CommentType:  "Comment",
		ProcInstType: "ProcInst",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Element":  ElementType,
		"Text":     TextType,
		"Comment":  CommentType,
		"ProcInst": ProcInstType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized node type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		ElementType,
		TextType,
		CommentType,
		ProcInstType,
	}
}

// IsLeaf reports whether nodes of type t never carry children.
func (t Type) IsLeaf() bool {
	return t != ElementType
}
