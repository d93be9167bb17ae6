package ir

import (
	"encoding/binary"
	"hash/maphash"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the subtree rooted at n.  Equal subtrees
// hash equal within one process; the differ uses it as a cheap pre-check
// before calling Equal.  It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(n.Type))

	switch n.Type {
	case ElementType:
		h.WriteString(n.Name.Space)
		h.WriteByte(0)
		h.WriteString(n.Name.Local)
		h.WriteByte(0)
		for _, a := range n.Attrs {
			h.WriteString(a.Name.Space)
			h.WriteByte(0)
			h.WriteString(a.Name.Local)
			h.WriteByte(0)
			h.WriteString(a.Value)
			h.WriteByte(0)
		}
		var b [8]byte
		for _, c := range n.Children {
			binary.LittleEndian.PutUint64(b[:], c.Hash())
			h.Write(b[:])
		}
	case TextType, CommentType:
		h.WriteString(n.Text)
	case ProcInstType:
		h.WriteString(n.Target)
		h.WriteByte(0)
		h.WriteString(n.Text)
	}
	return h.Sum64()
}
