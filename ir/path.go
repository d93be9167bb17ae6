package ir

import (
	"strconv"
	"strings"
)

// Step locates a node among its siblings: the node name ("#text" for
// text nodes) and the occurrence index within the siblings sharing the
// node's identity-key, counted from zero.
type Step struct {
	Name  Name
	Text  bool
	Index int
}

func (s Step) String() string {
	var b strings.Builder
	if s.Text {
		b.WriteString("#text")
	} else {
		b.WriteString(s.Name.String())
	}
	if s.Index > 0 {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(s.Index))
		b.WriteByte(']')
	}
	return b.String()
}

// Path locates a node from the document root, one Step per level.
type Path []Step

func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, s := range p {
		b.WriteByte('/')
		b.WriteString(s.String())
	}
	return b.String()
}

// Child extends p by one step without sharing the backing array with
// future extensions.
func (p Path) Child(s Step) Path {
	res := make(Path, len(p), len(p)+1)
	copy(res, p)
	return append(res, s)
}

// Path computes the node's position descriptor by walking parent links.
func (n *Node) Path() Path {
	var steps []Step
	for cur := n; cur != nil; cur = cur.Parent {
		steps = append(steps, cur.step())
	}
	// reverse into root-first order
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}

func (n *Node) step() Step {
	s := Step{Name: n.Name, Text: n.Type != ElementType}
	if n.Parent == nil {
		return s
	}
	key := n.Key()
	for _, sib := range n.Parent.Children[:n.ParentIndex] {
		if sib.Key() == key {
			s.Index++
		}
	}
	return s
}
