package ir

// Key is the identity of a node within its sibling list: node kind plus,
// for elements, the resolved name.  Text nodes of a parent all share one
// key.
type Key struct {
	Type Type
	Name Name
}

// Key returns the identity-key of n.
func (n *Node) Key() Key {
	if n.Type == ElementType {
		return Key{Type: ElementType, Name: n.Name}
	}
	return Key{Type: n.Type}
}

// Equal reports deep structural equality of two subtrees.  Attribute
// order is significant here; canonical trees keep attributes sorted so
// for them Equal means semantic equality.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type || a.Name != b.Name {
		return false
	}
	if a.Text != b.Text || a.Target != b.Target {
		return false
	}
	if len(a.Attrs) != len(b.Attrs) || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Attrs {
		if a.Attrs[i] != b.Attrs[i] {
			return false
		}
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
