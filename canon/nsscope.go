package canon

import "github.com/xmldiffs/xmldiffs/ir"

// nsScope is the immutable declaration chain threaded down the
// canonicalization recursion.  It only tracks the default namespace;
// prefixed names arrive from the decoder with their URIs already
// resolved and are never re-resolved here.
type nsScope struct {
	parent   *nsScope
	bindings map[string]string
}

func rootScope() *nsScope {
	return &nsScope{}
}

// push returns a child scope extended with the default-namespace
// declaration found in attrs, or the receiver itself when there is
// none.
func (s *nsScope) push(attrs []ir.Attr) *nsScope {
	for _, a := range attrs {
		prefix, ok := declPrefix(a.Name)
		if !ok || prefix != "" {
			continue
		}
		return &nsScope{parent: s, bindings: map[string]string{"": a.Value}}
	}
	return s
}

// defaultNS resolves the in-scope default namespace.  It applies to
// unprefixed element names only, never to attributes.
func (s *nsScope) defaultNS() (string, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if uri, ok := cur.bindings[""]; ok {
			return uri, uri != ""
		}
	}
	return "", false
}

// isNSDecl reports whether name is an xmlns declaration attribute.
func isNSDecl(name ir.Name) bool {
	_, ok := declPrefix(name)
	return ok
}

// declPrefix returns the prefix bound by an xmlns attribute, "" for the
// default namespace declaration.
func declPrefix(name ir.Name) (string, bool) {
	if name.Space == "xmlns" {
		return name.Local, true
	}
	if name.Space == "" && name.Local == "xmlns" {
		return "", true
	}
	return "", false
}
