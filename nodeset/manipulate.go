package nodeset

import (
	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"github.com/heathj/nodeset/dom"
)

// Insertion positions accepted by Adjacent.
const (
	BeforeBegin = "beforebegin"
	AfterBegin  = "afterbegin"
	BeforeEnd   = "beforeend"
	AfterEnd    = "afterend"
)

// HTML returns the inner HTML of the first node, or "" for an empty set.
func (s Set) HTML() string {
	return dom.InnerHTML(s.First())
}

// SetHTML replaces the contents of every node with markup. Nodes already
// rewritten stay rewritten if a later node fails.
func (s Set) SetHTML(markup string) (Set, error) {
	for i, n := range s.nodes {
		if err := s.doc.SetInnerHTML(n, markup); err != nil {
			return s, errors.Wrapf(err, "set html on node %d", i)
		}
	}
	return s, nil
}

// Adjacent parses markup once per node and inserts it at position.
func (s Set) Adjacent(position, markup string) (Set, error) {
	for i, n := range s.nodes {
		if err := s.doc.InsertAdjacentHTML(n, position, markup); err != nil {
			return s, errors.Wrapf(err, "insert %s on node %d", position, i)
		}
	}
	return s, nil
}

// Before inserts markup before every node.
func (s Set) Before(markup string) (Set, error) {
	return s.Adjacent(BeforeBegin, markup)
}

// After inserts markup after every node.
func (s Set) After(markup string) (Set, error) {
	return s.Adjacent(AfterEnd, markup)
}

// Prepend inserts markup as the first content of every node.
func (s Set) Prepend(markup string) (Set, error) {
	return s.Adjacent(AfterBegin, markup)
}

// Append inserts markup as the last content of every node.
func (s Set) Append(markup string) (Set, error) {
	return s.Adjacent(BeforeEnd, markup)
}

// Remove detaches every node from its parent. The returned set still holds
// the detached nodes.
func (s Set) Remove() Set {
	return s.Each(func(n *html.Node, _ int) {
		s.doc.Remove(n)
	})
}
