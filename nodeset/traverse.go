package nodeset

import (
	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"github.com/heathj/nodeset/dom"
)

// Children returns the element children of every node that match selector.
func (s Set) Children(selector string) (Set, error) {
	return s.Join(func(n *html.Node, _ int) []*html.Node {
		return dom.Children(n)
	}).FilterSelector(selector)
}

// Parent returns the parent of every node. Nodes at the top of their tree
// contribute nothing.
func (s Set) Parent() Set {
	return s.Join(func(n *html.Node, _ int) []*html.Node {
		if p := dom.Parent(n); p != nil {
			return []*html.Node{p}
		}
		return nil
	})
}

// Find returns the descendants of every node that match selector.
func (s Set) Find(selector string) (Set, error) {
	if selector == "" {
		selector = wildcard
	}
	return s.join(func(n *html.Node, _ int) ([]*html.Node, error) {
		return dispatch(s.doc, Classify(selector, true), selector, n)
	})
}

// Closest returns, for every node, the nearest of itself and its ancestors
// that matches selector. The walk up ends at the top of the tree; trees are
// expected to be acyclic, which x/net/html guarantees.
func (s Set) Closest(selector string) (Set, error) {
	if selector == "" {
		selector = wildcard
	}
	m, err := dom.Compile(selector)
	if err != nil {
		return s.with(nil), errors.Wrap(err, "closest")
	}
	return s.Join(func(n *html.Node, _ int) []*html.Node {
		for ; n != nil; n = n.Parent {
			if m.Match(n) {
				return []*html.Node{n}
			}
		}
		return nil
	}), nil
}
