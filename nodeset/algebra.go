package nodeset

import (
	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"github.com/heathj/nodeset/dom"
)

// wildcard is what an empty selector stands for.
const wildcard = "*"

// Unique drops nil entries and every repeat of a node after its first
// occurrence.
func (s Set) Unique() Set {
	seen := make(map[*html.Node]struct{}, len(s.nodes))
	var out []*html.Node
	for _, n := range s.nodes {
		if n == nil {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return s.with(out)
}

// Mapper relates a node, and its index in the set, to zero or more nodes.
type Mapper func(n *html.Node, i int) []*html.Node

// Join concatenates what mapper returns for each node, in order, and makes
// the result unique. The nodes visited are those in s when Join is called,
// whatever mapper does to the tree.
func (s Set) Join(mapper Mapper) Set {
	out, _ := s.join(func(n *html.Node, i int) ([]*html.Node, error) {
		return mapper(n, i), nil
	})
	return out
}

func (s Set) join(mapper func(n *html.Node, i int) ([]*html.Node, error)) (Set, error) {
	var joined []*html.Node
	for i, n := range s.nodes {
		found, err := mapper(n, i)
		if err != nil {
			return s.with(nil), err
		}
		joined = append(joined, found...)
	}
	return s.with(joined).Unique(), nil
}

// Filter keeps the nodes pred accepts, in order and with duplicates.
func (s Set) Filter(pred func(n *html.Node) bool) Set {
	var out []*html.Node
	for _, n := range s.nodes {
		if pred(n) {
			out = append(out, n)
		}
	}
	return s.with(out)
}

// FilterSelector keeps the nodes that match selector. An empty selector
// keeps every element.
func (s Set) FilterSelector(selector string) (Set, error) {
	if selector == "" {
		selector = wildcard
	}
	m, err := dom.Compile(selector)
	if err != nil {
		return s.with(nil), errors.Wrap(err, "filter")
	}
	return s.Filter(m.Match), nil
}

// Is reports whether any node in s matches selector.
func (s Set) Is(selector string) (bool, error) {
	matched, err := s.FilterSelector(selector)
	if err != nil {
		return false, err
	}
	return matched.Len() > 0, nil
}
