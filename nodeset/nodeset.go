package nodeset

import (
	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"github.com/heathj/nodeset/dom"
)

var (
	// ErrNoDocument is returned when a document wide query runs on a set
	// that was built without a document.
	ErrNoDocument = errors.New("no document to select from")
	// ErrUnsupportedInput is returned by New for input it cannot turn into nodes.
	ErrUnsupportedInput = errors.New("unsupported node set input")
)

// Set is an ordered list of nodes from one document. Every operation returns
// a new Set; the receiver is never modified. The zero Set is empty.
type Set struct {
	doc   *dom.Document
	nodes []*html.Node
}

// New builds a Set from input, which may be a selector string, a single
// *html.Node, a []*html.Node, a dom.NodeList, another Set or nil. A string is
// resolved against doc, inside scope when scope is not nil.
func New(doc *dom.Document, input any, scope *html.Node) (Set, error) {
	switch v := input.(type) {
	case nil:
		return Set{doc: doc}, nil
	case string:
		if v == "" {
			return Set{doc: doc}, nil
		}
		nodes, err := dispatch(doc, Classify(v, scope != nil), v, scope)
		if err != nil {
			return Set{doc: doc}, err
		}
		return FromNodes(doc, nodes), nil
	case *html.Node:
		return FromNode(doc, v), nil
	case []*html.Node:
		return FromNodes(doc, v), nil
	case dom.NodeList:
		return FromNodes(doc, v), nil
	case Set:
		if v.doc != nil {
			doc = v.doc
		}
		return FromNodes(doc, v.nodes), nil
	default:
		return Set{doc: doc}, errors.Wrapf(ErrUnsupportedInput, "%T", input)
	}
}

// Select resolves selector against the whole of doc.
func Select(doc *dom.Document, selector string) (Set, error) {
	return New(doc, selector, nil)
}

// SelectIn resolves selector among the descendants of scope.
func SelectIn(doc *dom.Document, selector string, scope *html.Node) (Set, error) {
	return New(doc, selector, scope)
}

// FromNode wraps a single node. A nil node gives an empty set.
func FromNode(doc *dom.Document, n *html.Node) Set {
	if n == nil {
		return Set{doc: doc}
	}
	return Set{doc: doc, nodes: []*html.Node{n}}
}

// FromNodes copies nodes into a new set. Order and duplicates are kept.
func FromNodes(doc *dom.Document, nodes []*html.Node) Set {
	if len(nodes) == 0 {
		return Set{doc: doc}
	}
	owned := make([]*html.Node, len(nodes))
	copy(owned, nodes)
	return Set{doc: doc, nodes: owned}
}

func (s Set) with(nodes []*html.Node) Set {
	return Set{doc: s.doc, nodes: nodes}
}

// Document returns the document the set was built from, possibly nil.
func (s Set) Document() *dom.Document {
	return s.doc
}

func (s Set) Len() int {
	return len(s.nodes)
}

// Nodes returns a copy of the nodes in the set.
func (s Set) Nodes() []*html.Node {
	if len(s.nodes) == 0 {
		return nil
	}
	out := make([]*html.Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// At returns the i-th node, or nil when i is out of range.
func (s Set) At(i int) *html.Node {
	if i < 0 || i >= len(s.nodes) {
		return nil
	}
	return s.nodes[i]
}

// First returns the first node, or nil for an empty set.
func (s Set) First() *html.Node {
	return s.At(0)
}

// Each calls fn for every node with its index and returns s.
func (s Set) Each(fn func(n *html.Node, i int)) Set {
	for i, n := range s.nodes {
		fn(n, i)
	}
	return s
}
