package dom

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"github.com/heathj/nodeset/parser"
)

var (
	// ErrInvalidPosition is returned by InsertAdjacentHTML for an unknown position keyword.
	ErrInvalidPosition = errors.New("invalid insertion position")
	// ErrNoParent is returned when an insertion needs a parent element that n does not have.
	ErrNoParent = errors.New("node has no parent element")
)

// InnerHTML serializes the children of n.
// https://html.spec.whatwg.org/#dom-element-innerhtml
func InnerHTML(n *html.Node) string {
	return parser.SerializeHTMLFragment(n)
}

// SetInnerHTML replaces the children of n with the nodes parsed from markup.
func (d *Document) SetInnerHTML(n *html.Node, markup string) error {
	if !IsElement(n) {
		return errors.New("set inner html: not an element")
	}
	nodes, err := parser.ParseHTMLFragment(n, markup)
	if err != nil {
		return err
	}
	d.traceMutation("SetInnerHTML", n, func() {
		for c := n.FirstChild; c != nil; c = n.FirstChild {
			n.RemoveChild(c)
		}
		for _, c := range nodes {
			n.AppendChild(c)
		}
	})
	return nil
}

// InsertAdjacentHTML parses markup and inserts the result relative to n.
// where is one of beforebegin, afterbegin, beforeend, afterend.
// https://html.spec.whatwg.org/#dom-element-insertadjacenthtml
func (d *Document) InsertAdjacentHTML(n *html.Node, where, markup string) error {
	if !IsElement(n) {
		return errors.New("insert adjacent html: not an element")
	}

	var parent, ref *html.Node
	switch strings.ToLower(where) {
	case "beforebegin":
		parent, ref = n.Parent, n
	case "afterend":
		parent, ref = n.Parent, n.NextSibling
	case "afterbegin":
		parent, ref = n, n.FirstChild
	case "beforeend":
		parent, ref = n, nil
	default:
		return errors.Wrapf(ErrInvalidPosition, "%q", where)
	}
	if !IsElement(parent) {
		return errors.Wrapf(ErrNoParent, "insert %s", where)
	}

	nodes, err := parser.ParseHTMLFragment(parent, markup)
	if err != nil {
		return err
	}
	d.traceMutation("InsertAdjacentHTML", n, func() {
		for _, c := range nodes {
			parent.InsertBefore(c, ref)
		}
	})
	return nil
}

// Remove detaches n from its parent. It reports whether n had a parent.
// https://dom.spec.whatwg.org/#dom-childnode-remove
func (d *Document) Remove(n *html.Node) bool {
	if n == nil || n.Parent == nil {
		return false
	}
	parent := n.Parent
	d.traceMutation("RemoveChild", parent, func() {
		parent.RemoveChild(n)
	})
	return true
}
