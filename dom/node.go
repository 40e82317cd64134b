package dom

import (
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// NodeList is an ordered list of nodes. Lists handed out by this package are
// always freshly allocated and never alias tree storage.
// https://dom.spec.whatwg.org/#nodelist
type NodeList []*html.Node

// Contains returns the index of n in the list, or -1.
func (l NodeList) Contains(n *html.Node) int {
	for i := range l {
		if l[i] == n {
			return i
		}
	}
	return -1
}

// IsElement reports whether n is an element node.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// Parent returns the parent link of n, or nil at the top of a tree.
// https://dom.spec.whatwg.org/#dom-node-parentnode
func Parent(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	return n.Parent
}

// Children returns the element children of n in tree order.
// https://dom.spec.whatwg.org/#dom-parentnode-children
func Children(n *html.Node) NodeList {
	if n == nil {
		return nil
	}
	var children NodeList
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, c)
		}
	}
	return children
}

// Root walks parent links up to the top of the tree that contains n.
func Root(n *html.Node) *html.Node {
	var prev *html.Node
	for i := n; i != nil; i = i.Parent {
		prev = i
	}
	return prev
}

// Descendants returns the element descendants of n in tree order, n excluded.
func Descendants(n *html.Node, keep func(*html.Node) bool) NodeList {
	var out NodeList
	var walk func(*html.Node)
	walk = func(p *html.Node) {
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (keep == nil || keep(c)) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	if n != nil {
		walk(n)
	}
	return out
}

func compile(pattern string) (cascadia.Matcher, error) {
	m, err := cascadia.Compile(pattern)
	if err != nil {
		return nil, &MalformedSelectorError{Selector: pattern, Err: err}
	}
	return m, nil
}

// Matcher is a compiled selector, reusable across any number of nodes.
type Matcher struct {
	m cascadia.Matcher
}

// Compile parses pattern once for repeated Match calls.
func Compile(pattern string) (Matcher, error) {
	m, err := compile(pattern)
	if err != nil {
		return Matcher{}, err
	}
	return Matcher{m: m}, nil
}

// Match reports whether the element n is matched. Non-element nodes never match.
func (m Matcher) Match(n *html.Node) bool {
	return m.m != nil && IsElement(n) && m.m.Match(n)
}

// QuerySelectorAll returns the descendants of scope that match pattern, in tree order.
// https://dom.spec.whatwg.org/#dom-parentnode-queryselectorall
func QuerySelectorAll(scope *html.Node, pattern string) (NodeList, error) {
	m, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	if scope == nil {
		return nil, nil
	}
	var out NodeList
	for _, n := range cascadia.QueryAll(scope, m) {
		if n.Type == html.ElementNode {
			out = append(out, n)
		}
	}
	return out, nil
}

// Matches reports whether the element n is matched by pattern. Non-element
// nodes never match.
// https://dom.spec.whatwg.org/#dom-element-matches
func Matches(n *html.Node, pattern string) (bool, error) {
	m, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return m.Match(n), nil
}
