package dom

import (
	"strings"

	"golang.org/x/net/html"
)

func attribute(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// GetAttribute returns the value of the attribute name on n, or "" when n
// has no such attribute or is not an element.
// https://dom.spec.whatwg.org/#dom-element-getattribute
func GetAttribute(n *html.Node, name string) string {
	if !IsElement(n) {
		return ""
	}
	v, _ := attribute(n, strings.ToLower(name))
	return v
}

// HasAttribute https://dom.spec.whatwg.org/#dom-element-hasattribute
func HasAttribute(n *html.Node, name string) bool {
	if !IsElement(n) {
		return false
	}
	_, ok := attribute(n, strings.ToLower(name))
	return ok
}

// SetAttribute https://dom.spec.whatwg.org/#dom-element-setattribute
func SetAttribute(n *html.Node, name, value string) {
	if !IsElement(n) {
		return
	}
	name = strings.ToLower(name)
	for i := range n.Attr {
		if n.Attr[i].Namespace == "" && n.Attr[i].Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttribute https://dom.spec.whatwg.org/#dom-element-removeattribute
func RemoveAttribute(n *html.Node, name string) {
	if !IsElement(n) {
		return
	}
	name = strings.ToLower(name)
	kept := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			continue
		}
		kept = append(kept, a)
	}
	n.Attr = kept
}

// DOMTokenList is the live class list of one element.
// https://dom.spec.whatwg.org/#interface-domtokenlist
type DOMTokenList struct {
	node *html.Node
}

// ClassList returns the class list of n.
func ClassList(n *html.Node) DOMTokenList {
	return DOMTokenList{node: n}
}

// Values returns the class names in order, without duplicates.
func (l DOMTokenList) Values() []string {
	if !IsElement(l.node) {
		return nil
	}
	v, _ := attribute(l.node, "class")
	var out []string
	seen := map[string]struct{}{}
	for _, name := range splitTokens(v) {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func (l DOMTokenList) Contains(token string) bool {
	for _, v := range l.Values() {
		if v == token {
			return true
		}
	}
	return false
}

func (l DOMTokenList) Add(tokens ...string) {
	values := l.Values()
	changed := false
	for _, t := range tokens {
		if t == "" || containsString(values, t) {
			continue
		}
		values = append(values, t)
		changed = true
	}
	if changed {
		SetAttribute(l.node, "class", strings.Join(values, " "))
	}
}

func (l DOMTokenList) Remove(tokens ...string) {
	if !HasAttribute(l.node, "class") {
		return
	}
	var kept []string
	for _, v := range l.Values() {
		if !containsString(tokens, v) {
			kept = append(kept, v)
		}
	}
	SetAttribute(l.node, "class", strings.Join(kept, " "))
}

// splitTokens splits s on ASCII whitespace only; U+00A0 and other Unicode
// spaces are part of a token.
// https://infra.spec.whatwg.org/#split-on-ascii-whitespace
func splitTokens(s string) []string {
	return strings.FieldsFunc(s, isASCIIWhitespace)
}

func isASCIIWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// TextContent concatenates the text descendants of n.
// https://dom.spec.whatwg.org/#dom-node-textcontent
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(p *html.Node) {
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				sb.WriteString(c.Data)
			}
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
