package nodeset

import (
	"regexp"

	"golang.org/x/net/html"

	"github.com/heathj/nodeset/dom"
)

// Attr returns the attribute name of the first node, or "" for an empty set.
func (s Set) Attr(name string) string {
	return dom.GetAttribute(s.First(), name)
}

// SetAttr sets name to value on every node.
func (s Set) SetAttr(name, value string) Set {
	return s.Each(func(n *html.Node, _ int) {
		dom.SetAttribute(n, name, value)
	})
}

// SetAttrs applies attrs to every node. A nil value removes the attribute.
func (s Set) SetAttrs(attrs map[string]*string) Set {
	return s.Each(func(n *html.Node, _ int) {
		for key, value := range attrs {
			if value == nil {
				dom.RemoveAttribute(n, key)
				continue
			}
			dom.SetAttribute(n, key, *value)
		}
	})
}

// RemoveAttr removes name from every node.
func (s Set) RemoveAttr(name string) Set {
	return s.Each(func(n *html.Node, _ int) {
		dom.RemoveAttribute(n, name)
	})
}

var argSeparator = regexp.MustCompile(`[\s,]+`)

// args flattens names such as ("a b", "c,d") into [a b c d].
func args(names []string) []string {
	var out []string
	for _, name := range names {
		for _, part := range argSeparator.Split(name, -1) {
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// AddClass adds every class in names to every node.
func (s Set) AddClass(names ...string) Set {
	classes := args(names)
	return s.Each(func(n *html.Node, _ int) {
		dom.ClassList(n).Add(classes...)
	})
}

// RemoveClass removes every class in names from every node.
func (s Set) RemoveClass(names ...string) Set {
	classes := args(names)
	return s.Each(func(n *html.Node, _ int) {
		dom.ClassList(n).Remove(classes...)
	})
}

// HasClass reports whether at least one node carries all of names.
func (s Set) HasClass(names ...string) bool {
	classes := args(names)
	for _, n := range s.nodes {
		list := dom.ClassList(n)
		all := true
		for _, c := range classes {
			if !list.Contains(c) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}
