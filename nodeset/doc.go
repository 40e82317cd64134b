// Package nodeset gives a uniform handle over zero, one or many nodes of an
// HTML tree.
//
// A Set is built from a selector, a node or a list of nodes and every
// operation on it returns a new Set, so calls chain the same way whatever the
// number of nodes:
//
//	doc, _ := dom.ParseString(`<div id="x"><p class="t">A</p><p>B</p></div>`)
//	s, _ := nodeset.Select(doc, "#x")
//	s, _ = s.Children(".t")
//
// Selection picks the cheapest host query for the selector text: lone class,
// tag and id selectors use the dedicated lookups, everything else goes to
// the CSS matcher. Both paths find the same elements.
package nodeset
