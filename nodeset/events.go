package nodeset

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/heathj/nodeset/dom"
)

// On registers fn on every node for each space separated event name. A set
// without a document has nowhere to keep listeners and is returned as is.
func (s Set) On(events string, fn dom.Listener) Set {
	if s.doc == nil {
		return s
	}
	for _, ev := range strings.Fields(events) {
		s.Each(func(n *html.Node, _ int) {
			s.doc.AddEventListener(n, ev, fn)
		})
	}
	return s
}

// Click is On("click", fn).
func (s Set) Click(fn dom.Listener) Set {
	return s.On("click", fn)
}

// Trigger dispatches a bubbling, cancelable event of each given type on every node.
func (s Set) Trigger(events string) Set {
	if s.doc == nil {
		return s
	}
	for _, ev := range strings.Fields(events) {
		s.Each(func(n *html.Node, _ int) {
			s.doc.DispatchEvent(n, dom.NewEvent(ev, true, true))
		})
	}
	return s
}
