package nodeset

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/heathj/nodeset/dom"
)

func TestUnique(t *testing.T) {
	doc := mustParse(t, listPage)
	li := doc.GetElementsByTagName("li")
	a, b, c := li[0], li[1], li[2]

	s := FromNodes(doc, []*html.Node{a, b, a, nil, c, b, nil})
	u := s.Unique()
	assert.Equal(t, []*html.Node{a, b, c}, u.Nodes())
	assert.Equal(t, u.Nodes(), u.Unique().Nodes())
	assert.Equal(t, 7, s.Len(), "receiver is untouched")

	assert.Equal(t, 0, FromNodes(doc, []*html.Node{nil, nil}).Unique().Len())
	assert.Equal(t, 0, Set{}.Unique().Len())
}

func TestJoin(t *testing.T) {
	doc := mustParse(t, listPage)
	items := mustSelect(t, doc, "li")

	var indexes []int
	parents := items.Join(func(n *html.Node, i int) []*html.Node {
		indexes = append(indexes, i)
		return []*html.Node{n.Parent, n.Parent}
	})
	assert.Equal(t, []int{0, 1, 2}, indexes)
	assert.Equal(t, []*html.Node{doc.GetElementByID("list")}, parents.Nodes())

	none := items.Join(func(*html.Node, int) []*html.Node { return nil })
	assert.Equal(t, 0, none.Len())
}

func TestJoinIsDeterministic(t *testing.T) {
	doc := mustParse(t, listPage)
	s := mustSelect(t, doc, "#main, #list")
	mapper := func(n *html.Node, _ int) []*html.Node {
		return doc.GetElementsByTagName("li")
	}
	first := s.Join(mapper)
	second := s.Join(mapper)
	assert.Equal(t, first.Nodes(), second.Nodes())
	assert.Equal(t, first.Nodes(), first.Unique().Nodes())
	assert.Equal(t, 3, first.Len())
}

func TestJoinSeesOnlyInitialNodes(t *testing.T) {
	doc := mustParse(t, listPage)
	list := doc.GetElementByID("list")
	items := mustSelect(t, doc, "li")

	calls := 0
	out := items.Join(func(n *html.Node, _ int) []*html.Node {
		calls++
		list.AppendChild(&html.Node{Type: html.ElementNode, Data: "li"})
		return []*html.Node{n}
	})
	assert.Equal(t, 3, calls)
	assert.Equal(t, items.Nodes(), out.Nodes())
	assert.Len(t, dom.Children(list), 6)
}

func TestFilterKeepsOrder(t *testing.T) {
	doc := mustParse(t, listPage)
	li := doc.GetElementsByTagName("li")
	a, b, c := li[0], li[1], li[2]

	s := FromNodes(doc, []*html.Node{a, b, c, a})
	got := s.Filter(func(n *html.Node) bool { return n != b })
	assert.Equal(t, []*html.Node{a, c, a}, got.Nodes())
}

func TestFilterSelector(t *testing.T) {
	doc := mustParse(t, listPage)
	all := mustSelect(t, doc, "#main *")

	items, err := all.FilterSelector(".item")
	require.NoError(t, err)
	assert.Equal(t, []string{
		`<li class="item first">One</li>`,
		`<li class="item">Two</li>`,
		`<span class="item">inner</span>`,
	}, outer(items.Nodes()))

	everything, err := all.FilterSelector("")
	require.NoError(t, err)
	assert.Equal(t, all.Nodes(), everything.Nodes())

	_, err = all.FilterSelector("li[")
	var malformed *dom.MalformedSelectorError
	assert.True(t, errors.As(err, &malformed))
}

func TestFilterSelectorSkipsNonElements(t *testing.T) {
	doc := mustParse(t, listPage)
	text := &html.Node{Type: html.TextNode, Data: "x"}
	s := FromNodes(doc, []*html.Node{text, doc.Node})

	got, err := s.FilterSelector("")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestIs(t *testing.T) {
	doc := mustParse(t, listPage)
	s := mustSelect(t, doc, "li")

	ok, err := s.Is(".item-x")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Is("p")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = Set{}.Is("")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Is(":nosuch")
	assert.Error(t, err)
}

func TestSelectorCheckedOncePerCall(t *testing.T) {
	_, err := Set{}.FilterSelector("li[")
	assert.Error(t, err, "an empty set still rejects a malformed selector")

	_, err = Set{}.Closest("li[")
	assert.Error(t, err)

	doc := mustParse(t, listPage)
	items := mustSelect(t, doc, "li")
	got, err := items.Closest("#main")
	require.NoError(t, err)
	assert.Equal(t, []*html.Node{doc.GetElementByID("main")}, got.Nodes())
}
