package nodeset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/heathj/nodeset/dom"
)

func TestNewInputs(t *testing.T) {
	doc := mustParse(t, listPage)
	items := doc.GetElementsByClassName("item")
	require.Len(t, items, 3)
	a, b := items[0], items[1]

	tests := []struct {
		name  string
		input any
		want  []*html.Node
	}{
		{"nil", nil, nil},
		{"empty selector", "", nil},
		{"no match", ".missing", nil},
		{"selector", "li.item", []*html.Node{a, b}},
		{"node", a, []*html.Node{a}},
		{"nil node", (*html.Node)(nil), nil},
		{"slice keeps repeats", []*html.Node{b, a, b}, []*html.Node{b, a, b}},
		{"node list", dom.NodeList{a}, []*html.Node{a}},
		{"set", FromNodes(doc, []*html.Node{a, b}), []*html.Node{a, b}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(doc, tt.input, nil)
			require.NoError(t, err)
			if diff := cmp.Diff(outer(tt.want), outer(s.Nodes())); diff != "" {
				t.Errorf("New(%v) mismatch (-want +got):\n%s", tt.input, diff)
			}
			assert.Same(t, doc, s.Document())
		})
	}
}

func TestNewUnsupported(t *testing.T) {
	doc := mustParse(t, listPage)
	s, err := New(doc, 42, nil)
	assert.True(t, errors.Is(err, ErrUnsupportedInput))
	assert.Equal(t, 0, s.Len())
}

func TestNewMalformedSelector(t *testing.T) {
	doc := mustParse(t, listPage)
	s, err := Select(doc, "li[")
	var malformed *dom.MalformedSelectorError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 0, s.Len())
}

func TestSelectIn(t *testing.T) {
	doc := mustParse(t, listPage)
	list := doc.GetElementByID("list")

	s, err := SelectIn(doc, "li", list)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())

	s, err = SelectIn(doc, ".item", list)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len(), "the span outside the list is not in scope")

	s, err = SelectIn(doc, "li", s.First())
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len(), "the scope itself is never matched")
}

func TestSetDoesNotAliasInput(t *testing.T) {
	doc := mustParse(t, listPage)
	src := []*html.Node(doc.GetElementsByTagName("li"))
	s := FromNodes(doc, src)
	first := src[0]

	src[0] = nil
	assert.Same(t, first, s.First())

	out := s.Nodes()
	out[0] = nil
	assert.Same(t, first, s.First())
}

func TestSetSurvivesTreeChanges(t *testing.T) {
	doc := mustParse(t, listPage)
	s := mustSelect(t, doc, "li")
	require.Equal(t, 3, s.Len())

	list := doc.GetElementByID("list")
	list.RemoveChild(s.At(1))
	assert.Equal(t, 3, s.Len())
	assert.Nil(t, s.At(1).Parent)
}

func TestAccessors(t *testing.T) {
	var empty Set
	assert.Equal(t, 0, empty.Len())
	assert.Nil(t, empty.First())
	assert.Nil(t, empty.Nodes())
	assert.Nil(t, empty.Document())

	doc := mustParse(t, listPage)
	s := mustSelect(t, doc, "li")
	assert.Nil(t, s.At(-1))
	assert.Nil(t, s.At(3))
	assert.Equal(t, "li", s.At(2).Data)

	var seen []int
	got := s.Each(func(n *html.Node, i int) {
		assert.Same(t, s.At(i), n)
		seen = append(seen, i)
	})
	assert.Equal(t, []int{0, 1, 2}, seen)
	assert.Equal(t, s.Nodes(), got.Nodes())
}

func TestSelectWithoutDocument(t *testing.T) {
	_, err := Select(nil, "li")
	assert.True(t, errors.Is(err, ErrNoDocument))
}
