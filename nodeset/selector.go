package nodeset

import (
	"regexp"

	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"github.com/heathj/nodeset/dom"
)

// Shape is the class of selector text, deciding which host query serves it.
type Shape int

const (
	// CSSShape is any selector that needs the general matcher.
	CSSShape Shape = iota
	// ClassShape is a lone class selector such as ".item".
	ClassShape
	// TagShape is a lone type selector such as "li".
	TagShape
	// IDShape is a lone id selector such as "#main".
	IDShape
)

func (s Shape) String() string {
	switch s {
	case ClassShape:
		return "class"
	case TagShape:
		return "tag"
	case IDShape:
		return "id"
	default:
		return "css"
	}
}

var (
	classPattern = regexp.MustCompile(`^\.[\w-]+$`)
	tagPattern   = regexp.MustCompile(`^\w+$`)
	idPattern    = regexp.MustCompile(`^#[\w-]+$`)
)

// Classify picks the cheapest query able to answer text. A scope always
// forces CSSShape since only the general query can be scoped.
func Classify(text string, hasScope bool) Shape {
	switch {
	case hasScope:
		return CSSShape
	case classPattern.MatchString(text):
		return ClassShape
	case tagPattern.MatchString(text):
		return TagShape
	case idPattern.MatchString(text):
		return IDShape
	default:
		return CSSShape
	}
}

// Pattern returns the part of text the query for shape is called with.
func Pattern(shape Shape, text string) string {
	switch shape {
	case ClassShape, IDShape:
		return text[1:]
	default:
		return text
	}
}

// dispatch runs the query for shape. scope is only honoured by CSSShape; a nil
// scope means the whole document.
func dispatch(doc *dom.Document, shape Shape, text string, scope *html.Node) ([]*html.Node, error) {
	if shape != CSSShape && doc == nil {
		return nil, errors.Wrapf(ErrNoDocument, "select %q", text)
	}
	switch shape {
	case ClassShape:
		return doc.GetElementsByClassName(Pattern(shape, text)), nil
	case TagShape:
		return doc.GetElementsByTagName(Pattern(shape, text)), nil
	case IDShape:
		if n := doc.GetElementByID(Pattern(shape, text)); n != nil {
			return []*html.Node{n}, nil
		}
		return nil, nil
	}

	if scope == nil {
		if doc == nil {
			return nil, errors.Wrapf(ErrNoDocument, "select %q", text)
		}
		scope = doc.Node
	}
	nodes, err := dom.QuerySelectorAll(scope, text)
	if err != nil {
		return nil, errors.Wrap(err, "query selector all")
	}
	return nodes, nil
}
