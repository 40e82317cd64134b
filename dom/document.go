package dom

import (
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"github.com/heathj/nodeset/parser"
)

// Document owns a parsed tree and the host state attached to it: the event
// listener registry and the logger used to trace tree mutations.
// https://dom.spec.whatwg.org/#interface-document
type Document struct {
	Node *html.Node

	log       *logrus.Entry
	mu        sync.Mutex
	listeners map[*html.Node]map[string][]Listener
}

// DocumentOption configures a Document.
type DocumentOption func(*Document)

// WithLogger sets the logger mutations are traced to.
func WithLogger(l *logrus.Logger) DocumentOption {
	return func(d *Document) {
		d.log = logrus.NewEntry(l).WithField("component", "dom")
	}
}

// NewDocument wraps the document node root. Passing an element (or any other
// node) is allowed; queries are then scoped to that subtree.
func NewDocument(root *html.Node, opts ...DocumentOption) *Document {
	d := &Document{
		Node:      root,
		log:       logrus.NewEntry(logrus.StandardLogger()).WithField("component", "dom"),
		listeners: map[*html.Node]map[string][]Listener{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Parse reads an HTML document from r.
func Parse(r io.Reader, opts ...DocumentOption) (*Document, error) {
	root, err := parser.NewParser(r).Start()
	if err != nil {
		return nil, err
	}
	return NewDocument(root, opts...), nil
}

// ParseString is Parse over a string.
func ParseString(s string, opts ...DocumentOption) (*Document, error) {
	return Parse(strings.NewReader(s), opts...)
}

// Logger returns the entry the document logs through.
func (d *Document) Logger() *logrus.Entry {
	return d.log
}

// DocumentElement returns the first element child of the document node, usually <html>.
// https://dom.spec.whatwg.org/#dom-document-documentelement
func (d *Document) DocumentElement() *html.Node {
	for c := d.Node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// GetElementByID returns the first element in tree order whose id is id.
// https://dom.spec.whatwg.org/#dom-nonelementparentnode-getelementbyid
func (d *Document) GetElementByID(id string) *html.Node {
	if id == "" {
		return nil
	}
	var found *html.Node
	var walk func(*html.Node) bool
	walk = func(p *html.Node) bool {
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				if v, ok := attribute(c, "id"); ok && v == id {
					found = c
					return true
				}
			}
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(d.Node)
	return found
}

// GetElementsByClassName returns the elements carrying every class in the
// ASCII whitespace separated classNames.
// https://dom.spec.whatwg.org/#dom-document-getelementsbyclassname
func (d *Document) GetElementsByClassName(classNames string) NodeList {
	names := splitTokens(classNames)
	if len(names) == 0 {
		return nil
	}
	return Descendants(d.Node, func(n *html.Node) bool {
		list := ClassList(n)
		for _, name := range names {
			if !list.Contains(name) {
				return false
			}
		}
		return true
	})
}

// GetElementsByTagName returns the elements with the qualified name
// qualifiedName. HTML elements are compared in lowercase; "*" matches all.
// https://dom.spec.whatwg.org/#dom-document-getelementsbytagname
func (d *Document) GetElementsByTagName(qualifiedName string) NodeList {
	if qualifiedName == "*" {
		return Descendants(d.Node, nil)
	}
	lower := strings.ToLower(qualifiedName)
	return Descendants(d.Node, func(n *html.Node) bool {
		if n.Namespace == "" {
			return n.Data == lower
		}
		return n.Data == qualifiedName
	})
}

// QuerySelectorAll runs pattern over the whole document.
func (d *Document) QuerySelectorAll(pattern string) (NodeList, error) {
	return QuerySelectorAll(d.Node, pattern)
}
