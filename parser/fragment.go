package parser

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "\u00A0", "&nbsp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "\u00A0", "&nbsp;", `"`, "&quot;")
)

// https://html.spec.whatwg.org/#escapingString
func escapeString(s string, attrVal bool) string {
	if attrVal {
		return attrEscaper.Replace(s)
	}
	return textEscaper.Replace(s)
}

// https://html.spec.whatwg.org/#void-elements
func isVoid(n *html.Node) bool {
	if n.Namespace != "" {
		return false
	}
	switch n.Data {
	case "area", "base", "basefont", "bgsound", "br", "col", "embed", "frame", "hr", "img",
		"input", "keygen", "link", "meta", "param", "source", "track", "wbr":
		return true
	}
	return false
}

func isRawTextParent(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode || n.Namespace != "" {
		return false
	}
	switch n.Data {
	case "style", "script", "xmp", "iframe", "noembed", "noframes", "plaintext", "noscript":
		return true
	}
	return false
}

func serialize(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.DocumentNode:
		serializeChildren(sb, n)
	case html.ElementNode:
		sb.WriteString("<" + n.Data)
		for _, a := range n.Attr {
			name := a.Key
			if a.Namespace != "" {
				name = a.Namespace + ":" + a.Key
			}
			sb.WriteString(" " + name + `="` + escapeString(a.Val, true) + `"`)
		}
		sb.WriteString(">")
		if isVoid(n) {
			return
		}
		serializeChildren(sb, n)
		sb.WriteString("</" + n.Data + ">")
	case html.TextNode:
		if isRawTextParent(n.Parent) {
			sb.WriteString(n.Data)
		} else {
			sb.WriteString(escapeString(n.Data, false))
		}
	case html.CommentNode:
		sb.WriteString("<!--" + n.Data + "-->")
	case html.DoctypeNode:
		sb.WriteString("<!DOCTYPE " + n.Data + ">")
	}
}

func serializeChildren(sb *strings.Builder, n *html.Node) {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		serialize(sb, child)
	}
}

// SerializeHTMLFragment renders the children of fragment, i.e. its inner HTML.
// Void elements have no end tag, as in innerHTML.
// https://html.spec.whatwg.org/#serialising-html-fragments
func SerializeHTMLFragment(fragment *html.Node) string {
	if fragment == nil {
		return ""
	}
	switch fragment.Data {
	case "basefont", "bgsound", "frame", "keygen":
		if fragment.Type == html.ElementNode {
			return ""
		}
	}

	var sb strings.Builder
	serializeChildren(&sb, fragment)
	return sb.String()
}

// SerializeNode renders n itself, i.e. its outer HTML.
func SerializeNode(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	serialize(&sb, n)
	return sb.String()
}

// ParseHTMLFragment parses input as if it were the contents of context.
// A nil context parses in <body>.
// https://html.spec.whatwg.org/#html-fragment-parsing-algorithm
func ParseHTMLFragment(context *html.Node, input string) ([]*html.Node, error) {
	if context == nil || context.Type != html.ElementNode {
		context = &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	}
	nodes, err := html.ParseFragment(strings.NewReader(input), context)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing fragment in <%s>", context.Data)
	}
	return nodes, nil
}
