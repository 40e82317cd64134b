package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// FormControls returns the submittable controls under form in tree order.
// https://html.spec.whatwg.org/#category-submit
func FormControls(form *html.Node) NodeList {
	return Descendants(form, func(n *html.Node) bool {
		if n.Namespace != "" {
			return false
		}
		switch n.Data {
		case "input":
			return ControlType(n) != "image"
		case "button", "select", "textarea":
			return true
		}
		return false
	})
}

// ControlName is the name attribute of a control.
func ControlName(n *html.Node) string {
	return GetAttribute(n, "name")
}

// ControlType mirrors the type IDL attribute of form controls.
func ControlType(n *html.Node) string {
	switch n.Data {
	case "input":
		t := strings.ToLower(GetAttribute(n, "type"))
		if t == "" {
			return "text"
		}
		return t
	case "button":
		switch t := strings.ToLower(GetAttribute(n, "type")); t {
		case "reset", "button":
			return t
		}
		return "submit"
	case "select":
		if HasAttribute(n, "multiple") {
			return "select-multiple"
		}
		return "select-one"
	case "textarea":
		return "textarea"
	}
	return ""
}

// Checked reports the checkedness of a checkbox or radio input.
func Checked(n *html.Node) bool {
	return HasAttribute(n, "checked")
}

// ControlValue mirrors the value IDL attribute of form controls.
func ControlValue(n *html.Node) string {
	switch n.Data {
	case "input":
		v, ok := attribute(n, "value")
		if !ok {
			switch ControlType(n) {
			case "checkbox", "radio":
				return "on"
			}
		}
		return v
	case "textarea":
		return TextContent(n)
	case "select":
		options := Descendants(n, func(c *html.Node) bool { return c.Data == "option" })
		if len(options) == 0 {
			return ""
		}
		for _, o := range options {
			if HasAttribute(o, "selected") {
				return optionValue(o)
			}
		}
		return optionValue(options[0])
	}
	return GetAttribute(n, "value")
}

func optionValue(o *html.Node) string {
	if v, ok := attribute(o, "value"); ok {
		return v
	}
	return strings.Join(splitTokens(TextContent(o)), " ")
}
