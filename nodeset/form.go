package nodeset

import (
	"net/url"
	"strings"

	"github.com/heathj/nodeset/dom"
)

// Serialize encodes the controls of the first node, a form, as
// "&name=value" pairs. Unnamed controls, file inputs and unchecked
// checkboxes and radios are left out. Multiple selects send their first
// selected option only.
func (s Set) Serialize() string {
	form := s.First()
	if form == nil {
		return ""
	}
	var query strings.Builder
	for _, el := range dom.FormControls(form) {
		name := dom.ControlName(el)
		if name == "" {
			continue
		}
		switch dom.ControlType(el) {
		case "file":
			continue
		case "checkbox", "radio":
			if !dom.Checked(el) {
				continue
			}
		}
		query.WriteString("&")
		query.WriteString(url.QueryEscape(name))
		query.WriteString("=")
		query.WriteString(url.QueryEscape(dom.ControlValue(el)))
	}
	return query.String()
}
