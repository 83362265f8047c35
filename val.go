package shorthand

import (
	"golang.org/x/net/html"

	"github.com/lehtoroni/shorthand/pkg/dom"
)

// Val returns the current form value of the first handle: the value
// attribute for inputs, the text content for textareas, and the
// selected option's value for selects. Non-form elements and empty
// Collections yield "".
func (c *Collection) Val() string {
	n := c.first()
	if n == nil {
		return ""
	}
	switch n.Data {
	case "input":
		v, _ := dom.Attr(n, "value")
		return v
	case "textarea":
		return dom.TextContent(n)
	case "select":
		if opt := selectedOption(n); opt != nil {
			return optionValue(opt)
		}
	}
	return ""
}

// SetVal sets the form value on every handle, per-element kind: value
// attribute for inputs, text content for textareas, and the selected
// flag on the matching option for selects.
func (c *Collection) SetVal(value string) *Collection {
	for _, n := range c.nodes {
		switch n.Data {
		case "input":
			dom.SetAttr(n, "value", value)
		case "textarea":
			dom.SetTextContent(n, value)
		case "select":
			selectOption(n, value)
		}
	}
	return c
}

// selectedOption returns the first option carrying the selected
// attribute, falling back to the first option at all.
func selectedOption(sel *html.Node) *html.Node {
	var first *html.Node
	for _, opt := range options(sel) {
		if first == nil {
			first = opt
		}
		if dom.HasAttr(opt, "selected") {
			return opt
		}
	}
	return first
}

func selectOption(sel *html.Node, value string) {
	for _, opt := range options(sel) {
		if optionValue(opt) == value {
			dom.SetAttr(opt, "selected", "selected")
		} else {
			dom.RemoveAttr(opt, "selected")
		}
	}
}

func options(sel *html.Node) []*html.Node {
	var out []*html.Node
	for _, child := range dom.ElementChildren(sel) {
		if child.Data == "option" {
			out = append(out, child)
		} else if child.Data == "optgroup" {
			for _, opt := range dom.ElementChildren(child) {
				if opt.Data == "option" {
					out = append(out, opt)
				}
			}
		}
	}
	return out
}

// optionValue is the option's value attribute, or its text when the
// attribute is absent.
func optionValue(opt *html.Node) string {
	if v, ok := dom.Attr(opt, "value"); ok {
		return v
	}
	return dom.TextContent(opt)
}
