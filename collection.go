package shorthand

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/lehtoroni/shorthand/pkg/dom"
)

// displayMarker is the attribute Hide records the pre-hide inline
// display value in, so Show can restore it exactly. The marker lives
// on the element itself and survives serialization.
const displayMarker = "data-sh-display"

// Collection is an ordered sequence of node handles with a chainable
// operation surface. Order reflects document order (selector queries),
// source order (fragment parsing) or construction order; duplicates
// are permitted. The handle list never grows or shrinks after
// construction — operations mutate the live document and return either
// the receiver or a new Collection.
type Collection struct {
	doc   *dom.Document
	nodes []*html.Node
}

// Len returns the number of handles.
func (c *Collection) Len() int {
	return len(c.nodes)
}

// Get returns the handle at index i, or nil when out of range.
func (c *Collection) Get(i int) *html.Node {
	if i < 0 || i >= len(c.nodes) {
		return nil
	}
	return c.nodes[i]
}

// Nodes returns a copy of the handle list.
func (c *Collection) Nodes() []*html.Node {
	out := make([]*html.Node, len(c.nodes))
	copy(out, c.nodes)
	return out
}

// derive builds a sibling Collection over the same document.
func (c *Collection) derive(nodes []*html.Node) *Collection {
	return &Collection{doc: c.doc, nodes: nodes}
}

// first returns the first handle, or nil on an empty Collection.
func (c *Collection) first() *html.Node {
	if len(c.nodes) == 0 {
		return nil
	}
	return c.nodes[0]
}

// HTML returns the concatenated inner markup of every handle.
// Conventional callers hold a single-handle Collection, but the read
// deliberately joins all handles.
func (c *Collection) HTML() string {
	var b strings.Builder
	for _, n := range c.nodes {
		b.WriteString(dom.InnerHTML(n))
	}
	return b.String()
}

// SetHTML replaces the children of every handle with the parse of
// markup. Handles after the first receive deep clones so each keeps
// its own copy.
func (c *Collection) SetHTML(markup string) (*Collection, error) {
	content, err := dom.ParseFragment(markup)
	if err != nil {
		return nil, err
	}
	for i, n := range c.nodes {
		dom.RemoveChildren(n)
		for _, child := range cloneAfterFirst(content, i) {
			dom.AppendChild(n, child)
		}
	}
	return c, nil
}

// Text returns the concatenated text content of every handle.
func (c *Collection) Text() string {
	var b strings.Builder
	for _, n := range c.nodes {
		b.WriteString(dom.TextContent(n))
	}
	return b.String()
}

// SetText replaces the children of every handle with a single text
// node. The text is escaped on serialization, never parsed as markup.
func (c *Collection) SetText(s string) *Collection {
	for _, n := range c.nodes {
		dom.SetTextContent(n, s)
	}
	return c
}

// Attr returns the named attribute of the first handle. ok is false
// when the attribute is absent or the Collection is empty.
func (c *Collection) Attr(key string) (value string, ok bool) {
	n := c.first()
	if n == nil || key == "" {
		return "", false
	}
	return dom.Attr(n, key)
}

// SetAttr sets the named attribute on every handle. An empty value
// removes the attribute instead of storing an empty string. An empty
// key is an invalid invocation.
func (c *Collection) SetAttr(key, value string) (*Collection, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: SetAttr with empty key", ErrInvalidInvocation)
	}
	for _, n := range c.nodes {
		if value == "" {
			dom.RemoveAttr(n, key)
		} else {
			dom.SetAttr(n, key, value)
		}
	}
	return c, nil
}

// RemoveAttr removes the named attribute from every handle.
func (c *Collection) RemoveAttr(key string) *Collection {
	for _, n := range c.nodes {
		dom.RemoveAttr(n, key)
	}
	return c
}

// CSS returns the inline style value of the named property on the
// first handle. Only the style attribute is consulted; see Style for
// computed values.
func (c *Collection) CSS(property string) (value string, ok bool) {
	n := c.first()
	if n == nil || property == "" {
		return "", false
	}
	return dom.InlineStyle(n, property)
}

// SetCSS sets one inline style property on every handle. An empty
// value removes the declaration.
func (c *Collection) SetCSS(property, value string) *Collection {
	if property == "" {
		return c
	}
	for _, n := range c.nodes {
		dom.SetInlineStyle(n, property, value)
	}
	return c
}

// SetCSSMap merges every property/value pair into the inline style of
// every handle.
func (c *Collection) SetCSSMap(properties map[string]string) *Collection {
	for _, n := range c.nodes {
		for property, value := range properties {
			if property == "" {
				continue
			}
			dom.SetInlineStyle(n, property, value)
		}
	}
	return c
}

// Style returns the computed style value of the named property on the
// first handle, resolving inheritance and user-agent defaults. It is
// read-only by design.
func (c *Collection) Style(property string) (value string, ok bool) {
	n := c.first()
	if n == nil || property == "" {
		return "", false
	}
	return c.doc.ComputedStyle(n, property)
}

// AddClass adds each name to the class list of every handle.
func (c *Collection) AddClass(names ...string) *Collection {
	for _, n := range c.nodes {
		dom.AddClass(n, names...)
	}
	return c
}

// RemoveClass removes each name from the class list of every handle.
func (c *Collection) RemoveClass(names ...string) *Collection {
	for _, n := range c.nodes {
		dom.RemoveClass(n, names...)
	}
	return c
}

// ToggleClass flips membership of name per handle independently: each
// handle's own current state decides add versus remove.
func (c *Collection) ToggleClass(name string) *Collection {
	for _, n := range c.nodes {
		dom.ToggleClass(n, name)
	}
	return c
}

// SetClass forces class membership of name to on for every handle.
// This is the explicit form of the forced-state toggle.
func (c *Collection) SetClass(name string, on bool) *Collection {
	for _, n := range c.nodes {
		if on {
			dom.AddClass(n, name)
		} else {
			dom.RemoveClass(n, name)
		}
	}
	return c
}

// Hide sets display:none on every handle, first recording the current
// inline display value in a marker attribute. A second Hide while
// already hidden keeps the originally recorded value.
func (c *Collection) Hide() *Collection {
	for _, n := range c.nodes {
		if !dom.HasAttr(n, displayMarker) {
			current, _ := dom.InlineStyle(n, "display")
			dom.SetAttr(n, displayMarker, current)
		}
		dom.SetInlineStyle(n, "display", "none")
	}
	return c
}

// Show restores the marker-recorded display value on every handle and
// clears the marker. Without a marker, an inline display:none is
// dropped so the element falls back to its default; anything else is
// left untouched.
func (c *Collection) Show() *Collection {
	for _, n := range c.nodes {
		if dom.HasAttr(n, displayMarker) {
			previous, _ := dom.Attr(n, displayMarker)
			dom.SetInlineStyle(n, "display", previous)
			dom.RemoveAttr(n, displayMarker)
			continue
		}
		if current, _ := dom.InlineStyle(n, "display"); current == "none" {
			dom.SetInlineStyle(n, "display", "")
		}
	}
	return c
}

// cloneAfterFirst returns the node list as-is for the first target and
// deep clones for every later target, so fan-out inserts leave content
// in every target instead of re-parenting it away from earlier ones.
func cloneAfterFirst(nodes []*html.Node, targetIndex int) []*html.Node {
	if targetIndex == 0 {
		return nodes
	}
	clones := make([]*html.Node, len(nodes))
	for i, n := range nodes {
		clones[i] = dom.Clone(n)
	}
	return clones
}
