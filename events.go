package shorthand

import (
	"golang.org/x/net/html"

	"github.com/lehtoroni/shorthand/pkg/dom"
)

// HandlerFunc handles one event delivery. The raw event is passed
// unwrapped; the acted-upon element arrives explicitly as a
// single-handle Collection — there is no implicit receiver binding.
type HandlerFunc func(*dom.Event, *Collection)

// On attaches a direct listener for the named event to every handle.
// The callback receives the handle the listener was attached to.
// Listeners stack across calls and are never deduplicated; they live
// as long as the handle.
func (c *Collection) On(event string, fn HandlerFunc) *Collection {
	for _, n := range c.nodes {
		n := n
		c.doc.AddListener(n, event, func(e *dom.Event) {
			fn(e, c.derive([]*html.Node{n}))
		})
	}
	return c
}

// Delegate attaches a delegating listener for the named event to every
// handle. When the event fires, the nearest ancestor-or-self of the
// event's target matching selector is located; the callback runs with
// that element, or is skipped entirely when nothing matches.
func (c *Collection) Delegate(event, selector string, fn HandlerFunc) (*Collection, error) {
	if err := c.doc.CheckSelector(selector); err != nil {
		return nil, err
	}
	for _, n := range c.nodes {
		c.doc.AddListener(n, event, func(e *dom.Event) {
			// The selector is pre-compiled above; Closest cannot fail
			// here.
			match, _ := c.doc.Closest(e.Target, selector)
			if match != nil {
				fn(e, c.derive([]*html.Node{match}))
			}
		})
	}
	return c, nil
}
