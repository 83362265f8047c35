package shorthand

import "golang.org/x/net/html"

// Find returns the descendants of every handle matching selector,
// concatenated per handle, each handle's matches in document order.
func (c *Collection) Find(selector string) (*Collection, error) {
	var out []*html.Node
	for _, n := range c.nodes {
		matches, err := c.doc.QueryAllFrom(n, selector)
		if err != nil {
			return nil, err
		}
		out = append(out, matches...)
	}
	return c.derive(out), nil
}

// Closest returns, for each handle, the nearest ancestor-or-self
// matching selector. Handles with no match contribute nothing.
func (c *Collection) Closest(selector string) (*Collection, error) {
	var out []*html.Node
	for _, n := range c.nodes {
		match, err := c.doc.Closest(n, selector)
		if err != nil {
			return nil, err
		}
		if match != nil {
			out = append(out, match)
		}
	}
	return c.derive(out), nil
}

// Siblings returns every element child of each handle's parent,
// excluding the handle itself, concatenated per handle.
func (c *Collection) Siblings() *Collection {
	var out []*html.Node
	for _, n := range c.nodes {
		if n.Parent == nil {
			continue
		}
		for sib := n.Parent.FirstChild; sib != nil; sib = sib.NextSibling {
			if sib != n && sib.Type == html.ElementNode {
				out = append(out, sib)
			}
		}
	}
	return c.derive(out)
}

// Is reports whether every handle matches selector. An empty
// Collection matches nothing and reports false.
func (c *Collection) Is(selector string) (bool, error) {
	if len(c.nodes) == 0 {
		return false, nil
	}
	for _, n := range c.nodes {
		ok, err := c.doc.Matches(n, selector)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// IsAny reports whether at least one handle matches selector.
func (c *Collection) IsAny(selector string) (bool, error) {
	for _, n := range c.nodes {
		ok, err := c.doc.Matches(n, selector)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// First returns a Collection holding only the first handle. An empty
// Collection stays empty.
func (c *Collection) First() *Collection {
	if len(c.nodes) == 0 {
		return c.derive(nil)
	}
	return c.derive([]*html.Node{c.nodes[0]})
}

// Last returns a Collection holding only the last handle. An empty
// Collection stays empty.
func (c *Collection) Last() *Collection {
	if len(c.nodes) == 0 {
		return c.derive(nil)
	}
	return c.derive([]*html.Node{c.nodes[len(c.nodes)-1]})
}

// Each invokes fn once per handle, in order, wrapping each handle in
// its own single-element Collection. The callbacks run synchronously
// and fully before Each returns.
func (c *Collection) Each(fn func(*Collection)) *Collection {
	for _, n := range c.nodes {
		fn(c.derive([]*html.Node{n}))
	}
	return c
}
