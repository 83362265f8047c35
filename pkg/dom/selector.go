package dom

import (
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// QueryAll returns every element in the document matching selector, in
// document order.
func (d *Document) QueryAll(selector string) ([]*html.Node, error) {
	return d.QueryAllFrom(d.root, selector)
}

// QueryAllFrom returns every descendant of root matching selector, in
// document order. root itself is never included.
func (d *Document) QueryAllFrom(root *html.Node, selector string) ([]*html.Node, error) {
	sel, err := d.compile(selector)
	if err != nil {
		return nil, err
	}
	return cascadia.QueryAll(root, sel), nil
}

// CheckSelector compiles selector, caching the compiled form, and
// returns the compilation error if the selector is invalid.
func (d *Document) CheckSelector(selector string) error {
	_, err := d.compile(selector)
	return err
}

// Matches reports whether n matches selector.
func (d *Document) Matches(n *html.Node, selector string) (bool, error) {
	sel, err := d.compile(selector)
	if err != nil {
		return false, err
	}
	return n.Type == html.ElementNode && sel.Match(n), nil
}

// Closest returns the nearest ancestor-or-self of n matching selector,
// or nil when no ancestor matches.
func (d *Document) Closest(n *html.Node, selector string) (*html.Node, error) {
	sel, err := d.compile(selector)
	if err != nil {
		return nil, err
	}
	return closestMatch(n, sel), nil
}

func closestMatch(n *html.Node, m cascadia.Matcher) *html.Node {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Type == html.ElementNode && m.Match(cur) {
			return cur
		}
	}
	return nil
}
