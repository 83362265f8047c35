package shorthand

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/lehtoroni/shorthand/pkg/dom"
)

// normalizeItems flattens variadic insertion items into one ordered
// node list: a string is fragment-parsed, a Collection contributes its
// handles, a *html.Node contributes itself. Anything else is an
// invalid invocation.
func normalizeItems(items []any) ([]*html.Node, error) {
	var out []*html.Node
	for _, item := range items {
		switch v := item.(type) {
		case string:
			nodes, err := dom.ParseFragment(v)
			if err != nil {
				return nil, err
			}
			out = append(out, nodes...)
		case *Collection:
			out = append(out, v.nodes...)
		case *html.Node:
			out = append(out, v)
		default:
			return nil, fmt.Errorf("%w: cannot insert %T", ErrInvalidInvocation, item)
		}
	}
	return out, nil
}

// Append inserts the normalized items at the end of every handle, in
// item order. The first handle receives the source nodes themselves;
// later handles receive deep clones, so content lands in every target.
func (c *Collection) Append(items ...any) (*Collection, error) {
	content, err := normalizeItems(items)
	if err != nil {
		return nil, err
	}
	for i, target := range c.nodes {
		for _, n := range cloneAfterFirst(content, i) {
			dom.AppendChild(target, n)
		}
	}
	return c, nil
}

// Prepend inserts the normalized items before the first existing child
// of every handle, preserving item order. Cloning follows the Append
// rule.
func (c *Collection) Prepend(items ...any) (*Collection, error) {
	content, err := normalizeItems(items)
	if err != nil {
		return nil, err
	}
	for i, target := range c.nodes {
		ref := target.FirstChild
		for _, n := range cloneAfterFirst(content, i) {
			if ref != nil {
				dom.InsertBefore(ref, n)
			} else {
				dom.AppendChild(target, n)
			}
		}
	}
	return c, nil
}

// Remove detaches every handle from its parent. The Collection keeps
// the now-detached handles, so chained reads still work.
func (c *Collection) Remove() *Collection {
	for _, n := range c.nodes {
		dom.Detach(n)
	}
	return c
}

// ReplaceWith swaps every handle for the normalized content in place.
// Handles after the first receive deep clones.
func (c *Collection) ReplaceWith(content any) (*Collection, error) {
	nodes, err := normalizeItems([]any{content})
	if err != nil {
		return nil, err
	}
	for i, target := range c.nodes {
		dom.Replace(target, cloneAfterFirst(nodes, i)...)
	}
	return c, nil
}
