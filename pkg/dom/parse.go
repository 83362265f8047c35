package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseFragment parses markup as body content and returns the
// resulting top-level nodes, detached, in source order. No
// sanitization is performed; parser failures propagate unwrapped.
func ParseFragment(markup string) ([]*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		Detach(n)
	}
	return nodes, nil
}
