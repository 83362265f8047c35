package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// InnerHTML serializes the children of n, concatenated in order.
func InnerHTML(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		// Render only fails on unwritable writers; strings.Builder
		// never is.
		_ = html.Render(&b, c)
	}
	return b.String()
}

// OuterHTML serializes n itself, children included.
func OuterHTML(n *html.Node) string {
	var b strings.Builder
	_ = html.Render(&b, n)
	return b.String()
}

// TextContent returns the concatenated text of every text node under
// n, in document order.
func TextContent(n *html.Node) string {
	var b strings.Builder
	collectText(n, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// SetTextContent replaces the children of n with a single text node
// carrying s. The text is escaped on serialization, never interpreted
// as markup.
func SetTextContent(n *html.Node, s string) {
	RemoveChildren(n)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}
