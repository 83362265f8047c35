package dom

import "golang.org/x/net/html"

// Detach removes n from its parent. Detaching a node that has no
// parent is a no-op.
func Detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// AppendChild detaches n from its current parent and appends it as the
// last child of parent.
func AppendChild(parent, n *html.Node) {
	Detach(n)
	parent.AppendChild(n)
}

// PrependChild detaches n from its current parent and inserts it
// before parent's first existing child.
func PrependChild(parent, n *html.Node) {
	Detach(n)
	if parent.FirstChild != nil {
		parent.InsertBefore(n, parent.FirstChild)
	} else {
		parent.AppendChild(n)
	}
}

// InsertBefore detaches n and inserts it as a sibling immediately
// before ref. ref must have a parent.
func InsertBefore(ref, n *html.Node) {
	Detach(n)
	ref.Parent.InsertBefore(n, ref)
}

// Replace swaps ref for the given replacement nodes, in order. When
// ref has no parent nothing happens.
func Replace(ref *html.Node, replacements ...*html.Node) {
	if ref.Parent == nil {
		return
	}
	for _, n := range replacements {
		InsertBefore(ref, n)
	}
	Detach(ref)
}

// Clone returns a deep copy of n. The copy shares nothing with the
// original; event listeners registered on the original do not carry
// over.
func Clone(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		c.Attr = make([]html.Attribute, len(n.Attr))
		copy(c.Attr, n.Attr)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(Clone(child))
	}
	return c
}

// ElementChildren returns the element-node children of n, in order.
func ElementChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// RemoveChildren detaches every child of n.
func RemoveChildren(n *html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
}
