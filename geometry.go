package shorthand

import "github.com/lehtoroni/shorthand/pkg/dom"

// Width returns the computed pixel width of the first handle's box.
// ok is false on an empty Collection.
func (c *Collection) Width() (width float64, ok bool) {
	n := c.first()
	if n == nil {
		return 0, false
	}
	return c.doc.Layout().BoundingBox(n).Width, true
}

// Height returns the computed pixel height of the first handle's box.
// ok is false on an empty Collection.
func (c *Collection) Height() (height float64, ok bool) {
	n := c.first()
	if n == nil {
		return 0, false
	}
	return c.doc.Layout().BoundingBox(n).Height, true
}

// Offset returns the first handle's position relative to the document,
// incorporating the current scroll offset. ok is false on an empty
// Collection.
func (c *Collection) Offset() (offset dom.Point, ok bool) {
	n := c.first()
	if n == nil {
		return dom.Point{}, false
	}
	layout := c.doc.Layout()
	box := layout.BoundingBox(n)
	scroll := layout.ScrollOffset()
	return dom.Point{
		Top:  box.Top() + scroll.Top,
		Left: box.Left() + scroll.Left,
	}, true
}

// Position returns the first handle's offset relative to its nearest
// positioned ancestor, per the layout engine's semantics. ok is false
// on an empty Collection.
func (c *Collection) Position() (position dom.Point, ok bool) {
	n := c.first()
	if n == nil {
		return dom.Point{}, false
	}
	return c.doc.Layout().Position(n), true
}
