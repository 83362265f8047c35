package dom

import "golang.org/x/net/html"

// Point is a top/left coordinate pair in CSS pixels.
type Point struct {
	Top  float64
	Left float64
}

// Rect is a box in viewport coordinates. Width and Height may be
// negative, in which case the edge accessors normalize.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Top returns the top edge (y, or y+height for negative heights).
func (r Rect) Top() float64 {
	if r.Height < 0 {
		return r.Y + r.Height
	}
	return r.Y
}

// Left returns the left edge (x, or x+width for negative widths).
func (r Rect) Left() float64 {
	if r.Width < 0 {
		return r.X + r.Width
	}
	return r.X
}

// Right returns the right edge.
func (r Rect) Right() float64 {
	if r.Width < 0 {
		return r.X
	}
	return r.X + r.Width
}

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 {
	if r.Height < 0 {
		return r.Y
	}
	return r.Y + r.Height
}

// LayoutEngine answers geometry queries for a document. Go has no
// renderer, so the engine is supplied by the embedder; all reads are
// side-effect free.
type LayoutEngine interface {
	// BoundingBox returns n's border box in viewport coordinates.
	BoundingBox(n *html.Node) Rect

	// ScrollOffset returns the document's current scroll position.
	ScrollOffset() Point

	// Position returns n's offset relative to its nearest positioned
	// ancestor, or to the document when none exists.
	Position(n *html.Node) Point
}

// NopLayout is the default engine: every box is zero-sized at the
// origin.
type NopLayout struct{}

// BoundingBox implements LayoutEngine.
func (NopLayout) BoundingBox(*html.Node) Rect { return Rect{} }

// ScrollOffset implements LayoutEngine.
func (NopLayout) ScrollOffset() Point { return Point{} }

// Position implements LayoutEngine.
func (NopLayout) Position(*html.Node) Point { return Point{} }

// FixedLayout is a layout engine with explicitly assigned boxes, for
// tests and headless embedders.
type FixedLayout struct {
	boxes      map[*html.Node]Rect
	positioned map[*html.Node]bool
	scroll     Point
}

// NewFixedLayout creates an empty fixed layout.
func NewFixedLayout() *FixedLayout {
	return &FixedLayout{
		boxes:      make(map[*html.Node]Rect),
		positioned: make(map[*html.Node]bool),
	}
}

// SetBox assigns n's viewport box.
func (f *FixedLayout) SetBox(n *html.Node, r Rect) {
	f.boxes[n] = r
}

// SetScroll assigns the document scroll position.
func (f *FixedLayout) SetScroll(p Point) {
	f.scroll = p
}

// MarkPositioned marks n as a positioned ancestor for Position
// queries.
func (f *FixedLayout) MarkPositioned(n *html.Node) {
	f.positioned[n] = true
}

// BoundingBox implements LayoutEngine.
func (f *FixedLayout) BoundingBox(n *html.Node) Rect {
	return f.boxes[n]
}

// ScrollOffset implements LayoutEngine.
func (f *FixedLayout) ScrollOffset() Point {
	return f.scroll
}

// Position implements LayoutEngine.
func (f *FixedLayout) Position(n *html.Node) Point {
	box := f.boxes[n]
	own := Point{Top: box.Top(), Left: box.Left()}
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		if f.positioned[cur] {
			ancestor := f.boxes[cur]
			return Point{
				Top:  own.Top - ancestor.Top(),
				Left: own.Left - ancestor.Left(),
			}
		}
	}
	return own
}
