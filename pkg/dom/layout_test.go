package dom

import "testing"

func TestRectEdges(t *testing.T) {
	tests := []struct {
		name                     string
		rect                     Rect
		top, right, bottom, left float64
	}{
		{"positive extents", Rect{X: 10, Y: 20, Width: 100, Height: 50}, 20, 110, 70, 10},
		{"negative width", Rect{X: 10, Y: 20, Width: -100, Height: 50}, 20, 10, 70, -90},
		{"negative height", Rect{X: 10, Y: 20, Width: 100, Height: -50}, -30, 110, 20, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Top(); got != tt.top {
				t.Errorf("Top() = %v, want %v", got, tt.top)
			}
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %v, want %v", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %v, want %v", got, tt.bottom)
			}
			if got := tt.rect.Left(); got != tt.left {
				t.Errorf("Left() = %v, want %v", got, tt.left)
			}
		})
	}
}

func TestFixedLayout(t *testing.T) {
	doc := testDocument(t, `<div id="parent"><span id="child"></span></div>`)
	parent, _ := doc.QueryAll("#parent")
	child, _ := doc.QueryAll("#child")

	layout := NewFixedLayout()
	layout.SetBox(parent[0], Rect{X: 100, Y: 200, Width: 300, Height: 400})
	layout.SetBox(child[0], Rect{X: 130, Y: 250, Width: 50, Height: 20})
	layout.SetScroll(Point{Top: 10, Left: 5})
	doc.SetLayout(layout)

	t.Run("bounding box", func(t *testing.T) {
		box := doc.Layout().BoundingBox(child[0])
		if box.Width != 50 || box.Height != 20 {
			t.Errorf("box = %+v", box)
		}
	})

	t.Run("position without positioned ancestor", func(t *testing.T) {
		p := doc.Layout().Position(child[0])
		if p.Top != 250 || p.Left != 130 {
			t.Errorf("Position = %+v, want viewport box origin", p)
		}
	})

	t.Run("position relative to positioned ancestor", func(t *testing.T) {
		layout.MarkPositioned(parent[0])
		p := doc.Layout().Position(child[0])
		if p.Top != 50 || p.Left != 30 {
			t.Errorf("Position = %+v, want {50 30}", p)
		}
	})

	t.Run("unassigned node has zero box", func(t *testing.T) {
		other, _ := ParseFragment("<i></i>")
		if box := layout.BoundingBox(other[0]); box != (Rect{}) {
			t.Errorf("box = %+v, want zero", box)
		}
	})
}

func TestSetLayoutNilRestoresNop(t *testing.T) {
	doc := NewDocument()
	doc.SetLayout(nil)
	if _, ok := doc.Layout().(NopLayout); !ok {
		t.Errorf("Layout() = %T, want NopLayout", doc.Layout())
	}
}
