package shorthand

import (
	"testing"

	"github.com/lehtoroni/shorthand/pkg/dom"
)

func TestGeometry(t *testing.T) {
	sh := newTestShorthand(t, `<div id="parent"><span id="child"></span></div>`)
	parent, _ := sh.Query("#parent")
	child, _ := sh.Query("#child")

	layout := dom.NewFixedLayout()
	layout.SetBox(parent.Get(0), dom.Rect{X: 10, Y: 20, Width: 200, Height: 100})
	layout.SetBox(child.Get(0), dom.Rect{X: 40, Y: 50, Width: 60, Height: 30})
	layout.SetScroll(dom.Point{Top: 100, Left: 0})
	layout.MarkPositioned(parent.Get(0))
	sh.Document().SetLayout(layout)

	t.Run("width and height", func(t *testing.T) {
		w, ok := child.Width()
		if !ok || w != 60 {
			t.Errorf("Width() = %v, %v, want 60, true", w, ok)
		}
		h, ok := child.Height()
		if !ok || h != 30 {
			t.Errorf("Height() = %v, %v, want 30, true", h, ok)
		}
	})

	t.Run("offset incorporates scroll", func(t *testing.T) {
		off, ok := child.Offset()
		if !ok {
			t.Fatal("Offset() ok = false")
		}
		if off.Top != 150 || off.Left != 40 {
			t.Errorf("Offset() = %+v, want {150 40}", off)
		}
	})

	t.Run("position relative to positioned ancestor", func(t *testing.T) {
		pos, ok := child.Position()
		if !ok {
			t.Fatal("Position() ok = false")
		}
		if pos.Top != 30 || pos.Left != 30 {
			t.Errorf("Position() = %+v, want {30 30}", pos)
		}
	})

	t.Run("first handle only", func(t *testing.T) {
		both, _ := sh.Query("#parent, #child")
		w, _ := both.Width()
		if w != 200 {
			t.Errorf("Width() = %v, want the first handle's 200", w)
		}
	})
}
