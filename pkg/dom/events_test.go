package dom

import "testing"

func TestDispatchBubbles(t *testing.T) {
	doc := testDocument(t, `<div id="outer"><button id="btn"></button></div>`)
	outer, _ := doc.QueryAll("#outer")
	btn, _ := doc.QueryAll("#btn")

	var order []string
	doc.AddListener(btn[0], "click", func(*Event) { order = append(order, "btn") })
	doc.AddListener(outer[0], "click", func(*Event) { order = append(order, "outer") })

	doc.DispatchEvent(btn[0], "click")

	if len(order) != 2 || order[0] != "btn" || order[1] != "outer" {
		t.Errorf("order = %v, want [btn outer]", order)
	}
}

func TestDispatchStopPropagation(t *testing.T) {
	doc := testDocument(t, `<div id="outer"><button id="btn"></button></div>`)
	outer, _ := doc.QueryAll("#outer")
	btn, _ := doc.QueryAll("#btn")

	outerFired := false
	doc.AddListener(btn[0], "click", func(e *Event) { e.StopPropagation() })
	doc.AddListener(outer[0], "click", func(*Event) { outerFired = true })

	doc.DispatchEvent(btn[0], "click")

	if outerFired {
		t.Error("event bubbled past StopPropagation")
	}
}

func TestListenersStack(t *testing.T) {
	doc := testDocument(t, `<button id="btn"></button>`)
	btn, _ := doc.QueryAll("#btn")

	count := 0
	doc.AddListener(btn[0], "click", func(*Event) { count++ })
	doc.AddListener(btn[0], "click", func(*Event) { count++ })

	doc.DispatchEvent(btn[0], "click")

	if count != 2 {
		t.Errorf("count = %v, want 2 (listeners never dedupe)", count)
	}
}

func TestDispatchIgnoresOtherEvents(t *testing.T) {
	doc := testDocument(t, `<button id="btn"></button>`)
	btn, _ := doc.QueryAll("#btn")

	fired := false
	doc.AddListener(btn[0], "click", func(*Event) { fired = true })

	doc.DispatchEvent(btn[0], "keydown")

	if fired {
		t.Error("click listener fired for keydown")
	}
}

func TestReadySignal(t *testing.T) {
	t.Run("queued callbacks run in order", func(t *testing.T) {
		doc := NewDocument()
		var order []int
		doc.OnReady(func() { order = append(order, 1) })
		doc.OnReady(func() { order = append(order, 2) })

		doc.FireReady()

		if len(order) != 2 || order[0] != 1 || order[1] != 2 {
			t.Errorf("order = %v, want [1 2]", order)
		}
	})

	t.Run("fires once", func(t *testing.T) {
		doc := NewDocument()
		count := 0
		doc.OnReady(func() { count++ })

		doc.FireReady()
		doc.FireReady()

		if count != 1 {
			t.Errorf("count = %v, want 1", count)
		}
	})

	t.Run("late registration runs synchronously", func(t *testing.T) {
		doc := NewDocument()
		doc.FireReady()

		ran := false
		doc.OnReady(func() { ran = true })

		if !ran {
			t.Error("callback registered after FireReady did not run")
		}
		if !doc.Ready() {
			t.Error("Ready() = false after FireReady")
		}
	})
}
