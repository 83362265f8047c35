package shorthand

import "testing"

func TestFind(t *testing.T) {
	sh := newTestShorthand(t, `<div id="a"><span>1</span><span>2</span></div><div id="b"><span>3</span></div>`)

	t.Run("concatenates per handle", func(t *testing.T) {
		divs, _ := sh.Query("div")
		spans, err := divs.Find("span")
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		if spans.Len() != 3 {
			t.Fatalf("Len() = %v, want 3", spans.Len())
		}
		if got := spans.Text(); got != "123" {
			t.Errorf("Text() = %q, want 123 (per-handle then per-match order)", got)
		}
	})

	t.Run("zero matches", func(t *testing.T) {
		divs, _ := sh.Query("div")
		none, err := divs.Find(".absent")
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		if none.Len() != 0 {
			t.Errorf("Len() = %v, want 0", none.Len())
		}
	})

	t.Run("invalid selector", func(t *testing.T) {
		divs, _ := sh.Query("div")
		if _, err := divs.Find("["); err == nil {
			t.Error("expected compile error")
		}
	})
}

func TestClosestCollection(t *testing.T) {
	sh := newTestShorthand(t, `<section class="s"><div><em id="x"></em></div></section><em id="orphanish"></em>`)

	ems, _ := sh.Query("em")
	sections, err := ems.Closest("section")
	if err != nil {
		t.Fatalf("Closest() error = %v", err)
	}
	// Second em has no section ancestor and contributes nothing.
	if sections.Len() != 1 {
		t.Errorf("Len() = %v, want 1", sections.Len())
	}
}

func TestSiblings(t *testing.T) {
	sh := newTestShorthand(t, `<ul><li id="a"></li>text<li id="b"></li><li id="c"></li></ul>`)

	b, _ := sh.Query("#b")
	sibs := b.Siblings()

	if sibs.Len() != 2 {
		t.Fatalf("Len() = %v, want 2 (element siblings only, self excluded)", sibs.Len())
	}
	ids := []string{}
	sibs.Each(func(one *Collection) {
		id, _ := one.Attr("id")
		ids = append(ids, id)
	})
	if ids[0] != "a" || ids[1] != "c" {
		t.Errorf("ids = %v, want [a c]", ids)
	}
}

func TestIsAndIsAny(t *testing.T) {
	sh := newTestShorthand(t, `<p class="x"></p><p class="x y"></p>`)
	ps, _ := sh.Query("p")

	if ok, _ := ps.Is(".x"); !ok {
		t.Error("Is(.x) = false, want true (every handle matches)")
	}
	if ok, _ := ps.Is(".y"); ok {
		t.Error("Is(.y) = true, want false (only one handle matches)")
	}
	if ok, _ := ps.IsAny(".y"); !ok {
		t.Error("IsAny(.y) = false, want true")
	}
	if ok, _ := ps.IsAny(".z"); ok {
		t.Error("IsAny(.z) = true, want false")
	}

	empty, _ := sh.Query(".absent")
	if ok, _ := empty.Is("p"); ok {
		t.Error("Is() on empty Collection = true, want false")
	}
	if ok, _ := empty.IsAny("p"); ok {
		t.Error("IsAny() on empty Collection = true, want false")
	}
}

func TestFirstLast(t *testing.T) {
	sh := newTestShorthand(t, `<i id="1"></i><i id="2"></i><i id="3"></i>`)
	all, _ := sh.Query("i")

	first := all.First()
	last := all.Last()
	if first.Len() != 1 || last.Len() != 1 {
		t.Fatalf("First/Last lengths = %v, %v, want 1, 1", first.Len(), last.Len())
	}
	if id, _ := first.Attr("id"); id != "1" {
		t.Errorf("First id = %q", id)
	}
	if id, _ := last.Attr("id"); id != "3" {
		t.Errorf("Last id = %q", id)
	}
}

func TestEach(t *testing.T) {
	sh := newTestShorthand(t, `<b></b><b></b><b></b>`)
	all, _ := sh.Query("b")

	count := 0
	ret := all.Each(func(one *Collection) {
		if one.Len() != 1 {
			t.Errorf("callback Collection Len = %v, want 1", one.Len())
		}
		count++
	})

	if count != 3 {
		t.Errorf("callback ran %v times, want 3", count)
	}
	if ret != all {
		t.Error("Each did not return the receiver")
	}
}
