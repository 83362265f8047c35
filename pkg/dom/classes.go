package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Classes returns the class names of n, in attribute order.
func Classes(n *html.Node) []string {
	value, ok := Attr(n, "class")
	if !ok {
		return nil
	}
	return strings.Fields(value)
}

// HasClass reports whether n carries the given class name.
func HasClass(n *html.Node, name string) bool {
	for _, c := range Classes(n) {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass adds each name to n's class list, skipping names already
// present.
func AddClass(n *html.Node, names ...string) {
	classes := Classes(n)
	for _, name := range names {
		if name == "" || HasClass(n, name) {
			continue
		}
		classes = append(classes, name)
	}
	setClasses(n, classes)
}

// RemoveClass removes each name from n's class list. Absent names are
// ignored.
func RemoveClass(n *html.Node, names ...string) {
	classes := Classes(n)
	kept := classes[:0]
	for _, c := range classes {
		remove := false
		for _, name := range names {
			if c == name {
				remove = true
				break
			}
		}
		if !remove {
			kept = append(kept, c)
		}
	}
	setClasses(n, kept)
}

// ToggleClass flips membership of name in n's class list and returns
// the resulting state.
func ToggleClass(n *html.Node, name string) bool {
	if HasClass(n, name) {
		RemoveClass(n, name)
		return false
	}
	AddClass(n, name)
	return true
}

func setClasses(n *html.Node, classes []string) {
	if len(classes) == 0 {
		RemoveAttr(n, "class")
		return
	}
	SetAttr(n, "class", strings.Join(classes, " "))
}
