package dom

import "golang.org/x/net/html"

// inheritedProperties are the CSS properties that resolve through
// ancestors when no inline value is present. The set mirrors the
// common inherited properties; it is deliberately not exhaustive.
var inheritedProperties = map[string]bool{
	"color":           true,
	"cursor":          true,
	"direction":       true,
	"font":            true,
	"font-family":     true,
	"font-size":       true,
	"font-style":      true,
	"font-weight":     true,
	"letter-spacing":  true,
	"line-height":     true,
	"list-style":      true,
	"text-align":      true,
	"text-indent":     true,
	"text-transform":  true,
	"visibility":      true,
	"white-space":     true,
	"word-spacing":    true,
}

// inlineByDefault lists tags whose user-agent display is inline. Tags
// absent from both tables default to block.
var inlineByDefault = map[string]bool{
	"a": true, "abbr": true, "b": true, "bdi": true, "bdo": true,
	"br": true, "button": true, "cite": true, "code": true,
	"data": true, "dfn": true, "em": true, "i": true, "img": true,
	"input": true, "kbd": true, "label": true, "mark": true,
	"q": true, "s": true, "samp": true, "select": true,
	"small": true, "span": true, "strong": true, "sub": true,
	"sup": true, "textarea": true, "time": true, "u": true,
	"var": true, "wbr": true,
}

var hiddenByDefault = map[string]bool{
	"head": true, "link": true, "meta": true, "script": true,
	"style": true, "title": true, "template": true,
}

// ComputedStyle resolves property for n the way a styling host would:
// inline value first, then the nearest ancestor inline value for
// inherited properties, then the user-agent default. ok is false only
// when no level of the cascade produces a value.
func (d *Document) ComputedStyle(n *html.Node, property string) (string, bool) {
	if v, ok := InlineStyle(n, property); ok {
		return v, true
	}
	if inheritedProperties[property] {
		for cur := n.Parent; cur != nil; cur = cur.Parent {
			if cur.Type != html.ElementNode {
				continue
			}
			if v, ok := InlineStyle(cur, property); ok {
				return v, true
			}
		}
	}
	if property == "display" && n.Type == html.ElementNode {
		return defaultDisplay(n.Data), true
	}
	return "", false
}

func defaultDisplay(tag string) string {
	switch {
	case hiddenByDefault[tag]:
		return "none"
	case inlineByDefault[tag]:
		return "inline"
	default:
		return "block"
	}
}
