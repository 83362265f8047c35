package dom

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
)

// declaration is one property/value pair from a style attribute.
type declaration struct {
	property string
	value    string
}

// inlineDeclarations parses n's style attribute into an ordered
// declaration list. A malformed or absent attribute yields an empty
// list.
func inlineDeclarations(n *html.Node) []declaration {
	raw, ok := Attr(n, "style")
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	parsed, err := parser.ParseDeclarations(raw)
	if err != nil {
		return nil
	}
	decls := make([]declaration, 0, len(parsed))
	for _, d := range parsed {
		decls = append(decls, declaration{
			property: strings.TrimSpace(d.Property),
			value:    strings.TrimSpace(d.Value),
		})
	}
	return decls
}

func writeDeclarations(n *html.Node, decls []declaration) {
	if len(decls) == 0 {
		RemoveAttr(n, "style")
		return
	}
	var b strings.Builder
	for i, d := range decls {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(d.property)
		b.WriteString(": ")
		b.WriteString(d.value)
		b.WriteString(";")
	}
	SetAttr(n, "style", b.String())
}

// InlineStyle returns the inline value of property on n. ok is false
// when the style attribute carries no declaration for it.
func InlineStyle(n *html.Node, property string) (value string, ok bool) {
	for _, d := range inlineDeclarations(n) {
		if d.property == property {
			value, ok = d.value, true
		}
	}
	return value, ok
}

// SetInlineStyle sets property to value in n's style attribute. An
// empty value removes the declaration; removing the last declaration
// drops the attribute entirely.
func SetInlineStyle(n *html.Node, property, value string) {
	decls := inlineDeclarations(n)
	if value == "" {
		kept := decls[:0]
		for _, d := range decls {
			if d.property != property {
				kept = append(kept, d)
			}
		}
		writeDeclarations(n, kept)
		return
	}
	for i := range decls {
		if decls[i].property == property {
			decls[i].value = value
			writeDeclarations(n, decls)
			return
		}
	}
	writeDeclarations(n, append(decls, declaration{property: property, value: value}))
}
