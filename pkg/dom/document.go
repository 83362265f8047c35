package dom

import (
	"io"
	"strings"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Document wraps a parsed HTML tree together with the per-document
// state the tree itself cannot carry: the compiled-selector cache,
// event listeners, the content-ready signal, and the layout engine.
type Document struct {
	root *html.Node

	mu        sync.Mutex
	selectors map[string]cascadia.SelectorGroup
	listeners map[*html.Node]map[string][]Listener
	ready     bool
	readyFns  []func()
	layout    LayoutEngine
}

// NewDocument creates an empty document with the standard
// html/head/body skeleton.
func NewDocument() *Document {
	doc, err := ParseDocument(strings.NewReader(""))
	if err != nil {
		// html.Parse never fails on well-formed input; an empty
		// reader is always well-formed.
		panic(err)
	}
	return doc
}

// ParseDocument parses a complete HTML document from r.
func ParseDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{
		root:      root,
		selectors: make(map[string]cascadia.SelectorGroup),
		listeners: make(map[*html.Node]map[string][]Listener),
		layout:    NopLayout{},
	}, nil
}

// Root returns the document node at the top of the tree.
func (d *Document) Root() *html.Node {
	return d.root
}

// Body returns the document's <body> element, or nil if the tree has
// none (which cannot happen for trees built by ParseDocument).
func (d *Document) Body() *html.Node {
	return findElement(d.root, "body")
}

// Head returns the document's <head> element, or nil if absent.
func (d *Document) Head() *html.Node {
	return findElement(d.root, "head")
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// Layout returns the document's layout engine.
func (d *Document) Layout() LayoutEngine {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.layout
}

// SetLayout installs a layout engine. Passing nil restores NopLayout.
func (d *Document) SetLayout(engine LayoutEngine) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if engine == nil {
		engine = NopLayout{}
	}
	d.layout = engine
}

// compile returns the cached compiled form of selector, compiling and
// caching it on first use.
func (d *Document) compile(selector string) (cascadia.SelectorGroup, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if sel, ok := d.selectors[selector]; ok {
		return sel, nil
	}
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, err
	}
	d.selectors[selector] = sel
	return sel, nil
}
