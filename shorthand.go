package shorthand

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/net/html"

	"github.com/lehtoroni/shorthand/pkg/dom"
)

var (
	// ErrAlreadyInstalled is returned when a dispatcher is installed
	// for a document that already has one.
	ErrAlreadyInstalled = errors.New("shorthand: already installed for this document")

	// ErrInvalidInvocation is returned for argument shapes the entry
	// dispatcher does not define.
	ErrInvalidInvocation = errors.New("shorthand: invalid invocation")
)

// Registry tracks which documents have a dispatcher installed. The
// install-once rule is enforced here rather than in ambient global
// state so embedders and tests can scope installations explicitly.
type Registry struct {
	mu        sync.Mutex
	installed map[*dom.Document]*Shorthand
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{installed: make(map[*dom.Document]*Shorthand)}
}

// Install creates a dispatcher for doc. Installing twice for the same
// document fails with ErrAlreadyInstalled; the first instance stays in
// place.
func (r *Registry) Install(doc *dom.Document) (*Shorthand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.installed[doc]; ok {
		return nil, ErrAlreadyInstalled
	}
	sh := &Shorthand{doc: doc}
	r.installed[doc] = sh
	return sh, nil
}

// Uninstall removes doc's dispatcher, reporting whether one was
// installed. Intended for teardown; listeners already registered on
// the document are unaffected.
func (r *Registry) Uninstall(doc *dom.Document) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.installed[doc]
	delete(r.installed, doc)
	return ok
}

// Installed reports whether doc has a dispatcher.
func (r *Registry) Installed(doc *dom.Document) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.installed[doc]
	return ok
}

// DefaultRegistry backs the package-level Install functions.
var DefaultRegistry = NewRegistry()

// Install installs a dispatcher for doc in the default registry.
func Install(doc *dom.Document) (*Shorthand, error) {
	return DefaultRegistry.Install(doc)
}

// Uninstall removes doc's dispatcher from the default registry.
func Uninstall(doc *dom.Document) bool {
	return DefaultRegistry.Uninstall(doc)
}

// Installed reports whether doc has a dispatcher in the default
// registry.
func Installed(doc *dom.Document) bool {
	return DefaultRegistry.Installed(doc)
}

// Shorthand is the entry dispatcher bound to one document.
type Shorthand struct {
	doc *dom.Document
}

// Document returns the document this dispatcher operates on.
func (s *Shorthand) Document() *dom.Document {
	return s.doc
}

// Query runs a CSS selector over the whole document and wraps the
// matches, in document order.
func (s *Shorthand) Query(selector string) (*Collection, error) {
	nodes, err := s.doc.QueryAll(selector)
	if err != nil {
		return nil, err
	}
	return &Collection{doc: s.doc, nodes: nodes}, nil
}

// Parse parses markup as an HTML fragment and wraps every resulting
// top-level node, in source order. The nodes start out detached. No
// sanitization is performed; host parser failures propagate unwrapped.
func (s *Shorthand) Parse(markup string) (*Collection, error) {
	nodes, err := dom.ParseFragment(markup)
	if err != nil {
		return nil, err
	}
	return &Collection{doc: s.doc, nodes: nodes}, nil
}

// Wrap builds a Collection directly from existing node handles.
func (s *Shorthand) Wrap(nodes ...*html.Node) *Collection {
	wrapped := make([]*html.Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			wrapped = append(wrapped, n)
		}
	}
	return &Collection{doc: s.doc, nodes: wrapped}
}

// Ready registers fn to run once the document signals content-loaded.
// If the signal already fired, fn runs synchronously. Registration is
// permanent; there is no unregister path.
func (s *Shorthand) Ready(fn func()) {
	s.doc.OnReady(fn)
}

// S dispatches on the shape of its argument the way the original
// single-function entry point does:
//
//   - no arguments: an empty Collection (compatibility no-op)
//   - one string: selector query, or fragment parse when the trimmed
//     string starts with "<"
//   - one func(): registered as a content-loaded callback; the
//     returned Collection is nil
//   - one *html.Node or *Collection: wrapped / passed through
//
// Every other shape, including two or more arguments, fails with
// ErrInvalidInvocation.
func (s *Shorthand) S(args ...any) (*Collection, error) {
	switch len(args) {
	case 0:
		return &Collection{doc: s.doc}, nil
	case 1:
	default:
		return nil, fmt.Errorf("%w: %d arguments", ErrInvalidInvocation, len(args))
	}

	switch v := args[0].(type) {
	case string:
		if trimmed := strings.TrimLeft(v, " \t\r\n"); strings.HasPrefix(trimmed, "<") {
			return s.Parse(trimmed)
		}
		return s.Query(v)
	case func():
		s.Ready(v)
		return nil, nil
	case *Collection:
		return v, nil
	case *html.Node:
		return s.Wrap(v), nil
	default:
		return nil, fmt.Errorf("%w: argument type %T", ErrInvalidInvocation, args[0])
	}
}
