// Package dom provides the host document platform for shorthand.
//
// A Document wraps a live golang.org/x/net/html node tree and supplies
// the services the Collection layer consumes: CSS selector matching
// (delegated to cascadia), markup parsing and serialization, attribute,
// class and inline-style storage, synthetic event dispatch with
// bubbling, a one-shot content-ready signal, and geometry queries via a
// pluggable LayoutEngine.
//
// # Node Handles
//
// Nodes are plain *html.Node values. The package never copies or owns
// them; every operation mutates the live tree in place. Helper
// functions (Detach, AppendChild, Clone, ...) keep the parent/sibling
// links consistent so callers never touch them directly.
//
// # Selectors
//
// Selector strings are compiled once per Document and cached. Matching
// semantics are cascadia's; invalid selectors surface as errors at the
// call site.
//
// # Layout
//
// Go has no renderer, so geometry is answered by whatever LayoutEngine
// the embedder installs. NopLayout (the default) reports zero boxes;
// FixedLayout lets tests and headless embedders assign boxes per node.
package dom
