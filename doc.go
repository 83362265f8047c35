// Package shorthand wraps groups of document nodes in a single
// chainable handle, offering query, mutation, traversal, geometry and
// event-delegation operations without a full UI framework.
//
// The entry point is a Shorthand dispatcher installed for a document:
//
//	doc, _ := dom.ParseDocument(f)
//	sh, err := shorthand.Install(doc)
//	if err != nil { ... }
//
//	items, _ := sh.Query("ul.menu > li")
//	items.AddClass("active").SetCSS("color", "red")
//
// A Collection is an ordered sequence of node handles. Mutators apply
// to every handle and return the Collection for chaining; query
// accessors read from the first handle and return a value with an ok
// flag that is false on an empty Collection. Traversal methods return
// new Collections and never mutate the receiver.
//
// The get-or-set methods of the original surface are split into
// explicit pairs (HTML/SetHTML, Attr/SetAttr, CSS/SetCSS, ...): Go
// resolves at the call site what dynamic arity resolved at run time.
//
// S is the shape-polymorphic dispatcher for callers porting code that
// leans on the single-function entry point:
//
//	sh.S("div.note")        // selector query
//	sh.S("<p>hi</p>")       // fragment parse
//	sh.S(node)              // wrap an existing node
//	sh.S(func() { ... })    // run on content-loaded
//
// Installing a second dispatcher for the same document is a
// configuration error and fails with ErrAlreadyInstalled.
package shorthand
