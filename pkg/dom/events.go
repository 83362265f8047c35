package dom

import "golang.org/x/net/html"

// Event is a synthetic event traveling through a document tree. It is
// passed to listeners as-is, never wrapped.
type Event struct {
	// Type is the event name ("click", "input", ...).
	Type string

	// Target is the node the event originated at.
	Target *html.Node

	// Data carries embedder-defined payload (key codes, coordinates).
	Data map[string]any

	stopped bool
}

// StopPropagation prevents the event from bubbling to ancestors of the
// node whose listeners are currently running.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// PropagationStopped reports whether StopPropagation has been called.
func (e *Event) PropagationStopped() bool {
	return e.stopped
}

// Listener handles one event delivery.
type Listener func(*Event)

// AddListener registers fn for the named event on n. Listeners stack:
// repeated registrations all fire, in registration order, and there is
// no unregister path — a listener lives as long as the node.
func (d *Document) AddListener(n *html.Node, event string, fn Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	byEvent, ok := d.listeners[n]
	if !ok {
		byEvent = make(map[string][]Listener)
		d.listeners[n] = byEvent
	}
	byEvent[event] = append(byEvent[event], fn)
}

// Dispatch delivers ev starting at ev.Target and bubbling through its
// ancestors, running each node's listeners in registration order.
// Bubbling stops after the current node when a listener calls
// StopPropagation.
func (d *Document) Dispatch(ev *Event) {
	for cur := ev.Target; cur != nil; cur = cur.Parent {
		for _, fn := range d.listenersFor(cur, ev.Type) {
			fn(ev)
		}
		if ev.stopped {
			return
		}
	}
}

// DispatchEvent builds and dispatches a plain event of the named type
// originating at target.
func (d *Document) DispatchEvent(target *html.Node, event string) {
	d.Dispatch(&Event{Type: event, Target: target})
}

// listenersFor snapshots the listener slice so listeners registered
// during dispatch do not run for the in-flight event.
func (d *Document) listenersFor(n *html.Node, event string) []Listener {
	d.mu.Lock()
	defer d.mu.Unlock()
	listeners := d.listeners[n][event]
	if len(listeners) == 0 {
		return nil
	}
	snapshot := make([]Listener, len(listeners))
	copy(snapshot, listeners)
	return snapshot
}

// OnReady registers fn to run once the document signals that its
// initial content has loaded. If the signal already fired, fn runs
// synchronously before OnReady returns.
func (d *Document) OnReady(fn func()) {
	d.mu.Lock()
	if d.ready {
		d.mu.Unlock()
		fn()
		return
	}
	d.readyFns = append(d.readyFns, fn)
	d.mu.Unlock()
}

// FireReady raises the one-shot content-loaded signal, running queued
// callbacks in registration order. Subsequent calls are no-ops.
func (d *Document) FireReady() {
	d.mu.Lock()
	if d.ready {
		d.mu.Unlock()
		return
	}
	d.ready = true
	fns := d.readyFns
	d.readyFns = nil
	d.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Ready reports whether the content-loaded signal has fired.
func (d *Document) Ready() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ready
}
