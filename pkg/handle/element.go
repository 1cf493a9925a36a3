package handle

import (
	"sync/atomic"

	"go.uber.org/multierr"

	"github.com/go-sketch/sketch/pkg/errors"
	"github.com/go-sketch/sketch/pkg/host"
)

// Element is the base wrapper around exactly one host node. It owns the
// node's lifecycle, an event-subscription table with at most one user
// handler per event kind, and cached geometry mirrored into the host on
// mutation.
//
// Element is not safe for concurrent use; all access happens on the
// cooperative timeline.
type Element struct {
	h    host.Host
	node host.Node

	// W, H, X, Y cache the node's geometry. Style and geometry helpers
	// read and write these directly; Size and Position mirror them into
	// the host.
	W, H, X, Y float64

	// handlers holds at most one user handler per event kind.
	// Rebinding replaces; binding nil detaches.
	handlers map[string]func(host.Event)

	// hooks holds internal subscriptions (metadata arrival, cue ticks)
	// that compose rather than replace.
	hooks map[string][]*hookEntry

	// bound holds, per event kind, the remover for this handle's own
	// host-side binding. Bindings compose on the node, so two handles
	// over the same node never disturb each other's subscriptions.
	bound map[string]func()

	// teardown hooks run once, in order, on Remove.
	teardown []func() error

	owner    Handle
	registry *Registry
	removed  atomic.Bool
}

type hookEntry struct {
	fn func(host.Event)
}

func newElement(h host.Host, n host.Node) Element {
	return Element{
		h:        h,
		node:     n,
		handlers: map[string]func(host.Event){},
		hooks:    map[string][]*hookEntry{},
		bound:    map[string]func(){},
	}
}

// NewElement wraps n in a plain element handle.
func NewElement(h host.Host, n host.Node) *Element {
	e := &Element{}
	*e = newElement(h, n)
	e.owner = e
	return e
}

// Kind returns KindElement.
func (e *Element) Kind() Kind { return KindElement }

// Node returns the wrapped host node.
func (e *Element) Node() host.Node { return e.node }

// Base returns the element itself; variants embedding Element inherit it.
func (e *Element) Base() *Element { return e }

// Removed reports whether Remove has already run.
func (e *Element) Removed() bool { return e.removed.Load() }

// Size sets the cached width and height and mirrors the geometry into the
// host node.
func (e *Element) Size(w, h float64) {
	e.W, e.H = w, h
	e.node.SetBounds(e.X, e.Y, e.W, e.H)
}

// Position sets the cached coordinates and mirrors the geometry into the
// host node.
func (e *Element) Position(x, y float64) {
	e.X, e.Y = x, y
	e.node.SetBounds(e.X, e.Y, e.W, e.H)
}

// Attribute returns the host node's attribute value, or "" when unset.
func (e *Element) Attribute(name string) string { return e.node.Attr(name) }

// SetAttribute sets an attribute on the host node.
func (e *Element) SetAttribute(name, value string) { e.node.SetAttr(name, value) }

// RemoveAttribute deletes an attribute from the host node.
func (e *Element) RemoveAttribute(name string) { e.node.RemoveAttr(name) }

// On subscribes fn to the given event kind. At most one handler per kind:
// subscribing again replaces the previous handler, and a nil fn detaches.
// Callers rely on the replace semantics as the detach mechanism, so this
// is a contract, not a limitation.
func (e *Element) On(kind string, fn func(host.Event)) {
	if fn == nil {
		delete(e.handlers, kind)
		e.maybeUnbind(kind)
		return
	}
	e.handlers[kind] = fn
	e.ensureBound(kind)
}

// Off detaches the handler bound for kind, if any.
func (e *Element) Off(kind string) { e.On(kind, nil) }

// hook adds an internal composing subscription and returns its remover.
// Hooks run before the user handler for the same kind.
func (e *Element) hook(kind string, fn func(host.Event)) func() {
	entry := &hookEntry{fn: fn}
	e.hooks[kind] = append(e.hooks[kind], entry)
	e.ensureBound(kind)
	return func() {
		list := e.hooks[kind]
		for i, h := range list {
			if h == entry {
				e.hooks[kind] = append(list[:i], list[i+1:]...)
				break
			}
		}
		if len(e.hooks[kind]) == 0 {
			delete(e.hooks, kind)
		}
		e.maybeUnbind(kind)
	}
}

func (e *Element) ensureBound(kind string) {
	if e.bound[kind] != nil {
		return
	}
	e.bound[kind] = e.node.Bind(kind, func(ev host.Event) { e.dispatch(kind, ev) })
}

func (e *Element) maybeUnbind(kind string) {
	remove := e.bound[kind]
	if remove == nil {
		return
	}
	if len(e.hooks[kind]) == 0 && e.handlers[kind] == nil {
		delete(e.bound, kind)
		remove()
	}
}

func (e *Element) dispatch(kind string, ev host.Event) {
	for _, h := range append([]*hookEntry(nil), e.hooks[kind]...) {
		h.fn(ev)
	}
	if fn := e.handlers[kind]; fn != nil {
		fn(ev)
	}
}

// Remove tears the handle down: it runs teardown hooks (stopping any live
// capture tracks and pending watchdogs), deregisters from the registry,
// detaches all event subscriptions, and unlinks the host node from its
// parent. Remove is idempotent; the second call is a no-op returning nil.
func (e *Element) Remove() error {
	if !e.removed.CompareAndSwap(false, true) {
		return nil
	}

	var err error
	for _, fn := range e.teardown {
		err = multierr.Append(err, fn())
	}

	if e.registry != nil {
		e.registry.remove(e.owner)
		e.registry = nil
	}

	for _, remove := range e.bound {
		remove()
	}
	e.bound = map[string]func(){}
	e.handlers = map[string]func(host.Event){}
	e.hooks = map[string][]*hookEntry{}

	e.node.Detach()

	if err != nil {
		errors.Report(&errors.SketchError{
			Op:   "handle.Element.Remove",
			Kind: errors.KindTeardown,
			Node: e.node.Tag(),
			Err:  err,
		})
	}
	return err
}
