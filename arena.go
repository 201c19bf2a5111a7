package alder

import (
	"fmt"
	"strings"
)

// arena is the generational slot store behind the widget tree. Each slot
// holds a type-erased widget, its engine state, and a checkout flag; freed
// slots are tombstoned and reused with a bumped generation so stale handles
// never resolve.
type arena struct {
	entries []*entry
	free    []uint32
}

type entry struct {
	generation uint32
	borrowed   bool
	widget     Widget // nil when tombstoned
	state      *widgetState
}

// insert stores a widget, reusing a freed slot if one exists, and returns the
// new handle. The slot is not checked out.
func (a *arena) insert(widget Widget) WidgetID {
	caps := widget.Capabilities()
	name := typeName(widget)

	if n := len(a.free); n > 0 {
		index := a.free[n-1]
		a.free = a.free[:n-1]

		e := a.entries[index]
		e.generation++
		id := WidgetID{index: index, generation: e.generation}
		e.widget = widget
		e.state = newWidgetState(id, caps, name)
		return id
	}

	index := uint32(len(a.entries))
	id := WidgetID{index: index, generation: 1}
	a.entries = append(a.entries, &entry{
		generation: 1,
		widget:     widget,
		state:      newWidgetState(id, caps, name),
	})
	return id
}

// entry resolves a handle to its slot, or nil if the handle is stale, out of
// range, or tombstoned.
func (a *arena) entry(id WidgetID) *entry {
	if !id.Valid() || int(id.index) >= len(a.entries) {
		return nil
	}
	e := a.entries[id.index]
	if e.generation != id.generation || e.widget == nil {
		return nil
	}
	return e
}

// checkout marks a slot exclusively held. Fails with ErrInvalidID for stale
// handles and ErrBorrowed while another accessor is live.
func (a *arena) checkout(id WidgetID) (*entry, error) {
	e := a.entry(id)
	if e == nil {
		return nil, ErrInvalidID
	}
	if e.borrowed {
		return nil, ErrBorrowed
	}
	e.borrowed = true
	return e, nil
}

// release clears a slot's checkout flag.
func (a *arena) release(id WidgetID) {
	if e := a.entry(id); e != nil {
		e.borrowed = false
	}
}

// state returns the engine state for a handle without touching the checkout
// flag. Internal pass and propagation code uses this; the single-threaded
// model makes it safe because state is never handed to widget code directly.
func (a *arena) state(id WidgetID) *widgetState {
	e := a.entry(id)
	if e == nil {
		return nil
	}
	return e.state
}

// checkedState is the invariant-guarded variant: asking for the state of a
// widget known to exist but currently checked out is a widget-implementation
// bug. Panics in debug mode, returns nil otherwise.
func (a *arena) checkedState(id WidgetID) *widgetState {
	e := a.entry(id)
	if e == nil {
		debugPanic("state requested for non-existent widget %v", id)
		return nil
	}
	if e.borrowed {
		debugPanic("state requested for borrowed widget %v", id)
		return nil
	}
	return e.state
}

// tombstone frees a single slot. Fails (false) if the slot is checked out.
func (a *arena) tombstone(id WidgetID) bool {
	e := a.entry(id)
	if e == nil {
		return true
	}
	if e.borrowed {
		return false
	}
	e.widget = nil
	e.state = nil
	a.free = append(a.free, id.index)
	return true
}

// contains reports whether the handle resolves to a live widget.
func (a *arena) contains(id WidgetID) bool {
	return a.entry(id) != nil
}

// len returns the number of live widgets.
func (a *arena) len() int {
	return len(a.entries) - len(a.free)
}

// typeName returns the short type name of a widget for diagnostics.
func typeName(widget Widget) string {
	name := fmt.Sprintf("%T", widget)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
