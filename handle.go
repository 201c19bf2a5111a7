package alder

import "fmt"

// WidgetID is a stable handle to a widget: a slot index plus the generation
// the slot had when the widget was inserted. A handle only resolves while its
// generation matches the slot's current generation, so handles to removed
// widgets fail cleanly instead of aliasing the slot's next occupant.
//
// The zero WidgetID is invalid (generations start at 1).
type WidgetID struct {
	index      uint32
	generation uint32
}

// NoWidget is the invalid handle.
var NoWidget WidgetID

// Valid reports whether the handle could ever resolve. It does not check
// whether the widget still exists; use World.Contains for that.
func (id WidgetID) Valid() bool {
	return id.generation != 0
}

// Less orders handles by (index, generation). The static type tag of typed
// handles never participates in ordering or equality.
func (id WidgetID) Less(other WidgetID) bool {
	if id.index != other.index {
		return id.index < other.index
	}
	return id.generation < other.generation
}

func (id WidgetID) String() string {
	return fmt.Sprintf("%d:%d", id.index, id.generation)
}

// TypedID is a WidgetID carrying a static widget type. Obtain one from
// Insert or Downcast; upcast by calling ID. The type tag exists only at
// compile time: two TypedIDs of different types compare equal through ID()
// when index and generation match.
type TypedID[T Widget] struct {
	id WidgetID
}

// ID upcasts to the untyped handle.
func (t TypedID[T]) ID() WidgetID {
	return t.id
}

// Valid reports whether the handle could ever resolve.
func (t TypedID[T]) Valid() bool {
	return t.id.Valid()
}

func (t TypedID[T]) String() string {
	return t.id.String()
}

// Downcast narrows an untyped handle to a typed one. Fails with ErrInvalidID
// if the handle does not resolve and ErrInvalidType if the slot's widget is
// not a T. A handle obtained by upcasting a TypedID[T] always downcasts back
// to T successfully while the widget lives.
func Downcast[T Widget](w *World, id WidgetID) (TypedID[T], error) {
	entry := w.arena.entry(id)
	if entry == nil {
		return TypedID[T]{}, ErrInvalidID
	}
	if _, ok := entry.widget.(T); !ok {
		return TypedID[T]{}, ErrInvalidType
	}
	return TypedID[T]{id: id}, nil
}
