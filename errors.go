package alder

import "errors"

// Accessor failures form a closed set. Callers should treat any of these as
// "widget gone or transiently unavailable", skip the operation, and try again
// next frame if a dirty bit remains set.
var (
	// ErrInvalidID means the handle's slot is out of range or its generation
	// no longer matches: the widget was removed and possibly replaced.
	ErrInvalidID = errors.New("alder: invalid widget id")

	// ErrInvalidType means the slot is live but holds a widget of a different
	// concrete type than the typed handle expects.
	ErrInvalidType = errors.New("alder: widget has a different type")

	// ErrBorrowed means an accessor for the widget is already live. The
	// second access fails instead of aliasing the first.
	ErrBorrowed = errors.New("alder: widget already borrowed")

	// ErrInvalidChild means a hierarchy operation referenced a child handle
	// that does not resolve.
	ErrInvalidChild = errors.New("alder: invalid child")

	// ErrInvalidParent means a hierarchy operation would give a widget a
	// second parent, or referenced a parent that does not resolve.
	ErrInvalidParent = errors.New("alder: invalid parent")
)
