package alder

import "time"

// Capabilities are the fixed per-type interaction capabilities of a widget.
// They are captured when the widget is inserted and suppressed while the
// widget is stashed or disabled.
type Capabilities uint8

const (
	// AcceptsPointer makes the widget a hit-test target.
	AcceptsPointer Capabilities = 1 << iota

	// AcceptsFocus includes the widget in focus navigation.
	AcceptsFocus

	// AcceptsText makes focusing the widget start an IME session.
	AcceptsText
)

// Widget is the capability interface all tree nodes implement. Embed
// BaseWidget to get no-op defaults for everything except Layout.
//
// Hooks are invoked by the per-frame passes and by input dispatch; a widget
// must not retain the context past the call.
type Widget interface {
	// Layout computes the widget's size under the given constraint. A widget
	// with children lays each out through the context and places it with an
	// offset.
	Layout(cx *LayoutContext, space Space) Size

	// Compose runs after global transforms are recomputed, before drawing.
	Compose(cx *ComposeContext)

	// Draw emits the widget's own content. Children are drawn by the pass.
	Draw(cx *DrawContext, canvas Canvas)

	// DrawOver emits overlay content (focus rings, badges) in a second full
	// pass so it is never occluded by sibling content.
	DrawOver(cx *DrawContext, canvas Canvas)

	// Update notifies the widget of a state change.
	Update(cx *UpdateContext, update Update)

	// Animate runs while the widget's needs-animate bit is set. The bit is
	// cleared before the call; requesting animation re-arms it.
	Animate(cx *UpdateContext, dt time.Duration)

	// PointerEvent handles a pointer event delivered to or bubbling through
	// this widget.
	PointerEvent(cx *EventContext, event PointerEvent) PointerPropagate

	// TouchEvent handles a touch event or recognized gesture.
	TouchEvent(cx *EventContext, event TouchEvent) TouchPropagate

	// Capabilities reports the widget's fixed interaction capabilities.
	Capabilities() Capabilities
}

// BaseWidget provides no-op implementations of every Widget method except
// Layout. Concrete widgets embed it and override what they need.
type BaseWidget struct{}

func (BaseWidget) Compose(*ComposeContext)               {}
func (BaseWidget) Draw(*DrawContext, Canvas)             {}
func (BaseWidget) DrawOver(*DrawContext, Canvas)         {}
func (BaseWidget) Update(*UpdateContext, Update)         {}
func (BaseWidget) Animate(*UpdateContext, time.Duration) {}

func (BaseWidget) Capabilities() Capabilities { return 0 }

func (BaseWidget) PointerEvent(*EventContext, PointerEvent) PointerPropagate {
	return PointerBubble
}

func (BaseWidget) TouchEvent(*EventContext, TouchEvent) TouchPropagate {
	return TouchBubble
}

// --- Update notifications ---

// Update notifies a widget that something about its state or surroundings
// changed. Delivered through Widget.Update.
type Update interface {
	update()
}

// HoveredChanged reports the widget gaining or losing pointer hover.
type HoveredChanged struct{ Hovered bool }

// ActiveChanged reports the widget gaining or losing the active (pressed,
// capturing) state.
type ActiveChanged struct{ Active bool }

// FocusedChanged reports the widget gaining or losing keyboard focus.
type FocusedChanged struct{ Focused bool }

// StashedChanged reports the widget being stashed or unstashed, directly or
// through an ancestor.
type StashedChanged struct{ Stashed bool }

// DisabledChanged reports the widget being disabled or enabled, directly or
// through an ancestor.
type DisabledChanged struct{ Disabled bool }

// ChildrenChanged reports a mutation of the widget's child list.
type ChildrenChanged struct{ Change ChildChange }

// ScrollTo asks scrolling ancestors to bring the rect (in the receiving
// widget's local space) into view.
type ScrollTo struct{ Rect Rect }

// WindowResized reports the widget's window changing size.
type WindowResized struct{ Size Size }

// WindowScaleChanged reports the widget's window changing scale factor.
// Pixel-aligned widgets are re-laid-out automatically.
type WindowScaleChanged struct{ Scale float64 }

// Removed reports the widget being removed from the tree. The widget's
// handle is invalid after the notification returns.
type Removed struct{}

func (HoveredChanged) update()     {}
func (ActiveChanged) update()      {}
func (FocusedChanged) update()     {}
func (StashedChanged) update()     {}
func (DisabledChanged) update()    {}
func (ChildrenChanged) update()    {}
func (ScrollTo) update()           {}
func (WindowResized) update()      {}
func (WindowScaleChanged) update() {}
func (Removed) update()            {}

// ChildChange describes what happened to a child list.
type ChildChange struct {
	Kind   ChildChangeKind
	Index  int
	Index2 int // second index for swaps
}

// ChildChangeKind enumerates child-list mutations.
type ChildChangeKind uint8

const (
	ChildAdded ChildChangeKind = iota
	ChildRemoved
	ChildReplaced
	ChildrenSwapped
)
