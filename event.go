package alder

import "time"

// --- Pointer events ---

// PointerID identifies one pointing device contact within a window.
type PointerID uint64

// PointerButton identifies a pointer button.
type PointerButton uint8

const (
	ButtonPrimary PointerButton = iota
	ButtonSecondary
	ButtonMiddle
)

// PointerEvent is a pointer event delivered to a widget. Events bubble from
// the target toward the root until a handler returns PointerHandled or
// PointerCapture.
type PointerEvent interface {
	pointerEvent()
}

// PointerDown is a button press. Returning PointerCapture routes the rest of
// the interaction to this widget.
type PointerDown struct {
	Pointer  PointerID
	Button   PointerButton
	Position Point
}

// PointerUp is a button release.
type PointerUp struct {
	Pointer  PointerID
	Button   PointerButton
	Position Point
}

// PointerMove reports the pointer moving while over or captured by the
// widget.
type PointerMove struct {
	Pointer  PointerID
	Position Point
}

// PointerScroll reports scroll-wheel or trackpad scroll delta.
type PointerScroll struct {
	Pointer  PointerID
	Position Point
	Delta    Offset
}

func (PointerDown) pointerEvent()   {}
func (PointerUp) pointerEvent()     {}
func (PointerMove) pointerEvent()   {}
func (PointerScroll) pointerEvent() {}

// PointerPropagate is a widget's answer to a pointer event.
type PointerPropagate uint8

const (
	// PointerBubble passes the event to the parent.
	PointerBubble PointerPropagate = iota

	// PointerHandled stops propagation.
	PointerHandled

	// PointerCapture stops propagation, marks the widget active, and routes
	// every subsequent event for this pointer to it until the matching up.
	// Only valid in response to PointerDown.
	PointerCapture
)

// pointer is a live contact record tracked per window.
type pointer struct {
	id            PointerID
	position      Point
	hovering      WidgetID
	capturer      WidgetID
	captureButton PointerButton
}

// target is the widget events for this pointer are delivered to: the
// capturer if any, otherwise the hovered widget.
func (p *pointer) target() WidgetID {
	if p.capturer.Valid() {
		return p.capturer
	}
	return p.hovering
}

// --- Touch events ---

// TouchID identifies one touch contact within a window.
type TouchID uint64

// TouchEvent is a touch event or recognized gesture delivered to a widget.
// Propagation mirrors pointer events.
type TouchEvent interface {
	touchEvent()
}

// TouchDown is a finger landing. Returning TouchCapture routes the rest of
// the contact to this widget.
type TouchDown struct {
	Touch    TouchID
	Position Point
}

// TouchUp is a finger lifting.
type TouchUp struct {
	Touch    TouchID
	Position Point
}

// TouchMove reports a finger moving.
type TouchMove struct {
	Touch    TouchID
	Position Point
}

// Tap is a quick touch that stayed within the tap slop.
type Tap struct {
	Touch    TouchID
	Position Point
}

// DoubleTap is a second Tap within the double-tap slop and time of the
// first. It is delivered after the Tap it completes.
type DoubleTap struct {
	Touch    TouchID
	Position Point
}

// Pan is a sustained drag. Delta is the movement since the previous move;
// Start is where the contact landed. Pan events target the widget captured
// when panning began, not the current hit-test result.
type Pan struct {
	Touch    TouchID
	Start    Point
	Position Point
	Delta    Offset
}

func (TouchDown) touchEvent() {}
func (TouchUp) touchEvent()   {}
func (TouchMove) touchEvent() {}
func (Tap) touchEvent()       {}
func (DoubleTap) touchEvent() {}
func (Pan) touchEvent()       {}

// TouchPropagate is a widget's answer to a touch event.
type TouchPropagate uint8

const (
	// TouchBubble passes the event to the parent.
	TouchBubble TouchPropagate = iota

	// TouchHandled stops propagation.
	TouchHandled

	// TouchCapture stops propagation and captures the contact. Only valid in
	// response to TouchDown or Pan.
	TouchCapture
)

// touchPhase is a contact's position in the gesture state machine.
type touchPhase uint8

const (
	touchIdle touchPhase = iota
	touchPanning
)

// touch is a live contact record tracked per window. Double-tap memory
// outlives the contact and lives on the window instead.
type touch struct {
	id              TouchID
	currentPosition Point
	startPosition   Point
	startTime       time.Time
	phase           touchPhase
	capturer        WidgetID
}

// distance is how far the contact has moved from where it landed.
func (t *touch) distance() float64 {
	return t.startPosition.Distance(t.currentPosition)
}

// duration is how long the contact has been down.
func (t *touch) duration(now time.Time) time.Duration {
	return now.Sub(t.startTime)
}

// Modifiers is the keyboard modifier state fed in from the platform.
type Modifiers struct {
	Shift, Ctrl, Alt, Meta bool
}
