package alder

import (
	"testing"
	"time"
)

// lastTouch returns a widget's most recent touch event of type E.
func lastTouch[E TouchEvent](w *testWidget) (E, bool) {
	var zero E
	for i := len(w.touches) - 1; i >= 0; i-- {
		if e, ok := w.touches[i].(E); ok {
			return e, true
		}
	}
	return zero, false
}

func countTouches[E TouchEvent](w *testWidget) int {
	n := 0
	for _, e := range w.touches {
		if _, ok := e.(E); ok {
			n++
		}
	}
	return n
}

// touchSurface builds a window whose root holds one full-size touch target.
func touchSurface(t *testing.T) (f *fixture, surface WidgetID, widget *testWidget) {
	t.Helper()
	world := NewWorld(DefaultSettings())
	widget = &testWidget{caps: AcceptsPointer, onLayout: looseLayout}
	root := world.InsertWidget(&testWidget{onLayout: looseLayout})
	surface = world.InsertWidget(widget)
	m, _ := world.WidgetMut(root)
	m.AddChild(surface)
	m.Release()

	f = newFixture(t, world, root)
	f.frame()
	return f, surface, widget
}

func TestTapWithinSlopAndTime(t *testing.T) {
	f, _, widget := touchSurface(t)

	f.world.TouchDown(f.window, 1, Pt(100, 100))
	f.advance(50 * time.Millisecond)
	f.world.TouchMoved(f.window, 1, Pt(104, 103)) // under the slop
	f.world.TouchUp(f.window, 1, Pt(104, 103))

	if _, ok := lastTouch[TouchDown](widget); !ok {
		t.Error("missing raw TouchDown")
	}
	if _, ok := lastTouch[TouchUp](widget); !ok {
		t.Error("missing raw TouchUp")
	}
	tap, ok := lastTouch[Tap](widget)
	if !ok {
		t.Fatal("short still contact should produce a Tap")
	}
	assertNear(t, "tap X", tap.Position.X, 104)
}

func TestNoTapWhenHeldTooLong(t *testing.T) {
	f, _, widget := touchSurface(t)

	f.world.TouchDown(f.window, 1, Pt(100, 100))
	f.advance(250 * time.Millisecond) // past the 200ms window
	f.world.TouchUp(f.window, 1, Pt(100, 100))

	if _, ok := lastTouch[Tap](widget); ok {
		t.Error("a long press is not a tap")
	}
}

func TestNoTapWhenDraggedPastSlop(t *testing.T) {
	f, _, widget := touchSurface(t)

	f.world.TouchDown(f.window, 1, Pt(100, 100))
	f.world.TouchMoved(f.window, 1, Pt(115, 100)) // 15 > slop of 10
	f.world.TouchUp(f.window, 1, Pt(115, 100))

	if _, ok := lastTouch[Tap](widget); ok {
		t.Error("a dragged contact is not a tap")
	}
}

func TestDoubleTapWithinWindow(t *testing.T) {
	f, _, widget := touchSurface(t)
	tap := func(at Point) {
		f.world.TouchDown(f.window, 1, at)
		f.advance(30 * time.Millisecond)
		f.world.TouchUp(f.window, 1, at)
	}

	tap(Pt(100, 100))
	f.advance(100 * time.Millisecond)
	tap(Pt(105, 102)) // inside the 20px double-tap slop

	if countTouches[Tap](widget) != 2 {
		t.Errorf("taps = %d, want 2", countTouches[Tap](widget))
	}
	if _, ok := lastTouch[DoubleTap](widget); !ok {
		t.Fatal("second quick tap should produce a DoubleTap")
	}

	// the pair is consumed: a third tap starts a fresh sequence
	f.advance(100 * time.Millisecond)
	tap(Pt(105, 102))
	if countTouches[DoubleTap](widget) != 1 {
		t.Error("a third tap must not chain into another DoubleTap")
	}
}

func TestNoDoubleTapAfterWindowExpires(t *testing.T) {
	f, _, widget := touchSurface(t)
	tap := func(at Point) {
		f.world.TouchDown(f.window, 1, at)
		f.world.TouchUp(f.window, 1, at)
	}

	tap(Pt(100, 100))
	f.advance(400 * time.Millisecond) // past the 300ms double-tap window
	tap(Pt(100, 100))

	if _, ok := lastTouch[DoubleTap](widget); ok {
		t.Error("slow second tap must not double-tap")
	}
}

func TestTapDeliveredBeforeLift(t *testing.T) {
	f, _, widget := touchSurface(t)

	f.world.TouchDown(f.window, 1, Pt(100, 100))
	f.world.TouchUp(f.window, 1, Pt(100, 100))

	tapAt, upAt := -1, -1
	for i, e := range widget.touches {
		switch e.(type) {
		case Tap:
			tapAt = i
		case TouchUp:
			upAt = i
		}
	}
	if tapAt < 0 || upAt < 0 {
		t.Fatalf("missing Tap (%d) or TouchUp (%d)", tapAt, upAt)
	}
	if tapAt > upAt {
		t.Error("recognized gestures are delivered ahead of the raw lift")
	}
}

func TestUnhandledLiftOutsideFocusedWidgetClearsFocus(t *testing.T) {
	world := NewWorld(DefaultSettings())
	field := &testWidget{size: Sz(50, 50), caps: AcceptsFocus}
	surface := &testWidget{caps: AcceptsPointer, onLayout: looseLayout}
	root := world.InsertWidget(&testWidget{onLayout: looseLayout})
	fieldID := world.InsertWidget(field)
	surfaceID := world.InsertWidget(surface)
	m, _ := world.WidgetMut(root)
	m.AddChild(fieldID)
	m.AddChild(surfaceID)
	m.Release()
	f := newFixture(t, world, root)
	f.frame()

	f.mut(t, fieldID, func(m *WidgetMut) { m.SetFocused(true) })

	// a lift inside the focused widget keeps focus
	f.world.TouchDown(f.window, 1, Pt(20, 20))
	f.world.TouchUp(f.window, 1, Pt(20, 20))
	if got := f.world.Focused(f.window); got != fieldID {
		t.Fatal("focus lost on a lift inside the focused widget")
	}

	// an unhandled lift outside clears it
	f.world.TouchDown(f.window, 2, Pt(200, 200))
	f.world.TouchUp(f.window, 2, Pt(200, 200))
	if got := f.world.Focused(f.window); got.Valid() {
		t.Errorf("focused = %v after an unhandled lift outside, want none", got)
	}

	// a handled lift outside keeps it
	f.mut(t, fieldID, func(m *WidgetMut) { m.SetFocused(true) })
	surface.onTouch = func(cx *EventContext, event TouchEvent) TouchPropagate {
		return TouchHandled
	}
	f.world.TouchDown(f.window, 3, Pt(200, 200))
	f.world.TouchUp(f.window, 3, Pt(200, 200))
	if got := f.world.Focused(f.window); got != fieldID {
		t.Error("a handled lift must not clear focus")
	}
}

func TestPanStartsPastDistance(t *testing.T) {
	f, surface, widget := touchSurface(t)
	widget.onTouch = func(cx *EventContext, event TouchEvent) TouchPropagate {
		if _, ok := event.(Pan); ok {
			return TouchCapture
		}
		return TouchBubble
	}

	f.world.TouchDown(f.window, 1, Pt(100, 100))
	f.world.TouchMoved(f.window, 1, Pt(106, 100)) // within pan distance
	if _, ok := lastTouch[Pan](widget); ok {
		t.Fatal("no pan before the distance threshold")
	}

	f.world.TouchMoved(f.window, 1, Pt(118, 100))
	pan, ok := lastTouch[Pan](widget)
	if !ok {
		t.Fatal("crossing the threshold should start a pan")
	}
	// every pan carries the movement since the previous move, the
	// opening one included
	assertNear(t, "first pan delta X", pan.Delta.X, 12)
	assertNear(t, "pan start X", pan.Start.X, 100)
	if !f.state(t, surface).isActive {
		t.Error("pan capturer should become active")
	}

	// later pans carry incremental deltas
	f.world.TouchMoved(f.window, 1, Pt(123, 104))
	pan, _ = lastTouch[Pan](widget)
	assertNear(t, "pan delta X", pan.Delta.X, 5)
	assertNear(t, "pan delta Y", pan.Delta.Y, 4)

	f.world.TouchUp(f.window, 1, Pt(123, 104))
	if f.state(t, surface).isActive {
		t.Error("lift should end the pan capture")
	}
	if _, ok := lastTouch[Tap](widget); ok {
		t.Error("a pan never ends in a tap")
	}
}

func TestTouchCaptureRoutesWhileOffTarget(t *testing.T) {
	f, _, widget := touchSurface(t)
	widget.onTouch = func(cx *EventContext, event TouchEvent) TouchPropagate {
		if _, ok := event.(TouchDown); ok {
			return TouchCapture
		}
		return TouchBubble
	}

	f.world.TouchDown(f.window, 1, Pt(100, 100))
	moves := countTouches[TouchMove](widget)

	// way outside the window content still reaches the capturer
	f.world.TouchMoved(f.window, 1, Pt(-50, -50))
	if countTouches[TouchMove](widget) != moves+1 {
		t.Error("captured contact should keep delivering moves")
	}
	f.world.TouchUp(f.window, 1, Pt(-50, -50))
	if countTouches[TouchUp](widget) != 1 {
		t.Error("captured contact should deliver the lift")
	}
}
