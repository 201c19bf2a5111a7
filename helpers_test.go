package alder

import (
	"testing"
	"time"
)

// --- Test widgets ---

// testWidget is a configurable widget that records everything done to it.
type testWidget struct {
	BaseWidget
	size Size
	caps Capabilities

	onLayout   func(cx *LayoutContext, space Space) Size
	onCompose  func(cx *ComposeContext)
	onDraw     func(cx *DrawContext, canvas Canvas)
	onDrawOver func(cx *DrawContext, canvas Canvas)
	onUpdate   func(cx *UpdateContext, update Update)
	onAnimate  func(cx *UpdateContext, dt time.Duration)
	onPointer  func(cx *EventContext, event PointerEvent) PointerPropagate
	onTouch    func(cx *EventContext, event TouchEvent) TouchPropagate

	layouts  int
	composes int
	draws    int
	animates int
	updates  []Update
	pointers []PointerEvent
	touches  []TouchEvent
}

func (t *testWidget) Capabilities() Capabilities { return t.caps }

func (t *testWidget) Layout(cx *LayoutContext, space Space) Size {
	t.layouts++
	if t.onLayout != nil {
		return t.onLayout(cx, space)
	}
	for _, child := range cx.Children() {
		cx.LayoutChild(child, space)
		cx.PlaceChild(child, Off(0, 0))
	}
	return space.Fit(t.size)
}

func (t *testWidget) Compose(cx *ComposeContext) {
	t.composes++
	if t.onCompose != nil {
		t.onCompose(cx)
	}
}

func (t *testWidget) Draw(cx *DrawContext, canvas Canvas) {
	t.draws++
	if t.onDraw != nil {
		t.onDraw(cx, canvas)
	}
}

func (t *testWidget) DrawOver(cx *DrawContext, canvas Canvas) {
	if t.onDrawOver != nil {
		t.onDrawOver(cx, canvas)
	}
}

func (t *testWidget) Update(cx *UpdateContext, update Update) {
	t.updates = append(t.updates, update)
	if t.onUpdate != nil {
		t.onUpdate(cx, update)
	}
}

func (t *testWidget) Animate(cx *UpdateContext, dt time.Duration) {
	t.animates++
	if t.onAnimate != nil {
		t.onAnimate(cx, dt)
	}
}

func (t *testWidget) PointerEvent(cx *EventContext, event PointerEvent) PointerPropagate {
	t.pointers = append(t.pointers, event)
	if t.onPointer != nil {
		return t.onPointer(cx, event)
	}
	return PointerBubble
}

func (t *testWidget) TouchEvent(cx *EventContext, event TouchEvent) TouchPropagate {
	t.touches = append(t.touches, event)
	if t.onTouch != nil {
		return t.onTouch(cx, event)
	}
	return TouchBubble
}

// looseLayout fills the space it is given and lays each child out under a
// loose constraint at the origin, so child sizes stay their own.
func looseLayout(cx *LayoutContext, space Space) Size {
	for _, child := range cx.Children() {
		cx.LayoutChild(child, Space{Max: space.Max})
		cx.PlaceChild(child, Off(0, 0))
	}
	return space.Max
}

// lastUpdate returns the most recent update of type U, if any.
func lastUpdate[U Update](w *testWidget) (U, bool) {
	var zero U
	for i := len(w.updates) - 1; i >= 0; i-- {
		if u, ok := w.updates[i].(U); ok {
			return u, true
		}
	}
	return zero, false
}

func countUpdates[U Update](w *testWidget) int {
	n := 0
	for _, u := range w.updates {
		if _, ok := u.(U); ok {
			n++
		}
	}
	return n
}

// --- Test canvas ---

// testRecording is a fake recording with the standard RGBA footprint.
type testRecording struct {
	size  Size
	scale float64
}

func (r *testRecording) Size() Size { return r.size }

func (r *testRecording) Memory() uint64 {
	return uint64(r.size.Width*r.scale) * uint64(r.size.Height*r.scale) * 4
}

// testCanvas logs draw commands into a shared op list. Record is supported
// unless canRecord is false.
type testCanvas struct {
	ops       *[]string
	canRecord bool
	scale     float64
	recorded  *int // recordings produced, shared across derived canvases
}

func newTestCanvas() *testCanvas {
	return &testCanvas{ops: new([]string), canRecord: true, scale: 1, recorded: new(int)}
}

func (c *testCanvas) log(op string) { *c.ops = append(*c.ops, op) }

func (c *testCanvas) Transform(transform Affine, f func(Canvas)) { f(c) }

func (c *testCanvas) Layer(f func(Canvas)) {
	c.log("layer")
	f(c)
}

func (c *testCanvas) Record(size Size, f func(Canvas)) Recording {
	if !c.canRecord {
		return nil
	}
	c.log("record")
	*c.recorded++
	f(c)
	return &testRecording{size: size, scale: c.scale}
}

func (c *testCanvas) Clip(clip Clip, f func(Canvas)) {
	c.log("clip")
	f(c)
}

func (c *testCanvas) Fill(paint Paint) { c.log("fill") }

func (c *testCanvas) DrawRect(rect Rect, corners CornerRadius, paint Paint) { c.log("rect") }

func (c *testCanvas) DrawBorder(rect Rect, width BorderWidth, corners CornerRadius, paint Paint) {
	c.log("border")
}

func (c *testCanvas) DrawText(p Paragraph, maxWidth float64, offset Offset) { c.log("text") }

func (c *testCanvas) DrawImage(image VectorImage) { c.log("image") }

func (c *testCanvas) DrawRecording(recording Recording) { c.log("replay") }

func (c *testCanvas) countOps(op string) int {
	n := 0
	for _, o := range *c.ops {
		if o == op {
			n++
		}
	}
	return n
}

func (c *testCanvas) resetOps() { *c.ops = (*c.ops)[:0] }

// --- Fixtures ---

// fixture is a world with one window and a captured signal log.
type fixture struct {
	world   *World
	window  WindowID
	signals []Signal
	clock   time.Time
}

// newFixture opens a window on the given root and captures the world's
// signals. The world clock starts at a fixed instant and only moves through
// advance.
func newFixture(t *testing.T, world *World, root WidgetID) *fixture {
	t.Helper()
	f := &fixture{world: world, clock: time.Unix(1000, 0)}
	world.now = func() time.Time { return f.clock }
	world.OnSignal(func(s Signal) { f.signals = append(f.signals, s) })

	window, err := world.CreateWindow(root, DefaultWindow())
	if err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}
	f.window = window
	return f
}

func (f *fixture) advance(d time.Duration) { f.clock = f.clock.Add(d) }

func (f *fixture) resetSignals() { f.signals = f.signals[:0] }

// frame runs the render passes once into a fresh test canvas.
func (f *fixture) frame() *testCanvas {
	canvas := newTestCanvas()
	f.world.Animate(f.window, f.clock)
	f.world.Layout(f.window, nil)
	f.world.Compose(f.window)
	f.world.Draw(f.window, canvas)
	return canvas
}

// countSignals counts captured signals matching the predicate.
func (f *fixture) countSignals(match func(Signal) bool) int {
	n := 0
	for _, s := range f.signals {
		if match(s) {
			n++
		}
	}
	return n
}

func countAnimates(f *fixture) int {
	return f.countSignals(func(s Signal) bool {
		_, ok := s.(RequestAnimate)
		return ok
	})
}

// mut checks a widget out, runs the callback, and releases.
func (f *fixture) mut(t *testing.T, id WidgetID, run func(m *WidgetMut)) {
	t.Helper()
	m, err := f.world.WidgetMut(id)
	if err != nil {
		t.Fatalf("WidgetMut(%v): %v", id, err)
	}
	defer m.Release()
	run(m)
}

// state reaches into the arena for white-box assertions.
func (f *fixture) state(t *testing.T, id WidgetID) *widgetState {
	t.Helper()
	s := f.world.arena.state(id)
	if s == nil {
		t.Fatalf("no state for %v", id)
	}
	return s
}

// --- Asserts ---

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	const eps = 1e-9
	if got < want-eps || got > want+eps {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertSize(t *testing.T, name string, got, want Size) {
	t.Helper()
	assertNear(t, name+".Width", got.Width, want.Width)
	assertNear(t, name+".Height", got.Height, want.Height)
}
