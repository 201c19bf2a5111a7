package alder

import (
	"testing"
)

// drawFixture builds root -> child where the child draws expensive content,
// so the recording heuristic will eventually cache it.
func drawFixture(t *testing.T, settings Settings) (world *World, window WindowID, root, child *testWidget, childID WidgetID) {
	t.Helper()
	child = &testWidget{
		size: Sz(100, 100),
		onDraw: func(cx *DrawContext, canvas Canvas) {
			// plenty of text: cost 8 each, far above the replay cost of a
			// 100x100 region (100*100/400 = 25)
			for i := 0; i < 10; i++ {
				canvas.DrawText(Paragraph{Text: "expensive"}, 100, Off(0, 0))
			}
		},
	}
	root = &testWidget{onLayout: looseLayout}
	world = NewWorld(settings)
	rootID := world.InsertWidget(root)
	childID = world.InsertWidget(child)
	m, _ := world.WidgetMut(rootID)
	m.AddChild(childID)
	m.Release()
	window, _ = world.CreateWindow(rootID, DefaultWindow())
	world.Layout(window, nil)
	world.Compose(window)
	return world, window, root, child, childID
}

func TestDrawEmitsEveryFrame(t *testing.T) {
	world, window, root, child, _ := drawFixture(t, DefaultSettings())

	canvas := newTestCanvas()
	world.Draw(window, canvas)
	world.Draw(window, canvas)
	if root.draws != 2 || child.draws < 2 {
		t.Errorf("draws = root %d, child %d; the full tree draws every frame", root.draws, child.draws)
	}
}

func TestDrawSkipsStashed(t *testing.T) {
	world, window, _, child, childID := drawFixture(t, DefaultSettings())

	m, _ := world.WidgetMut(childID)
	m.SetStashed(true)
	m.Release()
	world.Layout(window, nil)
	world.Compose(window)
	world.Draw(window, newTestCanvas())
	if child.draws != 0 {
		t.Errorf("stashed child drew %d times, want 0", child.draws)
	}
}

func TestRecordingStartsAfterWarmup(t *testing.T) {
	world, window, _, child, childID := drawFixture(t, DefaultSettings())

	canvas := newTestCanvas()
	for i := 0; i < recordWarmup; i++ {
		world.Draw(window, canvas)
	}
	if world.recorder.contains(childID) {
		t.Fatal("recording should not start during warm-up")
	}
	drawsBefore := child.draws

	// one more frame crosses the threshold: record once, then replay
	world.Draw(window, canvas)
	if !world.recorder.contains(childID) {
		t.Fatal("expensive stable subtree should be recorded")
	}
	if child.draws != drawsBefore+1 {
		t.Errorf("recording frame draws = %d, want %d", child.draws, drawsBefore+1)
	}

	canvas.resetOps()
	world.Draw(window, canvas)
	if child.draws != drawsBefore+1 {
		t.Errorf("replay frame re-ran the draw hook")
	}
	if canvas.countOps("replay") == 0 {
		t.Error("replay frame should draw the recording")
	}
}

func TestDrawDirtInvalidatesStability(t *testing.T) {
	world, window, _, _, childID := drawFixture(t, DefaultSettings())

	canvas := newTestCanvas()
	for i := 0; i < 2*recordWarmup; i++ {
		world.Draw(window, canvas)
	}
	if !world.recorder.contains(childID) {
		t.Fatal("child should be recorded by now")
	}

	m, _ := world.WidgetMut(childID)
	m.RequestDraw()
	m.Release()
	world.Draw(window, canvas)

	s := world.arena.state(childID)
	if s.stableDraws != 0 {
		t.Errorf("stableDraws = %d after dirt, want 0", s.stableDraws)
	}
	if world.recorder.contains(childID) {
		t.Error("the stale recording should be dropped once the decision flips")
	}
}

func TestRecordingDisabledBySettings(t *testing.T) {
	settings := DefaultSettings()
	settings.Record.Enabled = false
	world, window, _, _, childID := drawFixture(t, settings)

	canvas := newTestCanvas()
	for i := 0; i < 3*recordWarmup; i++ {
		world.Draw(window, canvas)
	}
	if world.recorder.contains(childID) {
		t.Error("recording must stay off when disabled")
	}
}

func TestCheapContentNeverRecorded(t *testing.T) {
	cheap := &testWidget{
		size: Sz(400, 400),
		onDraw: func(cx *DrawContext, canvas Canvas) {
			canvas.DrawRect(RectMinSize(Point{}, cx.Size()), CornerRadius{}, Solid(RGB(1, 0, 0)))
		},
	}
	root := &testWidget{onLayout: looseLayout}
	world := NewWorld(DefaultSettings())
	rootID := world.InsertWidget(root)
	cheapID := world.InsertWidget(cheap)
	m, _ := world.WidgetMut(rootID)
	m.AddChild(cheapID)
	m.Release()
	window, _ := world.CreateWindow(rootID, DefaultWindow())
	world.Layout(window, nil)
	world.Compose(window)

	canvas := newTestCanvas()
	for i := 0; i < 3*recordWarmup; i++ {
		world.Draw(window, canvas)
	}
	// one rect (cost 1) never beats replaying 400x400 pixels
	if world.recorder.contains(cheapID) {
		t.Error("cheap subtree should never be recorded")
	}
}

func TestDrawFallsBackWhenPlatformCannotRecord(t *testing.T) {
	world, window, _, child, childID := drawFixture(t, DefaultSettings())

	canvas := newTestCanvas()
	canvas.canRecord = false
	for i := 0; i < 3*recordWarmup; i++ {
		world.Draw(window, canvas)
	}
	if world.recorder.contains(childID) {
		t.Error("no recording should exist when the platform declines")
	}
	if child.draws != 3*recordWarmup {
		t.Errorf("child draws = %d, want %d (direct every frame)", child.draws, 3*recordWarmup)
	}
}

func TestDrawOverRunsAboveSiblings(t *testing.T) {
	var order []string
	mark := func(name string) *testWidget {
		return &testWidget{
			size:       Sz(50, 50),
			onDraw:     func(*DrawContext, Canvas) { order = append(order, "draw-"+name) },
			onDrawOver: func(*DrawContext, Canvas) { order = append(order, "over-"+name) },
		}
	}
	a, b := mark("a"), mark("b")
	root := &testWidget{onLayout: looseLayout}

	world := NewWorld(DefaultSettings())
	rootID := world.InsertWidget(root)
	aID := world.InsertWidget(a)
	bID := world.InsertWidget(b)
	m, _ := world.WidgetMut(rootID)
	m.AddChild(aID)
	m.AddChild(bID)
	m.Release()
	window, _ := world.CreateWindow(rootID, DefaultWindow())
	world.Layout(window, nil)
	world.Compose(window)

	world.Draw(window, newTestCanvas())
	// the overlay pass only starts after the whole draw pass has finished
	want := []string{"draw-a", "draw-b", "over-a", "over-b"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestClipWrapsSubtreeDrawing(t *testing.T) {
	child := &testWidget{
		size: Sz(50, 50),
		onDraw: func(cx *DrawContext, canvas Canvas) {
			canvas.DrawRect(RectMinSize(Point{}, cx.Size()), CornerRadius{}, Solid(RGB(0, 0, 1)))
		},
	}
	root := &testWidget{onLayout: looseLayout}
	world := NewWorld(DefaultSettings())
	rootID := world.InsertWidget(root)
	childID := world.InsertWidget(child)
	m, _ := world.WidgetMut(rootID)
	m.AddChild(childID)
	m.SetClip(&Clip{Rect: RectMinSize(Point{}, Sz(30, 30))})
	m.Release()
	window, _ := world.CreateWindow(rootID, DefaultWindow())
	world.Layout(window, nil)
	world.Compose(window)

	canvas := newTestCanvas()
	world.Draw(window, canvas)
	// draw and draw-over both honor the clip
	if n := canvas.countOps("clip"); n != 2 {
		t.Errorf("clip ops = %d, want 2", n)
	}
	if canvas.countOps("rect") != 1 {
		t.Errorf("rect ops = %d, want 1", canvas.countOps("rect"))
	}
}
