package alder

import "testing"

// focusTree builds root -> [a, b(-> b1), c] where a, b1, and c accept focus.
func focusTree(t *testing.T) (f *fixture, a, b, b1, c WidgetID, widgets map[WidgetID]*testWidget) {
	t.Helper()
	world := NewWorld(DefaultSettings())
	widgets = make(map[WidgetID]*testWidget)
	add := func(caps Capabilities) WidgetID {
		w := &testWidget{size: Sz(50, 50), caps: caps}
		id := world.InsertWidget(w)
		widgets[id] = w
		return id
	}
	root := world.InsertWidget(&testWidget{onLayout: looseLayout})
	a = add(AcceptsFocus)
	b = add(0)
	b1 = add(AcceptsFocus)
	c = add(AcceptsFocus)

	m, _ := world.WidgetMut(root)
	m.AddChild(a)
	m.AddChild(b)
	m.AddChild(c)
	m.Release()
	m, _ = world.WidgetMut(b)
	m.AddChild(b1)
	m.Release()

	return newFixture(t, world, root), a, b, b1, c, widgets
}

func TestMoveFocusWalksTreeOrderAndWraps(t *testing.T) {
	f, a, _, b1, c, _ := focusTree(t)

	steps := []WidgetID{a, b1, c, a} // wraps after the last
	for i, want := range steps {
		f.world.MoveFocus(f.window, true)
		if got := f.world.Focused(f.window); got != want {
			t.Fatalf("step %d: focused = %v, want %v", i, got, want)
		}
	}

	f.world.MoveFocus(f.window, false)
	if got := f.world.Focused(f.window); got != c {
		t.Errorf("backward from first = %v, want %v (wrap)", got, c)
	}
}

func TestMoveFocusBackwardStartsAtEnd(t *testing.T) {
	f, _, _, _, c, _ := focusTree(t)

	f.world.MoveFocus(f.window, false)
	if got := f.world.Focused(f.window); got != c {
		t.Errorf("first backward move = %v, want %v", got, c)
	}
}

func TestMoveFocusSkipsStashedAndDisabled(t *testing.T) {
	f, a, b, _, c, _ := focusTree(t)

	f.mut(t, b, func(m *WidgetMut) { m.SetStashed(true) })
	f.mut(t, a, func(m *WidgetMut) { m.SetDisabled(true) })

	f.world.MoveFocus(f.window, true)
	if got := f.world.Focused(f.window); got != c {
		t.Fatalf("focused = %v, want %v (a disabled, b1 stashed)", got, c)
	}
	f.world.MoveFocus(f.window, true)
	if got := f.world.Focused(f.window); got != c {
		t.Errorf("single focusable should wrap onto itself, got %v", got)
	}
}

func TestFocusTransferNotifiesBothSides(t *testing.T) {
	f, a, _, b1, _, widgets := focusTree(t)

	f.mut(t, a, func(m *WidgetMut) { m.SetFocused(true) })
	f.mut(t, b1, func(m *WidgetMut) { m.SetFocused(true) })

	if u, ok := lastUpdate[FocusedChanged](widgets[a]); !ok || u.Focused {
		t.Error("old holder missing FocusedChanged{false}")
	}
	if u, ok := lastUpdate[FocusedChanged](widgets[b1]); !ok || !u.Focused {
		t.Error("new holder missing FocusedChanged{true}")
	}
	if f.state(t, a).isFocused {
		t.Error("old holder still flagged focused")
	}
	if !f.state(t, b1).isFocused || !f.state(t, b1).hasFocused {
		t.Error("new holder should be flagged focused")
	}
}

func TestFocusRejectsNonFocusableTarget(t *testing.T) {
	f, a, b, _, _, _ := focusTree(t)

	f.mut(t, a, func(m *WidgetMut) { m.SetFocused(true) })
	f.mut(t, b, func(m *WidgetMut) { m.SetFocused(true) }) // b has no caps

	if got := f.world.Focused(f.window); got != a {
		t.Errorf("focused = %v, want %v (unchanged)", got, a)
	}
}

func TestFocusFollowsImeForTextWidgets(t *testing.T) {
	world := NewWorld(DefaultSettings())
	field := &testWidget{size: Sz(120, 24), caps: AcceptsFocus | AcceptsText}
	plain := &testWidget{size: Sz(50, 50), caps: AcceptsFocus}
	root := world.InsertWidget(&testWidget{onLayout: looseLayout})
	fieldID := world.InsertWidget(field)
	plainID := world.InsertWidget(plain)
	m, _ := world.WidgetMut(root)
	m.AddChild(fieldID)
	m.AddChild(plainID)
	m.Release()

	f := newFixture(t, world, root)
	f.frame()
	f.resetSignals()

	imeCount := func(match func(ImeUpdate) bool) int {
		return f.countSignals(func(s Signal) bool {
			ime, ok := s.(Ime)
			return ok && match(ime.Update)
		})
	}

	f.mut(t, fieldID, func(m *WidgetMut) { m.SetFocused(true) })
	starts := imeCount(func(u ImeUpdate) bool { _, ok := u.(ImeStart); return ok })
	areas := imeCount(func(u ImeUpdate) bool { _, ok := u.(ImeArea); return ok })
	if starts != 1 || areas != 1 {
		t.Errorf("ImeStart = %d, ImeArea = %d after focusing a text widget, want 1 and 1", starts, areas)
	}

	// moving focus to another widget restarts the session rather than
	// ending it; the new target just gets no ImeStart of its own
	f.resetSignals()
	f.mut(t, plainID, func(m *WidgetMut) { m.SetFocused(true) })
	ends := imeCount(func(u ImeUpdate) bool { _, ok := u.(ImeEnd); return ok })
	if ends != 0 {
		t.Errorf("ImeEnd = %d after transferring focus away, want 0", ends)
	}

	// a plain blur ends the session
	f.mut(t, fieldID, func(m *WidgetMut) { m.SetFocused(true) })
	f.resetSignals()
	f.mut(t, fieldID, func(m *WidgetMut) { m.SetFocused(false) })
	ends = imeCount(func(u ImeUpdate) bool { _, ok := u.(ImeEnd); return ok })
	if ends != 1 {
		t.Errorf("ImeEnd = %d after blurring a text widget, want 1", ends)
	}
}

func TestFocusScrollsAncestorsToReveal(t *testing.T) {
	world := NewWorld(DefaultSettings())
	item := &testWidget{size: Sz(40, 40), caps: AcceptsFocus}
	viewport := &testWidget{onLayout: func(cx *LayoutContext, space Space) Size {
		for _, c := range cx.Children() {
			cx.LayoutChild(c, Space{Max: SizeInfinite})
			cx.PlaceChild(c, Off(0, 300)) // far down the scroll content
		}
		return space.Fit(Sz(200, 100))
	}}
	rootWidget := &testWidget{onLayout: looseLayout}
	root := world.InsertWidget(rootWidget)
	viewportID := world.InsertWidget(viewport)
	itemID := world.InsertWidget(item)
	m, _ := world.WidgetMut(root)
	m.AddChild(viewportID)
	m.Release()
	m, _ = world.WidgetMut(viewportID)
	m.AddChild(itemID)
	m.Release()

	f := newFixture(t, world, root)
	f.frame()

	f.mut(t, itemID, func(m *WidgetMut) { m.SetFocused(true) })

	u, ok := lastUpdate[ScrollTo](viewport)
	if !ok {
		t.Fatal("viewport never received ScrollTo")
	}
	assertNear(t, "reveal rect Min.Y", u.Rect.Min.Y, 300)
	assertNear(t, "reveal rect Max.Y", u.Rect.Max.Y, 340)

	// the rect arrives at each ancestor in that ancestor's local space
	if ru, ok := lastUpdate[ScrollTo](rootWidget); !ok {
		t.Error("root never received ScrollTo")
	} else {
		assertNear(t, "root-space rect Min.Y", ru.Rect.Min.Y, 300)
	}
}
