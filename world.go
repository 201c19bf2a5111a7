package alder

// World owns the widget tree: the slot arena, the windows, the draw cache,
// and the signal channel back to the platform shell. It is single-threaded;
// every method must be called from the same goroutine that runs the frame
// passes.
type World struct {
	arena    arena
	windows  map[WindowID]*window
	order    []WindowID // creation order, for deterministic iteration
	recorder recorder
	settings Settings
	signals  signalQueue

	nextWindow WindowID
	now        nowFunc
}

// NewWorld creates an empty world.
func NewWorld(settings Settings) *World {
	w := &World{
		windows:  make(map[WindowID]*window),
		settings: settings,
		now:      stdNow,
	}
	w.recorder.init(settings.Record)
	return w
}

// OnSignal installs the shell's signal sink. Signals emitted before a sink
// exists are buffered and flushed here.
func (w *World) OnSignal(sink SignalSink) {
	w.signals.install(sink)
}

// Settings returns the configuration the world was built with.
func (w *World) Settings() Settings {
	return w.settings
}

// --- Widgets ---

// Insert stores a widget and returns its typed handle. The widget starts
// parentless and outside any window.
func Insert[T Widget](w *World, widget T) TypedID[T] {
	return TypedID[T]{id: w.arena.insert(widget)}
}

// InsertWidget is the untyped variant of Insert.
func (w *World) InsertWidget(widget Widget) WidgetID {
	return w.arena.insert(widget)
}

// Contains reports whether the handle resolves to a live widget.
func (w *World) Contains(id WidgetID) bool {
	return w.arena.contains(id)
}

// Len returns the number of live widgets.
func (w *World) Len() int {
	return w.arena.len()
}

// Remove deletes a widget and its whole subtree: each widget gets a Removed
// notification, its cached recording is dropped, and its slot is tombstoned.
// Fails with ErrBorrowed, before any mutation, if any widget in the subtree
// is checked out.
func (w *World) Remove(id WidgetID) error {
	e := w.arena.entry(id)
	if e == nil {
		return ErrInvalidID
	}
	if w.subtreeBorrowed(id) {
		return ErrBorrowed
	}

	parent := e.state.parent
	if parent.Valid() {
		ps := w.arena.state(parent)
		index := ps.childIndex(id)
		ps.children = append(ps.children[:index], ps.children[index+1:]...)
		e.state.parent = NoWidget

		ps.needsLayout = true
		ps.needsDraw = true
		if win := w.windows[ps.window]; win != nil {
			w.requestRedraw(win)
		}
		w.deliverUpdate(parent, ChildrenChanged{Change: ChildChange{Kind: ChildRemoved, Index: index}})
		w.mergeUp(parent)
	}

	if win := w.windows[e.state.window]; win != nil {
		w.releaseInputIn(win, id)
		w.dropLayerRooted(win, id)
	}
	w.removeRecursive(id)
	if parent.Valid() {
		w.recomputeUp(parent)
	}
	return nil
}

func (w *World) subtreeBorrowed(id WidgetID) bool {
	e := w.arena.entry(id)
	if e == nil {
		return false
	}
	if e.borrowed {
		return true
	}
	for _, child := range e.state.children {
		if w.subtreeBorrowed(child) {
			return true
		}
	}
	return false
}

// removeRecursive tombstones a subtree bottom-up, notifying each widget on
// the way out.
func (w *World) removeRecursive(id WidgetID) {
	e := w.arena.entry(id)
	if e == nil {
		return
	}
	for _, child := range e.state.children {
		w.removeRecursive(child)
	}
	e.widget.Update(&UpdateContext{requestContext{baseContext{world: w, win: w.windows[e.state.window], state: e.state}}}, Removed{})
	w.recorder.remove(id)
	if !w.arena.tombstone(id) {
		debugPanic("widget %v became borrowed during removal", id)
	}
}

// releaseInputIn clears window focus, hover, and capture records that point
// into the subtree rooted at id.
func (w *World) releaseInputIn(win *window, id WidgetID) {
	if win.focused.Valid() && w.isDescendantOf(win.focused, id) {
		w.transferFocus(win, NoWidget)
	}
	for _, p := range win.pointers {
		if p.hovering.Valid() && w.isDescendantOf(p.hovering, id) {
			p.hovering = NoWidget
		}
		if p.capturer.Valid() && w.isDescendantOf(p.capturer, id) {
			p.capturer = NoWidget
		}
	}
	for _, t := range win.touches {
		if t.capturer.Valid() && w.isDescendantOf(t.capturer, id) {
			t.capturer = NoWidget
		}
	}
}

// isDescendantOf reports whether id is ancestor or equal to ancestor's
// subtree, walking parent links.
func (w *World) isDescendantOf(id, ancestor WidgetID) bool {
	for id.Valid() {
		if id == ancestor {
			return true
		}
		s := w.arena.state(id)
		if s == nil {
			return false
		}
		id = s.parent
	}
	return false
}

// deliverUpdate runs a widget's Update hook with the checkout flag held and
// merges any dirt it raised up to the root.
func (w *World) deliverUpdate(id WidgetID, update Update) {
	e, err := w.arena.checkout(id)
	if err != nil {
		if err == ErrBorrowed {
			debugPanic("update %T delivered to borrowed widget %v", update, id)
		}
		return
	}
	cx := &UpdateContext{requestContext{baseContext{world: w, win: w.windows[e.state.window], state: e.state}}}
	e.widget.Update(cx, update)
	w.arena.release(id)
	w.mergeUp(id)
}

// --- Accessors ---

// WidgetRef is a read-only accessor. It holds the slot's checkout flag until
// Release, so a live ref blocks every other accessor with ErrBorrowed.
type WidgetRef struct {
	world *World
	entry *entry
	id    WidgetID
}

// Widget returns a handle's read accessor.
func (w *World) Widget(id WidgetID) (*WidgetRef, error) {
	e, err := w.arena.checkout(id)
	if err != nil {
		return nil, err
	}
	return &WidgetRef{world: w, entry: e, id: id}, nil
}

// Release returns the slot. The accessor must not be used afterwards.
func (r *WidgetRef) Release() {
	r.world.arena.release(r.id)
	r.entry = nil
}

func (r *WidgetRef) ID() WidgetID            { return r.id }
func (r *WidgetRef) Widget() Widget          { return r.entry.widget }
func (r *WidgetRef) Size() Size              { return r.entry.state.size }
func (r *WidgetRef) Transform() Affine       { return r.entry.state.transform }
func (r *WidgetRef) GlobalTransform() Affine { return r.entry.state.globalTransform }
func (r *WidgetRef) Parent() WidgetID        { return r.entry.state.parent }
func (r *WidgetRef) Window() WindowID        { return r.entry.state.window }
func (r *WidgetRef) IsHovered() bool         { return r.entry.state.isHovered }
func (r *WidgetRef) IsActive() bool          { return r.entry.state.isActive }
func (r *WidgetRef) IsFocused() bool         { return r.entry.state.isFocused }
func (r *WidgetRef) IsStashed() bool         { return r.entry.state.isStashed }
func (r *WidgetRef) IsDisabled() bool        { return r.entry.state.isDisabled }

// Children returns a copy of the child list.
func (r *WidgetRef) Children() []WidgetID {
	children := make([]WidgetID, len(r.entry.state.children))
	copy(children, r.entry.state.children)
	return children
}

// WidgetMut is a read-write accessor. Like WidgetRef it holds the checkout
// flag until Release.
type WidgetMut struct {
	WidgetRef
}

// WidgetMut returns a handle's write accessor.
func (w *World) WidgetMut(id WidgetID) (*WidgetMut, error) {
	e, err := w.arena.checkout(id)
	if err != nil {
		return nil, err
	}
	return &WidgetMut{WidgetRef{world: w, entry: e, id: id}}, nil
}

// Get resolves a typed handle to its widget and read accessor.
func Get[T Widget](w *World, id TypedID[T]) (T, *WidgetRef, error) {
	var zero T
	ref, err := w.Widget(id.ID())
	if err != nil {
		return zero, nil, err
	}
	widget, ok := ref.Widget().(T)
	if !ok {
		ref.Release()
		return zero, nil, ErrInvalidType
	}
	return widget, ref, nil
}

// GetMut resolves a typed handle to its widget and write accessor.
func GetMut[T Widget](w *World, id TypedID[T]) (T, *WidgetMut, error) {
	var zero T
	mut, err := w.WidgetMut(id.ID())
	if err != nil {
		return zero, nil, err
	}
	widget, ok := mut.Widget().(T)
	if !ok {
		mut.Release()
		return zero, nil, ErrInvalidType
	}
	return widget, mut, nil
}

// SetTransform replaces the widget's local transform.
func (m *WidgetMut) SetTransform(transform Affine) {
	s := m.entry.state
	if s.transform == transform {
		return
	}
	s.transform = transform
	s.needsCompose = true
	m.world.requestRedrawFor(s)
	m.world.mergeUp(m.id)
}

// SetClip restricts the subtree's output to a local-coordinate region. Pass
// nil to clear.
func (m *WidgetMut) SetClip(clip *Clip) {
	m.entry.state.clip = clip
	m.RequestDraw()
}

// SetCursor sets the cursor shown while the widget is hovered.
func (m *WidgetMut) SetCursor(cursor CursorIcon) {
	m.entry.state.cursor = cursor
}

// RequestLayout marks the widget for re-layout and propagates immediately.
func (m *WidgetMut) RequestLayout() {
	m.entry.state.needsLayout = true
	m.world.requestRedrawFor(m.entry.state)
	m.world.mergeUp(m.id)
}

// RequestCompose marks the widget's transforms for recomputation.
func (m *WidgetMut) RequestCompose() {
	m.entry.state.needsCompose = true
	m.world.requestRedrawFor(m.entry.state)
	m.world.mergeUp(m.id)
}

// RequestDraw marks the widget's content stale.
func (m *WidgetMut) RequestDraw() {
	m.entry.state.needsDraw = true
	m.world.requestRedrawFor(m.entry.state)
	m.world.mergeUp(m.id)
}

// RequestAnimate arms the widget's Animate hook.
func (m *WidgetMut) RequestAnimate() {
	m.entry.state.needsAnimate = true
	if win := m.world.windows[m.entry.state.window]; win != nil {
		m.world.requestAnimate(win)
	}
	m.world.mergeUp(m.id)
}

// unborrowed drops the accessor's checkout flag around f, so updates raised
// by f can be delivered back to the held widget.
func (m *WidgetMut) unborrowed(f func()) {
	m.entry.borrowed = false
	f()
	m.entry.borrowed = true
}

// SetStashed stashes or unstashes the widget. A stashed subtree is skipped
// by every pass and drops its interaction state.
func (m *WidgetMut) SetStashed(stashed bool) {
	m.unborrowed(func() { m.world.setStashed(m.id, stashed) })
}

// SetDisabled disables or enables the widget. A disabled subtree still draws
// but takes no input and drops its interaction state.
func (m *WidgetMut) SetDisabled(disabled bool) {
	m.unborrowed(func() { m.world.setDisabled(m.id, disabled) })
}

// SetFocused focuses or blurs the widget within its window.
func (m *WidgetMut) SetFocused(focused bool) {
	win := m.world.windows[m.entry.state.window]
	if win == nil {
		return
	}
	m.unborrowed(func() {
		if focused {
			m.world.transferFocus(win, m.id)
		} else if win.focused == m.id {
			m.world.transferFocus(win, NoWidget)
		}
	})
}

// --- Hierarchy ---

// AddChild appends a child. Fails with ErrInvalidChild if the child does not
// resolve, already has a parent, or is the widget itself or one of its
// ancestors.
func (m *WidgetMut) AddChild(child WidgetID) error {
	return m.insertChildAt(child, len(m.entry.state.children))
}

// InsertChild inserts a child at an index. Same failure modes as AddChild,
// plus ErrInvalidChild for an out-of-range index.
func (m *WidgetMut) InsertChild(index int, child WidgetID) error {
	if index < 0 || index > len(m.entry.state.children) {
		return ErrInvalidChild
	}
	return m.insertChildAt(child, index)
}

func (m *WidgetMut) insertChildAt(child WidgetID, index int) error {
	w := m.world
	cs := w.arena.state(child)
	if cs == nil || cs.parent.Valid() || w.isDescendantOf(m.id, child) {
		return ErrInvalidChild
	}

	s := m.entry.state
	s.children = append(s.children, NoWidget)
	copy(s.children[index+1:], s.children[index:])
	s.children[index] = child
	cs.parent = m.id
	w.setWindowRecursive(child, s.window)

	s.needsLayout = true
	s.needsDraw = true
	w.requestRedrawFor(s)
	m.notifyChildren(ChildChange{Kind: ChildAdded, Index: index})
	w.mergeUpFrom(cs) // carry the child's pending dirt to the root
	return nil
}

// RemoveChild detaches the child at an index without deleting it. The child
// keeps its subtree but leaves the window and drops its interaction state.
func (m *WidgetMut) RemoveChild(index int) (WidgetID, error) {
	s := m.entry.state
	if index < 0 || index >= len(s.children) {
		return NoWidget, ErrInvalidChild
	}
	w := m.world
	child := s.children[index]
	cs := w.arena.state(child)

	if win := w.windows[s.window]; win != nil {
		w.releaseInputIn(win, child)
	}
	w.clearInteraction(child)
	s.children = append(s.children[:index], s.children[index+1:]...)
	cs.parent = NoWidget
	w.setWindowRecursive(child, NoWindow)

	s.needsLayout = true
	s.needsDraw = true
	w.requestRedrawFor(s)
	m.notifyChildren(ChildChange{Kind: ChildRemoved, Index: index})
	w.mergeUp(m.id)
	w.recomputeUp(m.id)
	return child, nil
}

// ReplaceChild swaps the child at an index for another widget and returns
// the old child, detached.
func (m *WidgetMut) ReplaceChild(index int, child WidgetID) (WidgetID, error) {
	s := m.entry.state
	if index < 0 || index >= len(s.children) {
		return NoWidget, ErrInvalidChild
	}
	w := m.world
	cs := w.arena.state(child)
	if cs == nil || cs.parent.Valid() || w.isDescendantOf(m.id, child) {
		return NoWidget, ErrInvalidChild
	}

	old := s.children[index]
	os := w.arena.state(old)
	if win := w.windows[s.window]; win != nil {
		w.releaseInputIn(win, old)
	}
	w.clearInteraction(old)
	os.parent = NoWidget
	w.setWindowRecursive(old, NoWindow)

	s.children[index] = child
	cs.parent = m.id
	w.setWindowRecursive(child, s.window)

	s.needsLayout = true
	s.needsDraw = true
	w.requestRedrawFor(s)
	m.notifyChildren(ChildChange{Kind: ChildReplaced, Index: index})
	w.mergeUpFrom(cs)
	w.recomputeUp(m.id)
	return old, nil
}

// SwapChildren exchanges two children by index.
func (m *WidgetMut) SwapChildren(i, j int) error {
	s := m.entry.state
	if i < 0 || i >= len(s.children) || j < 0 || j >= len(s.children) {
		return ErrInvalidChild
	}
	if i == j {
		return nil
	}
	s.children[i], s.children[j] = s.children[j], s.children[i]
	s.needsLayout = true
	s.needsDraw = true
	m.world.requestRedrawFor(s)
	m.notifyChildren(ChildChange{Kind: ChildrenSwapped, Index: i, Index2: j})
	m.world.mergeUp(m.id)
	return nil
}

// notifyChildren calls the held widget's Update hook directly: the accessor
// already owns the checkout flag.
func (m *WidgetMut) notifyChildren(change ChildChange) {
	s := m.entry.state
	cx := &UpdateContext{requestContext{baseContext{world: m.world, win: m.world.windows[s.window], state: s}}}
	m.entry.widget.Update(cx, ChildrenChanged{Change: change})
}

// setWindowRecursive moves a subtree between windows, broadcasting nothing;
// window-level notifications come from the resize/scale entry points.
func (w *World) setWindowRecursive(id WidgetID, win WindowID) {
	s := w.arena.state(id)
	if s == nil || s.window == win {
		return
	}
	s.window = win
	for _, child := range s.children {
		w.setWindowRecursive(child, win)
	}
}

// --- Windows ---

// CreateWindow opens a window rooted at the given widget and asks the shell
// to realize it. The root must be parentless.
func (w *World) CreateWindow(root WidgetID, desc WindowDescriptor) (WindowID, error) {
	s := w.arena.state(root)
	if s == nil {
		return NoWindow, ErrInvalidID
	}
	if s.parent.Valid() || s.window.Valid() {
		return NoWindow, ErrInvalidParent
	}

	w.nextWindow++
	id := w.nextWindow
	win := newWindow(id, root, desc)
	w.windows[id] = win
	w.order = append(w.order, id)
	w.setWindowRecursive(root, id)

	w.signals.emit(CreateWindow{Window: id})
	w.requestRedraw(win)
	return id, nil
}

// RemoveWindow closes a window. Its layer roots survive, parentless and
// windowless; remove them separately if they are no longer needed.
func (w *World) RemoveWindow(id WindowID) error {
	win := w.windows[id]
	if win == nil {
		return ErrInvalidID
	}
	w.transferFocus(win, NoWidget)
	for _, l := range win.layers {
		w.setWindowRecursive(l.root, NoWindow)
	}
	delete(w.windows, id)
	for i, o := range w.order {
		if o == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	w.signals.emit(RemoveWindow{Window: id})
	return nil
}

// Windows returns window handles in creation order.
func (w *World) Windows() []WindowID {
	out := make([]WindowID, len(w.order))
	copy(out, w.order)
	return out
}

// WindowRoot returns a window's base layer root widget.
func (w *World) WindowRoot(id WindowID) WidgetID {
	if win := w.windows[id]; win != nil {
		return win.base()
	}
	return NoWidget
}

// AddLayer stacks a widget tree above the window's existing content at a
// fixed position. The root must be parentless and outside any window.
// Layers added later sit on top for both drawing and hit-testing.
func (w *World) AddLayer(windowID WindowID, position Point, root WidgetID) (LayerID, error) {
	win := w.windows[windowID]
	if win == nil {
		return NoLayer, ErrInvalidID
	}
	s := w.arena.state(root)
	if s == nil {
		return NoLayer, ErrInvalidID
	}
	if s.parent.Valid() || s.window.Valid() {
		return NoLayer, ErrInvalidParent
	}

	win.nextLayer++
	id := win.nextLayer
	win.layers = append(win.layers, layer{id: id, root: root, position: position})
	w.setWindowRecursive(root, windowID)

	s.needsLayout = true
	s.needsCompose = true
	s.needsDraw = true
	if s.needsAnimate {
		w.requestAnimate(win)
	}
	w.requestRedraw(win)
	return id, nil
}

// RemoveLayer dismisses a layer and removes its widget tree. The base layer
// cannot be removed.
func (w *World) RemoveLayer(windowID WindowID, id LayerID) error {
	win := w.windows[windowID]
	if win == nil {
		return ErrInvalidID
	}
	for i := 1; i < len(win.layers); i++ {
		if win.layers[i].id == id {
			root := win.layers[i].root
			win.layers = append(win.layers[:i], win.layers[i+1:]...)
			w.requestRedraw(win)
			return w.Remove(root)
		}
	}
	return ErrInvalidID
}

// dropLayerRooted removes the window's layer record rooted at id, if any.
// The base layer record stays even when its root goes away.
func (w *World) dropLayerRooted(win *window, id WidgetID) {
	for i := 1; i < len(win.layers); i++ {
		if win.layers[i].root == id {
			win.layers = append(win.layers[:i], win.layers[i+1:]...)
			w.requestRedraw(win)
			return
		}
	}
}

// SetLayerPosition moves a layer within its window.
func (w *World) SetLayerPosition(windowID WindowID, id LayerID, position Point) error {
	win := w.windows[windowID]
	if win == nil {
		return ErrInvalidID
	}
	l := win.layerOf(id)
	if l == nil {
		return ErrInvalidID
	}
	if l.position == position {
		return nil
	}
	l.position = position
	if s := w.arena.state(l.root); s != nil {
		s.needsCompose = true
	}
	w.requestRedraw(win)
	return nil
}

// Layers returns a window's layer handles, base layer first.
func (w *World) Layers(id WindowID) []LayerID {
	win := w.windows[id]
	if win == nil {
		return nil
	}
	out := make([]LayerID, len(win.layers))
	for i, l := range win.layers {
		out[i] = l.id
	}
	return out
}

// WindowSize returns a window's logical size.
func (w *World) WindowSize(id WindowID) Size {
	if win := w.windows[id]; win != nil {
		return win.size
	}
	return Size{}
}

// WindowScale returns a window's scale factor.
func (w *World) WindowScale(id WindowID) float64 {
	if win := w.windows[id]; win != nil {
		return win.scale
	}
	return 1
}

// Focused returns the widget holding focus in a window.
func (w *World) Focused(id WindowID) WidgetID {
	if win := w.windows[id]; win != nil {
		return win.focused
	}
	return NoWidget
}

// SetWindowTitle updates the title and notifies the shell.
func (w *World) SetWindowTitle(id WindowID, title string) {
	win := w.windows[id]
	if win == nil || win.title == title {
		return
	}
	win.title = title
	w.signals.emit(UpdateWindow{Window: id, Update: SetTitle{Title: title}})
}

// SetWindowVisible shows or hides the window.
func (w *World) SetWindowVisible(id WindowID, visible bool) {
	win := w.windows[id]
	if win == nil || win.visible == visible {
		return
	}
	win.visible = visible
	w.signals.emit(UpdateWindow{Window: id, Update: SetVisible{Visible: visible}})
}

// SetWindowDecorated toggles the native frame.
func (w *World) SetWindowDecorated(id WindowID, decorated bool) {
	win := w.windows[id]
	if win == nil || win.decorated == decorated {
		return
	}
	win.decorated = decorated
	w.signals.emit(UpdateWindow{Window: id, Update: SetDecorated{Decorated: decorated}})
}

// SetWindowSizing changes how the window tracks its content.
func (w *World) SetWindowSizing(id WindowID, sizing WindowSizing) {
	win := w.windows[id]
	if win == nil || win.sizing == sizing {
		return
	}
	win.sizing = sizing
	w.signals.emit(UpdateWindow{Window: id, Update: SetSizing{Sizing: sizing}})
	w.requestLayoutRoot(win)
}

// SetModifiers records the keyboard modifier state fed into subsequent
// events for this window.
func (w *World) SetModifiers(id WindowID, modifiers Modifiers) {
	if win := w.windows[id]; win != nil {
		win.modifiers = modifiers
	}
}

// WindowResized is called by the shell when the native window changes size.
// The whole tree gets a WindowResized notification and the root is re-laid
// out.
func (w *World) WindowResized(id WindowID, size Size) {
	win := w.windows[id]
	if win == nil || win.size == size {
		return
	}
	win.size = size
	for _, l := range win.layers {
		w.broadcastUpdate(l.root, WindowResized{Size: size})
	}
	w.requestLayoutRoot(win)
}

// WindowScaleChanged is called by the shell when the scale factor changes.
// Pixel-aligned widgets are re-laid-out so their sizes land on the new
// grid.
func (w *World) WindowScaleChanged(id WindowID, scale float64) {
	win := w.windows[id]
	if win == nil || scale <= 0 || win.scale == scale {
		return
	}
	win.scale = scale
	for _, l := range win.layers {
		w.broadcastUpdate(l.root, WindowScaleChanged{Scale: scale})
		w.dirtyPixelAligned(l.root)
	}
	w.requestLayoutRoot(win)
}

func (w *World) requestLayoutRoot(win *window) {
	for _, l := range win.layers {
		if s := w.arena.state(l.root); s != nil {
			s.needsLayout = true
			s.needsCompose = true
			s.needsDraw = true
		}
	}
	w.requestRedraw(win)
}

// broadcastUpdate delivers an update to every widget in a subtree, stashed
// ones included: they need to know about window changes too.
func (w *World) broadcastUpdate(id WidgetID, update Update) {
	s := w.arena.state(id)
	if s == nil {
		return
	}
	w.deliverUpdate(id, update)
	for _, child := range s.children {
		w.broadcastUpdate(child, update)
	}
}

// dirtyPixelAligned marks every pixel-aligned widget for re-layout.
func (w *World) dirtyPixelAligned(id WidgetID) {
	s := w.arena.state(id)
	if s == nil {
		return
	}
	if s.pixelPerfect {
		s.needsLayout = true
		s.needsCompose = true
		s.needsDraw = true
	}
	for _, child := range s.children {
		w.dirtyPixelAligned(child)
	}
}

// --- Signals ---

// requestRedraw raises the window's redraw signal, once per frame.
func (w *World) requestRedraw(win *window) {
	if win == nil || win.redrawRequested {
		return
	}
	win.redrawRequested = true
	w.signals.emit(RequestRedraw{Window: win.id})
}

// requestAnimate raises the window's animate signal, once per frame.
func (w *World) requestAnimate(win *window) {
	if win == nil || win.animateRequested {
		return
	}
	win.animateRequested = true
	w.signals.emit(RequestAnimate{Window: win.id})
}

// requestRedrawFor raises the redraw signal for the window a state lives in.
func (w *World) requestRedrawFor(s *widgetState) {
	w.requestRedraw(w.windows[s.window])
}
