package alder

// Pass contexts are handed to widget hooks. Each context exposes only the
// operations legal during its pass; anything else goes through a World
// accessor outside the hook. Contexts must not be retained past the call.

// baseContext carries the read side shared by every context.
type baseContext struct {
	world *World
	win   *window
	state *widgetState
}

// ID returns the handle of the widget the hook runs for.
func (c *baseContext) ID() WidgetID { return c.state.id }

// Size returns the widget's laid-out size.
func (c *baseContext) Size() Size { return c.state.size }

// Scale returns the window's scale factor, or 1 outside a window.
func (c *baseContext) Scale() float64 {
	if c.win == nil {
		return 1
	}
	return c.win.scale
}

// WindowSize returns the window's logical size.
func (c *baseContext) WindowSize() Size {
	if c.win == nil {
		return Size{}
	}
	return c.win.size
}

// Children returns the widget's children. The slice is shared; do not
// mutate it.
func (c *baseContext) Children() []WidgetID { return c.state.children }

// Parent returns the widget's parent, or NoWidget at a root.
func (c *baseContext) Parent() WidgetID { return c.state.parent }

func (c *baseContext) IsHovered() bool  { return c.state.isHovered }
func (c *baseContext) IsActive() bool   { return c.state.isActive }
func (c *baseContext) IsFocused() bool  { return c.state.isFocused }
func (c *baseContext) HasHovered() bool { return c.state.hasHovered }
func (c *baseContext) HasActive() bool  { return c.state.hasActive }
func (c *baseContext) HasFocused() bool { return c.state.hasFocused }
func (c *baseContext) IsStashed() bool  { return c.state.isStashed }
func (c *baseContext) IsDisabled() bool { return c.state.isDisabled }

// requestContext adds the dirty-bit requests available inside hooks. A
// request sets the widget's own bit and raises the window signal once; the
// bit reaches ancestors when the pass unwinds or the dispatch completes.
type requestContext struct {
	baseContext
}

// RequestLayout marks the widget for re-layout.
func (c *requestContext) RequestLayout() {
	c.state.needsLayout = true
	c.world.requestRedraw(c.win)
}

// RequestCompose marks the widget's transforms for recomputation.
func (c *requestContext) RequestCompose() {
	c.state.needsCompose = true
	c.world.requestRedraw(c.win)
}

// RequestDraw marks the widget's content stale.
func (c *requestContext) RequestDraw() {
	c.state.needsDraw = true
	c.world.requestRedraw(c.win)
}

// RequestAnimate arms the widget's Animate hook for the next frame.
func (c *requestContext) RequestAnimate() {
	c.state.needsAnimate = true
	c.world.requestAnimate(c.win)
}

// SetCursor sets the cursor shown while this widget is hovered.
func (c *requestContext) SetCursor(cursor CursorIcon) {
	c.state.cursor = cursor
}

// --- LayoutContext ---

// LayoutContext is handed to Layout. It measures text and lays out and
// places children.
type LayoutContext struct {
	requestContext
	painter TextPainter
}

// TextPainter returns the measurement backend for this layout pass.
func (c *LayoutContext) TextPainter() TextPainter { return c.painter }

// MeasureText measures a paragraph wrapped at maxWidth.
func (c *LayoutContext) MeasureText(p Paragraph, maxWidth float64) Size {
	if c.painter == nil {
		return Size{}
	}
	return c.painter.MeasureText(p, maxWidth)
}

// LayoutChild lays out a child under the given constraint and returns its
// size. Memoized: a clean child that saw the same constraint is not
// re-entered. Stashed children are not entered either and report a zero
// size. Fails with ErrInvalidChild if the handle is not a child of this
// widget.
func (c *LayoutContext) LayoutChild(child WidgetID, space Space) (Size, error) {
	if !c.state.hasChild(child) {
		return Size{}, ErrInvalidChild
	}
	if c.world.arena.state(child).isStashed {
		return Size{}, nil
	}
	return c.world.layoutWidget(c.win, c.painter, child, space), nil
}

// PlaceChild positions a child relative to this widget's origin.
func (c *LayoutContext) PlaceChild(child WidgetID, offset Offset) error {
	if !c.state.hasChild(child) {
		return ErrInvalidChild
	}
	s := c.world.arena.state(child)
	transform := s.transform.WithOffset(offset)
	if transform != s.transform {
		s.transform = transform
		s.needsCompose = true
	}
	return nil
}

// ChildSize returns a child's size from its most recent layout.
func (c *LayoutContext) ChildSize(child WidgetID) (Size, error) {
	if !c.state.hasChild(child) {
		return Size{}, ErrInvalidChild
	}
	return c.world.arena.state(child).size, nil
}

// SetClip restricts the subtree's draw output and hit-testing to a region in
// local coordinates. Pass nil to clear.
func (c *LayoutContext) SetClip(clip *Clip) {
	c.state.clip = clip
	c.state.needsDraw = true
	c.world.requestRedraw(c.win)
}

// SetPixelPerfect controls whether the widget's size and offset snap to the
// device pixel grid. On by default.
func (c *LayoutContext) SetPixelPerfect(enabled bool) {
	c.state.pixelPerfect = enabled
}

// --- ComposeContext ---

// ComposeContext is handed to Compose, after layout and before drawing. It
// can move children without forcing a re-layout, which is how scrolling
// works.
type ComposeContext struct {
	requestContext
}

// TranslateChild moves a child to a new offset without re-laying it out.
func (c *ComposeContext) TranslateChild(child WidgetID, offset Offset) error {
	if !c.state.hasChild(child) {
		return ErrInvalidChild
	}
	s := c.world.arena.state(child)
	transform := s.transform.WithOffset(offset)
	if transform != s.transform {
		s.transform = transform
		s.needsCompose = true
	}
	return nil
}

// ChildSize returns a child's laid-out size.
func (c *ComposeContext) ChildSize(child WidgetID) (Size, error) {
	if !c.state.hasChild(child) {
		return Size{}, ErrInvalidChild
	}
	return c.world.arena.state(child).size, nil
}

// --- DrawContext ---

// DrawContext is handed to Draw and DrawOver. Drawing happens through the
// Canvas; the context only answers questions.
type DrawContext struct {
	baseContext
}

// RequestAnimate arms the widget's Animate hook for the next frame. The only
// request legal while drawing: the frame being drawn is already committed.
func (c *DrawContext) RequestAnimate() {
	c.state.needsAnimate = true
	c.world.requestAnimate(c.win)
}

// --- UpdateContext ---

// UpdateContext is handed to Update and Animate hooks.
type UpdateContext struct {
	requestContext
}

// --- EventContext ---

// EventContext is handed to PointerEvent and TouchEvent hooks. On top of the
// update operations it can move focus; the transfer is applied after the
// bubble walk completes so every handler in the chain sees the pre-event
// focus.
type EventContext struct {
	requestContext
	modifiers Modifiers

	pendingFocus    WidgetID
	hasPendingFocus bool
}

// Modifiers returns the keyboard modifier state at the time of the event.
func (c *EventContext) Modifiers() Modifiers { return c.modifiers }

// SetFocused focuses or blurs this widget.
func (c *EventContext) SetFocused(focused bool) {
	if focused {
		c.pendingFocus = c.state.id
	} else {
		c.pendingFocus = NoWidget
	}
	c.hasPendingFocus = true
}

// MoveFocus transfers focus to the next (or previous) focusable widget in
// tree order, wrapping around.
func (c *EventContext) MoveFocus(forward bool) {
	c.pendingFocus = c.world.findFocus(c.win, c.win.focused, forward)
	c.hasPendingFocus = true
}

// ClearFocus blurs whatever widget holds focus in this window.
func (c *EventContext) ClearFocus() {
	c.pendingFocus = NoWidget
	c.hasPendingFocus = true
}
