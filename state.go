package alder

// widgetState is the per-slot engine state stored beside each widget: local
// geometry, hierarchy links, interaction flags, dirty bits, and the draw
// recording heuristic's counters. Widgets read it through pass contexts.
type widgetState struct {
	id WidgetID

	// geometry
	transform       Affine
	globalTransform Affine
	size            Size
	previousSpace   Space
	hasLaidOut      bool
	clip            *Clip
	cursor          CursorIcon

	// hierarchy
	parent   WidgetID // NoWidget at the root; non-owning
	children []WidgetID
	window   WindowID

	// interaction flags; has* aggregate over the subtree
	isHovered  bool
	hasHovered bool
	isFocused  bool
	hasFocused bool
	isActive   bool
	hasActive  bool

	// stashedSelf/disabledSelf are the widget's own flags; isStashed and
	// isDisabled are the effective values after ancestor push-down
	stashedSelf  bool
	isStashed    bool
	disabledSelf bool
	isDisabled   bool

	// dirty bits; after merge-up an ancestor's bit covers its subtree
	needsLayout  bool
	needsCompose bool
	needsDraw    bool
	needsAnimate bool

	// fixed per-type capabilities
	caps Capabilities

	// draw recording heuristic
	pixelPerfect    bool
	stableDraws     uint32
	isRecordingDraw bool
	drawCost        float64

	typeName string
}

func newWidgetState(id WidgetID, caps Capabilities, typeName string) *widgetState {
	return &widgetState{
		id:              id,
		transform:       AffineIdentity,
		globalTransform: AffineIdentity,
		parent:          NoWidget,
		needsLayout:     true,
		needsDraw:       true,
		caps:            caps,
		pixelPerfect:    true,
		typeName:        typeName,
	}
}

// reset seeds the aggregates from the widget's own flags before children are
// merged back in.
func (s *widgetState) reset() {
	s.hasHovered = s.isHovered
	s.hasActive = s.isActive
	s.hasFocused = s.isFocused
}

// merge folds a child's aggregates into this state. Stashed subtrees do not
// contribute dirty bits: they are skipped by every pass anyway.
func (s *widgetState) merge(child *widgetState) {
	s.hasHovered = s.hasHovered || child.hasHovered
	s.hasActive = s.hasActive || child.hasActive
	s.hasFocused = s.hasFocused || child.hasFocused

	if !child.isStashed {
		s.needsLayout = s.needsLayout || child.needsLayout
		s.needsCompose = s.needsCompose || child.needsCompose
		s.needsDraw = s.needsDraw || child.needsDraw
		s.needsAnimate = s.needsAnimate || child.needsAnimate
	}
}

// acceptsPointer reports whether the widget is currently a hit-test target.
func (s *widgetState) acceptsPointer() bool {
	return s.caps&AcceptsPointer != 0 && !s.isStashed && !s.isDisabled
}

// acceptsFocus reports whether the widget currently takes part in focus
// navigation.
func (s *widgetState) acceptsFocus() bool {
	return s.caps&AcceptsFocus != 0 && !s.isStashed && !s.isDisabled
}

// acceptsText reports whether focusing the widget should start an IME
// session.
func (s *widgetState) acceptsText() bool {
	return s.caps&AcceptsText != 0 && !s.isStashed && !s.isDisabled
}

// rect returns the widget's bounds in local coordinates.
func (s *widgetState) rect() Rect {
	return RectMinSize(Point{}, s.size)
}

// hasChild reports whether the handle is a direct child.
func (s *widgetState) hasChild(child WidgetID) bool {
	for _, c := range s.children {
		if c == child {
			return true
		}
	}
	return false
}

// childIndex returns the position of a direct child, or -1.
func (s *widgetState) childIndex(child WidgetID) int {
	for i, c := range s.children {
		if c == child {
			return i
		}
	}
	return -1
}
