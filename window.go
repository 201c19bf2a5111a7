package alder

import "time"

// WindowID identifies a window. The zero value is invalid.
type WindowID uint64

// NoWindow is the invalid window handle.
const NoWindow WindowID = 0

// Valid reports whether the handle could ever resolve.
func (id WindowID) Valid() bool {
	return id != 0
}

// WindowSizing selects how a window tracks its content.
type WindowSizing uint8

const (
	// SizingResizable lets the platform size the window; the root widget is
	// laid out to fill it exactly.
	SizingResizable WindowSizing = iota

	// SizingFitContent sizes the window to the root widget's preferred size.
	SizingFitContent
)

// WindowDescriptor configures a new window.
type WindowDescriptor struct {
	Title     string
	Size      Size
	Scale     float64
	Sizing    WindowSizing
	Visible   bool
	Decorated bool
}

// DefaultWindow is a descriptor with sensible defaults.
func DefaultWindow() WindowDescriptor {
	return WindowDescriptor{
		Title:     "alder",
		Size:      Sz(800, 600),
		Scale:     1,
		Sizing:    SizingResizable,
		Visible:   true,
		Decorated: true,
	}
}

// LayerID identifies a layer within a window. The zero value is invalid.
type LayerID uint64

// NoLayer is the invalid layer handle.
const NoLayer LayerID = 0

// Valid reports whether the handle could ever resolve.
func (id LayerID) Valid() bool {
	return id != 0
}

// layer is one independently rooted widget tree stacked in a window. The
// base layer fills the window; later layers float above it at a fixed
// position (popups, tooltips).
type layer struct {
	id       LayerID
	root     WidgetID
	position Point
}

// window is the engine's side of a native window: a stack of layers, the
// live input contacts, focus, and the per-frame signal dedup flags.
type window struct {
	id        WindowID
	layers    []layer // base layer first, topmost last
	nextLayer LayerID

	title     string
	size      Size
	scale     float64
	sizing    WindowSizing
	visible   bool
	decorated bool
	cursor    CursorIcon

	focused   WidgetID
	modifiers Modifiers

	pointers []*pointer
	touches  []*touch

	// dedup flags, cleared when the frame begins
	redrawRequested  bool
	animateRequested bool
	lastAnimate      time.Time

	// double-tap memory, survives the contact that set it
	lastTapValid    bool
	lastTapPosition Point
	lastTapTime     time.Time
}

func newWindow(id WindowID, root WidgetID, desc WindowDescriptor) *window {
	scale := desc.Scale
	if scale <= 0 {
		scale = 1
	}
	return &window{
		id:        id,
		layers:    []layer{{id: 1, root: root}},
		nextLayer: 1,
		title:     desc.Title,
		size:      desc.Size,
		scale:     scale,
		sizing:    desc.Sizing,
		visible:   desc.Visible,
		decorated: desc.Decorated,
	}
}

// base returns the base layer's root widget.
func (w *window) base() WidgetID {
	return w.layers[0].root
}

// layerOf returns the layer record for an id, or nil.
func (w *window) layerOf(id LayerID) *layer {
	for i := range w.layers {
		if w.layers[i].id == id {
			return &w.layers[i]
		}
	}
	return nil
}

// pointer returns the contact record for an id, or nil.
func (w *window) pointer(id PointerID) *pointer {
	for _, p := range w.pointers {
		if p.id == id {
			return p
		}
	}
	return nil
}

func (w *window) removePointer(id PointerID) {
	for i, p := range w.pointers {
		if p.id == id {
			w.pointers = append(w.pointers[:i], w.pointers[i+1:]...)
			return
		}
	}
}

// touch returns the contact record for an id, or nil.
func (w *window) touch(id TouchID) *touch {
	for _, t := range w.touches {
		if t.id == id {
			return t
		}
	}
	return nil
}

func (w *window) removeTouch(id TouchID) {
	for i, t := range w.touches {
		if t.id == id {
			w.touches = append(w.touches[:i], w.touches[i+1:]...)
			return
		}
	}
}

// space returns the layout constraint for the root widget.
func (w *window) space() Space {
	if w.sizing == SizingFitContent {
		return Space{Max: SizeInfinite}
	}
	return FixedSpace(w.size)
}
