package alder

// --- Paint ---

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns a color with explicit alpha.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// BlendMode selects how a paint combines with the destination.
type BlendMode uint8

const (
	BlendSrcOver BlendMode = iota
	BlendSrc
	BlendClear
)

// Paint describes how geometry is filled.
type Paint struct {
	Color Color
	Blend BlendMode
}

// Solid returns a source-over paint with the given color.
func Solid(color Color) Paint {
	return Paint{Color: color}
}

// CornerRadius holds per-corner rounding radii.
type CornerRadius struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// Corners returns a CornerRadius with the same radius on all corners.
func Corners(radius float64) CornerRadius {
	return CornerRadius{
		TopLeft: radius, TopRight: radius,
		BottomRight: radius, BottomLeft: radius,
	}
}

// BorderWidth holds per-edge border thickness.
type BorderWidth struct {
	Top, Right, Bottom, Left float64
}

// Edges returns a BorderWidth with the same thickness on all edges.
func Edges(width float64) BorderWidth {
	return BorderWidth{Top: width, Right: width, Bottom: width, Left: width}
}

// Clip is a rounded-rectangle clip region in local coordinates.
type Clip struct {
	Rect   Rect
	Radius CornerRadius
}

// --- Text and images ---

// TextAlign selects horizontal paragraph alignment.
type TextAlign uint8

const (
	AlignStart TextAlign = iota
	AlignCenter
	AlignEnd
)

// Paragraph is a run of styled text. Shaping and rendering are external; the
// core only carries the description and asks a TextPainter for metrics.
type Paragraph struct {
	Text     string
	FontSize float64
	Family   string
	Color    Color
	Align    TextAlign
}

// VectorImage is a resolution-independent image supplied by the platform.
// The core only needs its intrinsic size for layout.
type VectorImage interface {
	Size() Size
}

// TextPainter is the measurement capability supplied to every layout call.
// Implementations wrap a shaping engine; the reference backend uses
// Ebitengine's text/v2.
type TextPainter interface {
	// MeasureText returns the laid-out size of the paragraph when wrapped at
	// maxWidth logical pixels. maxWidth may be infinite.
	MeasureText(p Paragraph, maxWidth float64) Size
}

// --- Recording ---

// Recording is a cached, replayable rendering of a subtree's draw output.
// Concrete recordings are produced by the platform canvas; the core only
// tracks their size and memory footprint for the Recorder's budget.
type Recording interface {
	// Size is the recorded region in logical pixels.
	Size() Size

	// Memory is the estimated footprint in bytes, usually width*height*4 in
	// device pixels.
	Memory() uint64
}

// --- Canvas ---

// Canvas is the command sink draw passes emit into. The concrete
// implementation is platform-supplied; scoped operations (Transform, Layer,
// Clip, Record) invoke the callback with a canvas that has the state applied.
type Canvas interface {
	// Transform draws f with the transform prepended.
	Transform(transform Affine, f func(Canvas))

	// Layer draws f into a compositing layer that is then blended once.
	Layer(f func(Canvas))

	// Record captures f's output into a replayable recording of the given
	// size. Returns nil if the platform cannot record (the caller then draws
	// directly).
	Record(size Size, f func(Canvas)) Recording

	// Clip restricts f's output to the clip region.
	Clip(clip Clip, f func(Canvas))

	// Fill floods the current clip with the paint.
	Fill(paint Paint)

	// DrawRect fills a rounded rectangle.
	DrawRect(rect Rect, corners CornerRadius, paint Paint)

	// DrawBorder strokes the inside edge of a rounded rectangle.
	DrawBorder(rect Rect, width BorderWidth, corners CornerRadius, paint Paint)

	// DrawText draws a paragraph wrapped at maxWidth with its top-left at
	// offset.
	DrawText(p Paragraph, maxWidth float64, offset Offset)

	// DrawImage draws a vector image at its intrinsic size.
	DrawImage(image VectorImage)

	// DrawRecording replays a recording produced by Record.
	DrawRecording(recording Recording)
}

// CursorIcon names the pointer cursor a widget wants while hovered.
type CursorIcon uint8

const (
	CursorDefault CursorIcon = iota
	CursorPointer
	CursorText
	CursorMove
	CursorGrab
	CursorGrabbing
	CursorNotAllowed
)
