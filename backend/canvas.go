// Package backend is the Ebitengine platform adapter: a Canvas that draws
// into an *ebiten.Image, a TextPainter over text/v2, input translation, and
// a game loop that drives the frame passes.
package backend

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/alderui/alder"
)

// Canvas draws engine commands into an ebiten image. Coordinates coming in
// are logical; the canvas multiplies the window scale in.
type Canvas struct {
	target    *ebiten.Image
	painter   *TextPainter
	transform alder.Affine // logical -> device
	scale     float64
}

// NewCanvas wraps a render target. The painter may be nil for text-free
// trees.
func NewCanvas(target *ebiten.Image, painter *TextPainter, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	return &Canvas{
		target:    target,
		painter:   painter,
		transform: alder.Scale(scale, scale),
		scale:     scale,
	}
}

func (c *Canvas) derive(target *ebiten.Image, transform alder.Affine) *Canvas {
	return &Canvas{target: target, painter: c.painter, transform: transform, scale: c.scale}
}

// Transform implements alder.Canvas.
func (c *Canvas) Transform(transform alder.Affine, f func(alder.Canvas)) {
	f(c.derive(c.target, c.transform.Mul(transform)))
}

// Layer implements alder.Canvas: content is drawn into an offscreen image
// and blended onto the target once.
func (c *Canvas) Layer(f func(alder.Canvas)) {
	bounds := c.target.Bounds()
	if bounds.Empty() {
		return
	}
	layer := ebiten.NewImage(bounds.Dx(), bounds.Dy())
	offset := alder.Translate(alder.Off(-float64(bounds.Min.X), -float64(bounds.Min.Y)))
	f(c.derive(layer, offset.Mul(c.transform)))

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(bounds.Min.X), float64(bounds.Min.Y))
	c.target.DrawImage(layer, &op)
}

// Record implements alder.Canvas: the content is rendered once into an
// offscreen image sized to the device-pixel footprint.
func (c *Canvas) Record(size alder.Size, f func(alder.Canvas)) alder.Recording {
	w := int(math.Ceil(size.Width * c.scale))
	h := int(math.Ceil(size.Height * c.scale))
	if w <= 0 || h <= 0 || !size.IsFinite() {
		return nil
	}
	img := ebiten.NewImage(w, h)
	f(c.derive(img, alder.Scale(c.scale, c.scale)))
	return &imageRecording{image: img, size: size}
}

// Clip implements alder.Canvas. Ebiten clips through sub-images, so the clip
// rect is resolved to the device-pixel bounding box of the transformed
// region; corner radii only affect what widgets draw, not the hard clip.
func (c *Canvas) Clip(clip alder.Clip, f func(alder.Canvas)) {
	device := c.transform.ApplyRect(clip.Rect)
	rect := image.Rect(
		int(math.Floor(device.Min.X)), int(math.Floor(device.Min.Y)),
		int(math.Ceil(device.Max.X)), int(math.Ceil(device.Max.Y)),
	).Intersect(c.target.Bounds())
	if rect.Empty() {
		return
	}
	sub := c.target.SubImage(rect).(*ebiten.Image)
	f(c.derive(sub, c.transform))
}

// Fill implements alder.Canvas.
func (c *Canvas) Fill(paint alder.Paint) {
	c.target.Fill(toColor(paint.Color))
}

// DrawRect implements alder.Canvas.
//
// TODO: build a vector.Path with arc corners so nonzero radii render
// rounded instead of square.
func (c *Canvas) DrawRect(rect alder.Rect, corners alder.CornerRadius, paint alder.Paint) {
	device := c.transform.ApplyRect(rect)
	size := device.Size()
	vector.FillRect(c.target,
		float32(device.Min.X), float32(device.Min.Y),
		float32(size.Width), float32(size.Height),
		toColor(paint.Color), true)
}

// DrawBorder implements alder.Canvas. Stroked at the widest edge width;
// per-edge widths collapse to their maximum.
func (c *Canvas) DrawBorder(rect alder.Rect, width alder.BorderWidth, corners alder.CornerRadius, paint alder.Paint) {
	device := c.transform.ApplyRect(rect)
	size := device.Size()
	stroke := math.Max(math.Max(width.Top, width.Bottom), math.Max(width.Left, width.Right)) * c.scale
	if stroke <= 0 {
		return
	}
	vector.StrokeRect(c.target,
		float32(device.Min.X+stroke/2), float32(device.Min.Y+stroke/2),
		float32(size.Width-stroke), float32(size.Height-stroke),
		float32(stroke), toColor(paint.Color), true)
}

// DrawText implements alder.Canvas.
func (c *Canvas) DrawText(p alder.Paragraph, maxWidth float64, offset alder.Offset) {
	if c.painter == nil || p.Text == "" {
		return
	}
	face := c.painter.face(p)
	op := &text.DrawOptions{}
	op.GeoM.Scale(c.transform.A, c.transform.D)
	origin := c.transform.Apply(alder.Pt(offset.X, offset.Y))
	op.GeoM.Translate(origin.X, origin.Y)
	op.ColorScale.ScaleWithColor(toColor(p.Color))
	op.LineSpacing = face.Size * lineSpacingFactor
	switch p.Align {
	case alder.AlignCenter:
		op.PrimaryAlign = text.AlignCenter
		op.GeoM.Translate(maxWidth*c.transform.A/2, 0)
	case alder.AlignEnd:
		op.PrimaryAlign = text.AlignEnd
		op.GeoM.Translate(maxWidth*c.transform.A, 0)
	}
	text.Draw(c.target, p.Text, face, op)
}

// DrawImage implements alder.Canvas. Only images produced by this backend
// draw; foreign implementations are ignored.
func (c *Canvas) DrawImage(img alder.VectorImage) {
	bi, ok := img.(*Image)
	if !ok {
		return
	}
	var op ebiten.DrawImageOptions
	src := bi.image.Bounds().Size()
	if src.X > 0 && src.Y > 0 {
		op.GeoM.Scale(
			bi.size.Width/float64(src.X),
			bi.size.Height/float64(src.Y),
		)
	}
	op.GeoM.Concat(geoM(c.transform))
	c.target.DrawImage(bi.image, &op)
}

// DrawRecording implements alder.Canvas.
func (c *Canvas) DrawRecording(recording alder.Recording) {
	rec, ok := recording.(*imageRecording)
	if !ok {
		return
	}
	var op ebiten.DrawImageOptions
	// the recording already holds device pixels; undo the canvas scale
	op.GeoM.Scale(1/c.scale, 1/c.scale)
	op.GeoM.Concat(geoM(c.transform))
	c.target.DrawImage(rec.image, &op)
}

// imageRecording is a cached subtree rendering.
type imageRecording struct {
	image *ebiten.Image
	size  alder.Size
}

func (r *imageRecording) Size() alder.Size { return r.size }

func (r *imageRecording) Memory() uint64 {
	bounds := r.image.Bounds()
	return uint64(bounds.Dx()) * uint64(bounds.Dy()) * 4
}

// Image adapts an ebiten image to alder.VectorImage with an intrinsic
// logical size.
type Image struct {
	image *ebiten.Image
	size  alder.Size
}

// NewImage wraps an ebiten image for use with Canvas.DrawImage.
func NewImage(img *ebiten.Image, size alder.Size) *Image {
	return &Image{image: img, size: size}
}

func (i *Image) Size() alder.Size { return i.size }

func toColor(c alder.Color) color.RGBA {
	clamp := func(v float64) uint8 {
		return uint8(math.Round(math.Min(math.Max(v, 0), 1) * 255))
	}
	return color.RGBA{
		R: clamp(c.R * c.A),
		G: clamp(c.G * c.A),
		B: clamp(c.B * c.A),
		A: clamp(c.A),
	}
}

func geoM(a alder.Affine) ebiten.GeoM {
	var m ebiten.GeoM
	m.SetElement(0, 0, a.A)
	m.SetElement(0, 1, a.C)
	m.SetElement(0, 2, a.Tx)
	m.SetElement(1, 0, a.B)
	m.SetElement(1, 1, a.D)
	m.SetElement(1, 2, a.Ty)
	return m
}
