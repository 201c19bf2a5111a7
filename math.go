package alder

import "math"

// --- Point / Offset ---

// Point is a position in some coordinate space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the point moved by an offset.
func (p Point) Add(o Offset) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the offset from q to p.
func (p Point) Sub(q Point) Offset {
	return Offset{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Offset is a displacement between two points.
type Offset struct {
	X, Y float64
}

// Off is shorthand for Offset{x, y}.
func Off(x, y float64) Offset {
	return Offset{X: x, Y: y}
}

// Add returns the sum of two offsets.
func (o Offset) Add(p Offset) Offset {
	return Offset{X: o.X + p.X, Y: o.Y + p.Y}
}

// Length returns the magnitude of the offset.
func (o Offset) Length() float64 {
	return math.Sqrt(o.X*o.X + o.Y*o.Y)
}

// pixelAlign rounds the offset to the device pixel grid for the given scale.
func (o Offset) pixelAlign(scale float64) Offset {
	return Offset{
		X: math.Round(o.X*scale) / scale,
		Y: math.Round(o.Y*scale) / scale,
	}
}

// --- Size ---

// Size is a width and height in logical pixels.
type Size struct {
	Width, Height float64
}

// Sz is shorthand for Size{w, h}.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// SizeInfinite is the unbounded size, used for fit-content constraints.
var SizeInfinite = Size{Width: math.Inf(1), Height: math.Inf(1)}

// Area returns width times height.
func (s Size) Area() float64 {
	return s.Width * s.Height
}

// IsFinite reports whether both dimensions are finite numbers.
func (s Size) IsFinite() bool {
	return !math.IsInf(s.Width, 0) && !math.IsInf(s.Height, 0) &&
		!math.IsNaN(s.Width) && !math.IsNaN(s.Height)
}

// Min returns the component-wise minimum of two sizes.
func (s Size) Min(o Size) Size {
	return Size{Width: math.Min(s.Width, o.Width), Height: math.Min(s.Height, o.Height)}
}

// Max returns the component-wise maximum of two sizes.
func (s Size) Max(o Size) Size {
	return Size{Width: math.Max(s.Width, o.Width), Height: math.Max(s.Height, o.Height)}
}

// pixelAlign rounds each dimension up to the device pixel grid.
func (s Size) pixelAlign(scale float64) Size {
	return Size{
		Width:  math.Ceil(s.Width*scale) / scale,
		Height: math.Ceil(s.Height*scale) / scale,
	}
}

// --- Rect ---

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min, Max Point
}

// RectMinSize constructs a rectangle from its top-left corner and size.
func RectMinSize(min Point, size Size) Rect {
	return Rect{
		Min: min,
		Max: Point{X: min.X + size.Width, Y: min.Y + size.Height},
	}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Max.X - r.Min.X, Height: r.Max.Y - r.Min.Y}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// --- Space ---

// Space is the layout constraint handed to a widget: the smallest and largest
// sizes the widget may return from Layout.
type Space struct {
	Min, Max Size
}

// FixedSpace is a constraint that admits exactly one size.
func FixedSpace(size Size) Space {
	return Space{Min: size, Max: size}
}

// Fit clamps a size into the space.
func (s Space) Fit(size Size) Size {
	return size.Max(s.Min).Min(s.Max)
}

// Contains reports whether the size satisfies the constraint.
func (s Space) Contains(size Size) bool {
	return size.Width >= s.Min.Width && size.Width <= s.Max.Width &&
		size.Height >= s.Min.Height && size.Height <= s.Max.Height
}

// --- Affine ---

// Affine is a 2D affine transform.
//
//	Matrix layout:
//	| A  C  Tx |
//	| B  D  Ty |
//	| 0  0   1 |
type Affine struct {
	A, B, C, D float64
	Tx, Ty     float64
}

// AffineIdentity is the identity transform.
var AffineIdentity = Affine{A: 1, D: 1}

// Translate returns a pure translation transform.
func Translate(offset Offset) Affine {
	return Affine{A: 1, D: 1, Tx: offset.X, Ty: offset.Y}
}

// Scale returns a pure scale transform.
func Scale(sx, sy float64) Affine {
	return Affine{A: sx, D: sy}
}

// Rotate returns a rotation transform, angle in radians.
func Rotate(angle float64) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{A: cos, B: sin, C: -sin, D: cos}
}

// Mul composes two transforms: applying the result is equivalent to applying
// o first and then a.
func (a Affine) Mul(o Affine) Affine {
	return Affine{
		A:  a.A*o.A + a.C*o.B,
		B:  a.B*o.A + a.D*o.B,
		C:  a.A*o.C + a.C*o.D,
		D:  a.B*o.C + a.D*o.D,
		Tx: a.A*o.Tx + a.C*o.Ty + a.Tx,
		Ty: a.B*o.Tx + a.D*o.Ty + a.Ty,
	}
}

// Invert returns the inverse transform, or the identity if the matrix is
// singular.
func (a Affine) Invert() Affine {
	det := a.A*a.D - a.C*a.B
	if det > -1e-12 && det < 1e-12 {
		return AffineIdentity
	}
	invDet := 1.0 / det
	ia := a.D * invDet
	ib := -a.B * invDet
	ic := -a.C * invDet
	id := a.A * invDet
	return Affine{
		A: ia, B: ib, C: ic, D: id,
		Tx: -(ia*a.Tx + ic*a.Ty),
		Ty: -(ib*a.Tx + id*a.Ty),
	}
}

// Apply transforms a point.
func (a Affine) Apply(p Point) Point {
	return Point{
		X: a.A*p.X + a.C*p.Y + a.Tx,
		Y: a.B*p.X + a.D*p.Y + a.Ty,
	}
}

// ApplyRect returns the axis-aligned bounding box of the transformed
// rectangle.
func (a Affine) ApplyRect(r Rect) Rect {
	p0 := a.Apply(r.Min)
	p1 := a.Apply(Point{X: r.Max.X, Y: r.Min.Y})
	p2 := a.Apply(Point{X: r.Min.X, Y: r.Max.Y})
	p3 := a.Apply(r.Max)
	return Rect{
		Min: Point{
			X: math.Min(math.Min(p0.X, p1.X), math.Min(p2.X, p3.X)),
			Y: math.Min(math.Min(p0.Y, p1.Y), math.Min(p2.Y, p3.Y)),
		},
		Max: Point{
			X: math.Max(math.Max(p0.X, p1.X), math.Max(p2.X, p3.X)),
			Y: math.Max(math.Max(p0.Y, p1.Y), math.Max(p2.Y, p3.Y)),
		},
	}
}

// Offset returns the translation component.
func (a Affine) Offset() Offset {
	return Offset{X: a.Tx, Y: a.Ty}
}

// WithOffset returns the transform with its translation replaced.
func (a Affine) WithOffset(o Offset) Affine {
	a.Tx = o.X
	a.Ty = o.Y
	return a
}
