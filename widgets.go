package alder

import "time"

// A small set of concrete widgets. They exercise every part of the pipeline
// and serve as templates for real toolkit widgets built on top.

// --- Pane ---

// Pane is a colored rectangle that wraps its first child with padding. With
// no child it fills the space it is given.
type Pane struct {
	BaseWidget
	Color   Color
	Corners CornerRadius
	Padding float64
}

func (p *Pane) Layout(cx *LayoutContext, space Space) Size {
	children := cx.Children()
	if len(children) == 0 {
		return space.Min
	}
	inset := Space{
		Min: Sz(0, 0),
		Max: Sz(space.Max.Width-2*p.Padding, space.Max.Height-2*p.Padding).Max(Sz(0, 0)),
	}
	child, err := cx.LayoutChild(children[0], inset)
	if err != nil {
		return space.Min
	}
	cx.PlaceChild(children[0], Off(p.Padding, p.Padding))
	return Sz(child.Width+2*p.Padding, child.Height+2*p.Padding)
}

func (p *Pane) Draw(cx *DrawContext, canvas Canvas) {
	canvas.DrawRect(RectMinSize(Point{}, cx.Size()), p.Corners, Solid(p.Color))
}

// --- Label ---

// Label draws a single paragraph sized to its text.
type Label struct {
	BaseWidget
	Text     string
	FontSize float64
	Family   string
	Color    Color
	Align    TextAlign
}

func (l *Label) paragraph() Paragraph {
	return Paragraph{
		Text:     l.Text,
		FontSize: l.FontSize,
		Family:   l.Family,
		Color:    l.Color,
		Align:    l.Align,
	}
}

func (l *Label) Layout(cx *LayoutContext, space Space) Size {
	return space.Fit(cx.MeasureText(l.paragraph(), space.Max.Width))
}

func (l *Label) Draw(cx *DrawContext, canvas Canvas) {
	canvas.DrawText(l.paragraph(), cx.Size().Width, Off(0, 0))
}

// --- Pressable ---

// Pressable is a button-like widget: it hovers, presses, focuses, and fires
// OnPress on click or tap. The background eases between its idle, hover, and
// pressed colors.
type Pressable struct {
	BaseWidget
	Color        Color
	HoverColor   Color
	PressedColor Color
	Corners      CornerRadius
	Padding      float64
	OnPress      func()

	highlight Transitioned
	armed     bool
}

// NewPressable returns a Pressable with the highlight transition wired up.
func NewPressable(color, hover, pressed Color, onPress func()) *Pressable {
	return &Pressable{
		Color:        color,
		HoverColor:   hover,
		PressedColor: pressed,
		Padding:      8,
		OnPress:      onPress,
		highlight:    NewTransitioned(0, 150*time.Millisecond, CurveEaseOut),
	}
}

func (p *Pressable) Capabilities() Capabilities {
	return AcceptsPointer | AcceptsFocus
}

func (p *Pressable) Layout(cx *LayoutContext, space Space) Size {
	cx.SetCursor(CursorPointer)
	children := cx.Children()
	if len(children) == 0 {
		return space.Fit(Sz(2*p.Padding, 2*p.Padding))
	}
	inset := Space{
		Min: Sz(0, 0),
		Max: Sz(space.Max.Width-2*p.Padding, space.Max.Height-2*p.Padding).Max(Sz(0, 0)),
	}
	child, err := cx.LayoutChild(children[0], inset)
	if err != nil {
		return space.Min
	}
	cx.PlaceChild(children[0], Off(p.Padding, p.Padding))
	return Sz(child.Width+2*p.Padding, child.Height+2*p.Padding)
}

func (p *Pressable) background(cx *DrawContext) Color {
	base := p.Color
	toward := p.HoverColor
	if cx.IsActive() {
		toward = p.PressedColor
	}
	t := p.highlight.Value()
	return Color{
		R: base.R + (toward.R-base.R)*t,
		G: base.G + (toward.G-base.G)*t,
		B: base.B + (toward.B-base.B)*t,
		A: base.A + (toward.A-base.A)*t,
	}
}

func (p *Pressable) Draw(cx *DrawContext, canvas Canvas) {
	canvas.DrawRect(RectMinSize(Point{}, cx.Size()), p.Corners, Solid(p.background(cx)))
}

func (p *Pressable) DrawOver(cx *DrawContext, canvas Canvas) {
	if !cx.IsFocused() {
		return
	}
	canvas.DrawBorder(RectMinSize(Point{}, cx.Size()), Edges(2), p.Corners,
		Solid(RGBA(0.3, 0.5, 1, 0.9)))
}

func (p *Pressable) Update(cx *UpdateContext, update Update) {
	switch update.(type) {
	case HoveredChanged, ActiveChanged:
		target := 0.0
		if cx.IsHovered() || cx.IsActive() {
			target = 1
		}
		if p.highlight.Begin(target) {
			cx.RequestAnimate()
		}
		cx.RequestDraw()
	case FocusedChanged:
		cx.RequestDraw()
	}
}

func (p *Pressable) Animate(cx *UpdateContext, dt time.Duration) {
	if p.highlight.Animate(dt) {
		cx.RequestAnimate()
	}
	cx.RequestDraw()
}

func (p *Pressable) PointerEvent(cx *EventContext, event PointerEvent) PointerPropagate {
	switch ev := event.(type) {
	case PointerDown:
		if ev.Button != ButtonPrimary {
			return PointerBubble
		}
		p.armed = true
		cx.SetFocused(true)
		return PointerCapture
	case PointerUp:
		if ev.Button != ButtonPrimary || !p.armed {
			return PointerBubble
		}
		p.armed = false
		inside := RectMinSize(Point{}, cx.Size()).Contains(ev.Position)
		if inside && p.OnPress != nil {
			p.OnPress()
		}
		return PointerHandled
	}
	return PointerBubble
}

func (p *Pressable) TouchEvent(cx *EventContext, event TouchEvent) TouchPropagate {
	switch event.(type) {
	case TouchDown:
		return TouchCapture
	case Tap:
		cx.SetFocused(true)
		if p.OnPress != nil {
			p.OnPress()
		}
		return TouchHandled
	}
	return TouchBubble
}

// --- Column ---

// Column stacks its children vertically with a gap between them.
type Column struct {
	BaseWidget
	Gap float64
}

func (c *Column) Layout(cx *LayoutContext, space Space) Size {
	width := 0.0
	y := 0.0
	for i, child := range cx.Children() {
		if i > 0 {
			y += c.Gap
		}
		size, err := cx.LayoutChild(child, Space{
			Min: Sz(0, 0),
			Max: Sz(space.Max.Width, space.Max.Height-y).Max(Sz(0, 0)),
		})
		if err != nil {
			continue
		}
		cx.PlaceChild(child, Off(0, y))
		y += size.Height
		if size.Width > width {
			width = size.Width
		}
	}
	return space.Fit(Sz(width, y))
}
