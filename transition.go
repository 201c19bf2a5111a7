package alder

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Curve shapes a transition's progress over time.
type Curve = ease.TweenFunc

// Built-in curves. Any ease.TweenFunc works.
var (
	CurveLinear     Curve = ease.Linear
	CurveEase       Curve = ease.InOutQuad
	CurveEaseIn     Curve = ease.InQuad
	CurveEaseOut    Curve = ease.OutQuad
	CurveElasticIn  Curve = ease.InElastic
	CurveElasticOut Curve = ease.OutElastic
	CurveBackIn     Curve = ease.InBack
	CurveBackOut    Curve = ease.OutBack
)

// Transitioned is a float that eases toward its target, built for the
// Animate protocol: Begin and Animate return whether another frame is
// needed, which the caller turns into a RequestAnimate.
//
//	func (p *Pressable) Update(cx *UpdateContext, update Update) {
//		if _, ok := update.(HoveredChanged); ok {
//			if p.highlight.Begin(p.targetHighlight(cx)) {
//				cx.RequestAnimate()
//			}
//		}
//	}
//
//	func (p *Pressable) Animate(cx *UpdateContext, dt time.Duration) {
//		if p.highlight.Animate(dt) {
//			cx.RequestAnimate()
//		}
//		cx.RequestDraw()
//	}
type Transitioned struct {
	tween    *gween.Tween
	value    float64
	target   float64
	duration time.Duration
	curve    Curve
}

// NewTransitioned returns a settled transition at the given value.
func NewTransitioned(value float64, duration time.Duration, curve Curve) Transitioned {
	if curve == nil {
		curve = CurveLinear
	}
	return Transitioned{value: value, target: value, duration: duration, curve: curve}
}

// Value returns the current value.
func (t *Transitioned) Value() float64 { return t.value }

// Target returns the value the transition is heading toward.
func (t *Transitioned) Target() float64 { return t.target }

// IsComplete reports whether the transition has settled.
func (t *Transitioned) IsComplete() bool { return t.tween == nil }

// Set jumps to a value immediately, cancelling any transition in flight.
func (t *Transitioned) Set(value float64) {
	t.tween = nil
	t.value = value
	t.target = value
}

// Begin starts easing from the current value toward target. Returns true if
// the caller should request animation; false when already there.
func (t *Transitioned) Begin(target float64) bool {
	if target == t.target && t.tween != nil {
		return true
	}
	t.target = target
	if t.value == target || t.duration <= 0 {
		t.Set(target)
		return false
	}
	t.tween = gween.New(float32(t.value), float32(target), float32(t.duration.Seconds()), t.curve)
	return true
}

// Animate advances the transition. Returns true while more frames are
// needed.
func (t *Transitioned) Animate(dt time.Duration) bool {
	if t.tween == nil {
		return false
	}
	current, finished := t.tween.Update(float32(dt.Seconds()))
	t.value = float64(current)
	if finished {
		t.tween = nil
		t.value = t.target
		return false
	}
	return true
}

// TransitionedOffset eases a 2D offset, one Transitioned per axis.
type TransitionedOffset struct {
	x, y Transitioned
}

// NewTransitionedOffset returns a settled transition at the given offset.
func NewTransitionedOffset(value Offset, duration time.Duration, curve Curve) TransitionedOffset {
	return TransitionedOffset{
		x: NewTransitioned(value.X, duration, curve),
		y: NewTransitioned(value.Y, duration, curve),
	}
}

// Value returns the current offset.
func (t *TransitionedOffset) Value() Offset {
	return Off(t.x.Value(), t.y.Value())
}

// Target returns the offset the transition is heading toward.
func (t *TransitionedOffset) Target() Offset {
	return Off(t.x.Target(), t.y.Target())
}

// IsComplete reports whether both axes have settled.
func (t *TransitionedOffset) IsComplete() bool {
	return t.x.IsComplete() && t.y.IsComplete()
}

// Set jumps to an offset immediately.
func (t *TransitionedOffset) Set(value Offset) {
	t.x.Set(value.X)
	t.y.Set(value.Y)
}

// Begin starts easing toward target. Returns true if the caller should
// request animation.
func (t *TransitionedOffset) Begin(target Offset) bool {
	x := t.x.Begin(target.X)
	y := t.y.Begin(target.Y)
	return x || y
}

// Animate advances both axes. Returns true while more frames are needed.
func (t *TransitionedOffset) Animate(dt time.Duration) bool {
	x := t.x.Animate(dt)
	y := t.y.Animate(dt)
	return x || y
}
