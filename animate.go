package alder

import "time"

// Animate runs the animate pass for a window. Descent is gated by the
// aggregated needs-animate bit; each visited widget's bit is cleared before
// its hook runs, so an animation keeps itself alive by requesting again.
func (w *World) Animate(id WindowID, now time.Time) {
	win := w.windows[id]
	if win == nil {
		return
	}
	win.animateRequested = false
	var dt time.Duration
	if !win.lastAnimate.IsZero() {
		dt = now.Sub(win.lastAnimate)
	}
	win.lastAnimate = now
	for _, l := range win.layers {
		w.animateWidget(win, l.root, dt)
	}
}

func (w *World) animateWidget(win *window, id WidgetID, dt time.Duration) {
	e := w.arena.entry(id)
	if e == nil {
		return
	}
	s := e.state
	if s.isStashed || !s.needsAnimate {
		return
	}
	s.needsAnimate = false
	if e.borrowed {
		debugPanic("animate reached borrowed widget %s %v", s.typeName, id)
		return
	}
	cx := &UpdateContext{requestContext{baseContext{world: w, win: win, state: s}}}
	e.borrowed = true
	e.widget.Animate(cx, dt)
	e.borrowed = false
	for _, child := range s.children {
		w.animateWidget(win, child, dt)
	}
	w.recomputeAggregates(s)
}
