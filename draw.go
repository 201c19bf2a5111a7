package alder

// Draw pass and the adaptive recording heuristic. Every frame emits the full
// tree into the canvas; the heuristic decides per widget whether the subtree
// is drawn directly or replayed from a cached recording.

// Recording pays off once a subtree's draw cost beats the cost of blitting
// its recorded pixels. The blit cost scales with area; the divisor calibrates
// it against the primitive weights below. Warm-up keeps churning widgets out
// of the cache, and the asymmetric bias keeps the decision from flapping at
// the break-even point.
const (
	recordWarmup       = 10
	recordCostDivisor  = 400
	recordBiasKeep     = 0.8
	recordBiasStart    = 1.2
	stableDrawsCeiling = 1 << 20
)

// per-primitive draw cost weights
const (
	costShape     = 1
	costRecording = 1
	costClip      = 2
	costText      = 8
	costImage     = 8
	costLayer     = 16
)

// Draw runs the draw pass followed by the draw-over pass for each layer in
// stacking order, then advances the recorder's frame. The canvas receives
// the complete window content; dirty bits only steer the recording
// heuristic.
func (w *World) Draw(id WindowID, canvas Canvas) {
	win := w.windows[id]
	if win == nil {
		return
	}
	win.redrawRequested = false
	for _, l := range win.layers {
		canvas.Transform(Translate(Off(l.position.X, l.position.Y)), func(c Canvas) {
			w.drawWidget(win, c, l.root)
			w.drawOverWidget(win, c, l.root)
		})
	}
	w.recorder.endFrame(w)
}

func (w *World) drawWidget(win *window, canvas Canvas, id WidgetID) {
	e := w.arena.entry(id)
	if e == nil {
		return
	}
	s := e.state
	if s.isStashed {
		return
	}
	canvas.Transform(s.transform, func(c Canvas) {
		if s.clip != nil {
			c.Clip(*s.clip, func(c Canvas) {
				w.drawContent(win, c, e)
			})
		} else {
			w.drawContent(win, c, e)
		}
	})
}

// drawContent draws one widget's subtree in its local space, replaying or
// refreshing its recording as the heuristic dictates.
func (w *World) drawContent(win *window, canvas Canvas, e *entry) {
	s := e.state
	dirty := s.needsDraw
	if dirty {
		s.stableDraws = 0
	} else if s.stableDraws < stableDrawsCeiling {
		s.stableDraws++
	}

	record := w.shouldRecord(win, s)
	if record != s.isRecordingDraw {
		s.isRecordingDraw = record
		w.recorder.remove(s.id)
	}

	if record {
		if !dirty {
			if rec := w.recorder.replay(s.id); rec != nil {
				canvas.DrawRecording(rec)
				return
			}
		}
		rec := canvas.Record(s.size, func(c Canvas) {
			w.drawSubtree(win, c, e)
		})
		if rec != nil {
			w.recorder.insert(s.id, rec, s.drawCost)
			canvas.DrawRecording(rec)
			return
		}
		// platform cannot record; draw directly
	}

	cost := 0.0
	w.drawSubtree(win, &trackedCanvas{inner: canvas, cost: &cost}, e)
	s.drawCost = cost
}

// drawSubtree runs the widget's Draw hook and recurses into children,
// clearing draw dirt on the way.
func (w *World) drawSubtree(win *window, canvas Canvas, e *entry) {
	s := e.state
	s.needsDraw = false
	if e.borrowed {
		debugPanic("draw reached borrowed widget %s %v", s.typeName, s.id)
		return
	}
	cx := &DrawContext{baseContext{world: w, win: win, state: s}}
	e.borrowed = true
	e.widget.Draw(cx, canvas)
	e.borrowed = false
	for _, child := range s.children {
		w.drawWidget(win, canvas, child)
	}
	w.recomputeAggregates(s)
}

// shouldRecord decides whether a widget's subtree is worth caching this
// frame.
func (w *World) shouldRecord(win *window, s *widgetState) bool {
	if !w.settings.Record.Enabled || s.stableDraws < recordWarmup {
		return false
	}
	if !s.size.IsFinite() || s.size.Area() <= 0 {
		return false
	}
	replayCost := s.size.Area() * win.scale * win.scale / recordCostDivisor
	if s.isRecordingDraw {
		replayCost *= recordBiasKeep
	} else {
		replayCost *= recordBiasStart
	}
	return s.drawCost > replayCost
}

// drawOverWidget runs the overlay pass: a second full traversal that is
// never recorded, so focus rings and badges sit above all sibling content.
func (w *World) drawOverWidget(win *window, canvas Canvas, id WidgetID) {
	e := w.arena.entry(id)
	if e == nil {
		return
	}
	s := e.state
	if s.isStashed {
		return
	}
	canvas.Transform(s.transform, func(c Canvas) {
		draw := func(c Canvas) {
			if e.borrowed {
				debugPanic("draw-over reached borrowed widget %s %v", s.typeName, s.id)
				return
			}
			cx := &DrawContext{baseContext{world: w, win: win, state: s}}
			e.borrowed = true
			e.widget.DrawOver(cx, c)
			e.borrowed = false
			for _, child := range s.children {
				w.drawOverWidget(win, c, child)
			}
		}
		if s.clip != nil {
			c.Clip(*s.clip, draw)
		} else {
			draw(c)
		}
	})
}

// --- Cost tracking ---

// trackedCanvas forwards to the real canvas while accruing the draw cost the
// recording heuristic compares against.
type trackedCanvas struct {
	inner Canvas
	cost  *float64
}

func (t *trackedCanvas) wrap(c Canvas) Canvas {
	return &trackedCanvas{inner: c, cost: t.cost}
}

func (t *trackedCanvas) Transform(transform Affine, f func(Canvas)) {
	t.inner.Transform(transform, func(c Canvas) { f(t.wrap(c)) })
}

func (t *trackedCanvas) Layer(f func(Canvas)) {
	*t.cost += costLayer
	t.inner.Layer(func(c Canvas) { f(t.wrap(c)) })
}

func (t *trackedCanvas) Record(size Size, f func(Canvas)) Recording {
	return t.inner.Record(size, f)
}

func (t *trackedCanvas) Clip(clip Clip, f func(Canvas)) {
	*t.cost += costClip
	t.inner.Clip(clip, func(c Canvas) { f(t.wrap(c)) })
}

func (t *trackedCanvas) Fill(paint Paint) {
	*t.cost += costShape
	t.inner.Fill(paint)
}

func (t *trackedCanvas) DrawRect(rect Rect, corners CornerRadius, paint Paint) {
	*t.cost += costShape
	t.inner.DrawRect(rect, corners, paint)
}

func (t *trackedCanvas) DrawBorder(rect Rect, width BorderWidth, corners CornerRadius, paint Paint) {
	*t.cost += costShape
	t.inner.DrawBorder(rect, width, corners, paint)
}

func (t *trackedCanvas) DrawText(p Paragraph, maxWidth float64, offset Offset) {
	*t.cost += costText
	t.inner.DrawText(p, maxWidth, offset)
}

func (t *trackedCanvas) DrawImage(image VectorImage) {
	*t.cost += costImage
	t.inner.DrawImage(image)
}

func (t *trackedCanvas) DrawRecording(recording Recording) {
	*t.cost += costRecording
	t.inner.DrawRecording(recording)
}
