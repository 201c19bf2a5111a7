package alder

// Layout runs the layout pass for a window. The base layer's root is laid
// out under the window's constraint, floating layers under a loose one;
// everything below happens through LayoutContext calls from widget hooks.
// Clean subtrees that see the same constraint as last frame are skipped.
//
// The painter provides text measurement for the whole pass and may be nil in
// a text-free tree.
func (w *World) Layout(id WindowID, painter TextPainter) {
	win := w.windows[id]
	if win == nil {
		return
	}
	size := w.layoutWidget(win, painter, win.base(), win.space())
	if win.sizing == SizingFitContent && size != win.size {
		win.size = size
		w.signals.emit(UpdateWindow{Window: win.id, Update: SetSize{Size: size}})
	}
	for _, l := range win.layers[1:] {
		w.layoutWidget(win, painter, l.root, Space{Max: SizeInfinite})
	}
}

func (w *World) layoutWidget(win *window, painter TextPainter, id WidgetID, space Space) Size {
	e := w.arena.entry(id)
	if e == nil {
		debugPanic("layout reached non-existent widget %v", id)
		return Size{}
	}
	s := e.state
	if s.hasLaidOut && s.previousSpace == space && !s.needsLayout {
		return s.size
	}
	if e.borrowed {
		debugPanic("layout reached borrowed widget %s %v", s.typeName, id)
		return s.size
	}

	// clear before the hook so a request from inside re-arms the widget
	s.needsLayout = false

	cx := &LayoutContext{
		requestContext: requestContext{baseContext{world: w, win: win, state: s}},
		painter:        painter,
	}
	e.borrowed = true
	size := e.widget.Layout(cx, space)
	e.borrowed = false

	if !size.IsFinite() {
		warnf("%s %v returned non-finite size %gx%g from layout",
			s.typeName, id, size.Width, size.Height)
		size = space.Min
	}
	size = space.Fit(size)
	if s.pixelPerfect && w.settings.Render.PixelAlign {
		size = size.pixelAlign(win.scale)
	}

	if size != s.size {
		s.size = size
		s.needsDraw = true
		s.needsCompose = true
	}
	s.previousSpace = space
	s.hasLaidOut = true
	w.recomputeAggregates(s)
	return s.size
}
