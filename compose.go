package alder

// Compose runs the compose pass for a window: every widget's global
// transform becomes its parent's global times its local transform, with the
// translation snapped to the device pixel grid for pixel-aligned widgets.
// Subtrees whose global did not change and carry no compose dirt are
// skipped.
func (w *World) Compose(id WindowID) {
	win := w.windows[id]
	if win == nil {
		return
	}
	for _, l := range win.layers {
		w.composeWidget(win, l.root, Translate(Off(l.position.X, l.position.Y)), false)
	}
}

func (w *World) composeWidget(win *window, id WidgetID, parentGlobal Affine, force bool) {
	e := w.arena.entry(id)
	if e == nil {
		return
	}
	s := e.state
	if s.isStashed {
		return
	}
	if !force && !s.needsCompose {
		return
	}

	global := parentGlobal.Mul(s.transform)
	if s.pixelPerfect && w.settings.Render.PixelAlign {
		global = global.WithOffset(global.Offset().pixelAlign(win.scale))
	}
	// a changed global does not raise draw dirt: recordings live in local
	// space and replay fine under the new transform
	changed := global != s.globalTransform
	if changed {
		s.globalTransform = global
	}

	if s.needsCompose {
		s.needsCompose = false
		if e.borrowed {
			debugPanic("compose reached borrowed widget %s %v", s.typeName, id)
		} else {
			cx := &ComposeContext{requestContext{baseContext{world: w, win: win, state: s}}}
			e.borrowed = true
			e.widget.Compose(cx)
			e.borrowed = false
		}
	}

	for _, child := range s.children {
		w.composeWidget(win, child, global, changed)
	}
	w.recomputeAggregates(s)
}
