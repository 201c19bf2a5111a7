package alder

// Pointer dispatch. The shell feeds raw pointer activity through the entry
// points below; events are hit-tested in window coordinates, delivered in
// the target's local space, and bubble toward the root until handled or
// captured.

// PointerEntered registers a pointer contact entering the window.
func (w *World) PointerEntered(windowID WindowID, id PointerID, position Point) {
	win := w.windows[windowID]
	if win == nil || win.pointer(id) != nil {
		return
	}
	p := &pointer{id: id, position: position}
	win.pointers = append(win.pointers, p)
	w.updatePointerHover(win, p)
}

// PointerLeft removes a pointer contact. Any capture it held is released.
func (w *World) PointerLeft(windowID WindowID, id PointerID) {
	win := w.windows[windowID]
	if win == nil {
		return
	}
	p := win.pointer(id)
	if p == nil {
		return
	}
	if p.capturer.Valid() {
		w.setActive(win, p.capturer, false)
		p.capturer = NoWidget
	}
	hovering := p.hovering
	win.removePointer(id)
	if hovering.Valid() {
		w.dropHover(win, hovering)
	}
	w.updateCursor(win)
}

// PointerMoved updates a contact's position, recomputes hover, and delivers
// a move event to the capturer or the hovered widget.
func (w *World) PointerMoved(windowID WindowID, id PointerID, position Point) {
	win := w.windows[windowID]
	if win == nil {
		return
	}
	p := win.pointer(id)
	if p == nil {
		w.PointerEntered(windowID, id, position)
		p = win.pointer(id)
		if p == nil {
			return
		}
	}
	p.position = position
	w.updatePointerHover(win, p)
	w.dispatchPointer(win, p.target(), position, func(local Point) PointerEvent {
		return PointerMove{Pointer: id, Position: local}
	})
}

// PointerButton delivers a press or release at the contact's current
// position. A press may establish capture; the matching release ends it.
// An unhandled primary press outside the focused widget's bounds clears
// focus.
func (w *World) PointerButton(windowID WindowID, id PointerID, button PointerButton, pressed bool) {
	win := w.windows[windowID]
	if win == nil {
		return
	}
	p := win.pointer(id)
	if p == nil {
		return
	}

	if pressed {
		capturer, handled := w.dispatchPointer(win, p.target(), p.position, func(local Point) PointerEvent {
			return PointerDown{Pointer: id, Button: button, Position: local}
		})
		if capturer.Valid() && !p.capturer.Valid() {
			p.capturer = capturer
			p.captureButton = button
			w.setActive(win, capturer, true)
		}
		if button == ButtonPrimary && !handled {
			w.clearFocusOutside(win, p.position)
		}
		return
	}

	w.dispatchPointer(win, p.target(), p.position, func(local Point) PointerEvent {
		return PointerUp{Pointer: id, Button: button, Position: local}
	})
	if p.capturer.Valid() && p.captureButton == button {
		w.setActive(win, p.capturer, false)
		p.capturer = NoWidget
		w.updatePointerHover(win, p)
	}
}

// PointerScrolled delivers a scroll delta at the contact's position.
func (w *World) PointerScrolled(windowID WindowID, id PointerID, delta Offset) {
	win := w.windows[windowID]
	if win == nil {
		return
	}
	p := win.pointer(id)
	if p == nil {
		return
	}
	w.dispatchPointer(win, p.target(), p.position, func(local Point) PointerEvent {
		return PointerScroll{Pointer: id, Position: local, Delta: delta}
	})
}

// --- Hit testing ---

// windowWidgetAt hit-tests a window's layers, topmost first, with the point
// in window coordinates.
func (w *World) windowWidgetAt(win *window, point Point) WidgetID {
	for i := len(win.layers) - 1; i >= 0; i-- {
		l := win.layers[i]
		local := Pt(point.X-l.position.X, point.Y-l.position.Y)
		if hit := w.widgetAt(win, l.root, local); hit.Valid() {
			return hit
		}
	}
	return NoWidget
}

// widgetAt finds the deepest pointer-accepting widget under a point given in
// the widget's parent space. A point outside a widget's bounds or clip
// rejects the whole subtree, so children placed outside their parent are not
// hittable.
func (w *World) widgetAt(win *window, id WidgetID, point Point) WidgetID {
	s := w.arena.state(id)
	if s == nil || s.isStashed {
		return NoWidget
	}
	local := s.transform.Invert().Apply(point)
	if !s.rect().Contains(local) {
		return NoWidget
	}
	if s.clip != nil && !s.clip.Rect.Contains(local) {
		return NoWidget
	}
	for _, child := range s.children {
		if hit := w.widgetAt(win, child, local); hit.Valid() {
			return hit
		}
	}
	if s.acceptsPointer() {
		return id
	}
	return NoWidget
}

// --- Dispatch ---

// dispatchPointer delivers an event to the target and bubbles it toward the
// root. The event is rebuilt in each receiver's local space. Focus moves
// requested by handlers apply once, after the walk completes. Returns the
// widget that asked for capture, if any.
func (w *World) dispatchPointer(win *window, target WidgetID, position Point, make func(local Point) PointerEvent) (WidgetID, bool) {
	capturer := NoWidget
	handled := false
	var pendingFocus WidgetID
	hasPendingFocus := false

	for cur := target; cur.Valid(); {
		e, err := w.arena.checkout(cur)
		if err != nil {
			if err == ErrBorrowed {
				debugPanic("pointer event reached borrowed widget %v", cur)
			}
			break
		}
		s := e.state
		if s.isDisabled {
			w.arena.release(cur)
			cur = s.parent
			continue
		}
		local := s.globalTransform.Invert().Apply(position)
		cx := &EventContext{
			requestContext: requestContext{baseContext{world: w, win: win, state: s}},
			modifiers:      win.modifiers,
		}
		result := e.widget.PointerEvent(cx, make(local))
		w.arena.release(cur)
		w.mergeUp(cur)
		if cx.hasPendingFocus {
			pendingFocus = cx.pendingFocus
			hasPendingFocus = true
		}
		if result == PointerHandled || result == PointerCapture {
			handled = true
			if result == PointerCapture {
				capturer = cur
			}
			break
		}
		cur = s.parent
	}

	if hasPendingFocus {
		w.transferFocus(win, pendingFocus)
	}
	return capturer, handled
}

// --- Hover and cursor ---

// updatePointerHover re-runs the hit test for a contact and moves the
// hovered flag accordingly. A widget stays hovered while any contact rests
// on it. While the contact is captured, hover is pinned to the capturer and
// tracks whether the point is inside its bounds.
func (w *World) updatePointerHover(win *window, p *pointer) {
	if p.capturer.Valid() {
		s := w.arena.state(p.capturer)
		if s == nil {
			return
		}
		local := s.globalTransform.Invert().Apply(p.position)
		inside := s.rect().Contains(local)
		if inside != s.isHovered {
			s.isHovered = inside
			w.deliverUpdate(p.capturer, HoveredChanged{Hovered: inside})
			if inside {
				w.mergeUp(p.capturer)
			} else {
				w.recomputeUp(p.capturer)
			}
			w.requestRedraw(win)
		}
		return
	}

	hit := w.windowWidgetAt(win, p.position)
	if hit == p.hovering {
		return
	}
	old := p.hovering
	p.hovering = hit

	if old.Valid() {
		w.dropHover(win, old)
	}
	if hit.Valid() {
		hs := w.arena.state(hit)
		if hs != nil && !hs.isHovered {
			hs.isHovered = true
			w.deliverUpdate(hit, HoveredChanged{Hovered: true})
			w.mergeUp(hit)
		}
	}
	w.updateCursor(win)
	w.requestRedraw(win)
}

// dropHover clears a widget's hovered flag unless another contact still
// rests on it.
func (w *World) dropHover(win *window, id WidgetID) {
	for _, other := range win.pointers {
		if other.hovering == id {
			return
		}
	}
	s := w.arena.state(id)
	if s == nil || !s.isHovered {
		return
	}
	s.isHovered = false
	w.deliverUpdate(id, HoveredChanged{Hovered: false})
	w.recomputeUp(id)
}

// updateCursor resolves the window cursor from the hovered widget's chain
// and tells the shell when it changes.
func (w *World) updateCursor(win *window) {
	cursor := CursorDefault
	for _, p := range win.pointers {
		for id := p.hovering; id.Valid(); {
			s := w.arena.state(id)
			if s == nil {
				break
			}
			if s.cursor != CursorDefault {
				cursor = s.cursor
				break
			}
			id = s.parent
		}
		if cursor != CursorDefault {
			break
		}
	}
	if cursor == win.cursor {
		return
	}
	win.cursor = cursor
	w.signals.emit(UpdateWindow{Window: win.id, Update: SetCursor{Cursor: cursor}})
}

// setActive flips a widget's active flag, notifying it and fixing the
// aggregates.
func (w *World) setActive(win *window, id WidgetID, active bool) {
	s := w.arena.state(id)
	if s == nil || s.isActive == active {
		return
	}
	s.isActive = active
	w.deliverUpdate(id, ActiveChanged{Active: active})
	if active {
		w.mergeUp(id)
	} else {
		w.recomputeUp(id)
	}
	w.requestRedraw(win)
}
