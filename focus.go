package alder

// Focus navigation and transfer. Tab order is depth-first tree order over
// the focusable widgets, skipping stashed and disabled subtrees, wrapping at
// the ends.

// collectFocusable appends the window's focusable widgets in tree order.
func (w *World) collectFocusable(id WidgetID, out *[]WidgetID) {
	s := w.arena.state(id)
	if s == nil || s.isStashed {
		return
	}
	if s.acceptsFocus() {
		*out = append(*out, id)
	}
	for _, child := range s.children {
		w.collectFocusable(child, out)
	}
}

// findFocus returns the next focusable widget after (or before) from,
// wrapping around. The order runs through the window's layers bottom to
// top, depth-first within each. With no current focus it returns the first
// (or last) focusable widget. NoWidget when the window has none.
func (w *World) findFocus(win *window, from WidgetID, forward bool) WidgetID {
	var order []WidgetID
	for _, l := range win.layers {
		w.collectFocusable(l.root, &order)
	}
	if len(order) == 0 {
		return NoWidget
	}

	index := -1
	for i, id := range order {
		if id == from {
			index = i
			break
		}
	}
	if index < 0 {
		if forward {
			return order[0]
		}
		return order[len(order)-1]
	}
	if forward {
		return order[(index+1)%len(order)]
	}
	return order[(index-1+len(order))%len(order)]
}

// MoveFocus advances focus through the window's tab order.
func (w *World) MoveFocus(id WindowID, forward bool) {
	win := w.windows[id]
	if win == nil {
		return
	}
	w.transferFocus(win, w.findFocus(win, win.focused, forward))
}

// transferFocus moves focus to a widget (or clears it with NoWidget): the
// old holder is blurred, the new one focused and revealed, and the IME
// session follows text widgets.
func (w *World) transferFocus(win *window, to WidgetID) {
	if to.Valid() {
		s := w.arena.state(to)
		if s == nil || !s.acceptsFocus() {
			return
		}
	}
	old := win.focused
	if old == to {
		return
	}
	win.focused = to

	if old.Valid() {
		if os := w.arena.state(old); os != nil && os.isFocused {
			os.isFocused = false
			// a new target restarts the IME session itself; only a plain
			// blur ends it
			if os.acceptsText() && !to.Valid() {
				w.signals.emit(Ime{Window: win.id, Update: ImeEnd{}})
			}
			w.deliverUpdate(old, FocusedChanged{Focused: false})
			w.recomputeUp(old)
		}
	}

	if to.Valid() {
		ns := w.arena.state(to)
		ns.isFocused = true
		w.deliverUpdate(to, FocusedChanged{Focused: true})
		w.mergeUp(to)
		if ns.acceptsText() {
			w.signals.emit(Ime{Window: win.id, Update: ImeStart{}})
			w.signals.emit(Ime{Window: win.id, Update: ImeArea{
				Rect: ns.globalTransform.ApplyRect(ns.rect()),
			}})
		}
		w.scrollToReveal(to)
	}
	w.requestRedraw(win)
}

// clearFocusOutside clears the window's focus when an unhandled press or
// lift lands outside the focused widget's bounds.
func (w *World) clearFocusOutside(win *window, position Point) {
	if !win.focused.Valid() {
		return
	}
	s := w.arena.state(win.focused)
	if s == nil {
		return
	}
	local := s.globalTransform.Invert().Apply(position)
	if !s.rect().Contains(local) {
		w.transferFocus(win, NoWidget)
	}
}

// scrollToReveal walks the ancestor chain asking each widget to bring the
// focused rect into view, transforming the rect into each ancestor's local
// space along the way.
func (w *World) scrollToReveal(id WidgetID) {
	s := w.arena.state(id)
	if s == nil {
		return
	}
	rect := s.rect()
	for s.parent.Valid() {
		rect = s.transform.ApplyRect(rect)
		parent := s.parent
		s = w.arena.state(parent)
		if s == nil {
			return
		}
		w.deliverUpdate(parent, ScrollTo{Rect: rect})
	}
}
