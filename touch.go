package alder

import "time"

// Touch dispatch and gesture recognition. Raw down/move/up events are
// delivered as they arrive; taps, double taps, and pans are recognized on
// top and delivered through the same bubble protocol.

type nowFunc func() time.Time

func stdNow() time.Time { return time.Now() }

// TouchDown registers a contact and delivers it to the widget under it.
func (w *World) TouchDown(windowID WindowID, id TouchID, position Point) {
	win := w.windows[windowID]
	if win == nil || win.touch(id) != nil {
		return
	}
	t := &touch{
		id:              id,
		currentPosition: position,
		startPosition:   position,
		startTime:       w.now(),
	}
	win.touches = append(win.touches, t)

	target := w.windowWidgetAt(win, position)
	capturer, _ := w.dispatchTouch(win, target, position, func(local Point) TouchEvent {
		return TouchDown{Touch: id, Position: local}
	})
	if capturer.Valid() {
		t.capturer = capturer
		w.setActive(win, capturer, true)
	}
}

// TouchMoved updates a contact's position, delivers the raw move, and runs
// the pan recognizer: once the contact drifts past the pan distance it pans
// until it lifts, targeting whatever captured the first pan event.
func (w *World) TouchMoved(windowID WindowID, id TouchID, position Point) {
	win := w.windows[windowID]
	if win == nil {
		return
	}
	t := win.touch(id)
	if t == nil {
		return
	}
	previous := t.currentPosition
	t.currentPosition = position

	w.dispatchTouch(win, w.touchTarget(win, t), position, func(local Point) TouchEvent {
		return TouchMove{Touch: id, Position: local}
	})

	if t.phase != touchPanning {
		if t.distance() <= w.settings.Touch.PanDistance {
			return
		}
		t.phase = touchPanning
		capturer, _ := w.dispatchTouch(win, w.touchTarget(win, t), position, func(local Point) TouchEvent {
			return Pan{
				Touch:    id,
				Start:    t.startPosition,
				Position: local,
				Delta:    position.Sub(previous),
			}
		})
		if capturer.Valid() && !t.capturer.Valid() {
			t.capturer = capturer
			w.setActive(win, capturer, true)
		}
		return
	}

	w.dispatchTouch(win, w.touchTarget(win, t), position, func(local Point) TouchEvent {
		return Pan{
			Touch:    id,
			Start:    t.startPosition,
			Position: local,
			Delta:    position.Sub(previous),
		}
	})
}

// TouchUp recognizes taps and double taps, delivers them ahead of the raw
// lift, and drops the contact. An unhandled lift outside the focused
// widget's bounds clears focus.
func (w *World) TouchUp(windowID WindowID, id TouchID, position Point) {
	win := w.windows[windowID]
	if win == nil {
		return
	}
	t := win.touch(id)
	if t == nil {
		return
	}
	t.currentPosition = position
	now := w.now()
	target := w.touchTarget(win, t)
	handled := false

	tap := t.phase != touchPanning &&
		t.duration(now) <= w.settings.Touch.TapTime.Std() &&
		t.distance() <= w.settings.Touch.TapSlop
	if tap {
		_, h := w.dispatchTouch(win, target, position, func(local Point) TouchEvent {
			return Tap{Touch: id, Position: local}
		})
		handled = handled || h
		if win.lastTapValid &&
			now.Sub(win.lastTapTime) <= w.settings.Touch.DoubleTapTime.Std() &&
			win.lastTapPosition.Distance(position) <= w.settings.Touch.DoubleTapSlop {
			win.lastTapValid = false
			_, h := w.dispatchTouch(win, target, position, func(local Point) TouchEvent {
				return DoubleTap{Touch: id, Position: local}
			})
			handled = handled || h
		} else {
			win.lastTapValid = true
			win.lastTapPosition = position
			win.lastTapTime = now
		}
	}

	_, h := w.dispatchTouch(win, target, position, func(local Point) TouchEvent {
		return TouchUp{Touch: id, Position: local}
	})
	handled = handled || h

	if t.phase != touchPanning && !handled {
		w.clearFocusOutside(win, position)
	}

	if t.capturer.Valid() {
		w.setActive(win, t.capturer, false)
	}
	win.removeTouch(id)
}

// touchTarget is the widget a contact's events go to: the capturer if any,
// otherwise the widget under the contact right now.
func (w *World) touchTarget(win *window, t *touch) WidgetID {
	if t.capturer.Valid() {
		return t.capturer
	}
	return w.windowWidgetAt(win, t.currentPosition)
}

// dispatchTouch mirrors dispatchPointer for the touch protocol.
func (w *World) dispatchTouch(win *window, target WidgetID, position Point, make func(local Point) TouchEvent) (WidgetID, bool) {
	capturer := NoWidget
	handled := false
	var pendingFocus WidgetID
	hasPendingFocus := false

	for cur := target; cur.Valid(); {
		e, err := w.arena.checkout(cur)
		if err != nil {
			if err == ErrBorrowed {
				debugPanic("touch event reached borrowed widget %v", cur)
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
		result := e.widget.TouchEvent(cx, make(local))
		w.arena.release(cur)
		w.mergeUp(cur)
		if cx.hasPendingFocus {
			pendingFocus = cx.pendingFocus
			hasPendingFocus = true
		}
		if result == TouchHandled || result == TouchCapture {
			handled = true
			if result == TouchCapture {
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
