package alder

// Flag propagation. Aggregates (has-hovered, has-active, has-focused and the
// needs bits) flow up toward the root; stash and disable flow down. After a
// merge-up an ancestor's needs bit covers its whole subtree, so passes can
// skip clean subtrees with one check.

// mergeUp ORs a widget's aggregates into every ancestor.
func (w *World) mergeUp(id WidgetID) {
	if s := w.arena.state(id); s != nil {
		w.mergeUpFrom(s)
	}
}

func (w *World) mergeUpFrom(s *widgetState) {
	for s.parent.Valid() {
		p := w.arena.state(s.parent)
		if p == nil {
			debugPanic("widget %v has dangling parent %v", s.id, s.parent)
			return
		}
		p.merge(s)
		s = p
	}
}

// recomputeUp rebuilds the aggregates of a widget and every ancestor from
// their children. Unlike mergeUp this can clear has-flags, so it runs after
// anything that unsets hover, active, or focus.
func (w *World) recomputeUp(id WidgetID) {
	for id.Valid() {
		s := w.arena.state(id)
		if s == nil {
			return
		}
		w.recomputeAggregates(s)
		id = s.parent
	}
}

// recomputeAggregates rebuilds one widget's aggregates from its children.
// Passes call this on unwind, after the hook and the children have run.
func (w *World) recomputeAggregates(s *widgetState) {
	s.reset()
	for _, child := range s.children {
		if cs := w.arena.state(child); cs != nil {
			s.merge(cs)
		}
	}
}

// --- Stash / disable push-down ---

// setStashed flips a widget's own stash flag and pushes the effective value
// down. Subtrees whose effective value does not change are not entered.
func (w *World) setStashed(id WidgetID, stashed bool) {
	s := w.arena.state(id)
	if s == nil || s.stashedSelf == stashed {
		return
	}
	s.stashedSelf = stashed
	if stashed {
		if win := w.windows[s.window]; win != nil {
			w.releaseInputIn(win, id)
		}
	}

	parentStashed := false
	if ps := w.arena.state(s.parent); ps != nil {
		parentStashed = ps.isStashed
		ps.needsLayout = true
		ps.needsDraw = true
	}
	w.pushStashed(id, parentStashed)

	// re-enter the pipeline cleanly on unstash
	s.needsLayout = true
	s.needsCompose = true
	s.needsDraw = true
	w.requestRedrawFor(s)
	w.mergeUp(id)
	w.recomputeUp(id)
}

func (w *World) pushStashed(id WidgetID, parentStashed bool) {
	s := w.arena.state(id)
	if s == nil {
		return
	}
	effective := s.stashedSelf || parentStashed
	if effective == s.isStashed {
		return
	}
	s.isStashed = effective
	if effective {
		w.clearNodeInteraction(id, s)
	}
	w.deliverUpdate(id, StashedChanged{Stashed: effective})
	for _, child := range s.children {
		w.pushStashed(child, effective)
	}
}

// setDisabled mirrors setStashed. A disabled subtree still lays out and
// draws, so only draw dirt is raised.
func (w *World) setDisabled(id WidgetID, disabled bool) {
	s := w.arena.state(id)
	if s == nil || s.disabledSelf == disabled {
		return
	}
	s.disabledSelf = disabled
	if disabled {
		if win := w.windows[s.window]; win != nil {
			w.releaseInputIn(win, id)
		}
	}

	parentDisabled := false
	if ps := w.arena.state(s.parent); ps != nil {
		parentDisabled = ps.isDisabled
	}
	w.pushDisabled(id, parentDisabled)

	s.needsDraw = true
	w.requestRedrawFor(s)
	w.mergeUp(id)
	w.recomputeUp(id)
}

func (w *World) pushDisabled(id WidgetID, parentDisabled bool) {
	s := w.arena.state(id)
	if s == nil {
		return
	}
	effective := s.disabledSelf || parentDisabled
	if effective == s.isDisabled {
		return
	}
	s.isDisabled = effective
	if effective {
		w.clearNodeInteraction(id, s)
	}
	w.deliverUpdate(id, DisabledChanged{Disabled: effective})
	for _, child := range s.children {
		w.pushDisabled(child, effective)
	}
}

// clearNodeInteraction drops one widget's interaction flags, notifying the
// widget of each loss. Window-level records are fixed by releaseInputIn
// before this runs.
func (w *World) clearNodeInteraction(id WidgetID, s *widgetState) {
	if s.isHovered {
		s.isHovered = false
		w.deliverUpdate(id, HoveredChanged{Hovered: false})
	}
	if s.isActive {
		s.isActive = false
		w.deliverUpdate(id, ActiveChanged{Active: false})
	}
	if s.isFocused {
		s.isFocused = false
		w.deliverUpdate(id, FocusedChanged{Focused: false})
	}
}

// clearInteraction drops interaction flags across a whole subtree and
// rebuilds its aggregates bottom-up. Used when a subtree is detached.
func (w *World) clearInteraction(id WidgetID) {
	s := w.arena.state(id)
	if s == nil {
		return
	}
	w.clearNodeInteraction(id, s)
	for _, child := range s.children {
		w.clearInteraction(child)
	}
	w.recomputeAggregates(s)
}
