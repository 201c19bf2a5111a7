package alder

import "sort"

// recorder is the draw cache: recordings keyed by widget handle, aged by a
// frame counter and held under a memory budget.
type recorder struct {
	entries  map[WidgetID]*recorderEntry
	frame    uint64
	memory   uint64
	settings RecordSettings
	warned   bool
}

type recorderEntry struct {
	recording Recording
	cost      float64 // measured draw cost the recording replaces
	lastUsed  uint64
}

func (r *recorder) init(settings RecordSettings) {
	r.entries = make(map[WidgetID]*recorderEntry)
	r.settings = settings
}

// insert stores a fresh recording, replacing any previous one for the
// widget.
func (r *recorder) insert(id WidgetID, recording Recording, cost float64) {
	r.remove(id)
	r.entries[id] = &recorderEntry{
		recording: recording,
		cost:      cost,
		lastUsed:  r.frame,
	}
	r.memory += recording.Memory()
}

// replay returns the widget's recording, marking it used this frame, or nil.
func (r *recorder) replay(id WidgetID) Recording {
	e := r.entries[id]
	if e == nil {
		return nil
	}
	e.lastUsed = r.frame
	return e.recording
}

// remove drops a widget's recording if one exists.
func (r *recorder) remove(id WidgetID) {
	if e, ok := r.entries[id]; ok {
		r.memory -= e.recording.Memory()
		delete(r.entries, id)
	}
}

// contains reports whether a recording exists for the widget.
func (r *recorder) contains(id WidgetID) bool {
	_, ok := r.entries[id]
	return ok
}

// endFrame advances the frame counter, purges recordings whose widgets are
// gone or that went unreplayed too long, and culls once the cache passes
// three quarters of the budget.
func (r *recorder) endFrame(w *World) {
	r.frame++
	for id, e := range r.entries {
		if !w.arena.contains(id) || r.frame-e.lastUsed > r.settings.MaxFramesUnused {
			r.remove(id)
		}
	}
	threshold := r.settings.MaxMemory / 4 * 3
	if r.memory > threshold {
		if !r.warned {
			r.warned = true
			warnf("draw cache passed three quarters of its %s budget (%s held); culling",
				formatMemory(r.settings.MaxMemory), formatMemory(r.memory))
		}
		r.cull(threshold)
	}
}

// cull evicts recordings, worst memory-per-cost first, until the cache is
// back at the threshold.
func (r *recorder) cull(target uint64) {
	ids := make([]WidgetID, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := r.entries[ids[i]], r.entries[ids[j]]
		ra := float64(a.recording.Memory()) / (a.cost + 1)
		rb := float64(b.recording.Memory()) / (b.cost + 1)
		if ra != rb {
			return ra > rb
		}
		return ids[i].Less(ids[j])
	})

	for _, id := range ids {
		if r.memory <= target {
			return
		}
		r.remove(id)
	}
}
