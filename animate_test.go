package alder

import (
	"testing"
	"time"
)

func TestAnimateOnlyVisitsArmedWidgets(t *testing.T) {
	f, _, _, leaf, widgets := buildChain(t)
	f.frame()
	animates := widgets[2].animates

	f.advance(16 * time.Millisecond)
	f.frame()
	if widgets[2].animates != animates {
		t.Fatal("unarmed widget should not animate")
	}

	f.mut(t, leaf, func(m *WidgetMut) { m.RequestAnimate() })
	f.advance(16 * time.Millisecond)
	f.frame()
	if widgets[2].animates != animates+1 {
		t.Errorf("armed widget animates = %d, want %d", widgets[2].animates, animates+1)
	}

	// one-shot: the bit cleared before the hook ran
	f.advance(16 * time.Millisecond)
	f.frame()
	if widgets[2].animates != animates+1 {
		t.Error("animate bit should not persist across frames")
	}
}

func TestAnimateDeltaComesFromTheClock(t *testing.T) {
	f, _, _, leaf, widgets := buildChain(t)
	var dts []time.Duration
	widgets[2].onAnimate = func(cx *UpdateContext, dt time.Duration) {
		dts = append(dts, dt)
		cx.RequestAnimate() // keep the loop alive
	}

	f.mut(t, leaf, func(m *WidgetMut) { m.RequestAnimate() })
	f.frame()
	f.advance(16 * time.Millisecond)
	f.frame()
	f.advance(40 * time.Millisecond)
	f.frame()

	if len(dts) != 3 {
		t.Fatalf("animate calls = %d, want 3", len(dts))
	}
	if dts[0] != 0 {
		t.Errorf("first dt = %v, want 0 (no previous frame)", dts[0])
	}
	if dts[1] != 16*time.Millisecond || dts[2] != 40*time.Millisecond {
		t.Errorf("dts = %v, want the clock steps", dts[1:])
	}
}

func TestAnimateRehookKeepsRunning(t *testing.T) {
	f, _, _, leaf, widgets := buildChain(t)
	frames := 0
	widgets[2].onAnimate = func(cx *UpdateContext, dt time.Duration) {
		frames++
		if frames < 3 {
			cx.RequestAnimate()
		}
	}

	f.mut(t, leaf, func(m *WidgetMut) { m.RequestAnimate() })
	for i := 0; i < 6; i++ {
		f.advance(16 * time.Millisecond)
		f.frame()
	}
	if frames != 3 {
		t.Errorf("animate hook ran %d times, want exactly 3", frames)
	}
}

func TestAnimateSkipsStashedSubtrees(t *testing.T) {
	f, _, middle, leaf, widgets := buildChain(t)

	f.mut(t, leaf, func(m *WidgetMut) { m.RequestAnimate() })
	f.mut(t, middle, func(m *WidgetMut) { m.SetStashed(true) })
	f.advance(16 * time.Millisecond)
	f.frame()

	if widgets[2].animates != 0 {
		t.Error("stashed subtree must not animate")
	}
}

func TestRequestAnimateSignalsTheShell(t *testing.T) {
	f, _, _, leaf, _ := buildChain(t)
	f.frame()
	f.resetSignals()

	f.mut(t, leaf, func(m *WidgetMut) { m.RequestAnimate() })
	f.mut(t, leaf, func(m *WidgetMut) { m.RequestAnimate() })
	if countAnimates(f) != 1 {
		t.Errorf("RequestAnimate signals = %d, want 1 (deduped)", countAnimates(f))
	}

	// the pass resets the dedup latch
	f.advance(16 * time.Millisecond)
	f.frame()
	f.mut(t, leaf, func(m *WidgetMut) { m.RequestAnimate() })
	if countAnimates(f) != 2 {
		t.Errorf("RequestAnimate signals after a frame = %d, want 2", countAnimates(f))
	}
}
