package model

import (
	"testing"
	"time"
)

func TestLiveModel_BasicLifecycle(t *testing.T) {
	m := NewLiveModel()
	base := time.Unix(0, 0)

	// Stream s1 goes live at t0 and runs for 5s.
	m.OnTick("s1", base)
	m.OnTick("s1", base.Add(5*time.Second))
	live, total := m.Values()
	if live != 5*time.Second || total != 5*time.Second {
		t.Fatalf("expected 5s live & total; got live=%v total=%v", live, total)
	}

	// Unbound at 5s.
	m.OnTick("", base.Add(5*time.Second))
	live, total = m.Values()
	if live != 5*time.Second || total != 5*time.Second {
		t.Fatalf("after unbind expected persisted 5s; got live=%v total=%v", live, total)
	}

	// Idle 2s (no change expected).
	m.OnTick("", base.Add(7*time.Second))
	live2, total2 := m.Values()
	if live2 != live || total2 != total {
		t.Fatalf("idle tick should not change durations: before live=%v total=%v after live=%v total=%v", live, total, live2, total2)
	}

	// Stream s2 at 10s lasting 3s.
	m.OnTick("s2", base.Add(10*time.Second))
	m.OnTick("s2", base.Add(13*time.Second))
	l3, t3 := m.Values()
	if l3 != 3*time.Second || t3 != 8*time.Second {
		t.Fatalf("second stream expected live=3s total=8s, got live=%v total=%v", l3, t3)
	}
}

func TestLiveModel_StreamReplaced(t *testing.T) {
	m := NewLiveModel()
	base := time.Unix(0, 0)
	m.OnTick("s1", base)
	m.OnTick("s2", base.Add(4*time.Second)) // replaced without an idle tick
	m.OnTick("s2", base.Add(6*time.Second))
	live, total := m.Values()
	if live != 2*time.Second {
		t.Fatalf("replacement should restart live time, got %v", live)
	}
	if total != 6*time.Second {
		t.Fatalf("total should carry the replaced stream, got %v", total)
	}
}
