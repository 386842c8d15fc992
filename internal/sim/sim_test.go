package sim

import (
	"testing"
	"time"

	"github.com/litescript/ls-orrery/internal/body"
)

func newTestManager(speed float64) *Manager {
	cfg := DefaultConfig()
	cfg.Speed = speed
	return NewManager(body.Solar(), cfg)
}

func TestAdvanceScalesBySpeed(t *testing.T) {
	m := newTestManager(2.0)

	m.Advance(time.Second)
	if got := m.SimTime(); got != 2.0 {
		t.Errorf("sim time after 1s at 2x = %v, want 2.0", got)
	}

	m.Advance(500 * time.Millisecond)
	if got := m.SimTime(); got != 3.0 {
		t.Errorf("sim time after +0.5s at 2x = %v, want 3.0", got)
	}
}

func TestPauseFreezesClockAndBodies(t *testing.T) {
	m := newTestManager(1.0)
	m.Advance(time.Second)

	before := m.Snapshot()
	if !m.TogglePause() {
		t.Fatal("TogglePause should return true when pausing")
	}

	for i := 0; i < 10; i++ {
		m.Advance(time.Second)
	}

	after := m.Snapshot()
	if after.SimTime != before.SimTime {
		t.Errorf("sim time moved while paused: %v -> %v", before.SimTime, after.SimTime)
	}
	for i := range before.Bodies {
		if before.Bodies[i].Pos != after.Bodies[i].Pos {
			t.Errorf("%s moved while paused", before.Bodies[i].Body.Name)
		}
	}

	// Frames keep counting so camera/UI stay live.
	if after.Frame <= before.Frame {
		t.Errorf("frame counter frozen while paused: %d -> %d", before.Frame, after.Frame)
	}

	if m.TogglePause() {
		t.Error("TogglePause should return false when resuming")
	}
	m.Advance(time.Second)
	if m.SimTime() <= after.SimTime {
		t.Error("sim time should advance again after resume")
	}
}

func TestSpeedClamp(t *testing.T) {
	m := newTestManager(1.0)

	m.SetSpeed(1000)
	if got := m.Speed(); got != MaxSpeed {
		t.Errorf("speed = %v, want clamped to %v", got, MaxSpeed)
	}

	m.SetSpeed(-5)
	if got := m.Speed(); got != MinSpeed {
		t.Errorf("speed = %v, want clamped to %v", got, MinSpeed)
	}
}

func TestAdjustSpeed(t *testing.T) {
	m := newTestManager(1.0)

	if got := m.AdjustSpeed(true); got != 2.0 {
		t.Errorf("speed after double = %v, want 2.0", got)
	}
	m.AdjustSpeed(false)
	if got := m.AdjustSpeed(false); got != 0.5 {
		t.Errorf("speed after two halvings = %v, want 0.5", got)
	}

	// Halving bottoms out above zero.
	for i := 0; i < 20; i++ {
		m.AdjustSpeed(false)
	}
	if got := m.Speed(); got != 0.125 {
		t.Errorf("speed floor = %v, want 0.125", got)
	}

	// Doubling saturates at the max.
	for i := 0; i < 20; i++ {
		m.AdjustSpeed(true)
	}
	if got := m.Speed(); got != MaxSpeed {
		t.Errorf("speed ceiling = %v, want %v", got, MaxSpeed)
	}
}

func TestAdjustSpeedFromZero(t *testing.T) {
	m := newTestManager(0)
	if got := m.AdjustSpeed(true); got != 0.125 {
		t.Errorf("speed after doubling from zero = %v, want 0.125", got)
	}
}

func TestSeek(t *testing.T) {
	m := newTestManager(1.0)
	m.Seek(3600)

	if got := m.SimTime(); got != 3600 {
		t.Errorf("sim time after seek = %v, want 3600", got)
	}

	snap := m.Snapshot()
	earth, ok := m.System().ByCode("EARTH")
	if !ok {
		t.Fatal("no EARTH in system")
	}
	want := earth.PositionAt(3600)
	for _, st := range snap.Bodies {
		if st.Body.Code == "EARTH" && st.Pos != want {
			t.Errorf("Earth at %v after seek, want %v", st.Pos, want)
		}
	}
}

func TestSnapshotIsolation(t *testing.T) {
	m := newTestManager(1.0)
	m.Advance(time.Second)

	snap := m.Snapshot()
	snap.Bodies[0].Body.Name = "mutated"

	if m.Snapshot().Bodies[0].Body.Name == "mutated" {
		t.Error("snapshot shares body state with the manager")
	}
}

func TestNewManagerDefaults(t *testing.T) {
	m := NewManager(body.Solar(), Config{})
	if m.TickRate() != DefaultConfig().TickRate {
		t.Errorf("tick rate = %d, want default %d", m.TickRate(), DefaultConfig().TickRate)
	}

	snap := m.Snapshot()
	if len(snap.Bodies) != 9 {
		t.Errorf("expected body states at t=0, got %d", len(snap.Bodies))
	}
}
