// Package sim provides the thread-safe simulation clock and body state.
package sim

import (
	"sync"
	"time"

	"github.com/litescript/ls-orrery/internal/body"
)

// Speed factor bounds. Zero freezes motion without pausing the clock loop.
const (
	MinSpeed = 0.0
	MaxSpeed = 64.0
)

// Config holds configuration for the simulation manager.
type Config struct {
	Speed    float64 // initial time speed factor
	TickRate int     // simulation loop ticks per second
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Speed:    1.0,
		TickRate: 30,
	}
}

// Manager owns the simulation clock and derived body states with
// thread-safe access. The UI reads immutable snapshots; the sim loop
// goroutine advances the clock.
type Manager struct {
	mu sync.RWMutex

	system body.System
	states []body.State

	simTime float64 // cumulative simulation seconds
	speed   float64
	paused  bool
	frame   uint64

	lastAdvance time.Time
	tickRate    int
}

// NewManager creates a simulation manager over the given system.
func NewManager(sys body.System, cfg Config) *Manager {
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = DefaultConfig().TickRate
	}
	m := &Manager{
		system:   sys,
		speed:    clampSpeed(cfg.Speed),
		tickRate: tickRate,
	}
	m.states = sys.StateAt(0)
	return m
}

// Advance moves the simulation forward by a wall-clock delta scaled by the
// speed factor. While paused, the clock and body states stay frozen but the
// frame counter still advances, so camera and UI updates keep flowing.
func (m *Manager) Advance(wallDt time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.frame++
	m.lastAdvance = time.Now()

	if m.paused {
		return
	}

	m.simTime += wallDt.Seconds() * m.speed
	m.states = m.system.StateAt(m.simTime)
}

// Seek jumps the simulation clock to an absolute time in simulation seconds.
func (m *Manager) Seek(simSeconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.simTime = simSeconds
	m.states = m.system.StateAt(m.simTime)
}

// TogglePause flips the paused flag and returns the new value.
func (m *Manager) TogglePause() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paused = !m.paused
	return m.paused
}

// Paused reports whether the simulation clock is frozen.
func (m *Manager) Paused() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.paused
}

// SetSpeed sets the time speed factor, clamped to [MinSpeed, MaxSpeed].
func (m *Manager) SetSpeed(s float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.speed = clampSpeed(s)
}

// Speed returns the current time speed factor.
func (m *Manager) Speed() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.speed
}

// AdjustSpeed doubles or halves the speed factor. Halving bottoms out at
// 0.125x rather than zero so the direction stays recoverable.
func (m *Manager) AdjustSpeed(faster bool) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if faster {
		if m.speed == 0 {
			m.speed = 0.125
		} else {
			m.speed = clampSpeed(m.speed * 2)
		}
	} else {
		m.speed = m.speed / 2
		if m.speed < 0.125 {
			m.speed = 0.125
		}
	}
	return m.speed
}

// SimTime returns the cumulative simulation time in seconds.
func (m *Manager) SimTime() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.simTime
}

// TickRate returns the configured sim loop tick rate.
func (m *Manager) TickRate() int {
	return m.tickRate
}

// System returns the body system driven by this manager.
func (m *Manager) System() body.System {
	return m.system
}

// Snapshot is an immutable view of the simulation at one instant.
type Snapshot struct {
	SimTime float64
	Speed   float64
	Paused  bool
	Frame   uint64
	Wall    time.Time
	Bodies  []body.State
}

// Snapshot returns a consistent copy of the current simulation state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	states := make([]body.State, len(m.states))
	copy(states, m.states)

	return Snapshot{
		SimTime: m.simTime,
		Speed:   m.speed,
		Paused:  m.paused,
		Frame:   m.frame,
		Wall:    m.lastAdvance,
		Bodies:  states,
	}
}

func clampSpeed(s float64) float64 {
	if s < MinSpeed {
		return MinSpeed
	}
	if s > MaxSpeed {
		return MaxSpeed
	}
	return s
}
