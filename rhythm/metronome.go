package rhythm

import (
	"sync"
	"time"

	"github.com/weftlang/weft/pattern"
	"k8s.io/utils/clock"
)

// Metronome anchors the cyclic timeline to the wall clock. Tempo is in
// cycles per second, and positions come back as exact rationals so a long
// session never drifts against the pattern algebra.
type Metronome struct {
	mu        sync.Mutex
	clock     clock.Clock
	startTime time.Time
	cps       pattern.Time
}

// NewMetronome creates a Metronome running at cps cycles per second,
// anchored at the current instant.
func NewMetronome(cl clock.Clock, cps pattern.Time) *Metronome {
	return &Metronome{
		clock:     cl,
		startTime: cl.Now(),
		cps:       cps,
	}
}

// CycleAt returns the cycle position of the given instant.
func (m *Metronome) CycleAt(instant time.Time) pattern.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cycleAt(instant)
}

func (m *Metronome) cycleAt(instant time.Time) pattern.Time {
	ns := instant.Sub(m.startTime).Nanoseconds()
	return pattern.NewTime(ns, int64(time.Second)).Mul(m.cps)
}

// GetTempo returns the tempo in cycles per second.
func (m *Metronome) GetTempo() pattern.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cps
}

// SetTempo sets a new tempo for the Metronome. The start time is adjusted so
// that the current cycle position carries over the tempo change. The new
// start time is computed through float64 and truncated to whole
// nanoseconds, so the position can move by up to about one nanosecond's
// worth of cycles.
func (m *Metronome) SetTempo(cps pattern.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cps.Cmp(pattern.Time{}) <= 0 {
		return
	}
	instant := m.clock.Now()
	pos := m.cycleAt(instant)
	elapsed := pos.Div(cps)
	m.startTime = instant.Add(-time.Duration(elapsed.Float() * float64(time.Second)))
	m.cps = cps
}

// CycleDuration returns the wall-clock length of one cycle at the current
// tempo.
func (m *Metronome) CycleDuration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return time.Duration(float64(time.Second) / m.cps.Float())
}
