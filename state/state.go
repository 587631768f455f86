package state

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/chillmcp/chillmcp/logging"
)

// Gauge bounds and defaults. Stress starts halfway up; the boss starts
// out oblivious.
const (
	StressMax     = 100
	InitialStress = 50
	AlertMax      = 5

	DefaultAlertness     = 50
	DefaultAlertCooldown = 300 * time.Second
	DefaultDriftInterval = 60 * time.Second
)

// ErrInvalidConfig marks configuration rejected at construction time.
var ErrInvalidConfig = errors.New("invalid state configuration")

// ErrInvalidRange marks a reduction range where min exceeds max or a
// bound is negative.
var ErrInvalidRange = errors.New("invalid reduction range")

// Snapshot is a point-in-time copy of both gauges.
type Snapshot struct {
	Stress     int `json:"stress_level"`
	AlertLevel int `json:"boss_alert_level"`
}

// Options holds configuration overrides passed to New().
type Options struct {
	// Alertness is the probability (0-100) that a completed break raises
	// the boss alert level by one.
	Alertness int
	// AlertCooldown is the period between automatic alert decrements.
	AlertCooldown time.Duration
	// DriftInterval is the period between automatic stress increments.
	// Overridable so tests can run the drift loop in milliseconds.
	DriftInterval time.Duration
	// Rand supplies the draws for reductions and alert rolls. Defaults to
	// a time-seeded source. The Manager serializes access to it under the
	// state lock, so the source itself need not be goroutine-safe.
	Rand *rand.Rand
	// Logger receives timer and mutation diagnostics.
	Logger logging.Logger
}

// Manager is the single owner of the stress and boss alert gauges.
//
// Contract:
//   - Both gauges always stay inside their bounds ([0,100] and [0,5])
//     under any interleaving of callers and timers
//   - Every read-modify-write holds the lock for its full span
//   - The lock is never held across a sleep or wait
//   - Created once at startup, mutated until process exit
type Manager struct {
	mu         sync.Mutex
	stress     int
	alertLevel int
	rng        *rand.Rand

	alertness     int
	alertCooldown time.Duration
	driftInterval time.Duration

	logger logging.Logger
}

// New constructs a Manager with optional overrides. Out-of-range
// alertness or non-positive periods are rejected before any state
// exists.
func New(optFns ...func(o *Options)) (*Manager, error) {
	opts := Options{
		Alertness:     DefaultAlertness,
		AlertCooldown: DefaultAlertCooldown,
		DriftInterval: DefaultDriftInterval,
		Logger:        logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Alertness < 0 || opts.Alertness > 100 {
		return nil, fmt.Errorf("%w: alertness %d outside [0,100]", ErrInvalidConfig, opts.Alertness)
	}
	if opts.AlertCooldown <= 0 {
		return nil, fmt.Errorf("%w: alert cooldown %v must be positive", ErrInvalidConfig, opts.AlertCooldown)
	}
	if opts.DriftInterval <= 0 {
		return nil, fmt.Errorf("%w: drift interval %v must be positive", ErrInvalidConfig, opts.DriftInterval)
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Manager{
		stress:        InitialStress,
		alertLevel:    0,
		rng:           rng,
		alertness:     opts.Alertness,
		alertCooldown: opts.AlertCooldown,
		driftInterval: opts.DriftInterval,
		logger:        opts.Logger,
	}, nil
}

// ReduceStress draws a uniform reduction in [min,max], applies it to the
// stress gauge clamped at zero and returns the nominal draw. The return
// value is the draw, not the clamped delta: a draw of 30 against stress 10
// still reports 30.
func (m *Manager) ReduceStress(min, max int) (int, error) {
	if min < 0 || min > max {
		return 0, fmt.Errorf("%w: [%d,%d]", ErrInvalidRange, min, max)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	reduction := min + m.rng.Intn(max-min+1)
	m.stress -= reduction
	if m.stress < 0 {
		m.stress = 0
	}

	return reduction, nil
}

// MaybeRaiseAlert rolls against the configured alertness and increments
// the boss alert level on success. It reports whether an increment
// actually happened: at the cap the level stays put and the result is
// false even when the draw lands under the threshold.
func (m *Manager) MaybeRaiseAlert() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rng.Intn(100)+1 > m.alertness {
		return false
	}
	if m.alertLevel >= AlertMax {
		return false
	}

	m.alertLevel++

	return true
}

// Snapshot returns a copy of both gauges.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot{Stress: m.stress, AlertLevel: m.alertLevel}
}

// Alertness returns the immutable alert-raise probability.
func (m *Manager) Alertness() int { return m.alertness }

// AlertCooldown returns the immutable cooldown period.
func (m *Manager) AlertCooldown() time.Duration { return m.alertCooldown }

// driftStress bumps the stress gauge by one, capped at StressMax. Timer
// use only.
func (m *Manager) driftStress() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stress < StressMax {
		m.stress++
	}
}

// cooldownAlert lowers the boss alert level by one, floored at zero.
// Timer use only.
func (m *Manager) cooldownAlert() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.alertLevel > 0 {
		m.alertLevel--
	}
}
