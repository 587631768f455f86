package state

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStressDriftTimer_IncrementsOverTime(t *testing.T) {
	m := newTestManager(t, func(o *Options) {
		o.DriftInterval = 5 * time.Millisecond
		o.AlertCooldown = time.Hour // keep the other timer out of the way
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.Start(ctx)

	assert.Eventually(t, func() bool {
		return m.Snapshot().Stress >= InitialStress+3
	}, 2*time.Second, time.Millisecond)

	assert.LessOrEqual(t, m.Snapshot().Stress, StressMax)
}

func TestAlertCooldownTimer_DecrementsToZeroAndStops(t *testing.T) {
	m := newTestManager(t, func(o *Options) {
		o.Alertness = 100
		o.AlertCooldown = 5 * time.Millisecond
		o.DriftInterval = time.Hour
	})

	m.MaybeRaiseAlert()
	m.MaybeRaiseAlert()
	m.MaybeRaiseAlert()
	assert.Equal(t, 3, m.Snapshot().AlertLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.Start(ctx)

	assert.Eventually(t, func() bool {
		return m.Snapshot().AlertLevel == 0
	}, 2*time.Second, time.Millisecond)

	// Floored at zero; further ticks must not push it negative.
	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, 0, m.Snapshot().AlertLevel)
}

func TestTimers_StopOnCancel(t *testing.T) {
	m := newTestManager(t, func(o *Options) {
		o.DriftInterval = 2 * time.Millisecond
		o.AlertCooldown = time.Hour
	})

	ctx, cancel := context.WithCancel(context.Background())
	m.Start(ctx)

	assert.Eventually(t, func() bool {
		return m.Snapshot().Stress > InitialStress
	}, 2*time.Second, time.Millisecond)

	cancel()

	// Give the loop a moment to observe cancellation, then verify the
	// gauge stops moving.
	time.Sleep(10 * time.Millisecond)
	frozen := m.Snapshot().Stress
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, frozen, m.Snapshot().Stress)
}
