package state

import (
	"context"
	"time"
)

// Start launches the two autonomous timers and returns immediately. Both
// run until ctx is cancelled:
//
//   - stress drift: every DriftInterval, stress climbs by one (capped)
//   - alert cooldown: every AlertCooldown, the boss alert drops by one
//     (floored)
//
// Each mutation is atomic under the state lock, so cancellation between
// ticks can never leave a half-applied update. Start must be called at
// most once per Manager.
func (m *Manager) Start(ctx context.Context) {
	go m.runTimer(ctx, "stress_drift", m.driftInterval, m.driftStress)
	go m.runTimer(ctx, "alert_cooldown", m.alertCooldown, m.cooldownAlert)
}

// runTimer performs mutate once per period until ctx is done. The
// mutations cannot fail given valid invariants; anything unexpected in
// the loop body panics and takes the process down rather than leaving a
// silently dead timer.
func (m *Manager) runTimer(ctx context.Context, name string, period time.Duration, mutate func()) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	m.logger.Debug("state.timer.start", "timer", name, "period", period.String())

	for {
		select {
		case <-ctx.Done():
			m.logger.Debug("state.timer.stop", "timer", name)
			return
		case <-ticker.C:
			mutate()
		}
	}
}
