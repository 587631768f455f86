package executor

import (
	"context"
	"time"

	"github.com/chillmcp/chillmcp/activity"
	"github.com/chillmcp/chillmcp/internal/util"
	"github.com/chillmcp/chillmcp/logging"
	"github.com/chillmcp/chillmcp/state"
)

// DefaultPenaltyWait is the fixed delay imposed on every activity that
// starts while the boss alert level sits at its maximum.
const DefaultPenaltyWait = 20 * time.Second

// Options holds configuration overrides passed to New().
type Options struct {
	// PenaltyWait overrides the max-alert delay. Overridable so tests can
	// observe the gate without waiting 20 seconds.
	PenaltyWait time.Duration
	// Logger receives per-invocation diagnostics.
	Logger logging.Logger
}

// Result is the structured outcome of one break activity.
type Result struct {
	// InvocationID correlates log lines with this execution.
	InvocationID string `json:"invocation_id"`
	// Activity is the profile name that ran.
	Activity string `json:"activity"`
	// Reduction is the nominal stress reduction drawn (not clamped).
	Reduction int `json:"reduction"`
	// AlertRaised reports whether this break bumped the boss alert level.
	AlertRaised bool `json:"boss_alert_raised"`
	// Stress and AlertLevel are the post-mutation gauge readings.
	Stress     int `json:"stress_level"`
	AlertLevel int `json:"boss_alert_level"`
}

// Executor wraps the gauge store's primitives into the fixed break
// sequence. It holds no mutable state after construction and is safe for
// concurrent use; cross-invocation interleaving is allowed because each
// gauge mutation is individually atomic.
type Executor struct {
	states      *state.Manager
	penaltyWait time.Duration
	logger      logging.Logger
}

// New constructs an Executor over the given gauge store.
func New(states *state.Manager, optFns ...func(o *Options)) *Executor {
	opts := Options{
		PenaltyWait: DefaultPenaltyWait,
		Logger:      logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Executor{
		states:      states,
		penaltyWait: opts.PenaltyWait,
		logger:      opts.Logger,
	}
}

// Execute runs one break activity:
//
//  1. Penalty gate: if the boss alert level is at maximum when the call
//     enters, block for the penalty wait. The gate is evaluated once; it
//     is not re-checked after the wait even if the level dropped in the
//     meantime. The wait honors ctx, so shutdown abandons it without
//     touching the gauges.
//  2. Reduce stress by a uniform draw from the profile's range.
//  3. Roll for a boss alert increase.
//  4. Snapshot the gauges and return the bundle.
//
// Steps never reorder within one invocation. An invalid profile fails
// before any mutation.
func (e *Executor) Execute(ctx context.Context, profile activity.Profile) (Result, error) {
	if err := profile.Validate(); err != nil {
		return Result{}, err
	}

	invocationID := util.NewID()

	if err := e.applyPenaltyIfNeeded(ctx, invocationID); err != nil {
		return Result{}, err
	}

	reduction, err := e.states.ReduceStress(profile.MinReduction, profile.MaxReduction)
	if err != nil {
		return Result{}, err
	}

	raised := e.states.MaybeRaiseAlert()
	snap := e.states.Snapshot()

	e.logger.Info("break.complete",
		"invocation_id", invocationID,
		"tool", profile.Name,
		"reduction", reduction,
		"boss_alert_raised", raised,
		"stress_level", snap.Stress,
		"boss_alert_level", snap.AlertLevel,
	)

	return Result{
		InvocationID: invocationID,
		Activity:     profile.Name,
		Reduction:    reduction,
		AlertRaised:  raised,
		Stress:       snap.Stress,
		AlertLevel:   snap.AlertLevel,
	}, nil
}

// applyPenaltyIfNeeded blocks for the penalty wait when the boss alert
// level is maxed at entry. The check happens outside the state lock; the
// lock is never held across the wait.
func (e *Executor) applyPenaltyIfNeeded(ctx context.Context, invocationID string) error {
	if e.states.Snapshot().AlertLevel < state.AlertMax {
		return nil
	}

	e.logger.Warn("penalty.start",
		"invocation_id", invocationID,
		"wait", e.penaltyWait.String(),
		"reason", "boss alert level at maximum",
	)

	timer := time.NewTimer(e.penaltyWait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	e.logger.Warn("penalty.end", "invocation_id", invocationID)

	return nil
}
