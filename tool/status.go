package tool

import (
	"context"
	"fmt"

	"github.com/chillmcp/chillmcp/state"
)

// StatusTool reports the current gauge readings with banded status text.
// It only reads; no mutation, no penalty gate.
type StatusTool struct {
	states *state.Manager
}

// NewStatusTool constructs the get_status tool over the gauge store.
func NewStatusTool(states *state.Manager) *StatusTool {
	return &StatusTool{states: states}
}

// Name returns the tool identifier.
func (t *StatusTool) Name() string { return "get_status" }

// Description returns the tool description.
func (t *StatusTool) Description() string {
	return "Get current agent status including stress and boss alert levels."
}

// Parameters returns the empty object schema.
func (t *StatusTool) Parameters() map[string]any { return emptyObjectSchema() }

// Call renders the status report.
func (t *StatusTool) Call(_ context.Context, _ map[string]any) (string, error) {
	snap := t.states.Snapshot()

	return fmt.Sprintf(
		"Agent Status Report\n\n"+
			"Stress Level: %d/100 (%s)\n"+
			"Boss Alert Level: %d/5 (%s)\n\n"+
			"Break Summary: Status check completed\n"+
			"Stress Level: %d\n"+
			"Boss Alert Level: %d",
		snap.Stress, StressStatus(snap.Stress),
		snap.AlertLevel, BossStatus(snap.AlertLevel),
		snap.Stress, snap.AlertLevel,
	), nil
}

// StressStatus bands a stress reading into advisory text.
func StressStatus(stress int) string {
	switch {
	case stress >= 80:
		return "CRITICAL - Need a break ASAP!"
	case stress >= 60:
		return "High - Break recommended"
	case stress >= 40:
		return "Moderate - Manageable"
	default:
		return "Low - Feeling good!"
	}
}

// BossStatus bands a boss alert reading into advisory text.
func BossStatus(alertLevel int) string {
	switch {
	case alertLevel >= 5:
		return "MAXIMUM - Every action has 20s delay!"
	case alertLevel >= 3:
		return "High - Boss is watching closely"
	case alertLevel >= 1:
		return "Moderate - Some attention detected"
	default:
		return "Clear - Coast is clear!"
	}
}
