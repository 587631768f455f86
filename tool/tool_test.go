package tool

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chillmcp/chillmcp/activity"
	"github.com/chillmcp/chillmcp/executor"
	"github.com/chillmcp/chillmcp/history"
	"github.com/chillmcp/chillmcp/internal/testutil"
	"github.com/chillmcp/chillmcp/state"
)

func newBreakFixture(t *testing.T, alertness int, profile activity.Profile) (*BreakTool, *state.Manager, *history.Store) {
	t.Helper()

	states, err := state.New(func(o *state.Options) {
		o.Alertness = alertness
		o.Rand = testutil.NewRand(1)
	})
	assert.NoError(t, err)

	exec := executor.New(states, func(o *executor.Options) {
		o.PenaltyWait = time.Millisecond
	})

	log := history.NewStore()

	return NewBreakTool(profile, exec, log), states, log
}

func TestBreakTool_Metadata(t *testing.T) {
	profile, _ := activity.Lookup("take_a_break")
	bt, _, _ := newBreakFixture(t, 0, profile)

	assert.Equal(t, "take_a_break", bt.Name())
	assert.Equal(t, profile.Description, bt.Description())

	schema := bt.Parameters()
	assert.Equal(t, "object", schema["type"])
	assert.Empty(t, schema["properties"])
}

func TestBreakTool_Call_RendersParseableFormat(t *testing.T) {
	profile, _ := activity.Lookup("take_a_break")
	bt, states, log := newBreakFixture(t, 0, profile)

	text, err := bt.Call(context.Background(), map[string]any{})
	assert.NoError(t, err)

	snap := states.Snapshot()
	assert.Contains(t, text, fmt.Sprintf("Break Summary: %s", profile.Summary))
	assert.Contains(t, text, fmt.Sprintf("Stress Level: %d", snap.Stress))
	assert.Contains(t, text, fmt.Sprintf("Boss Alert Level: %d", snap.AlertLevel))
	assert.NotContains(t, text, "Your boss seems to have noticed")

	// Flavor line first, blank line, then the parseable fields.
	parts := strings.SplitN(text, "\n\n", 2)
	assert.Len(t, parts, 2)
	assert.Contains(t, profile.Messages, parts[0])

	// One history entry per completed break.
	assert.Equal(t, 1, log.Len())
	entry := log.Recent(1)[0]
	assert.Equal(t, "take_a_break", entry.Tool)
	assert.Equal(t, snap.Stress, entry.Stress)
	assert.NotEmpty(t, entry.InvocationID)
}

func TestBreakTool_Call_MarksBossNoticing(t *testing.T) {
	profile, _ := activity.Lookup("show_meme")
	bt, _, _ := newBreakFixture(t, 100, profile)

	text, err := bt.Call(context.Background(), map[string]any{})
	assert.NoError(t, err)
	assert.Contains(t, text, "(Your boss seems to have noticed...)")
}

func TestBreakTool_Call_ToleratesExtraArguments(t *testing.T) {
	profile, _ := activity.Lookup("coffee_mission")
	bt, _, _ := newBreakFixture(t, 0, profile)

	_, err := bt.Call(context.Background(), map[string]any{"whatever": 42})
	assert.NoError(t, err)
}

func TestBreakTool_Call_WrapsExecutionErrors(t *testing.T) {
	broken := activity.Profile{Name: "broken", MinReduction: 9, MaxReduction: 3}
	bt, _, log := newBreakFixture(t, 0, broken)

	_, err := bt.Call(context.Background(), map[string]any{})
	assert.Error(t, err)

	toolErr, ok := err.(*ToolError)
	assert.True(t, ok)
	assert.Equal(t, "EXECUTION_ERROR", toolErr.Code)
	assert.Equal(t, "broken", toolErr.Tool)
	assert.Equal(t, 0, log.Len())
}

func TestStatusTool_ReportsBandedState(t *testing.T) {
	states, err := state.New(func(o *state.Options) {
		o.Rand = testutil.NewRand(1)
	})
	assert.NoError(t, err)

	st := NewStatusTool(states)
	assert.Equal(t, "get_status", st.Name())

	text, err := st.Call(context.Background(), map[string]any{})
	assert.NoError(t, err)
	assert.Contains(t, text, "Agent Status Report")
	assert.Contains(t, text, "Stress Level: 50/100 (Moderate - Manageable)")
	assert.Contains(t, text, "Boss Alert Level: 0/5 (Clear - Coast is clear!)")
	assert.Contains(t, text, "Break Summary: Status check completed")
}

func TestStressStatus_Bands(t *testing.T) {
	assert.Equal(t, "CRITICAL - Need a break ASAP!", StressStatus(80))
	assert.Equal(t, "CRITICAL - Need a break ASAP!", StressStatus(100))
	assert.Equal(t, "High - Break recommended", StressStatus(60))
	assert.Equal(t, "Moderate - Manageable", StressStatus(40))
	assert.Equal(t, "Low - Feeling good!", StressStatus(39))
	assert.Equal(t, "Low - Feeling good!", StressStatus(0))
}

func TestBossStatus_Bands(t *testing.T) {
	assert.Equal(t, "MAXIMUM - Every action has 20s delay!", BossStatus(5))
	assert.Equal(t, "High - Boss is watching closely", BossStatus(3))
	assert.Equal(t, "High - Boss is watching closely", BossStatus(4))
	assert.Equal(t, "Moderate - Some attention detected", BossStatus(1))
	assert.Equal(t, "Clear - Coast is clear!", BossStatus(0))
}

func TestToolError_Error(t *testing.T) {
	withCode := NewToolError("take_a_break", "boom", "EXECUTION_ERROR")
	assert.Equal(t, "tool error [EXECUTION_ERROR] in take_a_break: boom", withCode.Error())

	noCode := &ToolError{Tool: "take_a_break", Message: "boom"}
	assert.Equal(t, "tool error in take_a_break: boom", noCode.Error())
}
