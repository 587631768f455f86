package tool

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chillmcp/chillmcp/activity"
	"github.com/chillmcp/chillmcp/executor"
	"github.com/chillmcp/chillmcp/history"
	"github.com/chillmcp/chillmcp/internal/util"
)

// BreakTool exposes one catalog activity as an MCP tool. Each call runs
// the full break sequence through the executor, records the outcome in
// the history store and renders the response in the parseable text
// format:
//
//	<flavor line>
//
//	Break Summary: <summary>
//	Stress Level: <n>
//	Boss Alert Level: <n>
type BreakTool struct {
	profile activity.Profile
	exec    *executor.Executor
	log     *history.Store
}

// NewBreakTool wraps an activity profile, an executor and a history store
// into a Tool.
func NewBreakTool(profile activity.Profile, exec *executor.Executor, log *history.Store) *BreakTool {
	return &BreakTool{profile: profile, exec: exec, log: log}
}

// Name returns the tool identifier.
func (t *BreakTool) Name() string { return t.profile.Name }

// Description returns the tool description.
func (t *BreakTool) Description() string { return t.profile.Description }

// Parameters returns the empty object schema; break tools take no arguments.
func (t *BreakTool) Parameters() map[string]any { return emptyObjectSchema() }

// Call executes the break activity and renders the result.
func (t *BreakTool) Call(ctx context.Context, args map[string]any) (string, error) {
	if err := util.ValidateParameters(args, t.Parameters()); err != nil {
		return "", &ToolError{
			Tool:    t.profile.Name,
			Message: fmt.Sprintf("parameter validation failed: %v", err),
			Code:    "VALIDATION_ERROR",
			Details: err,
		}
	}

	result, err := t.exec.Execute(ctx, t.profile)
	if err != nil {
		// Shutdown during the penalty wait surfaces as a plain context
		// error so the transport can tell it apart from a tool failure.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}

		return "", &ToolError{
			Tool:    t.profile.Name,
			Message: err.Error(),
			Code:    "EXECUTION_ERROR",
		}
	}

	t.log.Append(history.Entry{
		InvocationID: result.InvocationID,
		Tool:         result.Activity,
		Reduction:    result.Reduction,
		AlertRaised:  result.AlertRaised,
		Stress:       result.Stress,
		AlertLevel:   result.AlertLevel,
		Timestamp:    time.Now(),
	})

	flavor := t.profile.PickMessage()
	if result.AlertRaised {
		flavor += " (Your boss seems to have noticed...)"
	}

	return fmt.Sprintf(
		"%s\n\nBreak Summary: %s\nStress Level: %d\nBoss Alert Level: %d",
		flavor, t.profile.Summary, result.Stress, result.AlertLevel,
	), nil
}
