// Package chillmcp provides a high-level façade wiring the gauge store,
// the activity executor, the break history and the tool set into one
// application object. Most entry points interact with this package by:
//  1. Creating an App via New() (optionally overriding defaults)
//  2. Starting the autonomous timers with Start()
//  3. Handing Tools() to the MCP server or the interactive REPL
//
// All defaults are safe for local development and testing; the defaults
// mirror the original server (alertness 50%, cooldown 300s, 20s penalty).
package chillmcp

import (
	"context"
	"math/rand"
	"time"

	"github.com/chillmcp/chillmcp/activity"
	"github.com/chillmcp/chillmcp/executor"
	"github.com/chillmcp/chillmcp/history"
	"github.com/chillmcp/chillmcp/logging"
	"github.com/chillmcp/chillmcp/state"
	"github.com/chillmcp/chillmcp/tool"
)

// Options configures the App instance.
type Options struct {
	// Alertness is the probability (0-100) that a break raises the boss
	// alert level.
	Alertness int
	// AlertCooldown is the period between automatic alert decrements.
	AlertCooldown time.Duration
	// DriftInterval is the period between automatic stress increments.
	DriftInterval time.Duration
	// PenaltyWait is the delay imposed at maximum boss alert.
	PenaltyWait time.Duration
	// Rand supplies all gauge draws (defaults to a time-seeded source).
	Rand *rand.Rand
	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// App aggregates the gauge store, executor, history and tool set.
type App struct {
	states *state.Manager
	exec   *executor.Executor
	breaks *history.Store
	tools  []tool.Tool
	logger logging.Logger
}

// New creates a new App with optional overrides. Configuration errors
// (alertness outside [0,100], non-positive periods) surface here, before
// any state exists.
func New(optFns ...func(o *Options)) (*App, error) {
	opts := Options{
		Alertness:     state.DefaultAlertness,
		AlertCooldown: state.DefaultAlertCooldown,
		DriftInterval: state.DefaultDriftInterval,
		PenaltyWait:   executor.DefaultPenaltyWait,
		Logger:        logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	states, err := state.New(func(o *state.Options) {
		o.Alertness = opts.Alertness
		o.AlertCooldown = opts.AlertCooldown
		o.DriftInterval = opts.DriftInterval
		o.Rand = opts.Rand
		o.Logger = opts.Logger
	})
	if err != nil {
		return nil, err
	}

	exec := executor.New(states, func(o *executor.Options) {
		o.PenaltyWait = opts.PenaltyWait
		o.Logger = opts.Logger
	})

	breaks := history.NewStore()

	tools := make([]tool.Tool, 0, len(activity.Catalog())+1)
	for _, profile := range activity.Catalog() {
		tools = append(tools, tool.NewBreakTool(profile, exec, breaks))
	}
	tools = append(tools, tool.NewStatusTool(states))

	return &App{
		states: states,
		exec:   exec,
		breaks: breaks,
		tools:  tools,
		logger: opts.Logger,
	}, nil
}

// Start launches the autonomous timers. They run until ctx is cancelled.
func (a *App) Start(ctx context.Context) {
	a.states.Start(ctx)
	a.logger.Info("chillmcp.start",
		"boss_alertness", a.states.Alertness(),
		"boss_alertness_cooldown", a.states.AlertCooldown().String(),
	)
}

// Tools returns the registered tool set (break activities plus status).
func (a *App) Tools() []tool.Tool { return a.tools }

// States returns the gauge store.
func (a *App) States() *state.Manager { return a.states }

// History returns the break history store.
func (a *App) History() *history.Store { return a.breaks }
