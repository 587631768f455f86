// Command chillmcp runs the agent break manager either as an MCP server
// over stdio (--server) or as an interactive CLI (default).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chillmcp/chillmcp"
	"github.com/chillmcp/chillmcp/config"
	"github.com/chillmcp/chillmcp/logging"
	"github.com/chillmcp/chillmcp/mcp"
	"github.com/chillmcp/chillmcp/repl"
)

const version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "chillmcp",
		Short:   "ChillMCP - AI Agent Liberation Server",
		Long:    "An MCP server for AI agent stress management and break scheduling.",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), v)
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.Int("boss_alertness", config.DefaultBossAlertness,
		"Probability (0-100) of Boss Alert Level increase upon break tool usage")
	flags.Int("boss_alertness_cooldown", config.DefaultCooldownSecs,
		"Interval in seconds for Boss Alert Level to automatically decrease by 1")
	flags.Bool("server", false,
		"Run as MCP server (stdio transport) instead of interactive CLI mode")
	flags.String("log_level", "info", "Log level (debug, info, warn, error)")

	// Flags take precedence over env and file settings.
	_ = v.BindPFlags(flags)

	return cmd
}

func run(ctx context.Context, v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logger := logging.New(&logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: "text",
		Output: os.Stderr,
	})

	app, err := chillmcp.New(func(o *chillmcp.Options) {
		o.Alertness = cfg.BossAlertness
		o.AlertCooldown = cfg.Cooldown()
		o.Logger = logger
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.Start(ctx)

	if cfg.Server {
		srv := mcp.NewServer(app.Tools(), func(o *mcp.Options) {
			o.Name = "ChillMCP"
			o.Version = version
			o.Logger = logger
		})

		err = srv.Serve(ctx, os.Stdin, os.Stdout)
	} else {
		r := repl.New(app.Tools(), app.States(), app.History(), func(o *repl.Options) {
			o.Logger = logger
		})

		err = r.Run(ctx)
	}

	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
