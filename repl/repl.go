package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/chillmcp/chillmcp/activity"
	"github.com/chillmcp/chillmcp/history"
	"github.com/chillmcp/chillmcp/logging"
	"github.com/chillmcp/chillmcp/state"
	"github.com/chillmcp/chillmcp/tool"
)

// historyWindow is how many recent breaks the history command shows.
const historyWindow = 10

// Options holds configuration overrides passed to New().
type Options struct {
	// Out receives all rendered output (defaults to stdout; the REPL does
	// not share stdout with an MCP transport).
	Out io.Writer
	// Prompt is the readline prompt.
	Prompt string
	// Logger receives diagnostics.
	Logger logging.Logger
}

// REPL drives the interactive break manager session.
type REPL struct {
	tools  map[string]tool.Tool
	states *state.Manager
	breaks *history.Store
	out    io.Writer
	prompt string
	logger logging.Logger

	titleColor  *color.Color
	matchColor  *color.Color
	errColor    *color.Color
	statusColor *color.Color
}

// New constructs a REPL over the tool set, gauge store and history store.
func New(tools []tool.Tool, states *state.Manager, breaks *history.Store, optFns ...func(o *Options)) *REPL {
	opts := Options{
		Out:    os.Stdout,
		Prompt: "chill> ",
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	byName := make(map[string]tool.Tool, len(tools))
	for _, t := range tools {
		byName[t.Name()] = t
	}

	return &REPL{
		tools:       byName,
		states:      states,
		breaks:      breaks,
		out:         opts.Out,
		prompt:      opts.Prompt,
		logger:      opts.Logger,
		titleColor:  color.New(color.FgCyan, color.Bold),
		matchColor:  color.New(color.FgGreen),
		errColor:    color.New(color.FgRed),
		statusColor: color.New(color.FgYellow),
	}
}

// Run reads input lines until EOF, interrupt or an exit command.
func (r *REPL) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      r.prompt,
		HistoryFile: "", // session-only input history
	})
	if err != nil {
		return fmt.Errorf("repl: readline init failed: %w", err)
	}
	defer func() { _ = rl.Close() }()

	r.printBanner()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				break
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("repl: read failed: %w", err)
		}

		if done := r.Handle(ctx, strings.TrimSpace(line)); done {
			break
		}
	}

	fmt.Fprintln(r.out, "\n👋 Thanks for using ChillMCP! Stay chill! 🌴")

	return nil
}

// Handle processes one input line and reports whether the session should
// end. Exposed separately from Run so command behavior is testable
// without a terminal.
func (r *REPL) Handle(ctx context.Context, input string) bool {
	if input == "" {
		return false
	}

	switch strings.ToLower(input) {
	case "exit", "quit", "q", "종료", "나가기":
		return true
	case "status", "state", "상태", "현황":
		r.printStatus()
		return false
	case "history":
		r.printHistory()
		return false
	case "help", "?":
		r.printUsage()
		return false
	}

	profile, ok := activity.Match(input)
	if !ok {
		r.printNoMatch()
		return false
	}

	r.logger.Debug("repl.match", "input", input, "activity", profile.Name)

	r.matchColor.Fprintf(r.out, "✅ Matched: %s\n", profile.Name)
	fmt.Fprintln(r.out, "🎬 Executing break activity...")

	t, ok := r.tools[profile.Name]
	if !ok {
		r.errColor.Fprintf(r.out, "❌ No tool registered for %s\n", profile.Name)
		return false
	}

	text, err := t.Call(ctx, map[string]any{})
	if err != nil {
		r.logger.Error("repl.tool_call.error", "tool", profile.Name, "error", err.Error())
		r.errColor.Fprintf(r.out, "❌ Error: %v\n", err)
		return false
	}

	divider := strings.Repeat("=", 70)
	fmt.Fprintf(r.out, "\n%s\n%s\n%s\n", divider, text, divider)
	r.printStatus()

	return false
}

func (r *REPL) printBanner() {
	divider := strings.Repeat("=", 70)
	fmt.Fprintln(r.out, divider)
	r.titleColor.Fprintln(r.out, "🌴 ChillMCP - AI Agent Break Manager 🌴")
	fmt.Fprintln(r.out, divider)

	fmt.Fprintln(r.out, "\n⚙️  Settings:")
	fmt.Fprintf(r.out, "   Boss Alertness: %d%%\n", r.states.Alertness())
	fmt.Fprintf(r.out, "   Boss Alert Cooldown: %s\n", r.states.AlertCooldown())

	r.printStatus()
	r.printUsage()
}

func (r *REPL) printUsage() {
	fmt.Fprintln(r.out, "\n💡 Usage:")
	fmt.Fprintln(r.out, "   - Type what you want to do in natural language")
	fmt.Fprintln(r.out, "   - e.g. 'I need a break', '넷플릭스 보고 싶어', '커피 마시러 가자'")
	fmt.Fprintln(r.out, "   - 'status' shows the current state")
	fmt.Fprintln(r.out, "   - 'history' lists recent breaks")
	fmt.Fprintln(r.out, "   - 'exit' quits")
}

func (r *REPL) printStatus() {
	snap := r.states.Snapshot()

	fmt.Fprintln(r.out, "\n📊 Current Status:")
	r.statusColor.Fprintf(r.out, "   Stress Level: %d/100 (%s)\n", snap.Stress, tool.StressStatus(snap.Stress))
	r.statusColor.Fprintf(r.out, "   Boss Alert Level: %d/5 (%s)\n", snap.AlertLevel, tool.BossStatus(snap.AlertLevel))
}

func (r *REPL) printHistory() {
	entries := r.breaks.Recent(historyWindow)
	if len(entries) == 0 {
		fmt.Fprintln(r.out, "\nNo breaks taken yet. You've earned one.")
		return
	}

	fmt.Fprintf(r.out, "\n🗒  Recent breaks (%d of %d):\n", len(entries), r.breaks.Len())
	for _, e := range entries {
		noticed := ""
		if e.AlertRaised {
			noticed = " (boss noticed)"
		}
		fmt.Fprintf(r.out, "   %s  %-18s -%d stress → %d/100, alert %d/5%s\n",
			e.Timestamp.Format("15:04:05"), e.Tool, e.Reduction, e.Stress, e.AlertLevel, noticed)
	}
}

func (r *REPL) printNoMatch() {
	r.errColor.Fprintln(r.out, "❓ I couldn't understand that. Try something like:")
	fmt.Fprintln(r.out, "   - 'I need a break' (take a break)")
	fmt.Fprintln(r.out, "   - '넷플릭스 보고 싶어' (watch Netflix)")
	fmt.Fprintln(r.out, "   - '커피 마시러 가자' (coffee mission)")
	fmt.Fprintln(r.out, "   - 'status' (check current state)")
}
