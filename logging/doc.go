// Package logging provides a minimal logging interface and adapters for ChillMCP.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that the server, executor and timers use for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - ChillLogger, a slog-backed implementation with text and json handlers
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// All built-in handlers write to stderr by default: stdout is reserved for
// the MCP stdio transport, and a stray log line there would corrupt the
// JSON-RPC framing.
package logging
