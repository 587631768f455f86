// Package mcp implements the Model Context Protocol server side over a
// line-delimited JSON-RPC 2.0 stdio transport. The server exposes the
// registered tools through initialize / tools/list / tools/call and keeps
// stdout exclusively for protocol frames; all diagnostics go to the
// logger (stderr).
package mcp
