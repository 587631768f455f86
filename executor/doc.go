// Package executor runs break activities against the gauge store as one
// logical transaction: penalty gate, stress reduction, alert roll,
// snapshot. Callers receive a structured Result; rendering it into
// user-facing text is the tool and REPL layers' concern.
package executor
