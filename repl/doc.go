// Package repl implements the interactive CLI mode: a readline loop that
// maps free-text input onto break activities via keyword matching and
// renders results, status reports and break history to the terminal.
package repl
