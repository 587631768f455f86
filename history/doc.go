// Package history keeps a volatile, in-process record of completed break
// activities. It exists for the interactive mode's history command;
// nothing is persisted across restarts.
package history
