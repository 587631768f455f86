// Package activity defines break activity profiles: the reduction range,
// label and presentation strings for each slacking technique the agent
// can perform, plus the keyword table that maps free-text requests onto a
// profile in interactive mode.
package activity
