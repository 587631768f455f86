// Package state owns the agent's two bounded gauges: the stress level
// and the boss alert level. A single Manager instance guards both gauges
// behind one mutex and runs the two autonomous timers (ambient stress
// drift, boss alert cooldown) that adjust them for the lifetime of the
// process.
package state
