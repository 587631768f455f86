// Package testutil provides small helpers shared by package tests,
// primarily deterministic random sources so gauge draws are exactly
// reproducible.
package testutil
