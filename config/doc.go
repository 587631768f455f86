// Package config resolves runtime settings from defaults, an optional
// config file, CHILLMCP_* environment variables and command-line flags,
// in that order of precedence. Invalid settings reject startup before
// any state is constructed.
package config
