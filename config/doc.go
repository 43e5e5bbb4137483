// Package config loads and validates agent configuration.
//
// Configuration comes from three layers, later layers winning: built-in
// defaults, an optional JSON file, and PULSE_* environment variables
// (PULSE_AGENT_ID, PULSE_SIGNING_KEY, PULSE_SERVER_PORT, ...).
// Load applies all three and validates the result; a config that
// passes Validate is safe to hand to the transport and security
// packages without further checking.
//
// Duration fields are JSON numbers in nanoseconds, matching
// time.Duration's native JSON representation.
package config
