package config

import (
	"os"
	"time"
)

// Timeouts holds the provider wait settings.
// These values can be customized via environment variables.
type Timeouts struct {
	Create        time.Duration // Upper bound for any create-and-wait call
	Delete        time.Duration // Upper bound for the resource group delete
	PollFrequency time.Duration // Interval between long-running operation polls
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - AZDNS_TIMEOUT_CREATE (default: 30m)
//   - AZDNS_TIMEOUT_DELETE (default: 30m)
//   - AZDNS_POLL_FREQUENCY (default: 10s)
func LoadTimeouts() *Timeouts {
	return loadTimeouts(os.Getenv)
}

// DefaultTimeouts returns the timeouts used when nothing is configured.
func DefaultTimeouts() *Timeouts {
	return loadTimeouts(func(string) string { return "" })
}

func loadTimeouts(getenv func(string) string) *Timeouts {
	return &Timeouts{
		Create:        parseDuration(getenv, "AZDNS_TIMEOUT_CREATE", 30*time.Minute),
		Delete:        parseDuration(getenv, "AZDNS_TIMEOUT_DELETE", 30*time.Minute),
		PollFrequency: parseDuration(getenv, "AZDNS_POLL_FREQUENCY", 10*time.Second),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set, not positive or parsing fails, the default value is returned.
func parseDuration(getenv func(string) string, envVar string, defaultVal time.Duration) time.Duration {
	val := getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}

	return d
}
