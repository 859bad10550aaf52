// Package config loads the run configuration for azdns.
//
// Settings come from the process environment (optionally seeded from a
// .env file by the CLI), with an optional YAML file overriding the
// non-secret settings. [Load] returns a validated [Config]; missing or
// malformed settings are reported as [*ConfigError] before any provider
// call is made.
package config
