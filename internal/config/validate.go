package config

import (
	"errors"
	"fmt"
	"net"

	"github.com/rs/zerolog"
)

// requiredEnv lists the credential variables that must be set.
var requiredEnv = []struct {
	name string
	get  func(*Config) string
}{
	{"CLIENT_ID", func(c *Config) string { return c.ClientID }},
	{"CLIENT_SECRET", func(c *Config) string { return c.ClientSecret }},
	{"TENANT_ID", func(c *Config) string { return c.TenantID }},
	{"SUBSCRIPTION_ID", func(c *Config) string { return c.SubscriptionID }},
}

// Validate checks the configuration. Every problem found is reported; the
// returned error matches *ConfigError via errors.As.
func (c *Config) Validate() error {
	var errs []error
	for _, req := range requiredEnv {
		if req.get(c) == "" {
			errs = append(errs, &ConfigError{Field: req.name, Reason: "is required"})
		}
	}

	if c.Location == "" {
		errs = append(errs, &ConfigError{Field: "location", Reason: "must not be empty"})
	}

	errs = append(errs, c.validatePropagation()...)

	if c.AdminKeyFile != "" && c.GenerateAdminKey {
		errs = append(errs, &ConfigError{Field: "admin_key", Reason: "file and generate are mutually exclusive"})
	}
	if c.GenerateAdminKey && c.KeyOutput == "" {
		errs = append(errs, &ConfigError{Field: "admin_key.output", Reason: "is required when generating a key"})
	}

	if net.ParseIP(c.ConsentIP) == nil {
		errs = append(errs, &ConfigError{Field: "contact.consent_ip", Reason: fmt.Sprintf("%q is not an IP address", c.ConsentIP)})
	}
	if c.ContactEmail == "" {
		errs = append(errs, &ConfigError{Field: "contact.email", Reason: "must not be empty"})
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, &ConfigError{Field: "log.level", Reason: err.Error()})
	}
	switch c.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		errs = append(errs, &ConfigError{Field: "log.format", Reason: fmt.Sprintf("unknown format %q (want console or json)", c.LogFormat)})
	}

	return errors.Join(errs...)
}

func (c *Config) validatePropagation() []error {
	var errs []error
	switch c.PropagationPolicy {
	case PolicyFixed, PolicyPoll:
	default:
		errs = append(errs, &ConfigError{Field: "propagation.policy", Reason: fmt.Sprintf("unknown policy %q (want fixed or poll)", c.PropagationPolicy)})
	}
	if c.PropagationDelay < 0 {
		errs = append(errs, &ConfigError{Field: "propagation.delay", Reason: "must not be negative"})
	}
	if c.PropagationPolicy == PolicyPoll {
		if c.BindMaxAttempts < 1 {
			errs = append(errs, &ConfigError{Field: "propagation.max_attempts", Reason: "must be at least 1"})
		}
		if c.BindInitialDelay <= 0 {
			errs = append(errs, &ConfigError{Field: "propagation.initial_delay", Reason: "must be positive"})
		}
		if c.BindMaxDelay < c.BindInitialDelay {
			errs = append(errs, &ConfigError{Field: "propagation.max_delay", Reason: "must not be below initial_delay"})
		}
	}
	return errs
}
