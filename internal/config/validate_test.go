package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		ClientID:          "client",
		ClientSecret:      "secret",
		TenantID:          "tenant",
		SubscriptionID:    "sub",
		Location:          "eastus",
		PropagationPolicy: PolicyFixed,
		PropagationDelay:  2 * time.Minute,
		BindMaxAttempts:   10,
		BindInitialDelay:  15 * time.Second,
		BindMaxDelay:      time.Minute,
		KeyOutput:         "azdns_admin_key",
		ContactEmail:      "test@gmail.com",
		ConsentIP:         "192.0.2.1",
		LogLevel:          "info",
		LogFormat:         LogFormatConsole,
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{name: "valid"},
		{name: "missing tenant", mutate: func(c *Config) { c.TenantID = "" }, field: "TENANT_ID"},
		{name: "empty location", mutate: func(c *Config) { c.Location = "" }, field: "location"},
		{name: "unknown policy", mutate: func(c *Config) { c.PropagationPolicy = "hope" }, field: "propagation.policy"},
		{name: "negative delay", mutate: func(c *Config) { c.PropagationDelay = -time.Second }, field: "propagation.delay"},
		{
			name: "poll without attempts",
			mutate: func(c *Config) {
				c.PropagationPolicy = PolicyPoll
				c.BindMaxAttempts = 0
			},
			field: "propagation.max_attempts",
		},
		{
			name: "poll with inverted delays",
			mutate: func(c *Config) {
				c.PropagationPolicy = PolicyPoll
				c.BindMaxDelay = time.Second
			},
			field: "propagation.max_delay",
		},
		{
			name: "key file and generate",
			mutate: func(c *Config) {
				c.AdminKeyFile = "id.pub"
				c.GenerateAdminKey = true
			},
			field: "admin_key",
		},
		{name: "bad consent ip", mutate: func(c *Config) { c.ConsentIP = "localhost" }, field: "contact.consent_ip"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, field: "log.level"},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "xml" }, field: "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}

			err := cfg.Validate()
			if tt.field == "" {
				require.NoError(t, err)
				return
			}

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr), "expected ConfigError, got %v", err)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestValidate_FixedPolicyIgnoresBindSettings(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.BindMaxAttempts = 0
	assert.NoError(t, cfg.Validate())
}
