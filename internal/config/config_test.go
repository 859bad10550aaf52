package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func credentials() map[string]string {
	return map[string]string{
		"CLIENT_ID":       "client",
		"CLIENT_SECRET":   "secret",
		"TENANT_ID":       "tenant",
		"SUBSCRIPTION_ID": "sub-123",
	}
}

func withEnv(extra map[string]string) envconfig.Lookuper {
	env := credentials()
	for k, v := range extra {
		env[k] = v
	}
	return envconfig.MapLookuper(env)
}

func TestLoadWith_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadWith(context.Background(), "", withEnv(nil))
	require.NoError(t, err)

	assert.Equal(t, "sub-123", cfg.SubscriptionID)
	assert.Equal(t, "eastus", cfg.Location)
	assert.Equal(t, PolicyFixed, cfg.PropagationPolicy)
	assert.Equal(t, 2*time.Minute, cfg.PropagationDelay)
	assert.Equal(t, 10, cfg.BindMaxAttempts)
	assert.Equal(t, 15*time.Second, cfg.BindInitialDelay)
	assert.Equal(t, time.Minute, cfg.BindMaxDelay)
	assert.False(t, cfg.Pause)
	assert.Equal(t, "test@gmail.com", cfg.ContactEmail)
	assert.Equal(t, "192.0.2.1", cfg.ConsentIP)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, LogFormatConsole, cfg.LogFormat)
	require.NotNil(t, cfg.Timeouts)
	assert.Equal(t, 30*time.Minute, cfg.Timeouts.Create)
}

func TestLoadWith_MissingCredentials(t *testing.T) {
	t.Parallel()

	_, err := LoadWith(context.Background(), "", envconfig.MapLookuper(map[string]string{
		"CLIENT_ID": "client",
	}))
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "CLIENT_SECRET", cfgErr.Field)

	for _, name := range []string{"CLIENT_SECRET", "TENANT_ID", "SUBSCRIPTION_ID"} {
		assert.Contains(t, err.Error(), name)
	}
	assert.NotContains(t, err.Error(), "CLIENT_ID:")
}

func TestLoadWith_EnvOverrides(t *testing.T) {
	t.Parallel()

	cfg, err := LoadWith(context.Background(), "", withEnv(map[string]string{
		"AZDNS_LOCATION":           "westeurope",
		"AZDNS_PROPAGATION_POLICY": "poll",
		"AZDNS_PROPAGATION_DELAY":  "30s",
		"AZDNS_BIND_MAX_ATTEMPTS":  "4",
		"AZDNS_PAUSE":              "true",
		"AZDNS_TIMEOUT_DELETE":     "45m",
		"AZDNS_POLL_FREQUENCY":     "1s",
	}))
	require.NoError(t, err)

	assert.Equal(t, "westeurope", cfg.Location)
	assert.Equal(t, PolicyPoll, cfg.PropagationPolicy)
	assert.Equal(t, 30*time.Second, cfg.PropagationDelay)
	assert.Equal(t, 4, cfg.BindMaxAttempts)
	assert.True(t, cfg.Pause)
	assert.Equal(t, 45*time.Minute, cfg.Timeouts.Delete)
	assert.Equal(t, time.Second, cfg.Timeouts.PollFrequency)
}

func TestLoadWith_FileOverlay(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "azdns.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
location: northeurope
propagation:
  policy: poll
  max_attempts: 3
  initial_delay: 5s
  max_delay: 20s
contact:
  email: ops@example.com
log:
  format: json
`), 0o600))

	cfg, err := LoadWith(context.Background(), path, withEnv(map[string]string{
		"AZDNS_LOCATION": "westus",
	}))
	require.NoError(t, err)

	assert.Equal(t, "northeurope", cfg.Location)
	assert.Equal(t, PolicyPoll, cfg.PropagationPolicy)
	assert.Equal(t, 3, cfg.BindMaxAttempts)
	assert.Equal(t, 5*time.Second, cfg.BindInitialDelay)
	assert.Equal(t, 20*time.Second, cfg.BindMaxDelay)
	assert.Equal(t, "ops@example.com", cfg.ContactEmail)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)
	// untouched settings keep their environment values
	assert.Equal(t, 2*time.Minute, cfg.PropagationDelay)
	assert.Equal(t, "secret", cfg.ClientSecret)
}

func TestLoadWith_FileErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		missing bool
	}{
		{name: "missing file", missing: true},
		{name: "unknown key", content: "client_secret: leaked\n"},
		{name: "bad duration", content: "propagation:\n  delay: soon\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "azdns.yaml")
			if !tt.missing {
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))
			}

			_, err := LoadWith(context.Background(), path, withEnv(nil))
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, "config file", cfgErr.Field)
		})
	}
}

func TestParseFile_Empty(t *testing.T) {
	t.Parallel()

	f, err := ParseFile(nil)
	require.NoError(t, err)
	assert.Nil(t, f.Location)
}

func TestConfig_Redacted(t *testing.T) {
	t.Parallel()

	cfg := Config{ClientID: "client", ClientSecret: "secret", SubscriptionID: "sub"}
	assert.Equal(t, "****", cfg.Redacted().ClientSecret)
	assert.Equal(t, "secret", cfg.ClientSecret)
	assert.NotContains(t, cfg.String(), "secret")
	assert.Contains(t, cfg.String(), "subscription=sub")
}
