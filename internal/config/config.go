package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Propagation policy names.
const (
	PolicyFixed = "fixed"
	PolicyPoll  = "poll"
)

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config holds the runtime configuration for a provisioning run.
type Config struct {
	// Service principal credentials. Never read from the YAML overlay.
	ClientID       string `env:"CLIENT_ID"`
	ClientSecret   string `env:"CLIENT_SECRET"`
	TenantID       string `env:"TENANT_ID"`
	SubscriptionID string `env:"SUBSCRIPTION_ID"`

	Location string `env:"AZDNS_LOCATION,default=eastus"`

	PropagationPolicy string        `env:"AZDNS_PROPAGATION_POLICY,default=fixed"`
	PropagationDelay  time.Duration `env:"AZDNS_PROPAGATION_DELAY,default=2m"`
	BindMaxAttempts   int           `env:"AZDNS_BIND_MAX_ATTEMPTS,default=10"`
	BindInitialDelay  time.Duration `env:"AZDNS_BIND_INITIAL_DELAY,default=15s"`
	BindMaxDelay      time.Duration `env:"AZDNS_BIND_MAX_DELAY,default=1m"`

	Pause bool `env:"AZDNS_PAUSE,default=false"`

	AdminKeyFile     string `env:"AZDNS_ADMIN_KEY_FILE"`
	GenerateAdminKey bool   `env:"AZDNS_GENERATE_ADMIN_KEY,default=false"`
	KeyOutput        string `env:"AZDNS_KEY_OUTPUT,default=azdns_admin_key"`

	ContactEmail string `env:"AZDNS_CONTACT_EMAIL,default=test@gmail.com"`
	ConsentIP    string `env:"AZDNS_CONSENT_IP,default=192.0.2.1"`

	OTLPEndpoint   string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	PushgatewayURL string `env:"AZDNS_PUSHGATEWAY_URL"`

	LogLevel  string `env:"AZDNS_LOG_LEVEL,default=info"`
	LogFormat string `env:"AZDNS_LOG_FORMAT,default=console"`

	Timeouts *Timeouts
}

// Load returns a Config populated from the environment, overlaid with the
// YAML file at path when path is non-empty, and validated.
func Load(ctx context.Context, path string) (*Config, error) {
	return LoadWith(ctx, path, envconfig.OsLookuper())
}

// LoadWith is Load with an explicit variable source.
func LoadWith(ctx context.Context, path string, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, &ConfigError{Field: "environment", Reason: err.Error()}
	}

	if path != "" {
		overlay, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		overlay.apply(&cfg)
	}

	cfg.Timeouts = loadTimeouts(lookupFunc(lookuper))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Redacted returns a copy that is safe to log.
func (c Config) Redacted() Config {
	if c.ClientSecret != "" {
		c.ClientSecret = "****"
	}
	return c
}

// String implements fmt.Stringer without exposing the client secret.
func (c Config) String() string {
	r := c.Redacted()
	return fmt.Sprintf("subscription=%s tenant=%s client=%s location=%s policy=%s",
		r.SubscriptionID, r.TenantID, r.ClientID, r.Location, r.PropagationPolicy)
}

func lookupFunc(l envconfig.Lookuper) func(string) string {
	return func(key string) string {
		v, _ := l.Lookup(key)
		return v
	}
}
