package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// File is the YAML overlay. Only the fields present in the file are
// applied; credentials are never read from it.
type File struct {
	Location    *string `yaml:"location"`
	Propagation struct {
		Policy       *string        `yaml:"policy"`
		Delay        *time.Duration `yaml:"delay"`
		MaxAttempts  *int           `yaml:"max_attempts"`
		InitialDelay *time.Duration `yaml:"initial_delay"`
		MaxDelay     *time.Duration `yaml:"max_delay"`
	} `yaml:"propagation"`
	Pause    *bool `yaml:"pause"`
	AdminKey struct {
		File     *string `yaml:"file"`
		Generate *bool   `yaml:"generate"`
		Output   *string `yaml:"output"`
	} `yaml:"admin_key"`
	Contact struct {
		Email     *string `yaml:"email"`
		ConsentIP *string `yaml:"consent_ip"`
	} `yaml:"contact"`
	Telemetry struct {
		OTLPEndpoint   *string `yaml:"otlp_endpoint"`
		PushgatewayURL *string `yaml:"pushgateway_url"`
	} `yaml:"telemetry"`
	Log struct {
		Level  *string `yaml:"level"`
		Format *string `yaml:"format"`
	} `yaml:"log"`
}

// LoadFile reads and parses a YAML overlay file.
func LoadFile(path string) (*File, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Field: "config file", Reason: err.Error()}
	}
	return ParseFile(data)
}

// ParseFile parses YAML overlay content. Unknown keys are rejected.
func ParseFile(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ConfigError{Field: "config file", Reason: fmt.Sprintf("failed to parse yaml: %v", err)}
	}
	return &f, nil
}

func (f *File) apply(cfg *Config) {
	set(&cfg.Location, f.Location)
	set(&cfg.PropagationPolicy, f.Propagation.Policy)
	set(&cfg.PropagationDelay, f.Propagation.Delay)
	set(&cfg.BindMaxAttempts, f.Propagation.MaxAttempts)
	set(&cfg.BindInitialDelay, f.Propagation.InitialDelay)
	set(&cfg.BindMaxDelay, f.Propagation.MaxDelay)
	set(&cfg.Pause, f.Pause)
	set(&cfg.AdminKeyFile, f.AdminKey.File)
	set(&cfg.GenerateAdminKey, f.AdminKey.Generate)
	set(&cfg.KeyOutput, f.AdminKey.Output)
	set(&cfg.ContactEmail, f.Contact.Email)
	set(&cfg.ConsentIP, f.Contact.ConsentIP)
	set(&cfg.OTLPEndpoint, f.Telemetry.OTLPEndpoint)
	set(&cfg.PushgatewayURL, f.Telemetry.PushgatewayURL)
	set(&cfg.LogLevel, f.Log.Level)
	set(&cfg.LogFormat, f.Log.Format)
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
