package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadTimeouts_Defaults(t *testing.T) {
	t.Setenv("AZDNS_TIMEOUT_CREATE", "")
	t.Setenv("AZDNS_TIMEOUT_DELETE", "")
	t.Setenv("AZDNS_POLL_FREQUENCY", "")

	timeouts := LoadTimeouts()

	assert.Equal(t, 30*time.Minute, timeouts.Create)
	assert.Equal(t, 30*time.Minute, timeouts.Delete)
	assert.Equal(t, 10*time.Second, timeouts.PollFrequency)
	assert.Equal(t, DefaultTimeouts(), timeouts)
}

func TestLoadTimeouts_EnvVars(t *testing.T) {
	t.Setenv("AZDNS_TIMEOUT_CREATE", "5m")
	t.Setenv("AZDNS_TIMEOUT_DELETE", "1h")
	t.Setenv("AZDNS_POLL_FREQUENCY", "2s")

	timeouts := LoadTimeouts()

	assert.Equal(t, 5*time.Minute, timeouts.Create)
	assert.Equal(t, time.Hour, timeouts.Delete)
	assert.Equal(t, 2*time.Second, timeouts.PollFrequency)
}

func TestLoadTimeouts_InvalidValues(t *testing.T) {
	t.Setenv("AZDNS_TIMEOUT_CREATE", "invalid")
	t.Setenv("AZDNS_TIMEOUT_DELETE", "-5m")
	t.Setenv("AZDNS_POLL_FREQUENCY", "0s")

	timeouts := LoadTimeouts()

	assert.Equal(t, 30*time.Minute, timeouts.Create)
	assert.Equal(t, 30*time.Minute, timeouts.Delete)
	assert.Equal(t, 10*time.Second, timeouts.PollFrequency)
}
