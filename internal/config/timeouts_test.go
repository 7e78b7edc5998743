package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadTimeouts_Defaults(t *testing.T) {
	timeouts := LoadTimeouts()

	assert.Equal(t, 2*time.Minute, timeouts.Phase)
	assert.Equal(t, 5*time.Minute, timeouts.Namespace)
	assert.Equal(t, 5, timeouts.HealthMaxAttempts)
	assert.Equal(t, 10*time.Second, timeouts.HealthInterval)
	assert.Equal(t, 30*time.Second, timeouts.RecheckWait)
}

func TestLoadTimeouts_EnvOverrides(t *testing.T) {
	t.Setenv("KUBESWEEP_TIMEOUT_PHASE", "45s")
	t.Setenv("KUBESWEEP_HEALTH_MAX_ATTEMPTS", "2")
	t.Setenv("KUBESWEEP_RECHECK_WAIT", "5s")

	timeouts := LoadTimeouts()

	assert.Equal(t, 45*time.Second, timeouts.Phase)
	assert.Equal(t, 2, timeouts.HealthMaxAttempts)
	assert.Equal(t, 5*time.Second, timeouts.RecheckWait)
	// Untouched values keep their defaults.
	assert.Equal(t, 5*time.Minute, timeouts.Namespace)
}

func TestLoadTimeouts_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("KUBESWEEP_TIMEOUT_PHASE", "soon")
	t.Setenv("KUBESWEEP_HEALTH_MAX_ATTEMPTS", "many")

	timeouts := LoadTimeouts()

	assert.Equal(t, 2*time.Minute, timeouts.Phase)
	assert.Equal(t, 5, timeouts.HealthMaxAttempts)
}
