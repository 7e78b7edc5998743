package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds all configurable timeout values.
// These values can be customized via environment variables.
type Timeouts struct {
	Phase             time.Duration // Timeout for one kind to reach zero after bulk delete
	Namespace         time.Duration // Timeout for namespace termination (cascading, slower)
	HealthMaxAttempts int           // Maximum control-plane readiness probes
	HealthInterval    time.Duration // Delay between readiness probes
	RecheckWait       time.Duration // Settling time before the recreation recheck
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - KUBESWEEP_TIMEOUT_PHASE (default: 2m)
//   - KUBESWEEP_TIMEOUT_NAMESPACE (default: 5m)
//   - KUBESWEEP_HEALTH_MAX_ATTEMPTS (default: 5)
//   - KUBESWEEP_HEALTH_INTERVAL (default: 10s)
//   - KUBESWEEP_RECHECK_WAIT (default: 30s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		Phase:             parseDuration("KUBESWEEP_TIMEOUT_PHASE", 2*time.Minute),
		Namespace:         parseDuration("KUBESWEEP_TIMEOUT_NAMESPACE", 5*time.Minute),
		HealthMaxAttempts: parseInt("KUBESWEEP_HEALTH_MAX_ATTEMPTS", 5),
		HealthInterval:    parseDuration("KUBESWEEP_HEALTH_INTERVAL", 10*time.Second),
		RecheckWait:       parseDuration("KUBESWEEP_RECHECK_WAIT", 30*time.Second),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return i
}
