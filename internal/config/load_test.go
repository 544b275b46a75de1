package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing
func setupEnv(t *testing.T, envVars map[string]string) func() {
	// Save current environment values
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	// Set new environment variables
	for name, value := range envVars {
		err := os.Setenv(name, value)
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	// Return cleanup function
	return func() {
		// Restore original environment
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// TestLoadDefaults verifies that Load sets the documented defaults when no
// environment variables are present.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"KAAL_ENGINE_DEFAULT_AYANAMSHA": "",
		"KAAL_ENGINE_LOG_LEVEL":         "",
		"KAAL_CACHE_SIZE":               "",
		"KAAL_MUHURTA_STEP":             "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, "lahiri", cfg.Engine.DefaultAyanamsha)
	assert.Equal(t, "info", cfg.Engine.LogLevel)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 4096, cfg.Cache.Size)
	assert.Equal(t, 30*time.Minute, cfg.Cache.PanchangTTL)
	assert.Equal(t, 2*time.Hour, cfg.Cache.MuhurtaTTL)
	assert.Equal(t, time.Hour, cfg.Muhurta.Step)
	assert.Equal(t, time.Hour, cfg.Muhurta.Duration)
	assert.Equal(t, 20, cfg.Muhurta.MaxResults)
}

// TestLoadFromEnv verifies that Load reads overrides from the environment.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"KAAL_ENGINE_DEFAULT_AYANAMSHA": "raman",
		"KAAL_ENGINE_LOG_LEVEL":         "debug",
		"KAAL_CACHE_ENABLED":            "false",
		"KAAL_CACHE_SIZE":               "128",
		"KAAL_CACHE_PANCHANG_TTL":       "5m",
		"KAAL_MUHURTA_STEP":             "15m",
		"KAAL_MUHURTA_MAX_RESULTS":      "5",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg)
	assert.Equal(t, "raman", cfg.Engine.DefaultAyanamsha)
	assert.Equal(t, "debug", cfg.Engine.LogLevel)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 128, cfg.Cache.Size)
	assert.Equal(t, 5*time.Minute, cfg.Cache.PanchangTTL)
	assert.Equal(t, 15*time.Minute, cfg.Muhurta.Step)
	assert.Equal(t, 5, cfg.Muhurta.MaxResults)
}

// TestLoadValidationErrors verifies that invalid settings are rejected.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		errorSubstring string
	}{
		{
			name: "Unknown ayanamsha system",
			envVars: map[string]string{
				"KAAL_ENGINE_DEFAULT_AYANAMSHA": "tropical",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"KAAL_ENGINE_LOG_LEVEL": "loud",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Zero cache size",
			envVars: map[string]string{
				"KAAL_CACHE_SIZE": "0",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Excessive max results",
			envVars: map[string]string{
				"KAAL_MUHURTA_MAX_RESULTS": "5000",
			},
			errorSubstring: "validation failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, tc.envVars)
			defer cleanup()

			cfg, err := Load()

			assert.Error(t, err, "Load() should return an error with invalid configuration")
			if err != nil {
				assert.Contains(t, err.Error(), tc.errorSubstring)
			}
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
