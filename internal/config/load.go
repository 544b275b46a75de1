package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults double as the key registry: viper's AutomaticEnv only sees
	// keys it already knows about.
	v.SetDefault("engine.default_ayanamsha", "lahiri")
	v.SetDefault("engine.log_level", "info")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.size", 4096)
	v.SetDefault("cache.panchang_ttl", "30m")
	v.SetDefault("cache.muhurta_ttl", "2h")
	v.SetDefault("muhurta.step", "1h")
	v.SetDefault("muhurta.duration", "1h")
	v.SetDefault("muhurta.max_results", 20)

	v.SetConfigName("kaal")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("KAAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
