package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Engine  EngineConfig  `mapstructure:"engine" validate:"required"`
	Cache   CacheConfig   `mapstructure:"cache" validate:"required"`
	Muhurta MuhurtaConfig `mapstructure:"muhurta" validate:"required"`
}

// EngineConfig contains the core calculation settings.
type EngineConfig struct {
	// DefaultAyanamsha is the sidereal system used when a request leaves
	// the system unspecified.
	DefaultAyanamsha string `mapstructure:"default_ayanamsha" validate:"required,oneof=lahiri raman krishnamurti yukteshwar surya_siddhanta fagan_bradley deluce pushya_paksha galactic_center true_citra"`
	LogLevel         string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// CacheConfig contains the result-cache settings. A zero TTL keeps entries
// until capacity eviction.
type CacheConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	Size        int           `mapstructure:"size" validate:"required,gt=0"`
	PanchangTTL time.Duration `mapstructure:"panchang_ttl" validate:"min=0"`
	MuhurtaTTL  time.Duration `mapstructure:"muhurta_ttl" validate:"min=0"`
}

// MuhurtaConfig contains defaults for muhurta searches.
type MuhurtaConfig struct {
	Step       time.Duration `mapstructure:"step" validate:"required,gt=0"`
	Duration   time.Duration `mapstructure:"duration" validate:"required,gt=0"`
	MaxResults int           `mapstructure:"max_results" validate:"required,gt=0,lte=200"`
}
