package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the main configuration struct combining all sub-configs
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Economy  EconomyConfig  `mapstructure:"economy"`
	Spatial  SpatialConfig  `mapstructure:"spatial"`
	Daemon   DaemonConfig   `mapstructure:"daemon"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// EconomyConfig holds the colony's Open Question parameters for mint/tax
// policy (spec §9, decisions 1 and 3).
type EconomyConfig struct {
	// Credits minted per point of controller upgrade delivered.
	MintPerUpgradePoint float64 `mapstructure:"mint_per_upgrade_point" validate:"gte=0"`

	// Credits taxed per tick from an idle corp's balance. Zero by default.
	IdleTaxPerTick float64 `mapstructure:"idle_tax_per_tick" validate:"gte=0"`

	// Haul-corp resale margin over acquisition cost. Loaded and validated
	// here only: the haul corp does not read this field and applies its
	// own fixed margin of 0.2.
	HaulMargin float64 `mapstructure:"haul_margin" validate:"gte=0"`
}

// SpatialConfig holds the colony's Open Question parameters for the
// spatial core (spec §9, decision 2).
type SpatialConfig struct {
	// Exclude source-keeper rooms from the distance transform / territory
	// assignment entirely, rather than modeling their guard behavior.
	ExcludeSourceKeeperRooms bool `mapstructure:"exclude_source_keeper_rooms"`
}

// LoadConfig loads configuration from multiple sources with priority:
// 1. Environment variables (highest priority)
// 2. Config file (config.yaml)
// 3. Defaults (lowest priority)
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("spatial.exclude_source_keeper_rooms", true)

	// Set config file details
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/colony")
	}

	// Enable environment variable reading
	v.SetEnvPrefix("COLONY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (optional - don't error if missing)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK - we'll use env vars and defaults
	}

	// Special handling for DATABASE_URL environment variable
	// This allows users to set the full connection string without the COLONY_ prefix
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		v.Set("database.url", dbURL)
	}

	// Create config struct and unmarshal
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Apply defaults for any missing values
	SetDefaults(&cfg)

	// Validate configuration
	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadConfigOrDefault loads configuration or returns a default config on error
func LoadConfigOrDefault(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		// Return default configuration
		defaultCfg := &Config{Spatial: SpatialConfig{ExcludeSourceKeeperRooms: true}}
		SetDefaults(defaultCfg)
		return defaultCfg
	}
	return cfg
}

// MustLoadConfig loads configuration and panics on error (for use in main.go)
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}
