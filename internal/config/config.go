package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, the matching engine and batch
// verification.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Matcher contains the tunables of the matching engine
	Matcher struct {
		// AddressMatchThreshold is the minimum weighted address score (0-100) accepted as a match
		AddressMatchThreshold float64 `env:"MATCHER_ADDRESS_MATCH_THRESHOLD" env-default:"70" yaml:"addressMatchThreshold"`
		// SignificantTokenLength is the rune length an address token must exceed to count toward token overlap
		SignificantTokenLength int `env:"MATCHER_SIGNIFICANT_TOKEN_LENGTH" env-default:"3" yaml:"significantTokenLength"`
		// AddressIgnoreTerms overrides the vocabulary removed from addresses during normalization;
		// empty keeps the built-in vocabulary
		AddressIgnoreTerms []string `env:"MATCHER_ADDRESS_IGNORE_TERMS" env-separator:"," yaml:"addressIgnoreTerms"`
	} `yaml:"matcher"`

	// Verify contains batch verification related configurations
	Verify struct {
		// Workers is the maximum number of identities verified concurrently within a batch
		Workers int `env:"VERIFY_WORKERS" env-default:"8" yaml:"workers"`
	} `yaml:"verify"`
}

// Load receives the path for a yaml config file and returns a filled Config
// struct. When the file does not exist, configuration is read from the
// environment alone so the CLI works without a config file on disk.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
