// Package config provides Viper-based configuration loading for the battle
// trainer.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// AdvisorConfig holds the language-model consultation settings.
type AdvisorConfig struct {
	// Model is the Anthropic model identifier.
	Model string `mapstructure:"model"`
	// MaxTokens caps the length of a single advisor response.
	MaxTokens int64 `mapstructure:"max_tokens"`
	// Timeout bounds a single advisor call.
	Timeout time.Duration `mapstructure:"timeout"`
	// MaxRetries is the advisor attempt budget per turn.
	MaxRetries int `mapstructure:"max_retries"`
}

// EngineConfig holds decision engine settings.
type EngineConfig struct {
	// ActionWaitInterval is the polling interval while waiting for a
	// snapshot with legal actions.
	ActionWaitInterval time.Duration `mapstructure:"action_wait_interval"`
	// ActionWaitMax bounds the total wait for legal actions.
	ActionWaitMax time.Duration `mapstructure:"action_wait_max"`
	// CatalogPath optionally overrides the embedded move catalogue.
	CatalogPath string `mapstructure:"catalog_path"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Advisor AdvisorConfig `mapstructure:"advisor"`
	Engine  EngineConfig  `mapstructure:"engine"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateAdvisor(c.Advisor); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateEngine(c.Engine); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateAdvisor(a AdvisorConfig) error {
	var errs []string
	if a.Model == "" {
		errs = append(errs, "advisor.model must not be empty")
	}
	if a.MaxTokens < 1 {
		errs = append(errs, fmt.Sprintf("advisor.max_tokens must be >= 1, got %d", a.MaxTokens))
	}
	if a.Timeout <= 0 {
		errs = append(errs, "advisor.timeout must be positive")
	}
	if a.MaxRetries < 1 {
		errs = append(errs, fmt.Sprintf("advisor.max_retries must be >= 1, got %d", a.MaxRetries))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateEngine(e EngineConfig) error {
	var errs []string
	if e.ActionWaitInterval <= 0 {
		errs = append(errs, "engine.action_wait_interval must be positive")
	}
	if e.ActionWaitMax <= 0 {
		errs = append(errs, "engine.action_wait_max must be positive")
	}
	if e.ActionWaitInterval > e.ActionWaitMax {
		errs = append(errs, "engine.action_wait_interval must not exceed engine.action_wait_max")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with TRAINER_ prefix
	v.SetEnvPrefix("TRAINER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("advisor.model", "claude-3-5-haiku-latest")
	v.SetDefault("advisor.max_tokens", 256)
	v.SetDefault("advisor.timeout", "30s")
	v.SetDefault("advisor.max_retries", 3)

	v.SetDefault("engine.action_wait_interval", "100ms")
	v.SetDefault("engine.action_wait_max", "5s")
}
