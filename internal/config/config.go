// Package config handles configuration loading for finscope.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	FRED    FREDConfig    `mapstructure:"fred"    yaml:"fred"`
	SEC     SECConfig     `mapstructure:"sec"     yaml:"sec"`
	HTTP    HTTPConfig    `mapstructure:"http"    yaml:"http"`
	Output  OutputConfig  `mapstructure:"output"  yaml:"output"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// FREDConfig holds FRED API credentials.
type FREDConfig struct {
	APIKey string `mapstructure:"api_key" yaml:"api_key"`
}

// SECConfig holds SEC EDGAR settings.
type SECConfig struct {
	// UserAgent identifies the requester to EDGAR per SEC policy,
	// e.g. "acme research admin@acme.example".
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`
}

// HTTPConfig holds outbound HTTP client settings.
type HTTPConfig struct {
	TimeoutSec int `mapstructure:"timeout_sec" yaml:"timeout_sec"`
}

// OutputConfig holds CSV export settings.
type OutputConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"` // directory for --output files
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.finscope/config.yaml (home directory)
//  3. /etc/finscope/config.yaml (system)
//
// Environment variables override config file values.
// Format: FINSCOPE_<SECTION>_<KEY>, e.g., FINSCOPE_FRED_API_KEY.
// The bare FRED_API_KEY and SEC_USER_AGENT variables are honored too.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".finscope"))
	v.AddConfigPath("/etc/finscope")

	v.SetEnvPrefix("FINSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found — that's fine, use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("FINSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("http.timeout_sec", 30)
	v.SetDefault("output.dir", ".")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// overrideFromEnv explicitly reads sensitive keys from environment
// variables, accepting both prefixed and conventional bare names.
func overrideFromEnv(cfg *Config) {
	if key := os.Getenv("FINSCOPE_FRED_API_KEY"); key != "" {
		cfg.FRED.APIKey = key
	} else if key := os.Getenv("FRED_API_KEY"); key != "" {
		cfg.FRED.APIKey = key
	}
	if ua := os.Getenv("FINSCOPE_SEC_USER_AGENT"); ua != "" {
		cfg.SEC.UserAgent = ua
	} else if ua := os.Getenv("SEC_USER_AGENT"); ua != "" {
		cfg.SEC.UserAgent = ua
	}
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
