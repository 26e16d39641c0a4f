package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete abroadctl configuration.
type Config struct {
	API         APIConfig         `mapstructure:"api"`
	Credentials CredentialsConfig `mapstructure:"credentials"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// APIConfig controls how the backend is reached.
type APIConfig struct {
	// BaseURL is the backend origin, without a trailing slash.
	BaseURL string `mapstructure:"base_url"`
	// Timeout bounds every request, including multipart uploads.
	Timeout time.Duration `mapstructure:"timeout"`
}

// CredentialsConfig controls where the session token and cached user record
// are persisted between runs.
type CredentialsConfig struct {
	Dir string `mapstructure:"dir"`
}

// LoggingConfig controls log verbosity and destination.
type LoggingConfig struct {
	// Level is one of DEBUG, INFO, WARN, ERROR.
	Level string `mapstructure:"level"`
	// File is the log file path. Empty means stderr.
	File string `mapstructure:"file"`
}

// ConfigDir returns the abroadctl configuration directory.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".abroadctl"
	}
	return filepath.Join(home, ".abroadctl")
}

// SetDefaults registers default values for all configuration keys so they
// are available even without a config file.
func SetDefaults() {
	viper.SetDefault("api.base_url", "http://localhost:5000")
	viper.SetDefault("api.timeout", 10*time.Second)
	viper.SetDefault("credentials.dir", filepath.Join(ConfigDir(), "creds"))
	viper.SetDefault("logging.level", "INFO")
	viper.SetDefault("logging.file", "")
}

// Load reads the configuration from viper into a Config, normalizing the
// base URL.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = 10 * time.Second
	}
	return &cfg, nil
}
