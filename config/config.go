package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all Verdex server configuration.
type Config struct {
	// Listen is the dev-mode bind address.
	Listen string `yaml:"listen"`

	// Domain enables production TLS via Let's Encrypt when set.
	Domain string `yaml:"domain"`

	// CertDir caches issued certificates across restarts.
	CertDir string `yaml:"cert_dir"`

	// DevMode serves plain HTTP on Listen and skips the Domain check.
	DevMode bool `yaml:"dev_mode"`

	// DataFile is the catalog CSV path.
	DataFile string `yaml:"data_file"`

	// DefaultK is the partition count of the startup clustering.
	DefaultK int `yaml:"default_k"`

	// ClusterCache memoizes recomputed clusterings for the process lifetime.
	ClusterCache bool `yaml:"cluster_cache"`

	// AllowedOrigins lists CORS origins; "*" allows any.
	AllowedOrigins []string `yaml:"allowed_origins"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the development configuration.
func Default() *Config {
	return &Config{
		Listen:         ":8080",
		CertDir:        "certs",
		DevMode:        true,
		DataFile:       "plants.csv",
		DefaultK:       5,
		ClusterCache:   true,
		AllowedOrigins: []string{"*"},
		LogLevel:       "info",
	}
}

// Load reads a YAML config file over the defaults. A missing file is not an
// error: defaults plus environment overrides apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies VERDEX_* environment variable overrides on top
// of whatever the file set.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("VERDEX_LISTEN"); v != "" {
		c.Listen = v
	}
	if v := os.Getenv("VERDEX_DOMAIN"); v != "" {
		c.Domain = v
	}
	if v := os.Getenv("VERDEX_CERT_DIR"); v != "" {
		c.CertDir = v
	}
	if v := os.Getenv("VERDEX_DEV_MODE"); v != "" {
		c.DevMode = v == "true" || v == "1"
	}
	if v := os.Getenv("VERDEX_DATA_FILE"); v != "" {
		c.DataFile = v
	}
	if v := os.Getenv("VERDEX_DEFAULT_K"); v != "" {
		if k, err := strconv.Atoi(v); err == nil {
			c.DefaultK = k
		}
	}
	if v := os.Getenv("VERDEX_CLUSTER_CACHE"); v != "" {
		c.ClusterCache = v == "true" || v == "1"
	}
	if v := os.Getenv("VERDEX_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.AllowedOrigins = origins
	}
	if v := os.Getenv("VERDEX_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// ValidLogLevels lists the accepted log levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the configuration before the server starts.
func (c *Config) Validate() error {
	if c.DataFile == "" {
		return fmt.Errorf("data_file not configured")
	}
	if c.DefaultK < 1 {
		return fmt.Errorf("default_k must be at least 1, got %d", c.DefaultK)
	}
	if !c.DevMode && c.Domain == "" {
		return fmt.Errorf("production mode requires a domain (set domain or dev_mode: true)")
	}

	valid := false
	for _, l := range ValidLogLevels {
		if c.LogLevel == l {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.LogLevel, ValidLogLevels)
	}
	return nil
}
