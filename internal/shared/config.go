package shared

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
//
// Environment variables override file values; see ApplyEnv.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Cache    CacheConfig    `toml:"cache"`
	Auth     AuthConfig     `toml:"auth"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Limits   LimitsConfig   `toml:"limits"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Environment string `toml:"environment"` // "development" or "production"
	StaticDir   string `toml:"static_dir"`  // prebuilt frontend bundle, optional
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// CacheConfig contains cache store settings.
//
// An empty Path disables caching entirely.
type CacheConfig struct {
	Path string `toml:"path"`
}

// AuthConfig contains token issuance settings.
type AuthConfig struct {
	TokenSecret   string `toml:"token_secret"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
}

// CatalogConfig contains settings for the external music catalog provider.
type CatalogConfig struct {
	ProxyURL   string `toml:"proxy_url"`
	Region     string `toml:"region"`
	PlayerMode string `toml:"player_mode"` // EMBED or DIRECT, consumed by the frontend
}

// LimitsConfig contains per-client request quotas.
//
// Quota strings look like "60/m" or "200/h" (requests per second/minute/hour).
// AuthQuota applies to the register/login routes only.
type LimitsConfig struct {
	Quota     string `toml:"quota"`
	AuthQuota string `toml:"auth_quota"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.ApplyEnv()
	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	config.ApplyEnv()
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s: %w", path, err)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overrides file-sourced values with PLAYHEAD_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("PLAYHEAD_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("PLAYHEAD_ENV"); v != "" {
		c.Server.Environment = v
	}
	if v := os.Getenv("PLAYHEAD_STATIC_DIR"); v != "" {
		c.Server.StaticDir = v
	}
	if v := os.Getenv("PLAYHEAD_DATABASE"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("PLAYHEAD_CACHE"); v != "" {
		c.Cache.Path = v
	}
	if v := os.Getenv("PLAYHEAD_TOKEN_SECRET"); v != "" {
		c.Auth.TokenSecret = v
	}
	if v := os.Getenv("PLAYHEAD_PROXY_URL"); v != "" {
		c.Catalog.ProxyURL = v
	}
	if v := os.Getenv("PLAYHEAD_REGION"); v != "" {
		c.Catalog.Region = v
	}
	if v := os.Getenv("PLAYHEAD_PLAYER_MODE"); v != "" {
		c.Catalog.PlayerMode = v
	}
	if v := os.Getenv("PLAYHEAD_RATE_LIMIT"); v != "" {
		c.Limits.Quota = v
	}
}

// Production reports whether the server runs in production mode.
func (c *Config) Production() bool {
	return c.Server.Environment == "production"
}
