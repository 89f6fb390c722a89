// Package config handles the XDG configuration directory and durable
// client state. The persisted token is the only durable credential: its
// absence means the session is anonymous.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// AppName is the application directory name.
	AppName = "taskcli"

	// TokenFile holds the raw credential token issued at login.
	TokenFile = "token"

	// LogFile is the rotating log file name inside the config directory.
	LogFile = "taskcli.log"

	// BaseURLEnv overrides the backend base URL.
	BaseURLEnv = "TASKCLI_API_URL"

	// DefaultBaseURL is the paired backend's API root.
	DefaultBaseURL = "http://localhost:5000/api"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// BaseURL is the backend API root.
	BaseURL string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/taskcli or $HOME/.config/taskcli.
// A .env file in the working directory is honored for TASKCLI_API_URL.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	// Best effort: a missing .env is the normal case.
	_ = godotenv.Load()

	base := os.Getenv(BaseURLEnv)
	if base == "" {
		base = DefaultBaseURL
	}
	return &Config{Dir: dir, BaseURL: base}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// TokenPath returns the path to the stored token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// LogPath returns the path to the log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.Dir, LogFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasToken checks if a persisted token exists.
func (c *Config) HasToken() bool {
	return c.Token() != ""
}

// Token returns the persisted token string, or "" when anonymous.
// The stored value is exactly the string the server returned at login.
func (c *Config) Token() string {
	data, err := os.ReadFile(c.TokenPath())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SaveToken persists the token with mode 0600.
func (c *Config) SaveToken(token string) error {
	if err := c.EnsureDir(); err != nil {
		return err
	}
	return os.WriteFile(c.TokenPath(), []byte(token), 0600)
}

// RemoveToken deletes the token file. Removing an absent token is not an
// error; logout is idempotent.
func (c *Config) RemoveToken() error {
	err := os.Remove(c.TokenPath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
