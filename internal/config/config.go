package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/dwain-barnes/uk-ons-mcp-server/client/ons"
)

// Configuration holds the server settings read from the environment
type Configuration struct {
	APIURL    string        `envconfig:"ONS_API_URL"`
	Timeout   time.Duration `envconfig:"ONS_API_TIMEOUT"`
	UserAgent string        `envconfig:"ONS_USER_AGENT"`
	HTTPAddr  string        `envconfig:"MCP_HTTP_ADDR"`
	LogLevel  string        `envconfig:"LOG_LEVEL"`
}

// Get loads an optional .env file from envFiles (default ".env") and then reads
// the environment over the defaults.
func Get(envFiles ...string) (*Configuration, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := &Configuration{
		APIURL:    ons.DefaultBaseURL,
		Timeout:   ons.DefaultTimeout,
		UserAgent: ons.DefaultUserAgent,
		LogLevel:  "info",
	}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ClientConfig returns the ONS client settings
func (c Configuration) ClientConfig() ons.Config {
	return ons.Config{
		BaseURL:   c.APIURL,
		Timeout:   c.Timeout,
		UserAgent: c.UserAgent,
	}
}

// Level maps LogLevel to a slog level, falling back to info.
func (c Configuration) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Configuration) String() string {
	b, _ := json.Marshal(c)
	return string(b)
}
