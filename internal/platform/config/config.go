package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

var ErrInvalidLogLevel = errors.New("unsupported log level")

type Config struct {
	Environment string
	LogLevel    string
	PDFDir      string
}

// Load reads the runtime configuration from NOMINA_-prefixed environment
// variables. Every key has a default, so the tool runs with zero
// configuration.
func Load() Config {
	v := viper.New()
	v.SetEnvPrefix("NOMINA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("pdf.dir", "")

	return Config{
		Environment: v.GetString("app.env"),
		LogLevel:    v.GetString("log.level"),
		PDFDir:      v.GetString("pdf.dir"),
	}
}

func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("%w %q: NOMINA_LOG_LEVEL must be debug, info, warn or error", ErrInvalidLogLevel, c.LogLevel)
}

// SlogLevel maps the configured level to its slog equivalent.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
