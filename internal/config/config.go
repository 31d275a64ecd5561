// Package config loads demopage settings from flags, DEMOPAGE_* environment
// variables and an optional .demopage.yaml file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"demopage/internal/delayed"
	"demopage/internal/telemetry"
)

// Keys understood by Load.
const (
	KeyDelay       = "delay"
	KeyStatus      = "status"
	KeyLogFile     = "log_file"
	KeyLogLevel    = "log_level"
	KeyServiceName = "service_name"
)

// Config holds runtime settings.
type Config struct {
	Delay       time.Duration // delayed action duration
	Status      string        // initial table status filter ("" = all rows)
	LogFile     string        // TUI log destination; empty discards logs
	LogLevel    slog.Level
	ServiceName string // OpenTelemetry service.name
}

// Load reads configuration. flags may be nil; bound flags override the file
// and environment only when set on the command line.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetDefault(KeyDelay, delayed.DefaultDelay.String())
	v.SetDefault(KeyStatus, "")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyServiceName, telemetry.DefaultServiceName)

	v.SetConfigName(".demopage") // .yaml is implicit
	v.SetEnvPrefix("DEMOPAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if override := os.Getenv("DEMOPAGE_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for _, key := range []string{KeyDelay, KeyStatus, KeyLogFile, KeyLogLevel} {
			if f := flags.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", f.Name, err)
				}
			}
		}
	}

	delay, err := time.ParseDuration(v.GetString(KeyDelay))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyDelay, err)
	}
	if delay < 0 {
		return Config{}, fmt.Errorf("%s: must not be negative, got %s", KeyDelay, delay)
	}

	level, err := ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Config{}, err
	}

	return Config{
		Delay:       delay,
		Status:      v.GetString(KeyStatus),
		LogFile:     v.GetString(KeyLogFile),
		LogLevel:    level,
		ServiceName: v.GetString(KeyServiceName),
	}, nil
}

// ParseLevel maps debug|info|warn|error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("%s: %w", KeyLogLevel, err)
	}
	return level, nil
}

// AddFlags registers the flags Load understands.
func AddFlags(flags *pflag.FlagSet) {
	flags.Duration("delay", delayed.DefaultDelay, "delayed action duration")
	flags.String("status", "", "initial table status filter (empty shows all rows)")
	flags.String("log-file", "", "write logs to this file")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
}
