// Package config loads the alarmclock configuration.
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the alarmclock configuration file.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Alarms  AlarmsConfig  `yaml:"alarms"`
}

// LoggingConfig selects the slog level and handler.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// MetricsConfig toggles Prometheus collectors on the registry.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// AlarmsConfig holds wall-clock times in HH:MM form.
type AlarmsConfig struct {
	Morning          string `yaml:"morning" validate:"required,datetime=15:04"`
	Evening          string `yaml:"evening" validate:"required,datetime=15:04"`
	SnoozeMinutes    int    `yaml:"snooze_minutes" validate:"gte=0,lte=60"`
	ClearAfterFiring bool   `yaml:"clear_after_firing"`
}

var validate = validator.New()

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Alarms: AlarmsConfig{
			Morning:          "07:00",
			Evening:          "19:30",
			SnoozeMinutes:    9,
			ClearAfterFiring: true,
		},
	}
}

// Load reads configuration from file and applies environment variable overrides.
// An empty path starts from Default.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("invalid environment override: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the struct tags and reports the first offending field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		e := errs[0]
		return fmt.Errorf("%s: failed on '%s' (value %v)", e.Namespace(), e.Tag(), e.Value())
	}
	return err
}

// applyEnvOverrides checks for environment variables with ALARMCLOCK_ prefix
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("ALARMCLOCK_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("ALARMCLOCK_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := os.Getenv("ALARMCLOCK_METRICS_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("ALARMCLOCK_METRICS_ENABLED: %w", err)
		}
		cfg.Metrics.Enabled = enabled
	}
	if v := os.Getenv("ALARMCLOCK_MORNING"); v != "" {
		cfg.Alarms.Morning = v
	}
	if v := os.Getenv("ALARMCLOCK_EVENING"); v != "" {
		cfg.Alarms.Evening = v
	}
	if v := os.Getenv("ALARMCLOCK_SNOOZE_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ALARMCLOCK_SNOOZE_MINUTES: %w", err)
		}
		cfg.Alarms.SnoozeMinutes = minutes
	}
	return nil
}

// Snooze returns the snooze interval as a duration
func (a *AlarmsConfig) Snooze() time.Duration {
	return time.Duration(a.SnoozeMinutes) * time.Minute
}

// On returns the time of the given HH:MM alarm on day's date, in day's location.
func On(day time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid alarm time %q: %w", clock, err)
	}
	y, m, d := day.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

// Dump writes an example configuration to the provided writer
func Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Default()); err != nil {
		return fmt.Errorf("failed to encode example config: %w", err)
	}
	return enc.Close()
}
