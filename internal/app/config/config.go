package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fatkhur1960/ocypus-digital/internal/domain"
)

// Fatal configuration errors. Monitoring must never start with any of these.
var (
	ErrInvalidUnit       = errors.New("invalid temperature unit")
	ErrInvalidSensor     = errors.New("invalid sensor kind")
	ErrInvalidInterval   = errors.New("interval must be a positive number of seconds")
	ErrInvalidThresholds = errors.New("low threshold must be below high threshold")
)

// Config is read once at startup and shared read-only afterwards. Thresholds
// are always in Celsius regardless of the display unit.
type Config struct {
	Unit            string        `yaml:"unit"`
	IntervalSeconds int           `yaml:"interval_seconds"`
	HighThreshold   float64       `yaml:"high_threshold"`
	LowThreshold    float64       `yaml:"low_threshold"`
	AlertsEnabled   bool          `yaml:"alerts_enabled"`
	Sensor          string        `yaml:"sensor"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`

	Metrics MetricsConfig `yaml:"metrics"`
	History HistoryConfig `yaml:"history"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// HistoryConfig enables the optional Postgres reading log when ConnString is
// set.
type HistoryConfig struct {
	ConnString string `yaml:"conn_string"`
	Table      string `yaml:"table"`
}

func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a config with every field at its default.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

func (c *Config) ApplyDefaults() {
	if c.Unit == "" {
		c.Unit = "c"
	}
	if c.IntervalSeconds == 0 {
		c.IntervalSeconds = 1
	}
	if c.HighThreshold == 0 {
		c.HighThreshold = 80
	}
	if c.LowThreshold == 0 {
		c.LowThreshold = 20
	}
	if c.Sensor == "" {
		c.Sensor = "cpu"
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = 5 * time.Second
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = ":9100"
	}
	if c.History.Table == "" {
		c.History.Table = "readings"
	}
}

func (c *Config) Validate() error {
	if _, err := domain.ParseUnit(c.Unit); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidUnit, c.Unit)
	}
	if _, err := domain.ParseSensorKind(c.Sensor); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidSensor, c.Sensor)
	}
	if c.IntervalSeconds <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidInterval, c.IntervalSeconds)
	}
	if c.AlertsEnabled && c.LowThreshold >= c.HighThreshold {
		return fmt.Errorf("%w: low=%.1f high=%.1f", ErrInvalidThresholds, c.LowThreshold, c.HighThreshold)
	}
	return nil
}

// DisplayUnit returns the parsed unit. Validate must have passed.
func (c *Config) DisplayUnit() domain.Unit {
	u, _ := domain.ParseUnit(c.Unit)
	return u
}

// SensorKind returns the parsed sensor kind. Validate must have passed.
func (c *Config) SensorKind() domain.SensorKind {
	k, _ := domain.ParseSensorKind(c.Sensor)
	return k
}

func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}
