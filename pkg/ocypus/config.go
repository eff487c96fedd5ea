package ocypus

import (
	"github.com/fatkhur1960/ocypus-digital/internal/app/config"
	"github.com/fatkhur1960/ocypus-digital/internal/domain"
	"github.com/fatkhur1960/ocypus-digital/internal/ports"
)

// Config re-exports the root configuration struct so embedders can construct
// or modify it programmatically.
type Config = config.Config

type (
	// MetricsConfig configures the metrics HTTP server.
	MetricsConfig = config.MetricsConfig
	// HistoryConfig configures the optional Postgres reading log.
	HistoryConfig = config.HistoryConfig
)

type (
	// Reading is one timestamped temperature observation.
	Reading = domain.TemperatureReading
	// Report is the 64-byte HID output report sent to the panel.
	Report = domain.Report
	// Unit is the on-device display unit.
	Unit = domain.Unit
	// SensorKind names the temperature source family.
	SensorKind = domain.SensorKind
)

type (
	// Sensor reads a Celsius temperature from one concrete backend.
	Sensor = ports.Sensor
	// Display delivers encoded reports to the panel.
	Display = ports.Display
	// HistoryStore persists readings for later inspection.
	HistoryStore = ports.HistoryStore
	// Observability emits metrics, structured logs, and alert events.
	Observability = ports.Observability
	// Field is a structured log field.
	Field = ports.Field
	// AlertEvent describes one edge-triggered threshold transition.
	AlertEvent = ports.AlertEvent
)

// LoadConfig loads and validates YAML configuration from disk.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}

// DefaultConfig returns a config with every field at its default.
func DefaultConfig() *Config {
	return config.Default()
}
