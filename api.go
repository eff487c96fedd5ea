// Package ocypus mirrors host temperature readings onto the Ocypus Iota L24
// USB HID display, retrying transparently through device disconnects and
// sensor failures.
package ocypus

import (
	"github.com/sirupsen/logrus"

	base "github.com/fatkhur1960/ocypus-digital/pkg/ocypus"
)

// Re-exported errors for convenience.
var ErrChannelDisplayClosed = base.ErrChannelDisplayClosed

// Type aliases so consumers can import github.com/fatkhur1960/ocypus-digital
// directly.
type (
	Config        = base.Config
	MetricsConfig = base.MetricsConfig
	HistoryConfig = base.HistoryConfig
	Runtime       = base.Runtime
	Option        = base.Option
	Reading       = base.Reading
	Report        = base.Report
	Unit          = base.Unit
	SensorKind    = base.SensorKind
	Sensor        = base.Sensor
	Display       = base.Display
	HistoryStore  = base.HistoryStore
	Observability = base.Observability
	Field         = base.Field
	AlertEvent    = base.AlertEvent
	ReportFunc    = base.ReportFunc
)

// Config helpers.
func LoadConfig(path string) (*Config, error) {
	return base.LoadConfig(path)
}

func DefaultConfig() *Config {
	return base.DefaultConfig()
}

// Runtime builders.
func Conf(path string, opts ...Option) (*Runtime, error) {
	return base.Conf(path, opts...)
}

func NewRuntime(cfg *Config, opts ...Option) (*Runtime, error) {
	return base.NewRuntime(cfg, opts...)
}

// Dependency overrides.
func WithSensor(s Sensor) Option {
	return base.WithSensor(s)
}

func WithDisplay(d Display) Option {
	return base.WithDisplay(d)
}

func WithHistory(h HistoryStore) Option {
	return base.WithHistory(h)
}

func WithObservability(obs Observability) Option {
	return base.WithObservability(obs)
}

func WithLogger(l *logrus.Logger) Option {
	return base.WithLogger(l)
}

// Display adapters.
func NewCallbackDisplay(name string, fn ReportFunc) Display {
	return base.NewCallbackDisplay(name, fn)
}

func NewChannelDisplay(name string, buffer int) (Display, <-chan Report, func()) {
	return base.NewChannelDisplay(name, buffer)
}
