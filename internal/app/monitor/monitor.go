package monitor

import (
	"context"
	"time"

	"github.com/fatkhur1960/ocypus-digital/internal/domain"
	"github.com/fatkhur1960/ocypus-digital/internal/ports"
)

type alertLevel int

const (
	alertNormal alertLevel = iota
	alertAboveHigh
	alertBelowLow
)

// Params carries everything the loop needs. History may be nil.
type Params struct {
	Unit          domain.Unit
	Interval      time.Duration
	HighThreshold float64 // Celsius
	LowThreshold  float64 // Celsius
	AlertsEnabled bool

	Sensor  ports.Sensor
	Display ports.Display
	History ports.HistoryStore
	Obs     ports.Observability
}

// Monitor drives the poll → convert → encode → send cycle on a fixed
// interval. Ticks never overlap and a failed tick is logged and skipped, so
// the loop survives any sensor or device outage.
type Monitor struct {
	p     Params
	alert alertLevel
}

func New(p Params) *Monitor {
	return &Monitor{p: p}
}

// Run blocks until ctx is cancelled. Cancellation is observed at tick
// boundaries; in-flight work finishes first.
func (m *Monitor) Run(ctx context.Context) error {
	m.p.Obs.LogInfo("monitor_started",
		ports.Field{Key: "sensor", Value: m.p.Sensor.Name()},
		ports.Field{Key: "unit", Value: m.p.Unit.String()},
		ports.Field{Key: "interval", Value: m.p.Interval.String()})

	ticker := time.NewTicker(m.p.Interval)
	defer ticker.Stop()

	m.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			m.p.Obs.LogInfo("monitor_stopped")
			return nil
		case <-ticker.C:
			m.tick(ctx)
		}
	}
}

func (m *Monitor) tick(ctx context.Context) {
	start := time.Now()
	celsius, err := m.p.Sensor.Read(ctx)
	if err != nil {
		// A bad reading skips the device update and the alert evaluation;
		// a wrong alert is worse than a missed tick.
		m.p.Obs.IncCounter("ocypus_sensor_read_failures_total", 1)
		m.p.Obs.LogError("sensor_read_failed", err,
			ports.Field{Key: "sensor", Value: m.p.Sensor.Name()})
		return
	}
	m.p.Obs.ObserveLatency("ocypus_sensor_read_seconds", time.Since(start).Seconds())
	m.p.Obs.IncCounter("ocypus_readings_total", 1)
	m.p.Obs.SetGauge("ocypus_temperature_celsius", celsius)

	if m.p.History != nil {
		reading := domain.TemperatureReading{
			Celsius:   celsius,
			Source:    m.p.Sensor.Name(),
			Timestamp: time.Now(),
		}
		if err := m.p.History.WriteReadings([]domain.TemperatureReading{reading}); err != nil {
			m.p.Obs.LogError("history_write_failed", err,
				ports.Field{Key: "store", Value: m.p.History.Name()})
		}
	}

	displayValue := domain.ToDisplay(celsius, m.p.Unit)
	clamped, wasClamped := domain.ClampDisplay(displayValue)
	if wasClamped {
		m.p.Obs.IncCounter("ocypus_display_clamped_total", 1)
		m.p.Obs.LogWarn("display_value_clamped",
			ports.Field{Key: "value", Value: displayValue},
			ports.Field{Key: "clamped", Value: clamped})
	}
	m.p.Obs.SetGauge("ocypus_display_degrees", float64(clamped))

	if err := m.p.Display.Send(domain.EncodeReport(clamped)); err != nil {
		// Best-effort: the session has already torn itself down and the next
		// tick reconnects.
		m.p.Obs.IncCounter("ocypus_device_write_failures_total", 1)
		m.p.Obs.LogError("device_send_failed", err)
	}

	if m.p.AlertsEnabled {
		m.evaluateAlerts(celsius)
	}
}

// evaluateAlerts fires on state transitions only. Thresholds are in Celsius
// and compare against the unclamped reading.
func (m *Monitor) evaluateAlerts(celsius float64) {
	level := alertNormal
	switch {
	case celsius > m.p.HighThreshold:
		level = alertAboveHigh
	case celsius < m.p.LowThreshold:
		level = alertBelowLow
	}
	if level == m.alert {
		return
	}
	m.alert = level

	switch level {
	case alertAboveHigh:
		m.p.Obs.RecordAlert(ports.AlertEvent{Kind: ports.AlertAboveHigh, Celsius: celsius, Threshold: m.p.HighThreshold})
	case alertBelowLow:
		m.p.Obs.RecordAlert(ports.AlertEvent{Kind: ports.AlertBelowLow, Celsius: celsius, Threshold: m.p.LowThreshold})
	default:
		m.p.Obs.RecordAlert(ports.AlertEvent{Kind: ports.AlertNormal, Celsius: celsius})
	}
}
