package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/fatkhur1960/ocypus-digital/internal/ports"
)

type PromObs struct {
	log      *logrus.Logger
	counters map[string]prometheus.Counter
	gauges   map[string]prometheus.Gauge
	histos   map[string]prometheus.Observer
}

func NewPromObs(log *logrus.Logger) *PromObs {
	if log == nil {
		log = logrus.StandardLogger()
	}

	readings := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ocypus_readings_total",
		Help: "Sensor readings successfully taken.",
	})
	readFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ocypus_sensor_read_failures_total",
		Help: "Sensor reads that failed and skipped the tick.",
	})
	connects := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ocypus_device_connects_total",
		Help: "Successful device opens, including reconnects after a fault.",
	})
	faults := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ocypus_device_faults_total",
		Help: "Write failures that faulted the device session.",
	})
	writeFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ocypus_device_write_failures_total",
		Help: "Reports that could not be delivered to the device.",
	})
	clamps := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ocypus_display_clamped_total",
		Help: "Display values clamped to the representable digit range.",
	})
	alerts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ocypus_alerts_total",
		Help: "Edge-triggered threshold transitions, including back to normal.",
	})
	tempGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ocypus_temperature_celsius",
		Help: "Last temperature reading in Celsius.",
	})
	displayGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ocypus_display_degrees",
		Help: "Last value shown on the device, post clamp.",
	})
	readLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ocypus_sensor_read_seconds",
		Help:    "Latency of one sensor read.",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	})

	prometheus.MustRegister(readings, readFailures, connects, faults,
		writeFailures, clamps, alerts, tempGauge, displayGauge, readLatency)

	return &PromObs{
		log: log,
		counters: map[string]prometheus.Counter{
			"ocypus_readings_total":              readings,
			"ocypus_sensor_read_failures_total":  readFailures,
			"ocypus_device_connects_total":       connects,
			"ocypus_device_faults_total":         faults,
			"ocypus_device_write_failures_total": writeFailures,
			"ocypus_display_clamped_total":       clamps,
			"ocypus_alerts_total":                alerts,
		},
		gauges: map[string]prometheus.Gauge{
			"ocypus_temperature_celsius": tempGauge,
			"ocypus_display_degrees":     displayGauge,
		},
		histos: map[string]prometheus.Observer{
			"ocypus_sensor_read_seconds": readLatency,
		},
	}
}

func (p *PromObs) LogInfo(msg string, fields ...ports.Field) {
	p.log.WithFields(toLogrus(fields)).Info(msg)
}

func (p *PromObs) LogWarn(msg string, fields ...ports.Field) {
	p.log.WithFields(toLogrus(fields)).Warn(msg)
}

func (p *PromObs) LogError(msg string, err error, fields ...ports.Field) {
	entry := p.log.WithFields(toLogrus(fields))
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Error(msg)
}

func (p *PromObs) IncCounter(name string, v float64) {
	if c, ok := p.counters[name]; ok {
		c.Add(v)
	}
}

func (p *PromObs) ObserveLatency(name string, seconds float64) {
	if h, ok := p.histos[name]; ok {
		h.Observe(seconds)
	}
}

func (p *PromObs) SetGauge(name string, v float64) {
	if g, ok := p.gauges[name]; ok {
		g.Set(v)
	}
}

func (p *PromObs) RecordAlert(ev ports.AlertEvent) {
	p.IncCounter("ocypus_alerts_total", 1)
	entry := p.log.WithFields(logrus.Fields{
		"kind":      ev.Kind,
		"celsius":   ev.Celsius,
		"threshold": ev.Threshold,
	})
	if ev.Kind == ports.AlertNormal {
		entry.Info("temperature_normal")
		return
	}
	entry.Warn("temperature_alert")
}

func toLogrus(fields []ports.Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}
	return out
}

var _ ports.Observability = (*PromObs)(nil)
