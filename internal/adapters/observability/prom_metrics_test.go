package observability

import (
	"io"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"

	"github.com/fatkhur1960/ocypus-digital/internal/ports"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestPromObsMetrics(t *testing.T) {
	origReg := prometheus.DefaultRegisterer
	origGatherer := prometheus.DefaultGatherer
	t.Cleanup(func() {
		prometheus.DefaultRegisterer = origReg
		prometheus.DefaultGatherer = origGatherer
	})

	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg

	obs := NewPromObs(quietLogger())

	obs.IncCounter("ocypus_readings_total", 5)
	if got := testutil.ToFloat64(obs.counters["ocypus_readings_total"]); got != 5 {
		t.Fatalf("expected readings counter 5, got %f", got)
	}

	obs.IncCounter("ocypus_display_clamped_total", 2)
	if got := testutil.ToFloat64(obs.counters["ocypus_display_clamped_total"]); got != 2 {
		t.Fatalf("expected clamp counter 2, got %f", got)
	}

	obs.SetGauge("ocypus_temperature_celsius", 54.5)
	if got := testutil.ToFloat64(obs.gauges["ocypus_temperature_celsius"]); got != 54.5 {
		t.Fatalf("expected temperature gauge 54.5, got %f", got)
	}

	obs.ObserveLatency("ocypus_sensor_read_seconds", 0.02)
	hCollector := obs.histos["ocypus_sensor_read_seconds"].(prometheus.Collector)
	if samples := testutil.CollectAndCount(hCollector); samples != 1 {
		t.Fatalf("expected read latency histogram to record 1 sample, got %d", samples)
	}

	obs.RecordAlert(ports.AlertEvent{Kind: ports.AlertAboveHigh, Celsius: 83, Threshold: 80})
	obs.RecordAlert(ports.AlertEvent{Kind: ports.AlertNormal, Celsius: 79, Threshold: 80})
	if got := testutil.ToFloat64(obs.counters["ocypus_alerts_total"]); got != 2 {
		t.Fatalf("expected alert counter 2, got %f", got)
	}
}

func TestPromObsUnknownMetricIgnored(t *testing.T) {
	origReg := prometheus.DefaultRegisterer
	origGatherer := prometheus.DefaultGatherer
	t.Cleanup(func() {
		prometheus.DefaultRegisterer = origReg
		prometheus.DefaultGatherer = origGatherer
	})

	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg

	obs := NewPromObs(quietLogger())

	// Unknown names are dropped instead of panicking mid-tick.
	obs.IncCounter("no_such_counter", 1)
	obs.SetGauge("no_such_gauge", 1)
	obs.ObserveLatency("no_such_histogram", 1)
}
