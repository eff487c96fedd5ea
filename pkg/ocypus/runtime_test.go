package ocypus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fatkhur1960/ocypus-digital/internal/app/config"
	"github.com/fatkhur1960/ocypus-digital/internal/domain"
	"github.com/fatkhur1960/ocypus-digital/internal/ports"
)

type stubSensor struct{ celsius float64 }

func (s *stubSensor) Name() string                                { return "stub" }
func (s *stubSensor) Probe() bool                                 { return true }
func (s *stubSensor) Read(ctx context.Context) (float64, error)   { return s.celsius, nil }

type stubDisplay struct{ reports []domain.Report }

func (d *stubDisplay) Send(r domain.Report) error { d.reports = append(d.reports, r); return nil }
func (d *stubDisplay) Close() error               { return nil }

type stubHistory struct{ rows int }

func (h *stubHistory) Name() string { return "stub" }
func (h *stubHistory) WriteReadings(rs []domain.TemperatureReading) error {
	h.rows += len(rs)
	return nil
}

type stubObservability struct{}

func (stubObservability) LogInfo(string, ...ports.Field)         {}
func (stubObservability) LogWarn(string, ...ports.Field)         {}
func (stubObservability) LogError(string, error, ...ports.Field) {}
func (stubObservability) IncCounter(string, float64)             {}
func (stubObservability) ObserveLatency(string, float64)         {}
func (stubObservability) SetGauge(string, float64)               {}
func (stubObservability) RecordAlert(ports.AlertEvent)           {}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Metrics.Addr = "127.0.0.1:0"
	return cfg
}

func TestNewRuntimeWithCustomAdapters(t *testing.T) {
	sensorStub := &stubSensor{celsius: 42}
	displayStub := &stubDisplay{}
	historyStub := &stubHistory{}
	obsStub := stubObservability{}

	rt, err := NewRuntime(
		testConfig(),
		WithSensor(sensorStub),
		WithDisplay(displayStub),
		WithHistory(historyStub),
		WithObservability(obsStub),
	)
	if err != nil {
		t.Fatalf("NewRuntime returned error: %v", err)
	}

	if rt.display != displayStub {
		t.Fatalf("expected custom display to be used")
	}
	if rt.obs != obsStub {
		t.Fatalf("expected custom observability to be used")
	}
	if rt.db != nil {
		t.Fatalf("expected db to be nil without a history conn string")
	}
}

func TestNewRuntimeNilConfig(t *testing.T) {
	if _, err := NewRuntime(nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
}

func TestNewRuntimeInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Unit = "kelvin"
	_, err := NewRuntime(cfg, WithSensor(&stubSensor{}), WithDisplay(&stubDisplay{}), WithObservability(stubObservability{}))
	if !errors.Is(err, config.ErrInvalidUnit) {
		t.Fatalf("expected ErrInvalidUnit, got %v", err)
	}
}

func TestRuntimeRunDeliversReports(t *testing.T) {
	displayStub := &stubDisplay{}

	rt, err := NewRuntime(
		testConfig(),
		WithSensor(&stubSensor{celsius: 30}),
		WithDisplay(displayStub),
		WithObservability(stubObservability{}),
	)
	if err != nil {
		t.Fatalf("NewRuntime returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- rt.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("runtime did not stop after cancel")
	}

	if len(displayStub.reports) == 0 {
		t.Fatalf("expected at least one report delivered")
	}
	if got := displayStub.reports[0].Digits(); got != 30 {
		t.Fatalf("expected 30 on the display, got %d", got)
	}
}
