package sensors

import (
	"context"
	"errors"
	"testing"
)

func TestBindPicksFirstAvailable(t *testing.T) {
	run := &fakeRunner{
		available: map[string]bool{"amd-smi": true, "rocm-smi": true},
	}
	s, err := Bind(gpuBackends(run))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name() != "gpu/amd-smi" {
		t.Fatalf("expected gpu/amd-smi to win, got %s", s.Name())
	}
}

func TestBindNoneAvailable(t *testing.T) {
	run := &fakeRunner{}
	_, err := Bind(gpuBackends(run))
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestBindStaysBoundAfterReadFailure(t *testing.T) {
	run := &fakeRunner{
		available: map[string]bool{"nvidia-smi": true, "rocm-smi": true},
		errs:      map[string]error{"nvidia-smi": ErrUnavailable},
	}
	s, err := Bind(gpuBackends(run))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name() != "gpu/nvidia-smi" {
		t.Fatalf("expected gpu/nvidia-smi, got %s", s.Name())
	}
	// A read failure reports an error but the bound backend does not change;
	// rocm-smi is never consulted.
	if _, err := s.Read(context.Background()); err == nil {
		t.Fatalf("expected read error")
	}
	for _, call := range run.calls {
		if call == "rocm-smi" {
			t.Fatalf("bound backend must not fall through to rocm-smi")
		}
	}
}

func TestNvidiaSMIRead(t *testing.T) {
	run := &fakeRunner{output: map[string]string{"nvidia-smi": "63\n"}}
	s := &nvidiaSMI{run: run}
	v, err := s.Read(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 63.0 {
		t.Fatalf("expected 63.0, got %f", v)
	}
}

func TestNvidiaSMIReadMultiGPU(t *testing.T) {
	run := &fakeRunner{output: map[string]string{"nvidia-smi": "48\n72\n"}}
	s := &nvidiaSMI{run: run}
	v, err := s.Read(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 48.0 {
		t.Fatalf("expected first GPU only, got %f", v)
	}
}

func TestAMDSMIRead(t *testing.T) {
	out := `GPU: 0
	TEMPERATURE:
		edge: 52 °C
		hotspot: 61 °C
`
	run := &fakeRunner{output: map[string]string{"amd-smi": out}}
	s := &amdSMI{run: run}
	v, err := s.Read(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 52.0 {
		t.Fatalf("expected edge temperature 52.0, got %f", v)
	}
}

func TestAMDSMIReadNoEdgeLine(t *testing.T) {
	run := &fakeRunner{output: map[string]string{"amd-smi": "GPU: 0\n"}}
	s := &amdSMI{run: run}
	_, err := s.Read(context.Background())
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestSensorsGPURead(t *testing.T) {
	out := `Adapter: PCI adapter
edge:         +49.0°C
junction:     +52.0°C
`
	run := &fakeRunner{output: map[string]string{"sensors": out}}
	s := &sensorsGPU{run: run}
	v, err := s.Read(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 49.0 {
		t.Fatalf("expected edge 49.0, got %f", v)
	}
}
