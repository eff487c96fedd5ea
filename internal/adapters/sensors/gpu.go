package sensors

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatkhur1960/ocypus-digital/internal/ports"
)

// GPUBackends returns the vendor tools in priority order. The first backend
// whose Probe succeeds is bound for the whole run; a later read failure never
// re-resolves.
func GPUBackends(timeout time.Duration) []ports.Sensor {
	return gpuBackends(newExecRunner(timeout))
}

func gpuBackends(run runner) []ports.Sensor {
	return []ports.Sensor{
		&nvidiaSMI{run: run},
		&amdSMI{run: run},
		&rocmSMI{run: run},
		&sensorsGPU{run: run},
	}
}

type nvidiaSMI struct{ run runner }

func (s *nvidiaSMI) Name() string { return "gpu/nvidia-smi" }
func (s *nvidiaSMI) Probe() bool  { return s.run.look("nvidia-smi") }

func (s *nvidiaSMI) Read(ctx context.Context) (float64, error) {
	out, err := s.run.run(ctx, "nvidia-smi", "--query-gpu=temperature.gpu", "--format=csv,noheader,nounits")
	if err != nil {
		return 0, fmt.Errorf("nvidia-smi: %w", err)
	}
	line, _, _ := strings.Cut(strings.TrimSpace(out), "\n")
	return parseTemp("nvidia-smi", strings.TrimSpace(line))
}

type amdSMI struct{ run runner }

func (s *amdSMI) Name() string { return "gpu/amd-smi" }
func (s *amdSMI) Probe() bool  { return s.run.look("amd-smi") }

func (s *amdSMI) Read(ctx context.Context) (float64, error) {
	out, err := s.run.run(ctx, "amd-smi", "metric", "--temperature")
	if err != nil {
		return 0, fmt.Errorf("amd-smi: %w", err)
	}
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(strings.ToLower(line), "edge") {
			continue
		}
		if num, ok := extractNumber(line); ok {
			return parseTemp("amd-smi", num)
		}
	}
	return 0, fmt.Errorf("amd-smi: %w", ErrParse)
}

type rocmSMI struct{ run runner }

func (s *rocmSMI) Name() string { return "gpu/rocm-smi" }
func (s *rocmSMI) Probe() bool  { return s.run.look("rocm-smi") }

func (s *rocmSMI) Read(ctx context.Context) (float64, error) {
	out, err := s.run.run(ctx, "rocm-smi", "--showtemp")
	if err != nil {
		return 0, fmt.Errorf("rocm-smi: %w", err)
	}
	for _, line := range strings.Split(out, "\n") {
		if num, ok := extractNumber(line); ok {
			return parseTemp("rocm-smi", num)
		}
	}
	return 0, fmt.Errorf("rocm-smi: %w", ErrParse)
}

// sensorsGPU is the generic fallback: any lm-sensors line mentioning the GPU
// die.
type sensorsGPU struct{ run runner }

func (s *sensorsGPU) Name() string { return "gpu/sensors" }
func (s *sensorsGPU) Probe() bool  { return s.run.look("sensors") }

func (s *sensorsGPU) Read(ctx context.Context) (float64, error) {
	out, err := s.run.run(ctx, "sensors")
	if err != nil {
		return 0, fmt.Errorf("sensors: %w", err)
	}
	for _, line := range strings.Split(out, "\n") {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "gpu") && !strings.Contains(lower, "edge") && !strings.Contains(lower, "junction") {
			continue
		}
		if num, ok := extractNumber(line); ok {
			return parseTemp("sensors", num)
		}
	}
	return 0, fmt.Errorf("sensors: %w", ErrParse)
}

func parseTemp(tool, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %q", tool, ErrParse, raw)
	}
	return v, nil
}
