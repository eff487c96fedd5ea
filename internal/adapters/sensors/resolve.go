package sensors

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatkhur1960/ocypus-digital/internal/domain"
	"github.com/fatkhur1960/ocypus-digital/internal/ports"
)

// Bind probes candidates in priority order and returns the first available
// backend. The choice is final for the rest of the run so a transiently
// failing tool cannot cause flapping between backends.
func Bind(candidates []ports.Sensor) (ports.Sensor, error) {
	names := make([]string, 0, len(candidates))
	for _, s := range candidates {
		if s.Probe() {
			return s, nil
		}
		names = append(names, s.Name())
	}
	return nil, fmt.Errorf("%w: no backend available (tried %s)", ErrUnavailable, strings.Join(names, ", "))
}

// ForKind builds and binds the sensor for the configured kind.
func ForKind(kind domain.SensorKind, timeout time.Duration) (ports.Sensor, error) {
	switch kind {
	case domain.SensorGPU:
		return Bind(GPUBackends(timeout))
	default:
		cpu := NewCPUSensor(timeout)
		if !cpu.Probe() {
			return nil, fmt.Errorf("cpu: %w: sensors command not found", ErrUnavailable)
		}
		return cpu, nil
	}
}
