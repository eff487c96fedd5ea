package sensors

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/fatkhur1960/ocypus-digital/internal/ports"
)

// cpuPatterns cover the common lm-sensors labels, tried in order: Intel
// package temperature, AMD die temperature, AMD control temperature, and a
// generic fallback.
var cpuPatterns = []*regexp.Regexp{
	regexp.MustCompile(`Package id 0:\s*\+?([0-9]+(?:\.[0-9]+)?)°C`),
	regexp.MustCompile(`Tdie:\s*\+?([0-9]+(?:\.[0-9]+)?)°C`),
	regexp.MustCompile(`Tctl:\s*\+?([0-9]+(?:\.[0-9]+)?)°C`),
	regexp.MustCompile(`temp1:\s*\+?([0-9]+(?:\.[0-9]+)?)°C`),
}

// CPUSensor reads the package temperature from lm-sensors text output.
type CPUSensor struct {
	run runner
}

func NewCPUSensor(timeout time.Duration) *CPUSensor {
	return &CPUSensor{run: newExecRunner(timeout)}
}

func (s *CPUSensor) Name() string { return "cpu" }

func (s *CPUSensor) Probe() bool { return s.run.look("sensors") }

func (s *CPUSensor) Read(ctx context.Context) (float64, error) {
	out, err := s.run.run(ctx, "sensors")
	if err != nil {
		return 0, fmt.Errorf("cpu: %w", err)
	}
	return parseCPUTemp(out)
}

func parseCPUTemp(out string) (float64, error) {
	for _, re := range cpuPatterns {
		m := re.FindStringSubmatch(out)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, fmt.Errorf("cpu: %w: %q", ErrParse, m[1])
		}
		return v, nil
	}
	return 0, fmt.Errorf("cpu: %w", ErrParse)
}

var _ ports.Sensor = (*CPUSensor)(nil)
