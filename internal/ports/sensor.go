package ports

import "context"

// Sensor reads a temperature in Celsius from one concrete backend.
type Sensor interface {
	Name() string
	// Probe is a cheap availability check with no side effects beyond a
	// single lookup. Resolution happens once at startup; backends are never
	// re-probed mid-run.
	Probe() bool
	Read(ctx context.Context) (float64, error)
}
