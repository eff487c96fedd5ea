package ports

import "github.com/fatkhur1960/ocypus-digital/internal/domain"

// HistoryStore persists readings for later inspection. Writes are
// best-effort; a failed write never stops the monitor.
type HistoryStore interface {
	WriteReadings(readings []domain.TemperatureReading) error
	Name() string
}
