package ports

import "github.com/fatkhur1960/ocypus-digital/internal/domain"

// Display delivers encoded reports to the panel. Implementations own
// reconnection; Send is best-effort per tick and a failure must leave the
// implementation ready to retry on the next call.
type Display interface {
	Send(r domain.Report) error
	Close() error
}
