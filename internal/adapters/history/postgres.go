package history

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/fatkhur1960/ocypus-digital/internal/domain"
	"github.com/fatkhur1960/ocypus-digital/internal/ports"
)

// PostgresStore appends readings to a plain Postgres/TimescaleDB table.
type PostgresStore struct {
	db    *sql.DB
	table string
}

func NewPostgresStore(db *sql.DB, table string) *PostgresStore {
	return &PostgresStore{db: db, table: table}
}

func (p *PostgresStore) Name() string { return "postgres" }

func (p *PostgresStore) WriteReadings(readings []domain.TemperatureReading) error {
	if len(readings) == 0 {
		return nil
	}

	// Idempotent via unique key, so a retried tick never duplicates rows.
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(p.table)
	b.WriteString(" (source, ts, celsius) VALUES ")

	args := make([]any, 0, len(readings)*3)
	for i, r := range readings {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(fmt.Sprintf("($%d,$%d,$%d)", len(args)+1, len(args)+2, len(args)+3))
		args = append(args, r.Source, r.Timestamp, r.Celsius)
	}
	b.WriteString(" ON CONFLICT (source, ts) DO NOTHING")

	_, err := p.db.Exec(b.String(), args...)
	return err
}

var _ ports.HistoryStore = (*PostgresStore)(nil)
