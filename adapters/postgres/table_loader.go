// Package postgres loads prediction tables from PostgreSQL.
package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"fairlens/domain/core"
	"fairlens/domain/frame"
)

// Connect opens and pings a PostgreSQL connection.
func Connect(databaseURL string) (*sqlx.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is required")
	}
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// TableLoader reads a prediction table from a PostgreSQL relation. It only
// ever issues SELECTs; metrics are never written back.
type TableLoader struct {
	db      *sqlx.DB
	table   string
	columns []string
}

// NewTableLoader creates a loader for the given relation. An empty column
// list selects every column.
func NewTableLoader(db *sqlx.DB, table string, columns []string) *TableLoader {
	return &TableLoader{db: db, table: table, columns: columns}
}

// Load selects the requested columns into a Frame. SQL NULLs become missing
// values; numeric types become numeric values; everything else is kept as a
// string.
func (l *TableLoader) Load(ctx context.Context) (*frame.Frame, error) {
	rows, err := l.db.QueryxContext(ctx, l.buildQuery())
	if err != nil {
		return nil, fmt.Errorf("failed to query table %s: %w", l.table, err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read column names: %w", err)
	}

	columns := make([]frame.Series, len(names))
	for i, name := range names {
		columns[i] = frame.Series{Name: name}
	}

	for rows.Next() {
		cells, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		for i, cell := range cells {
			columns[i].Values = append(columns[i].Values, cellValue(cell))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	if len(columns) == 0 || columns[0].Len() == 0 {
		return nil, core.ErrEmptyTable
	}
	return frame.New(columns...)
}

func (l *TableLoader) buildQuery() string {
	cols := "*"
	if len(l.columns) > 0 {
		quoted := make([]string, len(l.columns))
		for i, c := range l.columns {
			quoted[i] = pq.QuoteIdentifier(c)
		}
		cols = strings.Join(quoted, ", ")
	}
	return fmt.Sprintf("SELECT %s FROM %s", cols, pq.QuoteIdentifier(l.table))
}

// cellValue converts a driver value into a typed cell. Drivers hand text
// columns back as []byte.
func cellValue(raw interface{}) frame.Value {
	switch v := raw.(type) {
	case []byte:
		return frame.FromAny(string(v))
	default:
		return frame.FromAny(v)
	}
}
