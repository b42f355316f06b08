package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Queryer is the slice of database/sql shared by *sql.DB and *sql.Tx, so id
// allocation can run inside whichever transaction owns the insert.
type Queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// NextID returns one more than the highest id the engine has ever assigned
// for table, defaulting to 1 for a never-written table. The engine keeps the
// high-water mark across deletes, so ids stay strictly increasing even after
// rows are removed. Single-writer only: a concurrent deployment must switch
// to engine-assigned keys instead.
func NextID(ctx context.Context, q Queryer, table string) (int64, error) {
	var seq int64
	err := q.QueryRowContext(ctx,
		`SELECT seq FROM sqlite_sequence WHERE name = ?`, table,
	).Scan(&seq)

	if err == sql.ErrNoRows {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read sequence for %s: %w", table, err)
	}

	return seq + 1, nil
}
