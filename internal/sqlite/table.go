// Shared row helpers for the table accessors.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/atelier/pkg/types"
)

// scanner abstracts *sql.Row and *sql.Rows so hydrate helpers work with both.
type scanner interface {
	Scan(dest ...any) error
}

// boolToInt converts a bool to its SQLite INTEGER representation.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// requireAffected maps a zero-row UPDATE/DELETE result to ErrNotFound.
func requireAffected(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("id %d: %w", id, types.ErrNotFound)
	}
	return nil
}
