// Display-order management for reorderable collections.
// Implements: prd004-ordering (next-order assignment, atomic bulk reorder);
//
//	docs/ARCHITECTURE § Ordering.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/atelier/pkg/types"
)

// nextOrder returns one greater than the current maximum sort_order in the
// given table, or 0 for an empty table. Inactive rows still count toward the
// maximum so order keys are never reused. The caller's transaction scopes
// both the read and the subsequent insert, closing the race between
// concurrent creates.
func nextOrder(tx *sql.Tx, table string) (int, error) {
	var max sql.NullInt64
	if err := tx.QueryRow("SELECT MAX(sort_order) FROM " + table).Scan(&max); err != nil {
		return 0, fmt.Errorf("reading max sort order: %w", err)
	}
	if !max.Valid {
		return 0, nil
	}
	return int(max.Int64) + 1, nil
}

// reorder applies all assignments to the given table in a single transaction:
// either every assignment lands or none do. A concurrent list read never
// observes a partially applied ordering. An assignment naming a missing row
// rolls the whole batch back with ErrNotFound.
func reorder(db *sql.DB, table, idColumn string, assignments []types.OrderAssignment) error {
	if len(assignments) == 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning reorder transaction: %w", err)
	}
	defer tx.Rollback()

	stmt := fmt.Sprintf("UPDATE %s SET sort_order = ? WHERE %s = ?", table, idColumn)
	for _, a := range assignments {
		res, err := tx.Exec(stmt, a.Order, a.ID)
		if err != nil {
			return fmt.Errorf("assigning order %d to %d: %w", a.Order, a.ID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("checking reorder result: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("reordering %s %d: %w", table, a.ID, types.ErrNotFound)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing reorder: %w", err)
	}
	return nil
}
