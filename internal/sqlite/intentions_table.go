// Intention table accessor for the SQLite store.
// Implements: prd003-content-entities R3 (intentions CRUD);
//             prd004-ordering (order assignment on create, bulk reorder).
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/atelier/pkg/types"
)

// Compile-time interface check: intentionsTable must implement IntentionTable.
var _ types.IntentionTable = (*intentionsTable)(nil)

type intentionsTable struct {
	backend *Backend
}

const intentionColumns = "intention_id, text, active, sort_order"

// List returns intentions ordered by sort order ascending, ties broken by
// insertion order. The public read filters to active rows; the admin read
// passes includeInactive.
func (it *intentionsTable) List(includeInactive bool) ([]types.Intention, error) {
	db, err := it.backend.conn()
	if err != nil {
		return nil, err
	}

	query := "SELECT " + intentionColumns + " FROM intentions"
	if !includeInactive {
		query += " WHERE active = 1"
	}
	query += " ORDER BY sort_order ASC, intention_id ASC"

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("listing intentions: %w", err)
	}
	defer rows.Close()

	intentions := []types.Intention{}
	for rows.Next() {
		i, err := hydrateIntention(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating intention: %w", err)
		}
		intentions = append(intentions, *i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating intentions: %w", err)
	}
	return intentions, nil
}

// Get retrieves an intention by ID.
func (it *intentionsTable) Get(id int64) (*types.Intention, error) {
	db, err := it.backend.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow("SELECT "+intentionColumns+" FROM intentions WHERE intention_id = ?", id)
	i, err := hydrateIntention(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting intention %d: %w", id, err)
	}
	return i, nil
}

// Create inserts a new intention. A negative Order requests the next order
// value; the max read and the insert share one transaction so concurrent
// creates cannot assign the same key.
func (it *intentionsTable) Create(in *types.Intention) (int64, error) {
	db, err := it.backend.conn()
	if err != nil {
		return 0, err
	}
	if err := in.Validate(); err != nil {
		return 0, err
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning intention create: %w", err)
	}
	defer tx.Rollback()

	if in.Order < 0 {
		next, err := nextOrder(tx, types.IntentionsTable)
		if err != nil {
			return 0, err
		}
		in.Order = next
	}

	res, err := tx.Exec(
		"INSERT INTO intentions (text, active, sort_order) VALUES (?, ?, ?)",
		in.Text, boolToInt(in.Active), in.Order,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting intention: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading intention id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing intention create: %w", err)
	}
	in.IntentionID = id
	return id, nil
}

// Update replaces the intention with the given ID. All scalar fields are
// required present on write.
func (it *intentionsTable) Update(id int64, in *types.Intention) error {
	db, err := it.backend.conn()
	if err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}

	res, err := db.Exec(
		"UPDATE intentions SET text = ?, active = ?, sort_order = ? WHERE intention_id = ?",
		in.Text, boolToInt(in.Active), in.Order, id,
	)
	if err != nil {
		return fmt.Errorf("updating intention %d: %w", id, err)
	}
	return requireAffected(res, id)
}

// Delete removes the intention with the given ID.
func (it *intentionsTable) Delete(id int64) error {
	db, err := it.backend.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM intentions WHERE intention_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting intention %d: %w", id, err)
	}
	return requireAffected(res, id)
}

// Reorder applies all assignments atomically.
func (it *intentionsTable) Reorder(assignments []types.OrderAssignment) error {
	db, err := it.backend.conn()
	if err != nil {
		return err
	}
	return reorder(db, types.IntentionsTable, "intention_id", assignments)
}

func hydrateIntention(row scanner) (*types.Intention, error) {
	var i types.Intention
	var active int
	if err := row.Scan(&i.IntentionID, &i.Text, &active, &i.Order); err != nil {
		return nil, err
	}
	i.Active = active != 0
	return &i, nil
}
