// Contemplation table accessor for the SQLite store.
// Implements: prd003-content-entities R4 (contemplations CRUD, answer
//             attachment); prd004-ordering (order assignment, bulk reorder);
//             prd005-relationship-integrity (unlink-then-delete).
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/atelier/pkg/types"
)

// Compile-time interface check: contemplationsTable must implement
// ContemplationTable.
var _ types.ContemplationTable = (*contemplationsTable)(nil)

type contemplationsTable struct {
	backend *Backend
}

const contemplationColumns = "contemplation_id, question, active, featured, sort_order"

// publicAnswerLimit is how many answers a list read attaches per
// contemplation. A single-item fetch attaches all of them.
const publicAnswerLimit = 5

// List returns contemplations ordered by sort order ascending, each with its
// most recent answers attached.
func (ct *contemplationsTable) List(includeInactive bool) ([]types.Contemplation, error) {
	db, err := ct.backend.conn()
	if err != nil {
		return nil, err
	}

	query := "SELECT " + contemplationColumns + " FROM contemplations"
	if !includeInactive {
		query += " WHERE active = 1"
	}
	query += " ORDER BY sort_order ASC, contemplation_id ASC"

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("listing contemplations: %w", err)
	}
	defer rows.Close()

	contemplations := []types.Contemplation{}
	for rows.Next() {
		c, err := hydrateContemplation(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating contemplation: %w", err)
		}
		contemplations = append(contemplations, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contemplations: %w", err)
	}

	for i := range contemplations {
		answers, err := ct.fetchAnswers(db, contemplations[i].ContemplationID, publicAnswerLimit)
		if err != nil {
			return nil, err
		}
		contemplations[i].Answers = answers
	}
	return contemplations, nil
}

// Get retrieves a contemplation by ID with all of its answers attached,
// newest first.
func (ct *contemplationsTable) Get(id int64) (*types.Contemplation, error) {
	db, err := ct.backend.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow("SELECT "+contemplationColumns+" FROM contemplations WHERE contemplation_id = ?", id)
	c, err := hydrateContemplation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting contemplation %d: %w", id, err)
	}

	if c.Answers, err = ct.fetchAnswers(db, id, 0); err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a new contemplation. A negative Order requests the next
// order value inside the insert transaction.
func (ct *contemplationsTable) Create(c *types.Contemplation) (int64, error) {
	db, err := ct.backend.conn()
	if err != nil {
		return 0, err
	}
	if err := c.Validate(); err != nil {
		return 0, err
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning contemplation create: %w", err)
	}
	defer tx.Rollback()

	if c.Order < 0 {
		next, err := nextOrder(tx, types.ContemplationsTable)
		if err != nil {
			return 0, err
		}
		c.Order = next
	}

	res, err := tx.Exec(
		"INSERT INTO contemplations (question, active, featured, sort_order) VALUES (?, ?, ?, ?)",
		c.Question, boolToInt(c.Active), boolToInt(c.Featured), c.Order,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting contemplation: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading contemplation id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing contemplation create: %w", err)
	}
	c.ContemplationID = id
	return id, nil
}

// Update replaces the contemplation with the given ID. All scalar fields are
// required present on write; Answers is ignored.
func (ct *contemplationsTable) Update(id int64, c *types.Contemplation) error {
	db, err := ct.backend.conn()
	if err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	res, err := db.Exec(
		"UPDATE contemplations SET question = ?, active = ?, featured = ?, sort_order = ? WHERE contemplation_id = ?",
		c.Question, boolToInt(c.Active), boolToInt(c.Featured), c.Order, id,
	)
	if err != nil {
		return fmt.Errorf("updating contemplation %d: %w", id, err)
	}
	return requireAffected(res, id)
}

// Delete unlinks every sticky note referencing the contemplation and removes
// the contemplation row, in one transaction. The notes persist with
// contemplation_id set to NULL; no answer is ever left pointing at a deleted
// contemplation.
func (ct *contemplationsTable) Delete(id int64) error {
	db, err := ct.backend.conn()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning contemplation delete: %w", err)
	}
	defer tx.Rollback()

	// Unlink before delete: the unlink must never be reordered after the
	// row removal.
	if _, err := tx.Exec("UPDATE sticky_notes SET contemplation_id = NULL WHERE contemplation_id = ?", id); err != nil {
		return fmt.Errorf("unlinking answers for contemplation %d: %w", id, err)
	}

	res, err := tx.Exec("DELETE FROM contemplations WHERE contemplation_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting contemplation %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking contemplation delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("contemplation %d: %w", id, types.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing contemplation delete: %w", err)
	}
	return nil
}

// Reorder applies all assignments atomically.
func (ct *contemplationsTable) Reorder(assignments []types.OrderAssignment) error {
	db, err := ct.backend.conn()
	if err != nil {
		return err
	}
	return reorder(db, types.ContemplationsTable, "contemplation_id", assignments)
}

// fetchAnswers loads the sticky notes referencing a contemplation, newest
// first. A limit of 0 means all.
func (ct *contemplationsTable) fetchAnswers(db *sql.DB, id int64, limit int) ([]types.StickyNote, error) {
	query := "SELECT " + noteColumns + " FROM sticky_notes WHERE contemplation_id = ? ORDER BY created_at DESC, note_id DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query, id)
	if err != nil {
		return nil, fmt.Errorf("querying answers for contemplation %d: %w", id, err)
	}
	defer rows.Close()

	answers := []types.StickyNote{}
	for rows.Next() {
		n, err := hydrateNote(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating answer: %w", err)
		}
		answers = append(answers, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating answers: %w", err)
	}
	return answers, nil
}

func hydrateContemplation(row scanner) (*types.Contemplation, error) {
	var c types.Contemplation
	var active, featured int
	if err := row.Scan(&c.ContemplationID, &c.Question, &active, &featured, &c.Order); err != nil {
		return nil, err
	}
	c.Active = active != 0
	c.Featured = featured != 0
	c.Answers = []types.StickyNote{}
	return &c, nil
}
