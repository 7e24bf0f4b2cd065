// Sticky note table accessor for the SQLite store.
// Implements: prd003-content-entities R5 (sticky notes CRUD, weak reference
//             validation on write).
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mesh-intelligence/atelier/pkg/types"
)

// Compile-time interface check: notesTable must implement NoteTable.
var _ types.NoteTable = (*notesTable)(nil)

type notesTable struct {
	backend *Backend
}

const noteColumns = "note_id, question, answer, author, color, pos_x, pos_y, rotation, contemplation_id, created_at"

// List returns all sticky notes, newest first.
func (nt *notesTable) List() ([]types.StickyNote, error) {
	db, err := nt.backend.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT " + noteColumns + " FROM sticky_notes ORDER BY created_at DESC, note_id DESC")
	if err != nil {
		return nil, fmt.Errorf("listing sticky notes: %w", err)
	}
	defer rows.Close()

	notes := []types.StickyNote{}
	for rows.Next() {
		n, err := hydrateNote(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating sticky note: %w", err)
		}
		notes = append(notes, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sticky notes: %w", err)
	}
	return notes, nil
}

// Get retrieves a sticky note by ID.
func (nt *notesTable) Get(id int64) (*types.StickyNote, error) {
	db, err := nt.backend.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow("SELECT "+noteColumns+" FROM sticky_notes WHERE note_id = ?", id)
	n, err := hydrateNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting sticky note %d: %w", id, err)
	}
	return n, nil
}

// Create inserts a new sticky note. A non-nil ContemplationID must reference
// an existing contemplation at write time; the reference check and the
// insert share one transaction.
func (nt *notesTable) Create(n *types.StickyNote) (int64, error) {
	db, err := nt.backend.conn()
	if err != nil {
		return 0, err
	}
	if err := n.Validate(); err != nil {
		return 0, err
	}
	if n.Color == "" {
		n.Color = types.ColorYellow
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning sticky note create: %w", err)
	}
	defer tx.Rollback()

	if err := checkContemplationRef(tx, n.ContemplationID); err != nil {
		return 0, err
	}

	res, err := tx.Exec(
		"INSERT INTO sticky_notes (question, answer, author, color, pos_x, pos_y, rotation, contemplation_id, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		n.Question, n.Answer, n.Author, n.Color, n.Position.X, n.Position.Y, n.Rotation,
		nullableID(n.ContemplationID), n.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting sticky note: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading sticky note id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing sticky note create: %w", err)
	}
	n.NoteID = id
	return id, nil
}

// Update replaces the sticky note with the given ID. CreatedAt is preserved
// from the stored row.
func (nt *notesTable) Update(id int64, n *types.StickyNote) error {
	db, err := nt.backend.conn()
	if err != nil {
		return err
	}
	if err := n.Validate(); err != nil {
		return err
	}
	if n.Color == "" {
		n.Color = types.ColorYellow
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning sticky note update: %w", err)
	}
	defer tx.Rollback()

	if err := checkContemplationRef(tx, n.ContemplationID); err != nil {
		return err
	}

	res, err := tx.Exec(
		"UPDATE sticky_notes SET question = ?, answer = ?, author = ?, color = ?, pos_x = ?, pos_y = ?, rotation = ?, contemplation_id = ? WHERE note_id = ?",
		n.Question, n.Answer, n.Author, n.Color, n.Position.X, n.Position.Y, n.Rotation,
		nullableID(n.ContemplationID), id,
	)
	if err != nil {
		return fmt.Errorf("updating sticky note %d: %w", id, err)
	}
	if err := requireAffected(res, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing sticky note update: %w", err)
	}
	return nil
}

// Delete removes the sticky note with the given ID.
func (nt *notesTable) Delete(id int64) error {
	db, err := nt.backend.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM sticky_notes WHERE note_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting sticky note %d: %w", id, err)
	}
	return requireAffected(res, id)
}

// checkContemplationRef verifies that a non-nil weak reference points at an
// existing contemplation. Returns ErrContemplationMissing otherwise.
func checkContemplationRef(tx *sql.Tx, ref *int64) error {
	if ref == nil {
		return nil
	}
	var one int
	err := tx.QueryRow("SELECT 1 FROM contemplations WHERE contemplation_id = ?", *ref).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("contemplation %d: %w", *ref, types.ErrContemplationMissing)
	}
	if err != nil {
		return fmt.Errorf("checking contemplation %d: %w", *ref, err)
	}
	return nil
}

// nullableID converts an optional ID to its nullable column value.
func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

func hydrateNote(row scanner) (*types.StickyNote, error) {
	var n types.StickyNote
	var contemplationID sql.NullInt64
	var createdAt string
	if err := row.Scan(&n.NoteID, &n.Question, &n.Answer, &n.Author, &n.Color, &n.Position.X, &n.Position.Y, &n.Rotation, &contemplationID, &createdAt); err != nil {
		return nil, err
	}
	if contemplationID.Valid {
		n.ContemplationID = &contemplationID.Int64
	}
	var err error
	n.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &n, nil
}
