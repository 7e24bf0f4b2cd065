// Quote table accessor for the SQLite store.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/atelier/pkg/types"
)

// Compile-time interface check: quotesTable must implement QuoteTable.
var _ types.QuoteTable = (*quotesTable)(nil)

type quotesTable struct {
	backend *Backend
}

const quoteColumns = "quote_id, text, author, source, category"

// List returns all quotes, newest first.
func (qt *quotesTable) List() ([]types.Quote, error) {
	db, err := qt.backend.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT " + quoteColumns + " FROM quotes ORDER BY quote_id DESC")
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}
	defer rows.Close()

	quotes := []types.Quote{}
	for rows.Next() {
		q, err := hydrateQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating quote: %w", err)
		}
		quotes = append(quotes, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quotes: %w", err)
	}
	return quotes, nil
}

// Get retrieves a quote by ID.
func (qt *quotesTable) Get(id int64) (*types.Quote, error) {
	db, err := qt.backend.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow("SELECT "+quoteColumns+" FROM quotes WHERE quote_id = ?", id)
	q, err := hydrateQuote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting quote %d: %w", id, err)
	}
	return q, nil
}

// Create inserts a new quote and returns its assigned ID.
func (qt *quotesTable) Create(q *types.Quote) (int64, error) {
	db, err := qt.backend.conn()
	if err != nil {
		return 0, err
	}
	if err := q.Validate(); err != nil {
		return 0, err
	}

	res, err := db.Exec(
		"INSERT INTO quotes (text, author, source, category) VALUES (?, ?, ?, ?)",
		q.Text, q.Author, q.Source, nullableString(q.Category),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting quote: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading quote id: %w", err)
	}
	q.QuoteID = id
	return id, nil
}

// Update replaces the quote with the given ID.
func (qt *quotesTable) Update(id int64, q *types.Quote) error {
	db, err := qt.backend.conn()
	if err != nil {
		return err
	}
	if err := q.Validate(); err != nil {
		return err
	}

	res, err := db.Exec(
		"UPDATE quotes SET text = ?, author = ?, source = ?, category = ? WHERE quote_id = ?",
		q.Text, q.Author, q.Source, nullableString(q.Category), id,
	)
	if err != nil {
		return fmt.Errorf("updating quote %d: %w", id, err)
	}
	return requireAffected(res, id)
}

// Delete removes the quote with the given ID.
func (qt *quotesTable) Delete(id int64) error {
	db, err := qt.backend.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM quotes WHERE quote_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting quote %d: %w", id, err)
	}
	return requireAffected(res, id)
}

// nullableString converts an optional string to its nullable column value.
func nullableString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func hydrateQuote(row scanner) (*types.Quote, error) {
	var q types.Quote
	var category sql.NullString
	if err := row.Scan(&q.QuoteID, &q.Text, &q.Author, &q.Source, &category); err != nil {
		return nil, err
	}
	if category.Valid {
		q.Category = &category.String
	}
	return &q, nil
}
