// JSONL export and import over all content tables, the backup/migration
// path for the store.
// Implements: prd006-export (per-table JSONL dump, transactional import).
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/atelier/pkg/types"
)

// jsonlTableMapping maps JSONL filenames to their SQLite tables and column
// lists. Export and import both follow this order.
var jsonlTableMapping = []struct {
	file    string
	table   string
	columns []string
}{
	{"articles.jsonl", types.ArticlesTable, []string{"article_id", "slug", "title", "excerpt", "date", "read_time", "tags", "featured", "epigraph", "content"}},
	{"projects.jsonl", types.ProjectsTable, []string{"project_id", "slug", "title", "description", "tech", "year", "status", "featured", "role", "tagline", "links", "philosophy", "sections", "gallery"}},
	{"quotes.jsonl", types.QuotesTable, []string{"quote_id", "text", "author", "source", "category"}},
	{"intentions.jsonl", types.IntentionsTable, []string{"intention_id", "text", "active", "sort_order"}},
	{"contemplations.jsonl", types.ContemplationsTable, []string{"contemplation_id", "question", "active", "featured", "sort_order"}},
	{"sticky_notes.jsonl", types.NotesTable, []string{"note_id", "question", "answer", "author", "color", "pos_x", "pos_y", "rotation", "contemplation_id", "created_at"}},
	{"profile.jsonl", types.ProfilesTable, []string{"profile_id", "name", "title", "bio", "avatar", "location", "email", "social"}},
}

// ExportJSONL dumps every table to a per-table JSONL file under dir,
// creating the directory if needed. Each file is written atomically.
func (b *Backend) ExportJSONL(dir string) error {
	db, err := b.conn()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}

	for _, m := range jsonlTableMapping {
		records, err := dumpTable(db, m.table, m.columns)
		if err != nil {
			return fmt.Errorf("exporting %s: %w", m.table, err)
		}
		if err := writeJSONL(filepath.Join(dir, m.file), records); err != nil {
			return fmt.Errorf("writing %s: %w", m.file, err)
		}
	}
	return nil
}

// ImportJSONL loads per-table JSONL files from dir, replacing the current
// contents of every table present in dir. Loading is transactional: all
// files load or the database is left untouched. Missing files are skipped;
// malformed lines within a file are skipped.
func (b *Backend) ImportJSONL(dir string) error {
	db, err := b.conn()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning import transaction: %w", err)
	}
	defer tx.Rollback()

	for _, m := range jsonlTableMapping {
		path := filepath.Join(dir, m.file)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		records, err := readJSONL(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", m.file, err)
		}

		if _, err := tx.Exec("DELETE FROM " + m.table); err != nil {
			return fmt.Errorf("clearing %s: %w", m.table, err)
		}
		if err := insertRecords(tx, m.table, m.columns, records); err != nil {
			return fmt.Errorf("loading %s into %s: %w", m.file, m.table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}
	return nil
}

// dumpTable reads all rows of a table into JSONL records keyed by column
// name, ordered by the first column (the primary key) for stable output.
func dumpTable(db *sql.DB, table string, columns []string) ([]json.RawMessage, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s ASC", strings.Join(columns, ", "), table, columns[0])
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table, err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", table, err)
		}
		rec := make(map[string]any, len(columns))
		for i, col := range columns {
			rec[col] = values[i]
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s row: %w", table, err)
		}
		records = append(records, data)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", table, err)
	}
	return records, nil
}

// insertRecords inserts JSONL records into a table inside the caller's
// transaction. Unknown fields in a record are ignored; fields missing from a
// record insert as NULL.
func insertRecords(tx *sql.Tx, table string, columns []string, records []json.RawMessage) error {
	placeholders := make([]string, len(columns))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	stmt := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "),
	)

	for _, rec := range records {
		var fields map[string]any
		if err := json.Unmarshal(rec, &fields); err != nil {
			continue
		}
		args := make([]any, len(columns))
		for i, col := range columns {
			args[i] = fields[col]
		}
		if _, err := tx.Exec(stmt, args...); err != nil {
			return fmt.Errorf("inserting into %s: %w", table, err)
		}
	}
	return nil
}
