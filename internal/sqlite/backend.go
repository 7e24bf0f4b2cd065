// Backend lifecycle for the SQLite store.
// Implements: prd002-sqlite-store R4, R5, R11;
//
//	prd010-configuration-directories R3, R4;
//	prd001-store-core R2, R4, R5.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/atelier/pkg/types"
)

// dbFileName is the SQLite database file created under DataDir.
const dbFileName = "atelier.db"

// Backend implements the Store interface using a single SQLite database as
// the source of truth.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB

	articles       *articlesTable
	projects       *projectsTable
	quotes         *quotesTable
	intentions     *intentionsTable
	contemplations *contemplationsTable
	notes          *notesTable
	profile        *profileTable
}

// Compile-time interface check: Backend must implement Store.
var _ types.Store = (*Backend)(nil)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	b := &Backend{}
	b.articles = &articlesTable{backend: b}
	b.projects = &projectsTable{backend: b}
	b.quotes = &quotesTable{backend: b}
	b.intentions = &intentionsTable{backend: b}
	b.contemplations = &contemplationsTable{backend: b}
	b.notes = &notesTable{backend: b}
	b.profile = &profileTable{backend: b}
	return b
}

// Attach initializes the backend with the given configuration.
// Creates DataDir if it does not exist, opens the database, and executes the
// schema. Attaching to an existing database file preserves its contents.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	// Weak references rely on explicit unlink updates, not FK enforcement,
	// so foreign_keys stays off. busy_timeout covers concurrent writers.
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return fmt.Errorf("setting busy_timeout: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("executing schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating indexes: %w", err)
		}
	}

	b.db = db
	b.config = config
	b.attached = true

	return nil
}

// Detach releases all resources held by the backend.
// Closes the SQLite connection. After Detach, all operations return
// ErrStoreDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	return nil
}

// conn returns the open database handle, or ErrStoreDetached.
// Every table operation goes through conn.
func (b *Backend) conn() (*sql.DB, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.db, nil
}

// Articles returns the article table accessor.
func (b *Backend) Articles() types.ArticleTable { return b.articles }

// Projects returns the project table accessor.
func (b *Backend) Projects() types.ProjectTable { return b.projects }

// Quotes returns the quote table accessor.
func (b *Backend) Quotes() types.QuoteTable { return b.quotes }

// Intentions returns the intention table accessor.
func (b *Backend) Intentions() types.IntentionTable { return b.intentions }

// Contemplations returns the contemplation table accessor.
func (b *Backend) Contemplations() types.ContemplationTable { return b.contemplations }

// Notes returns the sticky note table accessor.
func (b *Backend) Notes() types.NoteTable { return b.notes }

// Profile returns the singleton profile accessor.
func (b *Backend) Profile() types.ProfileTable { return b.profile }
