package types

import "errors"

// Store defines the interface for backend-agnostic content storage.
// Callers attach to a backend, access entity tables, and detach when done.
// Implements prd001-store-core R2.
type Store interface {
	// Attach connects the Store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, table operations return ErrStoreDetached.
	Detach() error

	// Table accessors. The returned accessors are valid for the lifetime of
	// the Store; operations on them fail with ErrStoreDetached while the
	// Store is detached.
	Articles() ArticleTable
	Projects() ProjectTable
	Quotes() QuoteTable
	Intentions() IntentionTable
	Contemplations() ContemplationTable
	Notes() NoteTable
	Profile() ProfileTable
}

// Store lifecycle errors (prd001-store-core R7.1).
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
