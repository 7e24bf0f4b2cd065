package types

import "errors"

// Standard table names, used by the JSONL export/import commands
// (prd001-store-core R2.5).
const (
	ArticlesTable       = "articles"
	ProjectsTable       = "projects"
	QuotesTable         = "quotes"
	IntentionsTable     = "intentions"
	ContemplationsTable = "contemplations"
	NotesTable          = "sticky_notes"
	ProfilesTable       = "profile"
)

// StandardTableNames lists all standard table names for enumeration.
var StandardTableNames = []string{
	ArticlesTable,
	ProjectsTable,
	QuotesTable,
	IntentionsTable,
	ContemplationsTable,
	NotesTable,
	ProfilesTable,
}

// Table operation errors (prd001-store-core R7.2).
var (
	ErrNotFound    = errors.New("entity not found")
	ErrInvalidID   = errors.New("invalid entity ID")
	ErrInvalidData = errors.New("invalid entity data")

	// ErrCorruptField indicates a stored flexible field that does not parse.
	// Callers must surface this as a failure, never substitute a default:
	// malformed stored text means corruption, not absence.
	ErrCorruptField = errors.New("corrupt flexible field")
)

// Entity validation errors (prd001-store-core R7.3).
var (
	ErrInvalidSlug          = errors.New("slug must not be empty")
	ErrInvalidTitle         = errors.New("title must not be empty")
	ErrInvalidText          = errors.New("text must not be empty")
	ErrInvalidName          = errors.New("name must not be empty")
	ErrInvalidQuestion      = errors.New("question must not be empty")
	ErrInvalidStatus        = errors.New("invalid project status")
	ErrInvalidBlockType     = errors.New("invalid content block type")
	ErrInvalidColor         = errors.New("invalid sticky note color")
	ErrContemplationMissing = errors.New("referenced contemplation does not exist")
)

// OrderAssignment pairs an entity ID with its new display order for bulk
// reorder operations (prd004-ordering R2).
type OrderAssignment struct {
	ID    int64 `json:"id"`
	Order int   `json:"order"`
}

// ArticleTable provides CRUD operations for articles.
type ArticleTable interface {
	// List returns all articles, newest date first.
	List() ([]Article, error)

	// Get retrieves an article by ID. Returns ErrNotFound if absent.
	Get(id int64) (*Article, error)

	// GetBySlug retrieves an article by its unique slug.
	GetBySlug(slug string) (*Article, error)

	// Create inserts a new article and returns its assigned ID.
	Create(a *Article) (int64, error)

	// Update replaces the article with the given ID. Flexible fields on a
	// are stored as given; nil optional fields are stored as absent.
	Update(id int64, a *Article) error

	// Delete removes the article with the given ID.
	Delete(id int64) error
}

// ProjectTable provides CRUD operations for projects.
type ProjectTable interface {
	List() ([]Project, error)

	// Get retrieves a project by identifier: a numeric identifier is tried
	// as an ID first, then as a slug; a non-numeric identifier resolves
	// purely via slug. A miss on both is ErrNotFound.
	Get(idOrSlug string) (*Project, error)

	Create(p *Project) (int64, error)
	Update(id int64, p *Project) error
	Delete(id int64) error
}

// QuoteTable provides CRUD operations for quotes.
type QuoteTable interface {
	List() ([]Quote, error)
	Get(id int64) (*Quote, error)
	Create(q *Quote) (int64, error)
	Update(id int64, q *Quote) error
	Delete(id int64) error
}

// IntentionTable provides CRUD operations for daily intentions.
type IntentionTable interface {
	// List returns intentions ordered by sort order ascending. When
	// includeInactive is false only active intentions are returned.
	List(includeInactive bool) ([]Intention, error)

	Get(id int64) (*Intention, error)

	// Create inserts a new intention. A negative Order requests the next
	// order value (one past the current collection maximum).
	Create(it *Intention) (int64, error)

	Update(id int64, it *Intention) error
	Delete(id int64) error

	// Reorder applies all assignments atomically: either every assignment
	// lands or none do.
	Reorder(assignments []OrderAssignment) error
}

// ContemplationTable provides CRUD operations for contemplations and their
// attached answers.
type ContemplationTable interface {
	// List returns contemplations ordered by sort order ascending, each with
	// its five most recent answers attached. When includeInactive is false
	// only active contemplations are returned.
	List(includeInactive bool) ([]Contemplation, error)

	// Get retrieves a contemplation by ID with all of its answers attached,
	// newest first.
	Get(id int64) (*Contemplation, error)

	// Create inserts a new contemplation. A negative Order requests the
	// next order value.
	Create(c *Contemplation) (int64, error)

	Update(id int64, c *Contemplation) error

	// Delete unlinks every sticky note referencing the contemplation
	// (contemplationId set to null) and removes the contemplation, as one
	// transaction. The notes themselves are preserved.
	Delete(id int64) error

	// Reorder applies all assignments atomically.
	Reorder(assignments []OrderAssignment) error
}

// NoteTable provides CRUD operations for sticky notes.
type NoteTable interface {
	// List returns all sticky notes, newest first.
	List() ([]StickyNote, error)

	Get(id int64) (*StickyNote, error)

	// Create inserts a new sticky note. A non-nil ContemplationID must
	// reference an existing contemplation at write time; otherwise
	// ErrContemplationMissing is returned.
	Create(n *StickyNote) (int64, error)

	Update(id int64, n *StickyNote) error
	Delete(id int64) error
}

// ProfileTable provides access to the singleton profile row.
type ProfileTable interface {
	// Get returns the profile, creating a default row if none exists.
	// At most one row ever exists.
	Get() (*Profile, error)

	// Update replaces the stored profile, creating the row if none exists.
	// Returns the stored profile.
	Update(p *Profile) (*Profile, error)
}
