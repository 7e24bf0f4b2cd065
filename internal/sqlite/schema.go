// Package sqlite implements the SQLite storage backend for atelier.
// Implements: prd002-sqlite-store (R3 schema, R11 Store interface);
//             docs/ARCHITECTURE § SQLite Backend.
package sqlite

// Schema DDL for all tables (prd002-sqlite-store R3.2). Flexible fields are
// nullable TEXT holding encoded JSON; NULL means absent. The ordering key
// column is named sort_order because "order" is an SQL keyword.
const (
	createArticles = `CREATE TABLE IF NOT EXISTS articles (
    article_id INTEGER PRIMARY KEY AUTOINCREMENT,
    slug TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    excerpt TEXT NOT NULL DEFAULT '',
    date TEXT NOT NULL DEFAULT '',
    read_time TEXT NOT NULL DEFAULT '',
    tags TEXT,
    featured INTEGER NOT NULL DEFAULT 0,
    epigraph TEXT,
    content TEXT
);`

	createProjects = `CREATE TABLE IF NOT EXISTS projects (
    project_id INTEGER PRIMARY KEY AUTOINCREMENT,
    slug TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    tech TEXT,
    year TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT '',
    featured INTEGER NOT NULL DEFAULT 0,
    role TEXT NOT NULL DEFAULT '',
    tagline TEXT NOT NULL DEFAULT '',
    links TEXT,
    philosophy TEXT,
    sections TEXT,
    gallery TEXT
);`

	createQuotes = `CREATE TABLE IF NOT EXISTS quotes (
    quote_id INTEGER PRIMARY KEY AUTOINCREMENT,
    text TEXT NOT NULL,
    author TEXT NOT NULL DEFAULT '',
    source TEXT NOT NULL DEFAULT '',
    category TEXT
);`

	createIntentions = `CREATE TABLE IF NOT EXISTS intentions (
    intention_id INTEGER PRIMARY KEY AUTOINCREMENT,
    text TEXT NOT NULL,
    active INTEGER NOT NULL DEFAULT 1,
    sort_order INTEGER NOT NULL DEFAULT 0
);`

	createContemplations = `CREATE TABLE IF NOT EXISTS contemplations (
    contemplation_id INTEGER PRIMARY KEY AUTOINCREMENT,
    question TEXT NOT NULL,
    active INTEGER NOT NULL DEFAULT 1,
    featured INTEGER NOT NULL DEFAULT 0,
    sort_order INTEGER NOT NULL DEFAULT 0
);`

	createStickyNotes = `CREATE TABLE IF NOT EXISTS sticky_notes (
    note_id INTEGER PRIMARY KEY AUTOINCREMENT,
    question TEXT NOT NULL DEFAULT '',
    answer TEXT NOT NULL,
    author TEXT NOT NULL DEFAULT '',
    color TEXT NOT NULL DEFAULT 'yellow',
    pos_x REAL NOT NULL DEFAULT 0,
    pos_y REAL NOT NULL DEFAULT 0,
    rotation REAL NOT NULL DEFAULT 0,
    contemplation_id INTEGER,
    created_at TEXT NOT NULL
);`

	createProfile = `CREATE TABLE IF NOT EXISTS profile (
    profile_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    bio TEXT NOT NULL DEFAULT '',
    avatar TEXT,
    location TEXT,
    email TEXT,
    social TEXT
);`
)

// Index DDL for common queries (prd002-sqlite-store R3.3).
const (
	idxArticlesSlug        = `CREATE INDEX IF NOT EXISTS idx_articles_slug ON articles(slug);`
	idxProjectsSlug        = `CREATE INDEX IF NOT EXISTS idx_projects_slug ON projects(slug);`
	idxIntentionsOrder     = `CREATE INDEX IF NOT EXISTS idx_intentions_order ON intentions(active, sort_order);`
	idxContemplationsOrder = `CREATE INDEX IF NOT EXISTS idx_contemplations_order ON contemplations(active, sort_order);`
	idxNotesContemplation  = `CREATE INDEX IF NOT EXISTS idx_notes_contemplation ON sticky_notes(contemplation_id);`
	idxNotesCreated        = `CREATE INDEX IF NOT EXISTS idx_notes_created ON sticky_notes(created_at);`
)

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createArticles,
	createProjects,
	createQuotes,
	createIntentions,
	createContemplations,
	createStickyNotes,
	createProfile,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxArticlesSlug,
	idxProjectsSlug,
	idxIntentionsOrder,
	idxContemplationsOrder,
	idxNotesContemplation,
	idxNotesCreated,
}
