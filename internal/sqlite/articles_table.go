// Article table accessor for the SQLite store.
// Implements: prd003-content-entities R1 (articles CRUD, slug lookup);
//             prd002-sqlite-store R12-R14 (hydration, persistence).
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/atelier/pkg/types"
)

// Compile-time interface check: articlesTable must implement ArticleTable.
var _ types.ArticleTable = (*articlesTable)(nil)

// articlesTable implements ArticleTable. Each operation hydrates between
// SQLite rows and *types.Article, passing the flexible fields (tags,
// epigraph, content) through the codec on both paths.
type articlesTable struct {
	backend *Backend
}

const articleColumns = "article_id, slug, title, excerpt, date, read_time, tags, featured, epigraph, content"

// List returns all articles, newest date first.
func (at *articlesTable) List() ([]types.Article, error) {
	db, err := at.backend.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT " + articleColumns + " FROM articles ORDER BY date DESC, article_id DESC")
	if err != nil {
		return nil, fmt.Errorf("listing articles: %w", err)
	}
	defer rows.Close()

	articles := []types.Article{}
	for rows.Next() {
		a, err := hydrateArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating article: %w", err)
		}
		articles = append(articles, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating articles: %w", err)
	}
	return articles, nil
}

// Get retrieves an article by ID.
func (at *articlesTable) Get(id int64) (*types.Article, error) {
	db, err := at.backend.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow("SELECT "+articleColumns+" FROM articles WHERE article_id = ?", id)
	a, err := hydrateArticle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting article %d: %w", id, err)
	}
	return a, nil
}

// GetBySlug retrieves an article by its unique slug.
func (at *articlesTable) GetBySlug(slug string) (*types.Article, error) {
	db, err := at.backend.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow("SELECT "+articleColumns+" FROM articles WHERE slug = ?", slug)
	a, err := hydrateArticle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting article %q: %w", slug, err)
	}
	return a, nil
}

// Create inserts a new article and returns its assigned ID.
func (at *articlesTable) Create(a *types.Article) (int64, error) {
	db, err := at.backend.conn()
	if err != nil {
		return 0, err
	}
	if err := a.Validate(); err != nil {
		return 0, err
	}

	tags, epigraph, content, err := dehydrateArticleFields(a)
	if err != nil {
		return 0, err
	}

	res, err := db.Exec(
		"INSERT INTO articles (slug, title, excerpt, date, read_time, tags, featured, epigraph, content) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		a.Slug, a.Title, a.Excerpt, a.Date, a.ReadTime, tags, boolToInt(a.Featured), epigraph, content,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting article: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading article id: %w", err)
	}
	a.ArticleID = id
	return id, nil
}

// Update replaces the article with the given ID. Articles are written as full
// documents: optional fields omitted by the caller are stored as absent.
func (at *articlesTable) Update(id int64, a *types.Article) error {
	db, err := at.backend.conn()
	if err != nil {
		return err
	}
	if err := a.Validate(); err != nil {
		return err
	}

	tags, epigraph, content, err := dehydrateArticleFields(a)
	if err != nil {
		return err
	}

	res, err := db.Exec(
		"UPDATE articles SET slug = ?, title = ?, excerpt = ?, date = ?, read_time = ?, tags = ?, featured = ?, epigraph = ?, content = ? WHERE article_id = ?",
		a.Slug, a.Title, a.Excerpt, a.Date, a.ReadTime, tags, boolToInt(a.Featured), epigraph, content, id,
	)
	if err != nil {
		return fmt.Errorf("updating article %d: %w", id, err)
	}
	return requireAffected(res, id)
}

// Delete removes the article with the given ID.
func (at *articlesTable) Delete(id int64) error {
	db, err := at.backend.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM articles WHERE article_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting article %d: %w", id, err)
	}
	return requireAffected(res, id)
}

// dehydrateArticleFields encodes the article's flexible fields for storage.
func dehydrateArticleFields(a *types.Article) (tags, epigraph, content sql.NullString, err error) {
	if tags, err = encodeField(a.Tags); err != nil {
		return
	}
	if epigraph, err = encodeField(a.Epigraph); err != nil {
		return
	}
	content, err = encodeField(a.Content)
	return
}

// hydrateArticle converts a SQLite row into a *types.Article, decoding the
// flexible fields through the codec.
func hydrateArticle(row scanner) (*types.Article, error) {
	var a types.Article
	var featured int
	var tags, epigraph, content sql.NullString
	if err := row.Scan(&a.ArticleID, &a.Slug, &a.Title, &a.Excerpt, &a.Date, &a.ReadTime, &tags, &featured, &epigraph, &content); err != nil {
		return nil, err
	}
	a.Featured = featured != 0

	var err error
	if a.Tags, err = decodeField(tags, []string{}); err != nil {
		return nil, fmt.Errorf("article %d tags: %w", a.ArticleID, err)
	}
	if a.Epigraph, err = decodeField[*types.Epigraph](epigraph, nil); err != nil {
		return nil, fmt.Errorf("article %d epigraph: %w", a.ArticleID, err)
	}
	if a.Content, err = decodeField(content, []types.ContentBlock{}); err != nil {
		return nil, fmt.Errorf("article %d content: %w", a.ArticleID, err)
	}
	return &a, nil
}
