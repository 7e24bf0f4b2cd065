// Project table accessor for the SQLite store.
// Implements: prd003-content-entities R2 (projects CRUD, id-or-slug lookup);
//             prd002-sqlite-store R12-R14 (hydration, persistence).
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/atelier/pkg/types"
)

// Compile-time interface check: projectsTable must implement ProjectTable.
var _ types.ProjectTable = (*projectsTable)(nil)

type projectsTable struct {
	backend *Backend
}

const projectColumns = "project_id, slug, title, description, tech, year, status, featured, role, tagline, links, philosophy, sections, gallery"

// List returns all projects, newest year first.
func (pt *projectsTable) List() ([]types.Project, error) {
	db, err := pt.backend.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT " + projectColumns + " FROM projects ORDER BY year DESC, project_id DESC")
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	projects := []types.Project{}
	for rows.Next() {
		p, err := hydrateProject(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating project: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

// Get retrieves a project by identifier. A numeric identifier is tried as an
// ID first, then as a slug; a non-numeric identifier resolves purely via
// slug. Any identifier matching neither is ErrNotFound, including ones that
// parse as nothing at all.
func (pt *projectsTable) Get(idOrSlug string) (*types.Project, error) {
	db, err := pt.backend.conn()
	if err != nil {
		return nil, err
	}

	if id, perr := strconv.ParseInt(idOrSlug, 10, 64); perr == nil {
		p, err := pt.getWhere(db, "project_id = ?", id)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, types.ErrNotFound) {
			return nil, err
		}
		// Fall through to the slug match: a numeric string can still be a slug.
	}

	return pt.getWhere(db, "slug = ?", idOrSlug)
}

func (pt *projectsTable) getWhere(db *sql.DB, cond string, arg any) (*types.Project, error) {
	row := db.QueryRow("SELECT "+projectColumns+" FROM projects WHERE "+cond, arg)
	p, err := hydrateProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting project (%s %v): %w", cond, arg, err)
	}
	return p, nil
}

// Create inserts a new project and returns its assigned ID.
func (pt *projectsTable) Create(p *types.Project) (int64, error) {
	db, err := pt.backend.conn()
	if err != nil {
		return 0, err
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}

	f, err := dehydrateProjectFields(p)
	if err != nil {
		return 0, err
	}

	res, err := db.Exec(
		"INSERT INTO projects (slug, title, description, tech, year, status, featured, role, tagline, links, philosophy, sections, gallery) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		p.Slug, p.Title, p.Description, f.tech, p.Year, p.Status, boolToInt(p.Featured), p.Role, p.Tagline, f.links, f.philosophy, f.sections, f.gallery,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting project: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading project id: %w", err)
	}
	p.ProjectID = id
	return id, nil
}

// Update replaces the project with the given ID. Projects are written as
// full documents: optional fields omitted by the caller are stored as
// absent, not preserved.
func (pt *projectsTable) Update(id int64, p *types.Project) error {
	db, err := pt.backend.conn()
	if err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}

	f, err := dehydrateProjectFields(p)
	if err != nil {
		return err
	}

	res, err := db.Exec(
		"UPDATE projects SET slug = ?, title = ?, description = ?, tech = ?, year = ?, status = ?, featured = ?, role = ?, tagline = ?, links = ?, philosophy = ?, sections = ?, gallery = ? WHERE project_id = ?",
		p.Slug, p.Title, p.Description, f.tech, p.Year, p.Status, boolToInt(p.Featured), p.Role, p.Tagline, f.links, f.philosophy, f.sections, f.gallery, id,
	)
	if err != nil {
		return fmt.Errorf("updating project %d: %w", id, err)
	}
	return requireAffected(res, id)
}

// Delete removes the project with the given ID.
func (pt *projectsTable) Delete(id int64) error {
	db, err := pt.backend.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM projects WHERE project_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting project %d: %w", id, err)
	}
	return requireAffected(res, id)
}

// projectFields holds a project's encoded flexible fields.
type projectFields struct {
	tech       sql.NullString
	links      sql.NullString
	philosophy sql.NullString
	sections   sql.NullString
	gallery    sql.NullString
}

func dehydrateProjectFields(p *types.Project) (projectFields, error) {
	var f projectFields
	var err error
	if f.tech, err = encodeField(p.Tech); err != nil {
		return f, err
	}
	if f.links, err = encodeField(p.Links); err != nil {
		return f, err
	}
	if f.philosophy, err = encodeField(p.Philosophy); err != nil {
		return f, err
	}
	if f.sections, err = encodeField(p.Sections); err != nil {
		return f, err
	}
	if f.gallery, err = encodeField(p.Gallery); err != nil {
		return f, err
	}
	return f, nil
}

// hydrateProject converts a SQLite row into a *types.Project, decoding the
// flexible fields through the codec.
func hydrateProject(row scanner) (*types.Project, error) {
	var p types.Project
	var featured int
	var f projectFields
	if err := row.Scan(&p.ProjectID, &p.Slug, &p.Title, &p.Description, &f.tech, &p.Year, &p.Status, &featured, &p.Role, &p.Tagline, &f.links, &f.philosophy, &f.sections, &f.gallery); err != nil {
		return nil, err
	}
	p.Featured = featured != 0

	var err error
	if p.Tech, err = decodeField(f.tech, []string{}); err != nil {
		return nil, fmt.Errorf("project %d tech: %w", p.ProjectID, err)
	}
	if p.Links, err = decodeField[*types.ProjectLinks](f.links, nil); err != nil {
		return nil, fmt.Errorf("project %d links: %w", p.ProjectID, err)
	}
	if p.Philosophy, err = decodeField[*types.Philosophy](f.philosophy, nil); err != nil {
		return nil, fmt.Errorf("project %d philosophy: %w", p.ProjectID, err)
	}
	if p.Sections, err = decodeField[[]types.ProjectSection](f.sections, nil); err != nil {
		return nil, fmt.Errorf("project %d sections: %w", p.ProjectID, err)
	}
	if p.Gallery, err = decodeField(f.gallery, []types.GalleryItem{}); err != nil {
		return nil, fmt.Errorf("project %d gallery: %w", p.ProjectID, err)
	}
	return &p, nil
}
