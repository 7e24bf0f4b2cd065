// Project entity and its flexible sub-structures.
// Implements: prd003-content-entities R2 (Project, links, philosophy,
//             sections, gallery).
package types

// Project statuses.
const (
	StatusActive     = "Active"
	StatusMaintained = "Maintained"
	StatusArchived   = "Archived"
)

// validProjectStatuses is the set of recognized project status values.
var validProjectStatuses = map[string]bool{
	StatusActive:     true,
	StatusMaintained: true,
	StatusArchived:   true,
}

// ProjectLinks holds the optional outbound links for a project.
type ProjectLinks struct {
	Live   string `json:"live,omitempty"`
	GitHub string `json:"github,omitempty"`
}

// Philosophy is the optional attributed design-philosophy quote.
type Philosophy struct {
	Quote  string `json:"quote"`
	Author string `json:"author,omitempty"`
}

// ProjectSection is one titled prose section of a project page.
type ProjectSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// GalleryItem is one entry of a project gallery.
type GalleryItem struct {
	Type  string `json:"type"`
	Label string `json:"label"`
}

// Project represents a portfolio project.
type Project struct {
	ProjectID   int64            `json:"id"`
	Slug        string           `json:"slug"` // unique, URL-facing
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Tech        []string         `json:"tech"`
	Year        string           `json:"year"`
	Status      string           `json:"status"`
	Featured    bool             `json:"featured"`
	Role        string           `json:"role"`
	Tagline     string           `json:"tagline"`
	Links       *ProjectLinks    `json:"links"`      // nil when absent
	Philosophy  *Philosophy      `json:"philosophy"` // nil when absent
	Sections    []ProjectSection `json:"sections"`   // nil when absent
	Gallery     []GalleryItem    `json:"gallery"`
}

// Validate checks required scalar fields and the status value.
func (p *Project) Validate() error {
	if p.Slug == "" {
		return ErrInvalidSlug
	}
	if p.Title == "" {
		return ErrInvalidTitle
	}
	if p.Status != "" && !validProjectStatuses[p.Status] {
		return ErrInvalidStatus
	}
	return nil
}
