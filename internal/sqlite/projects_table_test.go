// Tests for project lookup by id-or-slug and flexible sub-structures.
package sqlite

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/atelier/pkg/types"
)

func TestProjectGetByIDOrSlug(t *testing.T) {
	b := setupBackend(t)

	id, err := b.Projects().Create(&types.Project{
		Slug:   "weaving-loom",
		Title:  "Weaving Loom",
		Year:   "2025",
		Status: types.StatusActive,
	})
	require.NoError(t, err)

	byID, err := b.Projects().Get(strconv.FormatInt(id, 10))
	require.NoError(t, err)
	assert.Equal(t, "weaving-loom", byID.Slug)

	bySlug, err := b.Projects().Get("weaving-loom")
	require.NoError(t, err)
	assert.Equal(t, id, bySlug.ProjectID)

	_, err = b.Projects().Get("no-such-project")
	assert.True(t, errors.Is(err, types.ErrNotFound))
}

func TestProjectNumericSlugFallsThrough(t *testing.T) {
	b := setupBackend(t)

	// A slug that parses as an integer must still be reachable when no
	// project carries that id.
	id, err := b.Projects().Create(&types.Project{Slug: "2049", Title: "Year 2049"})
	require.NoError(t, err)
	require.NotEqual(t, int64(2049), id)

	got, err := b.Projects().Get("2049")
	require.NoError(t, err)
	assert.Equal(t, id, got.ProjectID)
}

func TestProjectFlexibleFieldsRoundTrip(t *testing.T) {
	b := setupBackend(t)

	project := &types.Project{
		Slug:        "atelier-site",
		Title:       "Atelier Site",
		Description: "Personal site backend",
		Tech:        []string{"Go", "SQLite"},
		Year:        "2026",
		Status:      types.StatusActive,
		Featured:    true,
		Links:       &types.ProjectLinks{Live: "https://example.com", GitHub: "https://github.com/example"},
		Philosophy:  &types.Philosophy{Quote: "Make it simple", Author: "Someone"},
		Sections:    []types.ProjectSection{{Title: "Approach", Content: "Slowly."}},
		Gallery:     []types.GalleryItem{{Type: "image", Label: "Homepage"}},
	}
	id, err := b.Projects().Create(project)
	require.NoError(t, err)

	got, err := b.Projects().Get(strconv.FormatInt(id, 10))
	require.NoError(t, err)
	assert.Equal(t, project.Tech, got.Tech)
	assert.Equal(t, project.Links, got.Links)
	assert.Equal(t, project.Philosophy, got.Philosophy)
	assert.Equal(t, project.Sections, got.Sections)
	assert.Equal(t, project.Gallery, got.Gallery)
}

func TestProjectAbsentOptionalsStayNil(t *testing.T) {
	b := setupBackend(t)

	id, err := b.Projects().Create(&types.Project{Slug: "bare", Title: "Bare"})
	require.NoError(t, err)

	got, err := b.Projects().Get(strconv.FormatInt(id, 10))
	require.NoError(t, err)
	assert.Nil(t, got.Links)
	assert.Nil(t, got.Philosophy)
}

func TestProjectUpdateAndDelete(t *testing.T) {
	b := setupBackend(t)

	id, err := b.Projects().Create(&types.Project{Slug: "ephemeral", Title: "Ephemeral", Status: types.StatusActive})
	require.NoError(t, err)

	update := &types.Project{Slug: "ephemeral", Title: "Ephemeral, revised", Status: types.StatusArchived}
	require.NoError(t, b.Projects().Update(id, update))

	got, err := b.Projects().Get(strconv.FormatInt(id, 10))
	require.NoError(t, err)
	assert.Equal(t, "Ephemeral, revised", got.Title)
	assert.Equal(t, types.StatusArchived, got.Status)

	require.NoError(t, b.Projects().Delete(id))
	_, err = b.Projects().Get(strconv.FormatInt(id, 10))
	assert.True(t, errors.Is(err, types.ErrNotFound))
}
