package sqlite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/atelier/pkg/types"
)

func sampleArticle() *types.Article {
	return &types.Article{
		Slug:     "on-slowness",
		Title:    "On Slowness",
		Excerpt:  "Why slow work lasts.",
		Date:     "2026-03-14",
		ReadTime: "6 min",
		Tags:     []string{"craft", "attention"},
		Featured: true,
		Epigraph: &types.Epigraph{Text: "Festina lente.", Author: "Augustus"},
		Content: []types.ContentBlock{
			{Type: types.BlockHeading, Text: "Beginnings"},
			{Type: types.BlockParagraph, Text: "Slow is smooth."},
			{Type: types.BlockQuote, Text: "Smooth is fast.", Author: "Unknown"},
		},
	}
}

func TestArticleRoundTrip(t *testing.T) {
	b := setupBackend(t)

	article := sampleArticle()
	id, err := b.Articles().Create(article)
	require.NoError(t, err)

	got, err := b.Articles().Get(id)
	require.NoError(t, err)
	assert.Equal(t, article.Slug, got.Slug)
	assert.Equal(t, article.Tags, got.Tags)
	assert.Equal(t, article.Epigraph, got.Epigraph)
	assert.Equal(t, article.Content, got.Content)

	bySlug, err := b.Articles().GetBySlug("on-slowness")
	require.NoError(t, err)
	assert.Equal(t, id, bySlug.ArticleID)
}

func TestArticleAbsentFlexibleFields(t *testing.T) {
	b := setupBackend(t)

	id, err := b.Articles().Create(&types.Article{Slug: "bare", Title: "Bare"})
	require.NoError(t, err)

	got, err := b.Articles().Get(id)
	require.NoError(t, err)
	assert.Nil(t, got.Epigraph, "absent epigraph stays nil")
	require.NotNil(t, got.Tags, "absent tags decode to an empty slice")
	assert.Empty(t, got.Tags)
	require.NotNil(t, got.Content)
	assert.Empty(t, got.Content)
}

func TestArticleCorruptFieldSurfaces(t *testing.T) {
	b := setupBackend(t)

	id, err := b.Articles().Create(sampleArticle())
	require.NoError(t, err)

	_, err = b.db.Exec("UPDATE articles SET content = '[{\"type\": broken' WHERE article_id = ?", id)
	require.NoError(t, err)

	_, err = b.Articles().Get(id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrCorruptField), "expected ErrCorruptField, got %v", err)
}

func TestArticleUpdateAndDelete(t *testing.T) {
	b := setupBackend(t)

	id, err := b.Articles().Create(sampleArticle())
	require.NoError(t, err)

	update := sampleArticle()
	update.Title = "On Slowness, Revisited"
	update.Epigraph = nil
	require.NoError(t, b.Articles().Update(id, update))

	got, err := b.Articles().Get(id)
	require.NoError(t, err)
	assert.Equal(t, "On Slowness, Revisited", got.Title)
	assert.Nil(t, got.Epigraph)

	require.NoError(t, b.Articles().Delete(id))
	_, err = b.Articles().Get(id)
	assert.True(t, errors.Is(err, types.ErrNotFound))
	_, err = b.Articles().GetBySlug("on-slowness")
	assert.True(t, errors.Is(err, types.ErrNotFound))
}

func TestArticleListOrdering(t *testing.T) {
	b := setupBackend(t)

	for _, a := range []struct{ slug, date string }{
		{"older", "2025-01-01"},
		{"newest", "2026-06-01"},
		{"middle", "2025-09-15"},
	} {
		_, err := b.Articles().Create(&types.Article{Slug: a.slug, Title: a.slug, Date: a.date})
		require.NoError(t, err)
	}

	got, err := b.Articles().List()
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "newest", got[0].Slug)
	assert.Equal(t, "older", got[2].Slug)
}
