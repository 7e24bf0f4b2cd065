// Handler tests for the ordered and relationally linked content types.
package httpapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/atelier/pkg/types"
)

func TestIntentionCreateAndReorder(t *testing.T) {
	h := newTestHandler(t)

	var first, second types.Intention
	rec := doJSON(t, h, http.MethodPost, "/api/intentions", map[string]any{"text": "first"}, &first)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, first.Active, "active defaults to true")
	assert.Equal(t, 0, first.Order)

	rec = doJSON(t, h, http.MethodPost, "/api/intentions", map[string]any{"text": "second"}, &second)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, second.Order)

	var success map[string]bool
	rec = doJSON(t, h, http.MethodPut, "/api/intentions", map[string]any{
		"intentions": []map[string]any{
			{"id": first.IntentionID, "order": 1},
			{"id": second.IntentionID, "order": 0},
		},
	}, &success)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, success["success"])

	var listed []types.Intention
	rec = doJSON(t, h, http.MethodGet, "/api/intentions", nil, &listed)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, listed, 2)
	assert.Equal(t, "second", listed[0].Text)
	assert.Equal(t, "first", listed[1].Text)
}

func TestIntentionListAllQuery(t *testing.T) {
	h := newTestHandler(t)

	doJSON(t, h, http.MethodPost, "/api/intentions", map[string]any{"text": "shown"}, nil)
	doJSON(t, h, http.MethodPost, "/api/intentions", map[string]any{"text": "hidden", "active": false}, nil)

	var public []types.Intention
	doJSON(t, h, http.MethodGet, "/api/intentions", nil, &public)
	require.Len(t, public, 1)
	assert.Equal(t, "shown", public[0].Text)

	var all []types.Intention
	doJSON(t, h, http.MethodGet, "/api/intentions?all=true", nil, &all)
	assert.Len(t, all, 2)
}

func TestIntentionReorderUnknownIDFails(t *testing.T) {
	h := newTestHandler(t)

	var it types.Intention
	doJSON(t, h, http.MethodPost, "/api/intentions", map[string]any{"text": "only"}, &it)

	var body map[string]string
	rec := doJSON(t, h, http.MethodPut, "/api/intentions", map[string]any{
		"intentions": []map[string]any{
			{"id": it.IntentionID, "order": 3},
			{"id": 9999, "order": 4},
		},
	}, &body)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// The batch rolled back; the original order survives.
	var listed []types.Intention
	doJSON(t, h, http.MethodGet, "/api/intentions", nil, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, 0, listed[0].Order)
}

func TestContemplationDeleteUnlinksAnswers(t *testing.T) {
	h := newTestHandler(t)

	var c types.Contemplation
	rec := doJSON(t, h, http.MethodPost, "/api/contemplations",
		map[string]any{"question": "What slowed you down today?"}, &c)
	require.Equal(t, http.StatusOK, rec.Code)

	var note types.StickyNote
	rec = doJSON(t, h, http.MethodPost, "/api/notes",
		map[string]any{"answer": "a long walk", "contemplationId": c.ContemplationID}, &note)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, note.ContemplationID)

	var fetched types.Contemplation
	rec = doJSON(t, h, http.MethodGet, "/api/contemplations/"+itoa(c.ContemplationID), nil, &fetched)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, fetched.Answers, 1)

	var success map[string]bool
	rec = doJSON(t, h, http.MethodDelete, "/api/contemplations/"+itoa(c.ContemplationID), nil, &success)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, success["success"])

	// The answer survives, unlinked.
	var survivor types.StickyNote
	rec = doJSON(t, h, http.MethodGet, "/api/notes/"+itoa(note.NoteID), nil, &survivor)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, survivor.ContemplationID)
}

func TestContemplationReorderEndpoint(t *testing.T) {
	h := newTestHandler(t)

	var first, second types.Contemplation
	doJSON(t, h, http.MethodPost, "/api/contemplations", map[string]any{"question": "first"}, &first)
	doJSON(t, h, http.MethodPost, "/api/contemplations", map[string]any{"question": "second"}, &second)

	var success map[string]bool
	rec := doJSON(t, h, http.MethodPut, "/api/contemplations", map[string]any{
		"contemplations": []map[string]any{
			{"id": first.ContemplationID, "order": 1},
			{"id": second.ContemplationID, "order": 0},
		},
	}, &success)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []types.Contemplation
	doJSON(t, h, http.MethodGet, "/api/contemplations", nil, &listed)
	require.Len(t, listed, 2)
	assert.Equal(t, "second", listed[0].Question)
}

func TestNoteCreateRejectsMissingContemplation(t *testing.T) {
	h := newTestHandler(t)

	var body map[string]string
	rec := doJSON(t, h, http.MethodPost, "/api/notes",
		map[string]any{"answer": "orphan", "contemplationId": 424242}, &body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, body["error"])
}

func TestArticleFetchByIDOrSlug(t *testing.T) {
	h := newTestHandler(t)

	var created types.Article
	rec := doJSON(t, h, http.MethodPost, "/api/articles", map[string]any{
		"slug":    "on-slowness",
		"title":   "On Slowness",
		"date":    "2026-03-14",
		"tags":    []string{"craft"},
		"content": []map[string]any{{"type": "paragraph", "text": "Slow is smooth."}},
	}, &created)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotZero(t, created.ArticleID)

	var byID types.Article
	rec = doJSON(t, h, http.MethodGet, "/api/articles/"+itoa(created.ArticleID), nil, &byID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "on-slowness", byID.Slug)

	var bySlug types.Article
	rec = doJSON(t, h, http.MethodGet, "/api/articles/on-slowness", nil, &bySlug)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ArticleID, bySlug.ArticleID)
}

func TestProjectFetchBySlug(t *testing.T) {
	h := newTestHandler(t)

	var created types.Project
	rec := doJSON(t, h, http.MethodPost, "/api/projects", map[string]any{
		"slug":   "weaving-loom",
		"title":  "Weaving Loom",
		"status": "Active",
	}, &created)
	require.Equal(t, http.StatusOK, rec.Code)

	var got types.Project
	rec = doJSON(t, h, http.MethodGet, "/api/projects/weaving-loom", nil, &got)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ProjectID, got.ProjectID)
}
