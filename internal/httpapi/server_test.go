// End-to-end handler tests over a real SQLite store.
package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/atelier/internal/sqlite"
	"github.com/mesh-intelligence/atelier/pkg/types"
)

// newTestHandler returns the API handler backed by a fresh SQLite store in a
// temp directory, detached on cleanup.
func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	backend := sqlite.NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
	require.NoError(t, backend.Attach(config))
	t.Cleanup(func() { backend.Detach() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(backend, logger).Handler()
}

// doJSON performs a request with an optional JSON body and decodes the JSON
// response into out when out is non-nil.
func doJSON(t *testing.T, h http.Handler, method, path string, body, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		if raw, ok := body.(string); ok {
			reader = strings.NewReader(raw)
		} else {
			data, err := json.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewReader(data)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out),
			"response body: %s", rec.Body.String())
	}
	return rec
}

func TestQuoteLifecycle(t *testing.T) {
	h := newTestHandler(t)

	var created types.Quote
	rec := doJSON(t, h, http.MethodPost, "/api/quotes",
		map[string]any{"text": "We shape our tools.", "author": "Culkin", "source": "", "category": nil},
		&created)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotZero(t, created.QuoteID)
	assert.Nil(t, created.Category)

	var listed []types.Quote
	rec = doJSON(t, h, http.MethodGet, "/api/quotes", nil, &listed)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, listed, 1)

	idPath := "/api/quotes/" + itoa(created.QuoteID)

	var updated types.Quote
	rec = doJSON(t, h, http.MethodPut, idPath,
		map[string]any{"text": "We shape our tools, and thereafter they shape us.", "author": "Culkin", "source": "", "category": "media"},
		&updated)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, updated.Category)
	assert.Equal(t, "media", *updated.Category)
	assert.Equal(t, created.QuoteID, updated.QuoteID)

	var success map[string]bool
	rec = doJSON(t, h, http.MethodDelete, idPath, nil, &success)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, success["success"])

	var errBody map[string]string
	rec = doJSON(t, h, http.MethodGet, idPath, nil, &errBody)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Quote not found", errBody["error"])
}

func TestItemNotFoundMappings(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		path    string
		message string
	}{
		{"/api/quotes/999", "Quote not found"},
		{"/api/quotes/not-a-number", "Quote not found"},
		{"/api/intentions/999", "Intention not found"},
		{"/api/notes/abc", "Note not found"},
		{"/api/contemplations/999", "Contemplation not found"},
	}

	for _, tt := range tests {
		var body map[string]string
		rec := doJSON(t, h, http.MethodGet, tt.path, nil, &body)
		assert.Equal(t, http.StatusNotFound, rec.Code, "path %s", tt.path)
		assert.Equal(t, tt.message, body["error"], "path %s", tt.path)
	}
}

func TestValidationErrorsMapTo400(t *testing.T) {
	h := newTestHandler(t)

	var body map[string]string
	rec := doJSON(t, h, http.MethodPost, "/api/quotes",
		map[string]any{"text": "", "author": "nobody"}, &body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, body["error"])
}

func TestMalformedBodyRejected(t *testing.T) {
	h := newTestHandler(t)

	var body map[string]string
	rec := doJSON(t, h, http.MethodPost, "/api/quotes", `{"text": `, &body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", body["error"])
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)

	var body map[string]string
	rec := doJSON(t, h, http.MethodDelete, "/api/profile", nil, &body)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Method not allowed", body["error"])
}

func TestProfileDefaultAndUpdate(t *testing.T) {
	h := newTestHandler(t)

	var profile types.Profile
	rec := doJSON(t, h, http.MethodGet, "/api/profile", nil, &profile)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, types.DefaultProfile().Name, profile.Name)
	require.NotZero(t, profile.ProfileID)

	var updated types.Profile
	rec = doJSON(t, h, http.MethodPut, "/api/profile",
		map[string]any{"name": "Ada", "title": "Maker", "bio": "I make things.", "social": map[string]string{"github": "ada"}},
		&updated)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ada", updated.Name)
	assert.Equal(t, profile.ProfileID, updated.ProfileID)
	require.NotNil(t, updated.Social)
	assert.Equal(t, "ada", updated.Social.GitHub)
}

// itoa keeps the path-building call sites short.
func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
