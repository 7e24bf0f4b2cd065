// Package httpapi exposes the content store over HTTP JSON endpoints.
// It serves both the public site reads and the admin write surface.
// Implements: prd007-http-api; docs/ARCHITECTURE § HTTP API.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/atelier/pkg/types"
)

// maxRequestBodySize limits request body sizes to prevent DoS.
const maxRequestBodySize = 1 << 20 // 1 MB

// apiPrefix is the path segment all routes are registered under.
const apiPrefix = "/api/"

// Server routes HTTP requests to the content store.
type Server struct {
	store  types.Store
	logger *slog.Logger
	mux    *http.ServeMux
}

// NewServer creates a Server over the given store. A nil logger falls back
// to slog.Default.
func NewServer(store types.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		store:  store,
		logger: logger,
		mux:    http.NewServeMux(),
	}
	s.registerHandlers()
	return s
}

// registerHandlers registers all routes. Collection handlers own
// method dispatch; item handlers additionally parse the trailing
// identifier segment.
func (s *Server) registerHandlers() {
	s.mux.HandleFunc(apiPrefix+"articles", s.handleArticles)
	s.mux.HandleFunc(apiPrefix+"articles/", s.handleArticleItem)
	s.mux.HandleFunc(apiPrefix+"projects", s.handleProjects)
	s.mux.HandleFunc(apiPrefix+"projects/", s.handleProjectItem)
	s.mux.HandleFunc(apiPrefix+"quotes", s.handleQuotes)
	s.mux.HandleFunc(apiPrefix+"quotes/", s.handleQuoteItem)
	s.mux.HandleFunc(apiPrefix+"intentions", s.handleIntentions)
	s.mux.HandleFunc(apiPrefix+"intentions/", s.handleIntentionItem)
	s.mux.HandleFunc(apiPrefix+"contemplations", s.handleContemplations)
	s.mux.HandleFunc(apiPrefix+"contemplations/", s.handleContemplationItem)
	s.mux.HandleFunc(apiPrefix+"notes", s.handleNotes)
	s.mux.HandleFunc(apiPrefix+"notes/", s.handleNoteItem)
	s.mux.HandleFunc(apiPrefix+"profile", s.handleProfile)
}

// Handler returns the server's root handler with logging middleware applied.
func (s *Server) Handler() http.Handler {
	return s.withLogging(s.mux)
}

// withLogging assigns each request a UUID request id and logs method, path,
// status, and duration on completion.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info("request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}

// statusRecorder captures the response status for the logging middleware.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// successResponse is the body for operations that return no entity.
type successResponse struct {
	Success bool `json:"success"`
}

// errorResponse is the body for every error status.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON marshals v as JSON and writes it to w with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Response is already partially written; nothing left to do.
		_ = err
	}
}

// writeError writes a JSON error body with the given status code.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeSuccess writes the {"success":true} body.
func writeSuccess(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// validationErrors lists the store sentinels mapped to 400 rather than 500.
var validationErrors = []error{
	types.ErrInvalidData,
	types.ErrInvalidSlug,
	types.ErrInvalidTitle,
	types.ErrInvalidText,
	types.ErrInvalidName,
	types.ErrInvalidQuestion,
	types.ErrInvalidStatus,
	types.ErrInvalidBlockType,
	types.ErrInvalidColor,
	types.ErrContemplationMissing,
}

// storeError maps a store error to its HTTP response: 404 for NotFound,
// 400 for validation sentinels, 500 for everything else (storage and codec
// failures). entity and action feed the response messages, e.g.
// "Article not found" / "Failed to update article".
func (s *Server) storeError(w http.ResponseWriter, err error, entity, action string) {
	if errors.Is(err, types.ErrNotFound) {
		writeError(w, http.StatusNotFound, entity+" not found")
		return
	}
	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	s.logger.Error("store operation failed", "action", action, "error", err)
	writeError(w, http.StatusInternalServerError, "Failed to "+action)
}

// decodeBody decodes a size-limited JSON request body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// itemID extracts and parses the trailing numeric identifier of an item
// path. Any unparseable identifier is reported as not found: the route
// namespace only ever contains integer ids.
func itemID(w http.ResponseWriter, r *http.Request, collection, entity string) (int64, bool) {
	tail := r.URL.Path[len(apiPrefix+collection+"/"):]
	id, err := strconv.ParseInt(tail, 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, entity+" not found")
		return 0, false
	}
	return id, true
}

// methodNotAllowed writes the 405 response.
func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

// listAll reports whether the request asked for the unfiltered admin view.
func listAll(r *http.Request) bool {
	return r.URL.Query().Get("all") == "true"
}
