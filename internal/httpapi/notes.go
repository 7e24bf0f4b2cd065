// Sticky note endpoints.
//
//	GET  /api/notes        list (newest first)
//	POST /api/notes        create
//	GET  /api/notes/{id}   fetch
//	PUT  /api/notes/{id}   update
//	DELETE /api/notes/{id} delete
package httpapi

import (
	"net/http"

	"github.com/mesh-intelligence/atelier/pkg/types"
)

func (s *Server) handleNotes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		notes, err := s.store.Notes().List()
		if err != nil {
			s.storeError(w, err, "Note", "list notes")
			return
		}
		writeJSON(w, http.StatusOK, notes)

	case http.MethodPost:
		var n types.StickyNote
		if !decodeBody(w, r, &n) {
			return
		}
		n.NoteID = 0
		if _, err := s.store.Notes().Create(&n); err != nil {
			s.storeError(w, err, "Note", "create note")
			return
		}
		writeJSON(w, http.StatusOK, n)

	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleNoteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r, "notes", "Note")
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		n, err := s.store.Notes().Get(id)
		if err != nil {
			s.storeError(w, err, "Note", "fetch note")
			return
		}
		writeJSON(w, http.StatusOK, n)

	case http.MethodPut:
		var n types.StickyNote
		if !decodeBody(w, r, &n) {
			return
		}
		if err := s.store.Notes().Update(id, &n); err != nil {
			s.storeError(w, err, "Note", "update note")
			return
		}
		// Re-read so the response carries the preserved createdAt.
		updated, err := s.store.Notes().Get(id)
		if err != nil {
			s.storeError(w, err, "Note", "fetch note")
			return
		}
		writeJSON(w, http.StatusOK, updated)

	case http.MethodDelete:
		if err := s.store.Notes().Delete(id); err != nil {
			s.storeError(w, err, "Note", "delete note")
			return
		}
		writeSuccess(w)

	default:
		methodNotAllowed(w)
	}
}
