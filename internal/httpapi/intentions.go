// Daily intention endpoints.
//
//	GET  /api/intentions          list (active, order ascending; ?all=true for admin)
//	POST /api/intentions          create
//	PUT  /api/intentions          bulk reorder
//	GET  /api/intentions/{id}     fetch
//	PUT  /api/intentions/{id}     update
//	DELETE /api/intentions/{id}   delete
package httpapi

import (
	"net/http"

	"github.com/mesh-intelligence/atelier/pkg/types"
)

// createIntentionRequest is the request body for POST /api/intentions.
// Active defaults to true and a missing order requests append-at-end.
type createIntentionRequest struct {
	Text   string `json:"text"`
	Active *bool  `json:"active"`
	Order  *int   `json:"order"`
}

// reorderIntentionsRequest is the request body for PUT /api/intentions.
type reorderIntentionsRequest struct {
	Intentions []types.OrderAssignment `json:"intentions"`
}

func (s *Server) handleIntentions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		intentions, err := s.store.Intentions().List(listAll(r))
		if err != nil {
			s.storeError(w, err, "Intention", "list intentions")
			return
		}
		writeJSON(w, http.StatusOK, intentions)

	case http.MethodPost:
		var req createIntentionRequest
		if !decodeBody(w, r, &req) {
			return
		}
		it := types.Intention{
			Text:   req.Text,
			Active: true,
			Order:  -1, // append at end unless the caller chose an order
		}
		if req.Active != nil {
			it.Active = *req.Active
		}
		if req.Order != nil {
			it.Order = *req.Order
		}
		if _, err := s.store.Intentions().Create(&it); err != nil {
			s.storeError(w, err, "Intention", "create intention")
			return
		}
		writeJSON(w, http.StatusOK, it)

	case http.MethodPut:
		var req reorderIntentionsRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if err := s.store.Intentions().Reorder(req.Intentions); err != nil {
			s.storeError(w, err, "Intention", "reorder intentions")
			return
		}
		writeSuccess(w)

	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleIntentionItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r, "intentions", "Intention")
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		it, err := s.store.Intentions().Get(id)
		if err != nil {
			s.storeError(w, err, "Intention", "fetch intention")
			return
		}
		writeJSON(w, http.StatusOK, it)

	case http.MethodPut:
		var it types.Intention
		if !decodeBody(w, r, &it) {
			return
		}
		if err := s.store.Intentions().Update(id, &it); err != nil {
			s.storeError(w, err, "Intention", "update intention")
			return
		}
		it.IntentionID = id
		writeJSON(w, http.StatusOK, it)

	case http.MethodDelete:
		if err := s.store.Intentions().Delete(id); err != nil {
			s.storeError(w, err, "Intention", "delete intention")
			return
		}
		writeSuccess(w)

	default:
		methodNotAllowed(w)
	}
}
