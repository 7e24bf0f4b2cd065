// Contemplation endpoints.
//
//	GET  /api/contemplations        list (active, order ascending, latest 5
//	                                answers each; ?all=true for admin)
//	POST /api/contemplations        create
//	PUT  /api/contemplations        bulk reorder
//	GET  /api/contemplations/{id}   fetch with all answers
//	PUT  /api/contemplations/{id}   update
//	DELETE /api/contemplations/{id} delete (unlinks answers, keeps them)
package httpapi

import (
	"net/http"

	"github.com/mesh-intelligence/atelier/pkg/types"
)

// createContemplationRequest is the request body for POST /api/contemplations.
// Active defaults to true and a missing order requests append-at-end.
type createContemplationRequest struct {
	Question string `json:"question"`
	Active   *bool  `json:"active"`
	Featured bool   `json:"featured"`
	Order    *int   `json:"order"`
}

// reorderContemplationsRequest is the request body for PUT /api/contemplations.
type reorderContemplationsRequest struct {
	Contemplations []types.OrderAssignment `json:"contemplations"`
}

func (s *Server) handleContemplations(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		contemplations, err := s.store.Contemplations().List(listAll(r))
		if err != nil {
			s.storeError(w, err, "Contemplation", "list contemplations")
			return
		}
		writeJSON(w, http.StatusOK, contemplations)

	case http.MethodPost:
		var req createContemplationRequest
		if !decodeBody(w, r, &req) {
			return
		}
		c := types.Contemplation{
			Question: req.Question,
			Active:   true,
			Featured: req.Featured,
			Order:    -1,
			Answers:  []types.StickyNote{},
		}
		if req.Active != nil {
			c.Active = *req.Active
		}
		if req.Order != nil {
			c.Order = *req.Order
		}
		if _, err := s.store.Contemplations().Create(&c); err != nil {
			s.storeError(w, err, "Contemplation", "create contemplation")
			return
		}
		writeJSON(w, http.StatusOK, c)

	case http.MethodPut:
		var req reorderContemplationsRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if err := s.store.Contemplations().Reorder(req.Contemplations); err != nil {
			s.storeError(w, err, "Contemplation", "reorder contemplations")
			return
		}
		writeSuccess(w)

	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleContemplationItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r, "contemplations", "Contemplation")
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		c, err := s.store.Contemplations().Get(id)
		if err != nil {
			s.storeError(w, err, "Contemplation", "fetch contemplation")
			return
		}
		writeJSON(w, http.StatusOK, c)

	case http.MethodPut:
		var c types.Contemplation
		if !decodeBody(w, r, &c) {
			return
		}
		if err := s.store.Contemplations().Update(id, &c); err != nil {
			s.storeError(w, err, "Contemplation", "update contemplation")
			return
		}
		// Return the stored state, answers included.
		updated, err := s.store.Contemplations().Get(id)
		if err != nil {
			s.storeError(w, err, "Contemplation", "fetch contemplation")
			return
		}
		writeJSON(w, http.StatusOK, updated)

	case http.MethodDelete:
		if err := s.store.Contemplations().Delete(id); err != nil {
			s.storeError(w, err, "Contemplation", "delete contemplation")
			return
		}
		writeSuccess(w)

	default:
		methodNotAllowed(w)
	}
}
