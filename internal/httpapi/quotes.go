// Quote endpoints.
//
//	GET  /api/quotes        list
//	POST /api/quotes        create
//	GET  /api/quotes/{id}   fetch
//	PUT  /api/quotes/{id}   update
//	DELETE /api/quotes/{id} delete
package httpapi

import (
	"net/http"

	"github.com/mesh-intelligence/atelier/pkg/types"
)

func (s *Server) handleQuotes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		quotes, err := s.store.Quotes().List()
		if err != nil {
			s.storeError(w, err, "Quote", "list quotes")
			return
		}
		writeJSON(w, http.StatusOK, quotes)

	case http.MethodPost:
		var q types.Quote
		if !decodeBody(w, r, &q) {
			return
		}
		q.QuoteID = 0
		if _, err := s.store.Quotes().Create(&q); err != nil {
			s.storeError(w, err, "Quote", "create quote")
			return
		}
		writeJSON(w, http.StatusOK, q)

	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleQuoteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r, "quotes", "Quote")
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		q, err := s.store.Quotes().Get(id)
		if err != nil {
			s.storeError(w, err, "Quote", "fetch quote")
			return
		}
		writeJSON(w, http.StatusOK, q)

	case http.MethodPut:
		var q types.Quote
		if !decodeBody(w, r, &q) {
			return
		}
		if err := s.store.Quotes().Update(id, &q); err != nil {
			s.storeError(w, err, "Quote", "update quote")
			return
		}
		q.QuoteID = id
		writeJSON(w, http.StatusOK, q)

	case http.MethodDelete:
		if err := s.store.Quotes().Delete(id); err != nil {
			s.storeError(w, err, "Quote", "delete quote")
			return
		}
		writeSuccess(w)

	default:
		methodNotAllowed(w)
	}
}
