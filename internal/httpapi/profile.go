// Profile endpoints for the singleton profile row.
//
//	GET /api/profile   fetch (creates the default row on first read)
//	PUT /api/profile   replace (creates the row if none exists)
package httpapi

import (
	"net/http"

	"github.com/mesh-intelligence/atelier/pkg/types"
)

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		p, err := s.store.Profile().Get()
		if err != nil {
			s.storeError(w, err, "Profile", "fetch profile")
			return
		}
		writeJSON(w, http.StatusOK, p)

	case http.MethodPut:
		var p types.Profile
		if !decodeBody(w, r, &p) {
			return
		}
		stored, err := s.store.Profile().Update(&p)
		if err != nil {
			s.storeError(w, err, "Profile", "update profile")
			return
		}
		writeJSON(w, http.StatusOK, stored)

	default:
		methodNotAllowed(w)
	}
}
