// Project endpoints.
//
//	GET  /api/projects            list
//	POST /api/projects            create
//	GET  /api/projects/{idOrSlug} fetch (numeric id first, slug fallback)
//	PUT  /api/projects/{id}       update
//	DELETE /api/projects/{id}     delete
package httpapi

import (
	"net/http"

	"github.com/mesh-intelligence/atelier/pkg/types"
)

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		projects, err := s.store.Projects().List()
		if err != nil {
			s.storeError(w, err, "Project", "list projects")
			return
		}
		writeJSON(w, http.StatusOK, projects)

	case http.MethodPost:
		var p types.Project
		if !decodeBody(w, r, &p) {
			return
		}
		p.ProjectID = 0
		if _, err := s.store.Projects().Create(&p); err != nil {
			s.storeError(w, err, "Project", "create project")
			return
		}
		writeJSON(w, http.StatusOK, p)

	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleProjectItem(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		// The store resolves numeric ids with a slug fallback.
		idOrSlug := r.URL.Path[len(apiPrefix+"projects/"):]
		p, err := s.store.Projects().Get(idOrSlug)
		if err != nil {
			s.storeError(w, err, "Project", "fetch project")
			return
		}
		writeJSON(w, http.StatusOK, p)

	case http.MethodPut:
		id, ok := itemID(w, r, "projects", "Project")
		if !ok {
			return
		}
		var p types.Project
		if !decodeBody(w, r, &p) {
			return
		}
		if err := s.store.Projects().Update(id, &p); err != nil {
			s.storeError(w, err, "Project", "update project")
			return
		}
		p.ProjectID = id
		writeJSON(w, http.StatusOK, p)

	case http.MethodDelete:
		id, ok := itemID(w, r, "projects", "Project")
		if !ok {
			return
		}
		if err := s.store.Projects().Delete(id); err != nil {
			s.storeError(w, err, "Project", "delete project")
			return
		}
		writeSuccess(w)

	default:
		methodNotAllowed(w)
	}
}
