// Article endpoints.
//
//	GET  /api/articles            list
//	POST /api/articles            create
//	GET  /api/articles/{idOrSlug} fetch (numeric id, else slug)
//	PUT  /api/articles/{id}       update
//	DELETE /api/articles/{id}     delete
package httpapi

import (
	"net/http"
	"strconv"

	"github.com/mesh-intelligence/atelier/pkg/types"
)

func (s *Server) handleArticles(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		articles, err := s.store.Articles().List()
		if err != nil {
			s.storeError(w, err, "Article", "list articles")
			return
		}
		writeJSON(w, http.StatusOK, articles)

	case http.MethodPost:
		var a types.Article
		if !decodeBody(w, r, &a) {
			return
		}
		a.ArticleID = 0
		if _, err := s.store.Articles().Create(&a); err != nil {
			s.storeError(w, err, "Article", "create article")
			return
		}
		writeJSON(w, http.StatusOK, a)

	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleArticleItem(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		// Public article fetches address by slug; the admin uses ids.
		tail := r.URL.Path[len(apiPrefix+"articles/"):]
		a, err := s.getArticle(tail)
		if err != nil {
			s.storeError(w, err, "Article", "fetch article")
			return
		}
		writeJSON(w, http.StatusOK, a)

	case http.MethodPut:
		id, ok := itemID(w, r, "articles", "Article")
		if !ok {
			return
		}
		var a types.Article
		if !decodeBody(w, r, &a) {
			return
		}
		if err := s.store.Articles().Update(id, &a); err != nil {
			s.storeError(w, err, "Article", "update article")
			return
		}
		a.ArticleID = id
		writeJSON(w, http.StatusOK, a)

	case http.MethodDelete:
		id, ok := itemID(w, r, "articles", "Article")
		if !ok {
			return
		}
		if err := s.store.Articles().Delete(id); err != nil {
			s.storeError(w, err, "Article", "delete article")
			return
		}
		writeSuccess(w)

	default:
		methodNotAllowed(w)
	}
}

// getArticle resolves an article by numeric id when the identifier parses as
// an integer, by slug otherwise.
func (s *Server) getArticle(idOrSlug string) (*types.Article, error) {
	if id, err := strconv.ParseInt(idOrSlug, 10, 64); err == nil {
		return s.store.Articles().Get(id)
	}
	return s.store.Articles().GetBySlug(idOrSlug)
}
