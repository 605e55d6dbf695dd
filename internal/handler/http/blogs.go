package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) createBlog(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(r)
	if err != nil {
		writeError(w, r, err, "*Handler.createBlog")
		return
	}

	res, err := h.services.BlogService.Create(r.Context(), doc)
	if err != nil {
		writeError(w, r, err, "*Handler.createBlog")
		return
	}

	writeResult(w, r, res, "*Handler.createBlog")
}

func (h *Handler) listBlogs(w http.ResponseWriter, r *http.Request) {
	docs, err := h.services.BlogService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.listBlogs")
		return
	}

	writeResult(w, r, docs, "*Handler.listBlogs")
}

// findBlog answers GET /blogs/{id} with a JSON array, empty when nothing
// matches.
func (h *Handler) findBlog(w http.ResponseWriter, r *http.Request) {
	docs, err := h.services.BlogService.Find(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "*Handler.findBlog")
		return
	}

	writeResult(w, r, docs, "*Handler.findBlog")
}

func (h *Handler) deleteBlog(w http.ResponseWriter, r *http.Request) {
	res, err := h.services.BlogService.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "*Handler.deleteBlog")
		return
	}

	writeResult(w, r, res, "*Handler.deleteBlog")
}
