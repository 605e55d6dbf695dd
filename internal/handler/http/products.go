package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	docs, err := h.services.ProductService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.listProducts")
		return
	}

	writeResult(w, r, docs, "*Handler.listProducts")
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	res, err := h.services.ProductService.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "*Handler.deleteProduct")
		return
	}

	writeResult(w, r, res, "*Handler.deleteProduct")
}
