package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(r)
	if err != nil {
		writeError(w, r, err, "*Handler.createUser")
		return
	}

	res, err := h.services.UserService.Create(r.Context(), doc)
	if err != nil {
		writeError(w, r, err, "*Handler.createUser")
		return
	}

	writeResult(w, r, res, "*Handler.createUser")
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	docs, err := h.services.UserService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.listUsers")
		return
	}

	writeResult(w, r, docs, "*Handler.listUsers")
}

func (h *Handler) listAdmins(w http.ResponseWriter, r *http.Request) {
	docs, err := h.services.UserService.ListAdmins(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.listAdmins")
		return
	}

	writeResult(w, r, docs, "*Handler.listAdmins")
}

// makeAdmin answers PUT /users/admin/{id}. An unknown id is upserted.
func (h *Handler) makeAdmin(w http.ResponseWriter, r *http.Request) {
	res, err := h.services.UserService.MakeAdmin(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "*Handler.makeAdmin")
		return
	}

	writeResult(w, r, res, "*Handler.makeAdmin")
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	res, err := h.services.UserService.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "*Handler.deleteUser")
		return
	}

	writeResult(w, r, res, "*Handler.deleteUser")
}
