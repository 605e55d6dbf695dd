package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-hair-salon/internal/logger"
	"github.com/MKhiriev/go-hair-salon/internal/service"
	"github.com/MKhiriev/go-hair-salon/internal/utils"
	"github.com/MKhiriev/go-hair-salon/models"
	"github.com/go-chi/chi/v5"
)

// issueToken answers GET /jwt?email=. A token is issued only for an email
// that belongs to an existing account; otherwise 403 with an empty token.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	email := r.URL.Query().Get("email")

	token, err := h.services.AuthService.IssueToken(r.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			log.Debug().Str("email", email).Msg("no account for token request")
			_, _ = utils.WriteJSON(w, models.AccessToken{}, http.StatusForbidden)
			return
		}
		writeError(w, r, err, "*Handler.issueToken")
		return
	}

	writeResult(w, r, models.AccessToken{AccessToken: token.SignedString}, "*Handler.issueToken")
}

// adminStatus answers GET /users/admin/{email} with {"isAdmin": bool}.
func (h *Handler) adminStatus(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	isAdmin, err := h.services.AuthService.IsAdmin(r.Context(), email)
	if err != nil {
		writeError(w, r, err, "*Handler.adminStatus")
		return
	}

	writeResult(w, r, models.AdminStatus{IsAdmin: isAdmin}, "*Handler.adminStatus")
}
