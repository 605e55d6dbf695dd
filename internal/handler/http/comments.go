package http

import (
	"net/http"

	"github.com/MKhiriev/go-hair-salon/internal/app"
	"github.com/MKhiriev/go-hair-salon/internal/logger"
	"github.com/MKhiriev/go-hair-salon/internal/utils"
	"github.com/MKhiriev/go-hair-salon/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(r)
	if err != nil {
		writeError(w, r, err, "*Handler.createComment")
		return
	}

	res, err := h.services.CommentService.Create(r.Context(), doc)
	if err != nil {
		writeError(w, r, err, "*Handler.createComment")
		return
	}

	writeResult(w, r, res, "*Handler.createComment")
}

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.services.CommentService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.listComments")
		return
	}

	writeResult(w, r, docs, "*Handler.listComments")
}

// myComments answers GET /mycomments?email=. The query email must equal the
// verified token email.
func (h *Handler) myComments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	email := r.URL.Query().Get("email")
	tokenEmail, ok := utils.GetEmailFromContext(ctx)
	if !ok || email != tokenEmail {
		log.Warn().Str("email", email).Str("token_email", tokenEmail).Msg("comments requested for another account")
		_, _ = utils.WriteJSON(w, models.Message{Message: app.MsgForbiddenOwnAccess}, http.StatusForbidden)
		return
	}

	docs, err := h.services.CommentService.ListByEmail(ctx, email)
	if err != nil {
		writeError(w, r, err, "*Handler.myComments")
		return
	}

	writeResult(w, r, docs, "*Handler.myComments")
}

// deleteComment answers DELETE /mycomments/{id}. Any authenticated caller may
// delete any comment; ownership is not checked.
func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	res, err := h.services.CommentService.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "*Handler.deleteComment")
		return
	}

	writeResult(w, r, res, "*Handler.deleteComment")
}
