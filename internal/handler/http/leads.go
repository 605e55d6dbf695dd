package http

import "net/http"

func (h *Handler) createLead(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(r)
	if err != nil {
		writeError(w, r, err, "*Handler.createLead")
		return
	}

	res, err := h.services.LeadService.Create(r.Context(), doc)
	if err != nil {
		writeError(w, r, err, "*Handler.createLead")
		return
	}

	writeResult(w, r, res, "*Handler.createLead")
}
