package http

import "net/http"

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(r)
	if err != nil {
		writeError(w, r, err, "*Handler.placeOrder")
		return
	}

	res, err := h.services.OrderService.Place(r.Context(), doc)
	if err != nil {
		writeError(w, r, err, "*Handler.placeOrder")
		return
	}

	writeResult(w, r, res, "*Handler.placeOrder")
}
