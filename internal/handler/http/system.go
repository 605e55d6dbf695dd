package http

import (
	"net/http"

	"github.com/MKhiriev/go-hair-salon/internal/app"
	"github.com/MKhiriev/go-hair-salon/internal/utils"
)

func (h *Handler) liveness(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteText(w, app.MsgServerRunning, http.StatusOK)
}
