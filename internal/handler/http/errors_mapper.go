package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-hair-salon/internal/logger"
	"github.com/MKhiriev/go-hair-salon/internal/service"
	"github.com/MKhiriev/go-hair-salon/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	store.ErrInvalidID:             http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status and its standard
// text.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Str("func", funcName).Int("status", status).Send()
	http.Error(w, http.StatusText(status), status)
}
