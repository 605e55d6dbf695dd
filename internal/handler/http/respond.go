package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-hair-salon/internal/logger"
	"github.com/MKhiriev/go-hair-salon/internal/service"
	"github.com/MKhiriev/go-hair-salon/internal/utils"
	"github.com/MKhiriev/go-hair-salon/models"
)

// decodeDocument reads a JSON object body. Anything else (array, scalar,
// malformed or empty body) wraps [service.ErrInvalidDataProvided].
func decodeDocument(r *http.Request) (models.Document, error) {
	var doc models.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}

	return doc, nil
}

// writeResult relays a raw persistence outcome as JSON with status 200.
func writeResult(w http.ResponseWriter, r *http.Request, data any, funcName string) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("error writing response")
	}
}
