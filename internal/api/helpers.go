package api

import (
	"encoding/json"
	"net/http"

	"github.com/eyeradar/lexiquest/internal/errors"
	"github.com/eyeradar/lexiquest/internal/logger"
)

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to encode JSON response: %v", err)
	}
}

// decodeJSON decodes a request body into v, returning a bad-request error on failure.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.NewBadRequestError("invalid JSON request body")
	}
	return nil
}
