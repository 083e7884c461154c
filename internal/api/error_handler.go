package api

import (
	"encoding/json"
	"net/http"

	"github.com/eyeradar/lexiquest/internal/errors"
	"github.com/eyeradar/lexiquest/internal/logger"
)

// errorResponse is the JSON body returned for all error responses.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// handleError writes an error response, mapping AppError to its status code.
// Unknown errors are wrapped as internal errors so their details stay out of
// the response body.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.NewInternalError(err)
	}

	if appErr.Status >= 500 {
		log.Error("server error: %v", appErr)
	} else {
		log.Warn("client error: %v", appErr)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorDetail{
			Code:    appErr.Code,
			Message: appErr.Message,
		},
	})
}
