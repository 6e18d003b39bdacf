package httpapi

import (
	"encoding/json"
	"net/http"

	"esafd/internal/registry"
	"esafd/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}

// writeServiceError maps well-known registry errors to HTTP status codes.
// A poisoned registry lock means in-memory state may be inconsistent, so
// it maps to 503 rather than 500.
func writeServiceError(w http.ResponseWriter, err error) int {
	switch {
	case registry.IsLockUnavailable(err):
		writeJSONError(w, http.StatusServiceUnavailable, err.Error())
		return http.StatusServiceUnavailable
	default:
		if he, ok := err.(HTTPError); ok {
			writeJSONError(w, he.StatusCode(), he.Error())
			return he.StatusCode()
		}
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return http.StatusInternalServerError
	}
}
