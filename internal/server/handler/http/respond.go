// Package http provides the HTTP handlers and routing for the CalTrack API.
package http

import (
	"encoding/json"
	"net/http"
)

// writeJSON serializes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError emits the uniform {"error": msg} failure body. msg must not
// carry internal detail; handlers map errors to generic messages before
// calling this.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
