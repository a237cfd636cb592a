package handlers

import (
	"encoding/json"
	"net/http"
)

// Health responds to liveness probes.
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// WriteError writes a standardised JSON error response. The request id is
// not repeated in the body; it travels in the X-Request-ID header.
func WriteError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": msg,
	})
}
