package httpapi

import (
	"encoding/json"
	"net/http"

	"go.trai.ch/zerr"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError answers with the outermost message of err. Causes and metadata
// are not exposed to callers.
func writeError(w http.ResponseWriter, status int, err error) {
	msg := err.Error()
	if z, ok := err.(*zerr.Error); ok && z.Message() != "" {
		msg = z.Message()
	}
	writeJSON(w, status, errorBody{Error: msg})
}
