package utils

import (
	"encoding/json"
	"net/http"
)

// JSON writes payload as the response body with the given status.
// A nil payload sends headers only.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// JSONError wraps message in the {"error": ...} envelope shared by
// every handler.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
