package utils

import (
	"encoding/json"
	"net/http"
)

// errorResponse is the envelope every failing handler answers with.
type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// WriteError writes message inside the error envelope with the given status.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(errorResponse{
		Status:  "error",
		Message: message,
	})
}
