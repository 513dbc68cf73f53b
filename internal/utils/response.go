package utils

import (
	"encoding/json"
	"net/http"

	"RECIPEBOOK_BACK-END/internal/dto"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes the standard error body. message must be safe to
// show to clients; upstream error details belong in the logs.
func WriteErrorResponse(w http.ResponseWriter, status int, code, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: message, Code: code})
}

// WriteTextResponse writes a plain text response
func WriteTextResponse(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(text))
}
