package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error body shape used by every route.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ResponseJSON writes v as the response body with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// ResponseError writes {"error": message} with the given status code.
func ResponseError(w http.ResponseWriter, code int, message string) {
	ResponseJSON(w, code, ErrorResponse{Error: message})
}
