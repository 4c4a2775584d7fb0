// Package middleware holds the HTTP middleware shared by all routes.
package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/Ren-zee/exploremore/internal/domain"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Kind    domain.ErrorKind `json:"kind"`
	Message string           `json:"message"`
}

// writeError writes the same error envelope as the REST handlers.
func writeError(w http.ResponseWriter, status int, kind domain.ErrorKind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Error: errorDetail{Kind: kind, Message: message}}) //nolint:errcheck
}
