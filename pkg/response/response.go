// Package response writes the API's JSON bodies. Success shapes are
// endpoint-specific maps/structs passed by controllers; every error body
// is `{"error": "..."}` with the matching HTTP status.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/shashiranjanraj/medicare/pkg/apperr"
)

// JSON writes v as a JSON body with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// OK writes a 200 JSON body.
func OK(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, v)
}

// Created writes a 201 JSON body.
func Created(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusCreated, v)
}

// Error writes `{"error": message}` with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// ErrorWithDetails writes `{"error": message, "details": details}`.
// Read paths use it to surface an opaque diagnostic string on 500s.
func ErrorWithDetails(w http.ResponseWriter, status int, message, details string) {
	JSON(w, status, map[string]string{"error": message, "details": details})
}

// AppError maps a classified application error onto the wire.
func AppError(w http.ResponseWriter, err *apperr.Error) {
	if err.Kind == apperr.Internal && err.Err != nil {
		ErrorWithDetails(w, err.Status(), err.Message, err.Err.Error())
		return
	}
	Error(w, err.Status(), err.Message)
}
