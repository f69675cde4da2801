// Package controllers holds the HTTP handlers. Controllers parse the
// request, call one service method, and write the response; all business
// rules live in app/services.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shashiranjanraj/medicare/pkg/response"
)

const (
	defaultPage     = 1
	productPageSize = 20
	reviewPageSize  = 10
	maxPerPage      = 100
)

// uintParam parses a numeric path parameter. ok is false when the segment
// is not a positive integer.
func uintParam(r *http.Request, name string) (uint, bool) {
	raw := chi.URLParam(r, name)
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// pageParams reads page/per_page from the query string, clamping bad
// values back to the given default page size.
func pageParams(r *http.Request, defaultPerPage int) (page, perPage int) {
	page = queryInt(r, "page", defaultPage)
	perPage = queryInt(r, "per_page", defaultPerPage)

	if page < 1 {
		page = defaultPage
	}
	if perPage < 1 || perPage > maxPerPage {
		perPage = defaultPerPage
	}
	return page, perPage
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func queryFloat(r *http.Request, name string) *float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}

func queryBool(r *http.Request, name string) *bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &b
}

// validationError writes the 400 body for field-level validation failures.
func validationError(w http.ResponseWriter, errs map[string]string) {
	response.JSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":   "Validation failed",
		"details": errs,
	})
}
