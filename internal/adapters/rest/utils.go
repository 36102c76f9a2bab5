package rest

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"listing-service/internal/core/domain"
)

// WriteJSONError sends a JSON body with an "error" field and the given status.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// RespondWithJSON marshals payload and writes it with the given status.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// StatusForError maps domain errors onto HTTP statuses.
func StatusForError(err error) int {
	switch {
	case domain.IsClientError(err):
		return http.StatusBadRequest
	case err == domain.ErrNotFound, err == domain.ErrSoldOut:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ParsePagination reads the mandatory page/perPage query parameters. Missing,
// non-numeric or negative values are client errors.
func ParsePagination(query url.Values) (domain.Pagination, error) {
	page, err := strconv.ParseInt(query.Get("page"), 10, 64)
	if err != nil {
		return domain.Pagination{}, domain.NewValidationError("page", "must be an integer")
	}
	if page < 0 {
		return domain.Pagination{}, domain.NewValidationError("page", "must not be negative")
	}

	perPage, err := strconv.ParseInt(query.Get("perPage"), 10, 64)
	if err != nil {
		return domain.Pagination{}, domain.NewValidationError("perPage", "must be an integer")
	}
	if perPage < 0 {
		return domain.Pagination{}, domain.NewValidationError("perPage", "must not be negative")
	}

	return domain.Pagination{Page: page, PerPage: perPage}, nil
}

// ParseRangeID reads an optional range facet index. Absent means nil; present
// but non-numeric is a client error.
func ParseRangeID(query url.Values, key string) (*int64, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domain.NewValidationError(key, "must be an integer")
	}
	return &id, nil
}

// ParsePathID reads a numeric {id} path parameter.
func ParsePathID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError("id", "must be an integer")
	}
	return id, nil
}
