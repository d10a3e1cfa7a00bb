package api

import (
	"encoding/json"
	"net/http"

	"chatdj/internal/apperrors"
)

// ListResponse is the envelope for collection endpoints.
// Example: {"object": "list", "data": [...], "url": "/v1/blacklist"}
type ListResponse struct {
	Object string `json:"object"`
	Data   any    `json:"data"`
	URL    string `json:"url"`
}

// ErrorResponse wraps an error payload.
type ErrorResponse struct {
	Error apperrors.ErrorBody `json:"error"`
}

// WriteJSON sends a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

// WriteError serializes an AppError into the error response envelope.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperrors.EnsureAppError(err)
	_ = WriteJSON(w, appErr.StatusCode, ErrorResponse{Error: appErr.ErrorBody()})
}

// WriteList writes a list response.
// Example: WriteList(w, "/v1/blacklist", entries)
func WriteList(w http.ResponseWriter, url string, data any) error {
	return WriteJSON(w, http.StatusOK, ListResponse{
		Object: "list",
		Data:   data,
		URL:    url,
	})
}

// WriteResource writes a single resource directly. The resource should
// already have an "object" field set.
func WriteResource(w http.ResponseWriter, status int, resource any) error {
	return WriteJSON(w, status, resource)
}
