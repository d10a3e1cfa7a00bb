package blacklist

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"chatdj/internal/api"
	"chatdj/internal/apperrors"
)

// AddEntryRequest is the body of POST /v1/blacklist.
type AddEntryRequest struct {
	Entry string `json:"entry"`
}

// Routes returns the blacklist mutation surface. The resolution pipeline
// itself only ever reads entries.
func Routes(repo *Repository) http.Handler {
	router := chi.NewRouter()

	router.Method(http.MethodGet, "/", api.Handler(func(w http.ResponseWriter, r *http.Request) error {
		entries, err := repo.List()
		if err != nil {
			return err
		}
		if entries == nil {
			entries = []Entry{}
		}
		return api.WriteList(w, "/v1/blacklist", entries)
	}))

	router.Method(http.MethodPost, "/", api.Handler(func(w http.ResponseWriter, r *http.Request) error {
		var req AddEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return apperrors.NewValidationError("invalid JSON body", nil)
		}
		if strings.TrimSpace(req.Entry) == "" {
			return apperrors.NewValidationError("entry is required", nil)
		}
		if err := repo.Add(req.Entry); err != nil {
			if errors.Is(err, ErrEntryExists) {
				return apperrors.NewConflictError("entry already blacklisted", map[string]any{"entry": req.Entry})
			}
			return err
		}
		return api.WriteResource(w, http.StatusCreated, map[string]any{
			"object": "blacklist_entry",
			"entry":  strings.ToLower(strings.TrimSpace(req.Entry)),
		})
	}))

	router.Method(http.MethodDelete, "/{entry}", api.Handler(func(w http.ResponseWriter, r *http.Request) error {
		entry, err := url.PathUnescape(chi.URLParam(r, "entry"))
		if err != nil {
			return apperrors.NewValidationError("invalid entry", nil)
		}
		if err := repo.Remove(entry); err != nil {
			if errors.Is(err, ErrEntryNotFound) {
				return apperrors.NewNotFoundError("entry not blacklisted", map[string]any{"entry": entry})
			}
			return err
		}
		return api.WriteJSON(w, http.StatusOK, map[string]any{
			"object":  "blacklist_entry",
			"entry":   strings.ToLower(strings.TrimSpace(entry)),
			"deleted": true,
		})
	}))

	return router
}
