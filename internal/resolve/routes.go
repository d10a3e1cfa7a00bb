package resolve

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"chatdj/internal/api"
	"chatdj/internal/apperrors"
	"chatdj/internal/queue"
)

// batchRequest is the body of the album/playlist queue endpoints.
type batchRequest struct {
	Query string `json:"query"`
}

// Routes returns the dry-run resolution endpoint.
func Routes(service *Service) http.Handler {
	router := chi.NewRouter()

	router.Method(http.MethodPost, "/", api.Handler(func(w http.ResponseWriter, r *http.Request) error {
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return apperrors.NewValidationError("invalid JSON body", nil)
		}
		result, err := service.Resolve(r.Context(), req)
		if err != nil {
			return err
		}
		return api.WriteResource(w, http.StatusOK, result)
	}))

	return router
}

// QueueRoutes returns the queue surface: snapshot reads, source verdicts,
// history, flush, and the resolve-and-queue operations.
func QueueRoutes(service *Service, queueService *queue.Service) http.Handler {
	router := chi.NewRouter()

	router.Method(http.MethodGet, "/", api.Handler(func(w http.ResponseWriter, r *http.Request) error {
		snapshot, err := queueService.Snapshot(r.Context())
		if err != nil {
			return err
		}
		if snapshot.Items == nil {
			snapshot.Items = []queue.Item{}
		}
		return api.WriteResource(w, http.StatusOK, map[string]any{
			"object": "queue_snapshot",
			"items":  snapshot.Items,
			"total":  snapshot.Total,
		})
	}))

	router.Method(http.MethodGet, "/current", api.Handler(func(w http.ResponseWriter, r *http.Request) error {
		current, verdict, err := queueService.Current(r.Context())
		if err != nil {
			return err
		}
		return api.WriteResource(w, http.StatusOK, map[string]any{
			"object":  "now_playing",
			"track":   current,
			"verdict": verdict,
		})
	}))

	router.Method(http.MethodGet, "/history", api.Handler(func(w http.ResponseWriter, r *http.Request) error {
		limit := 20
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				return apperrors.NewValidationError("limit must be a positive integer", nil)
			}
			limit = parsed
		}
		entries, err := queueService.History(limit)
		if err != nil {
			return err
		}
		if entries == nil {
			entries = []queue.PlayEntry{}
		}
		return api.WriteList(w, "/v1/queue/history", entries)
	}))

	router.Method(http.MethodDelete, "/", api.Handler(func(w http.ResponseWriter, r *http.Request) error {
		if err := queueService.Flush(r.Context()); err != nil {
			return err
		}
		return api.WriteJSON(w, http.StatusOK, map[string]any{
			"object":  "queue_snapshot",
			"flushed": true,
		})
	}))

	router.Method(http.MethodPost, "/tracks", api.Handler(func(w http.ResponseWriter, r *http.Request) error {
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return apperrors.NewValidationError("invalid JSON body", nil)
		}
		result, err := service.ResolveAndQueue(r.Context(), req)
		if err != nil {
			return err
		}
		return api.WriteResource(w, http.StatusOK, result)
	}))

	router.Method(http.MethodPost, "/album", api.Handler(func(w http.ResponseWriter, r *http.Request) error {
		var req batchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return apperrors.NewValidationError("invalid JSON body", nil)
		}
		result, err := service.QueueAlbum(r.Context(), req.Query)
		if err != nil {
			return err
		}
		return api.WriteResource(w, http.StatusOK, result)
	}))

	router.Method(http.MethodPost, "/playlist", api.Handler(func(w http.ResponseWriter, r *http.Request) error {
		var req batchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return apperrors.NewValidationError("invalid JSON body", nil)
		}
		result, err := service.QueuePlaylist(r.Context(), req.Query)
		if err != nil {
			return err
		}
		return api.WriteResource(w, http.StatusOK, result)
	}))

	return router
}
