package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/example/horror-feed/internal/interactions"
	"github.com/example/horror-feed/internal/platform/api"
	"github.com/example/horror-feed/internal/platform/httpserver"
)

// GetInteractions handles GET /v1/interactions.
func GetInteractions(store *interactions.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		api.WriteJSON(w, http.StatusOK, store.Snapshot())
	}
}

// PostLike handles POST /v1/videos/{video_id}/like (toggle semantics).
func PostLike(store *interactions.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := videoID(w, r)
		if !ok {
			return
		}
		api.WriteJSON(w, http.StatusOK, store.ToggleLike(r.Context(), id))
	}
}

// PostDislike handles POST /v1/videos/{video_id}/dislike.
func PostDislike(store *interactions.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := videoID(w, r)
		if !ok {
			return
		}
		api.WriteJSON(w, http.StatusOK, store.Dislike(r.Context(), id))
	}
}

// PostRestore handles POST /v1/videos/{video_id}/restore.
func PostRestore(store *interactions.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := videoID(w, r)
		if !ok {
			return
		}
		api.WriteJSON(w, http.StatusOK, store.Restore(r.Context(), id))
	}
}

type progressRequest struct {
	Progress float64 `json:"progress"`
}

// PostProgress handles POST /v1/videos/{video_id}/progress.
func PostProgress(store *interactions.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())
		id, ok := videoID(w, r)
		if !ok {
			return
		}
		var req progressRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
			api.BadRequest(w, "INVALID_JSON", "Invalid JSON", rid, nil)
			return
		}
		if req.Progress < 0 {
			api.BadRequest(w, "INVALID_PROGRESS", "progress must be >= 0", rid, nil)
			return
		}
		api.WriteJSON(w, http.StatusOK, store.RecordProgress(r.Context(), id, req.Progress))
	}
}

func videoID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := strings.TrimSpace(chi.URLParam(r, "video_id"))
	if id == "" {
		rid := httpserver.RequestIDFromContext(r.Context())
		api.BadRequest(w, "MISSING_ID", "video_id is required", rid, nil)
		return "", false
	}
	return id, true
}
