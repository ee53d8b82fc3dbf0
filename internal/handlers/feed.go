// Package handlers exposes the feed views and interaction mutations over
// HTTP.
package handlers

import (
	"net/http"
	"strings"

	"github.com/example/horror-feed/internal/feed"
	"github.com/example/horror-feed/internal/platform/api"
)

// GetHome handles GET /v1/feed. `?refresh=1` forces a refetch; either way
// the response is built from the snapshot that is current right now —
// ranking catches up later.
func GetHome(svc *feed.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var snap feed.Snapshot
		if r.URL.Query().Get("refresh") == "1" {
			snap = svc.Refresh(r.Context())
		} else {
			snap = svc.Current(r.Context())
		}
		rec := svc.Interactions()
		api.WriteJSON(w, http.StatusOK, toHomeResponse(snap.Token, feed.HomeView(snap.Videos, rec), rec))
	}
}

// PostRefresh handles POST /v1/feed/refresh.
func PostRefresh(svc *feed.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := svc.Refresh(r.Context())
		rec := svc.Interactions()
		api.WriteJSON(w, http.StatusOK, toHomeResponse(snap.Token, feed.HomeView(snap.Videos, rec), rec))
	}
}

// GetSaved handles GET /v1/feed/saved.
func GetSaved(svc *feed.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := svc.Current(r.Context())
		rec := svc.Interactions()
		api.WriteJSON(w, http.StatusOK, map[string]any{
			"videos": toFeedItems(feed.SavedView(snap.Videos, rec), rec),
		})
	}
}

// GetHidden handles GET /v1/feed/hidden.
func GetHidden(svc *feed.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := svc.Current(r.Context())
		rec := svc.Interactions()
		api.WriteJSON(w, http.StatusOK, map[string]any{
			"videos": toFeedItems(feed.HiddenView(snap.Videos, rec), rec),
		})
	}
}

// GetCategory handles GET /v1/feed/category?name=...
func GetCategory(svc *feed.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.URL.Query().Get("name"))
		if name == "" {
			api.BadRequest(w, "MISSING_CATEGORY", "name is required", "", nil)
			return
		}
		snap := svc.Current(r.Context())
		rec := svc.Interactions()
		api.WriteJSON(w, http.StatusOK, map[string]any{
			"category": name,
			"videos":   toFeedItems(feed.CategoryView(snap.Videos, name), rec),
		})
	}
}

// GetCategories handles GET /v1/categories.
func GetCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		api.WriteJSON(w, http.StatusOK, map[string]any{"categories": feed.DefaultCategories()})
	}
}
