package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/example/horror-feed/internal/catalog"
	"github.com/example/horror-feed/internal/feed"
	"github.com/example/horror-feed/internal/interactions"
	"github.com/example/horror-feed/internal/platform/httpserver"
	"github.com/example/horror-feed/internal/ranker"
)

// newTestRouter wires the full stack against the given catalog endpoint.
// Pass a closed server URL to simulate an unreachable remote.
func newTestRouter(t *testing.T, catalogURL string) chi.Router {
	t.Helper()
	log := zap.NewNop()

	client := catalog.NewClient(catalogURL, "demo", "tag_v1")
	cache := catalog.NewCache("", t.TempDir(), 0, log)
	fetcher := catalog.NewFetcher(client, cache, log)

	store := interactions.NewStore(context.Background(), interactions.NewMemoryRepository(), nil, log)
	svc := feed.NewService(fetcher, nil, ranker.ApplyOrder, store, nil, log)

	r := chi.NewRouter()
	httpserver.SetupRouter(r)
	r.Get("/v1/feed", GetHome(svc))
	r.Post("/v1/feed/refresh", PostRefresh(svc))
	r.Get("/v1/feed/saved", GetSaved(svc))
	r.Get("/v1/feed/hidden", GetHidden(svc))
	r.Get("/v1/feed/category", GetCategory(svc))
	r.Get("/v1/categories", GetCategories())
	r.Get("/v1/interactions", GetInteractions(store))
	r.Post("/v1/videos/{video_id}/like", PostLike(store))
	r.Post("/v1/videos/{video_id}/dislike", PostDislike(store))
	r.Post("/v1/videos/{video_id}/restore", PostRestore(store))
	r.Post("/v1/videos/{video_id}/progress", PostProgress(store))
	return r
}

func deadServerURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()
	return srv.URL
}

func liveCatalogURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"resources":[
			{"public_id":"short_1","version":1,"format":"mp4","width":720,"height":1280,
			 "context":{"custom":{"caption":"رعب حقيقي ✴️"}}},
			{"public_id":"short_2","version":1,"format":"mp4","width":720,"height":1280},
			{"public_id":"long_1","version":1,"format":"mp4","width":1920,"height":1080}
		]}`))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func doJSON(t *testing.T, r chi.Router, method, path, body string, out any) int {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if out != nil {
		if err := json.Unmarshal(rr.Body.Bytes(), out); err != nil {
			t.Fatalf("%s %s: decode response: %v body=%s", method, path, err, rr.Body.String())
		}
	}
	return rr.Code
}

func TestGetHome_UnreachableRemoteRendersDefaults(t *testing.T) {
	r := newTestRouter(t, deadServerURL(t))

	var resp struct {
		SnapshotToken string `json:"snapshot_token"`
		Shorts        []struct {
			ID   string `json:"id"`
			Type string `json:"type"`
		} `json:"shorts"`
		Longs []struct {
			ID   string `json:"id"`
			Type string `json:"type"`
		} `json:"longs"`
	}
	if code := doJSON(t, r, http.MethodGet, "/v1/feed", "", &resp); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if resp.SnapshotToken == "" {
		t.Fatal("expected snapshot token")
	}
	if len(resp.Shorts)+len(resp.Longs) < 2 {
		t.Fatalf("expected at least 2 fallback entries, got %d shorts %d longs", len(resp.Shorts), len(resp.Longs))
	}
	if len(resp.Shorts) == 0 || len(resp.Longs) == 0 {
		t.Fatal("fallback feed must include a short and a long")
	}
}

func TestLikeThenDislikeFlow(t *testing.T) {
	r := newTestRouter(t, liveCatalogURL(t))

	var rec interactions.Record
	if code := doJSON(t, r, http.MethodPost, "/v1/videos/short_1/like", "", &rec); code != http.StatusOK {
		t.Fatalf("like: expected 200, got %d", code)
	}
	if !rec.Liked("short_1") || !rec.Saved("short_1") || rec.Disliked("short_1") {
		t.Fatalf("after like: %+v", rec)
	}

	if code := doJSON(t, r, http.MethodPost, "/v1/videos/short_1/dislike", "", &rec); code != http.StatusOK {
		t.Fatalf("dislike: expected 200, got %d", code)
	}
	if rec.Liked("short_1") || !rec.Disliked("short_1") || !rec.Saved("short_1") {
		t.Fatalf("after dislike: %+v", rec)
	}
}

func TestDislikedVideoHiddenFromHomeAndRestorable(t *testing.T) {
	r := newTestRouter(t, liveCatalogURL(t))

	doJSON(t, r, http.MethodPost, "/v1/videos/short_1/dislike", "", nil)

	var home struct {
		Shorts []struct {
			ID string `json:"id"`
		} `json:"shorts"`
	}
	doJSON(t, r, http.MethodGet, "/v1/feed", "", &home)
	for _, v := range home.Shorts {
		if v.ID == "short_1" {
			t.Fatal("disliked video must not appear in the default feed")
		}
	}

	var hidden struct {
		Videos []struct {
			ID string `json:"id"`
		} `json:"videos"`
	}
	doJSON(t, r, http.MethodGet, "/v1/feed/hidden", "", &hidden)
	if len(hidden.Videos) != 1 || hidden.Videos[0].ID != "short_1" {
		t.Fatalf("expected short_1 in hidden feed, got %v", hidden.Videos)
	}

	doJSON(t, r, http.MethodPost, "/v1/videos/short_1/restore", "", nil)
	doJSON(t, r, http.MethodGet, "/v1/feed/hidden", "", &hidden)
	if len(hidden.Videos) != 0 {
		t.Fatalf("expected empty hidden feed after restore, got %v", hidden.Videos)
	}
}

func TestSavedFeed(t *testing.T) {
	r := newTestRouter(t, liveCatalogURL(t))

	doJSON(t, r, http.MethodPost, "/v1/videos/long_1/like", "", nil)

	var saved struct {
		Videos []struct {
			ID      string `json:"id"`
			IsLiked bool   `json:"is_liked"`
		} `json:"videos"`
	}
	doJSON(t, r, http.MethodGet, "/v1/feed/saved", "", &saved)
	if len(saved.Videos) != 1 || saved.Videos[0].ID != "long_1" || !saved.Videos[0].IsLiked {
		t.Fatalf("unexpected saved feed: %v", saved.Videos)
	}
}

func TestCategoryFeed(t *testing.T) {
	r := newTestRouter(t, liveCatalogURL(t))

	var resp struct {
		Videos []struct {
			ID string `json:"id"`
		} `json:"videos"`
	}
	q := url.Values{"name": {"رعب حقيقي ✴️"}}
	code := doJSON(t, r, http.MethodGet, "/v1/feed/category?"+q.Encode(), "", &resp)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(resp.Videos) != 1 || resp.Videos[0].ID != "short_1" {
		t.Fatalf("expected exact category match [short_1], got %v", resp.Videos)
	}

	if code := doJSON(t, r, http.MethodGet, "/v1/feed/category", "", nil); code != http.StatusBadRequest {
		t.Fatalf("missing name must 400, got %d", code)
	}
}

func TestProgressEndpoint(t *testing.T) {
	r := newTestRouter(t, liveCatalogURL(t))

	var rec interactions.Record
	doJSON(t, r, http.MethodPost, "/v1/videos/long_1/progress", `{"progress": 41.5}`, &rec)
	if p, ok := rec.Progress("long_1"); !ok || p != 41.5 {
		t.Fatalf("expected progress 41.5, got %v %v", p, ok)
	}

	// Lower report never decreases the stored value.
	doJSON(t, r, http.MethodPost, "/v1/videos/long_1/progress", `{"progress": 10}`, &rec)
	if p, _ := rec.Progress("long_1"); p != 41.5 {
		t.Fatalf("progress decreased to %v", p)
	}

	if code := doJSON(t, r, http.MethodPost, "/v1/videos/long_1/progress", `{"progress": -3}`, nil); code != http.StatusBadRequest {
		t.Fatalf("negative progress must 400, got %d", code)
	}
}

func TestHomeItemsCarryDisplayStats(t *testing.T) {
	r := newTestRouter(t, liveCatalogURL(t))

	var resp struct {
		Shorts []struct {
			ID    string `json:"id"`
			Views int    `json:"views"`
			Likes int    `json:"likes"`
		} `json:"shorts"`
	}
	doJSON(t, r, http.MethodGet, "/v1/feed", "", &resp)
	if len(resp.Shorts) == 0 {
		t.Fatal("expected shorts in home feed")
	}
	for _, v := range resp.Shorts {
		if v.Views == 0 || v.Likes == 0 {
			t.Fatalf("video %s missing synthesized display stats", v.ID)
		}
	}
}

func TestGetCategories(t *testing.T) {
	r := newTestRouter(t, liveCatalogURL(t))

	var resp struct {
		Categories []string `json:"categories"`
	}
	doJSON(t, r, http.MethodGet, "/v1/categories", "", &resp)
	if len(resp.Categories) == 0 {
		t.Fatal("expected default categories")
	}
}
