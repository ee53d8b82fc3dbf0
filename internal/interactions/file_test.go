package interactions

import (
	"context"
	"testing"
)

func TestFileRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newFileRepository(t.TempDir())

	if _, ok, err := repo.Load(ctx); err != nil || ok {
		t.Fatalf("fresh dir: ok=%v err=%v", ok, err)
	}

	rec := ToggleLike(EmptyRecord(), "a")
	rec = RecordProgress(rec, "a", 33.5)
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, ok, err := repo.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if !loaded.Liked("a") || !loaded.Saved("a") {
		t.Fatalf("round trip lost state: %+v", loaded)
	}
	if p, _ := loaded.Progress("a"); p != 33.5 {
		t.Fatalf("expected progress 33.5, got %v", p)
	}
}

func TestFileRepository_SaveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newFileRepository(t.TempDir())

	rec := Dislike(EmptyRecord(), "x")
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, ok, _ := repo.Load(ctx)
	if !ok || !loaded.Disliked("x") {
		t.Fatalf("expected x disliked after repeated save, got %+v", loaded)
	}
}
