package interactions

import (
	"testing"
)

func TestToggleLike_LikesSavesAndClearsDislike(t *testing.T) {
	rec := Dislike(EmptyRecord(), "x")
	rec = ToggleLike(rec, "x")

	if !rec.Liked("x") {
		t.Fatal("expected x liked")
	}
	if !rec.Saved("x") {
		t.Fatal("liking must also save")
	}
	if rec.Disliked("x") {
		t.Fatal("liking must clear the dislike")
	}
}

func TestToggleLike_UnlikeKeepsSave(t *testing.T) {
	rec := ToggleLike(EmptyRecord(), "x")
	rec = ToggleLike(rec, "x")

	if rec.Liked("x") {
		t.Fatal("expected x unliked")
	}
	if !rec.Saved("x") {
		t.Fatal("unlike must not revert the save")
	}
	if rec.Disliked("x") {
		t.Fatal("unlike must not create a dislike")
	}
}

func TestToggleLike_InvolutionOnLikedIDs(t *testing.T) {
	before := ToggleLike(EmptyRecord(), "other")
	after := ToggleLike(ToggleLike(before, "x"), "x")

	if len(after.LikedIDs) != len(before.LikedIDs) {
		t.Fatalf("likedIds not restored: %v vs %v", after.LikedIDs, before.LikedIDs)
	}
	if len(after.DislikedIDs) != len(before.DislikedIDs) {
		t.Fatalf("dislikedIds changed: %v vs %v", after.DislikedIDs, before.DislikedIDs)
	}
}

func TestDislike_RemovesLikeKeepsSave(t *testing.T) {
	rec := ToggleLike(EmptyRecord(), "x")
	rec = Dislike(rec, "x")

	if rec.Liked("x") {
		t.Fatal("dislike must remove the like")
	}
	if !rec.Disliked("x") {
		t.Fatal("expected x disliked")
	}
	if !rec.Saved("x") {
		t.Fatal("dislike must not touch saves: hidden, not deleted")
	}
}

func TestDislike_Idempotent(t *testing.T) {
	rec := Dislike(Dislike(EmptyRecord(), "x"), "x")
	if len(rec.DislikedIDs) != 1 {
		t.Fatalf("expected deduplicated dislike, got %v", rec.DislikedIDs)
	}
}

func TestLikedAndDislikedStayDisjoint(t *testing.T) {
	rec := EmptyRecord()
	ops := []func(Record) Record{
		func(r Record) Record { return ToggleLike(r, "a") },
		func(r Record) Record { return Dislike(r, "a") },
		func(r Record) Record { return ToggleLike(r, "b") },
		func(r Record) Record { return ToggleLike(r, "a") },
		func(r Record) Record { return Dislike(r, "b") },
		func(r Record) Record { return Restore(r, "b") },
		func(r Record) Record { return ToggleLike(r, "b") },
	}
	for i, op := range ops {
		rec = op(rec)
		for _, id := range rec.LikedIDs {
			if rec.Disliked(id) {
				t.Fatalf("after op %d: %q in both likedIds and dislikedIds", i, id)
			}
		}
	}
}

func TestRestore(t *testing.T) {
	rec := Dislike(EmptyRecord(), "x")
	rec = Restore(rec, "x")
	if rec.Disliked("x") {
		t.Fatal("expected x restored")
	}
	// Restoring an unknown id is a no-op.
	rec = Restore(rec, "ghost")
	if len(rec.DislikedIDs) != 0 {
		t.Fatalf("unexpected dislikedIds: %v", rec.DislikedIDs)
	}
}

func TestRecordProgress_NeverDecreases(t *testing.T) {
	rec := EmptyRecord()
	for _, p := range []float64{10, 45, 30, 45, 12} {
		rec = RecordProgress(rec, "x", p)
	}
	got, ok := rec.Progress("x")
	if !ok {
		t.Fatal("expected progress entry for x")
	}
	if got != 45 {
		t.Fatalf("expected max progress 45, got %v", got)
	}
	if len(rec.WatchHistory) != 1 {
		t.Fatalf("expected a single history entry, got %d", len(rec.WatchHistory))
	}
}

func TestRecordProgress_NewEntry(t *testing.T) {
	rec := RecordProgress(EmptyRecord(), "x", 5)
	rec = RecordProgress(rec, "y", 7)
	if len(rec.WatchHistory) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(rec.WatchHistory))
	}
	if p, _ := rec.Progress("y"); p != 7 {
		t.Fatalf("expected progress 7 for y, got %v", p)
	}
}

func TestMutationsDoNotAliasInput(t *testing.T) {
	base := ToggleLike(EmptyRecord(), "a")
	_ = Dislike(base, "a")
	if !base.Liked("a") || base.Disliked("a") {
		t.Fatal("mutation functions must not modify their input record")
	}
}
