// Package interactions owns the per-device engagement record: likes,
// dislikes, saves and watch progress. Mutations are pure functions over an
// immutable record; the Store persists every change.
package interactions

// ProgressEntry is the last-known playback progress for a video.
type ProgressEntry struct {
	ID       string  `json:"id"`
	Progress float64 `json:"progress"`
}

// Record is the full engagement state. The JSON field names are the
// persisted wire shape and must stay stable across releases.
//
// Invariants:
//   - no id is in both LikedIDs and DislikedIDs
//   - liking adds to SavedIDs; disliking leaves SavedIDs untouched
//     (a disliked-but-saved item is hidden, not deleted)
type Record struct {
	LikedIDs     []string        `json:"likedIds"`
	DislikedIDs  []string        `json:"dislikedIds"`
	SavedIDs     []string        `json:"savedIds"`
	WatchHistory []ProgressEntry `json:"watchHistory"`
}

// EmptyRecord returns a fresh record with non-nil members so the
// serialized form is always the same shape.
func EmptyRecord() Record {
	return Record{
		LikedIDs:     []string{},
		DislikedIDs:  []string{},
		SavedIDs:     []string{},
		WatchHistory: []ProgressEntry{},
	}
}

func (r Record) Liked(id string) bool    { return contains(r.LikedIDs, id) }
func (r Record) Disliked(id string) bool { return contains(r.DislikedIDs, id) }
func (r Record) Saved(id string) bool    { return contains(r.SavedIDs, id) }

// Progress returns the stored watch progress for id, if any.
func (r Record) Progress(id string) (float64, bool) {
	for _, e := range r.WatchHistory {
		if e.ID == id {
			return e.Progress, true
		}
	}
	return 0, false
}

// Clone returns a deep copy so callers can hold a snapshot safely.
func (r Record) Clone() Record {
	out := Record{
		LikedIDs:     append([]string{}, r.LikedIDs...),
		DislikedIDs:  append([]string{}, r.DislikedIDs...),
		SavedIDs:     append([]string{}, r.SavedIDs...),
		WatchHistory: append([]ProgressEntry{}, r.WatchHistory...),
	}
	return out
}

// ToggleLike flips like membership for id. Unliking removes only the like;
// the save survives. Liking also saves the video and clears any dislike.
func ToggleLike(r Record, id string) Record {
	next := r.Clone()
	if contains(next.LikedIDs, id) {
		next.LikedIDs = without(next.LikedIDs, id)
		return next
	}
	next.LikedIDs = append(next.LikedIDs, id)
	next.SavedIDs = appendUnique(next.SavedIDs, id)
	next.DislikedIDs = without(next.DislikedIDs, id)
	return next
}

// Dislike hides id from the default feed and clears any like.
// SavedIDs is deliberately untouched.
func Dislike(r Record, id string) Record {
	next := r.Clone()
	next.DislikedIDs = appendUnique(next.DislikedIDs, id)
	next.LikedIDs = without(next.LikedIDs, id)
	return next
}

// Restore un-hides a disliked video.
func Restore(r Record, id string) Record {
	next := r.Clone()
	next.DislikedIDs = without(next.DislikedIDs, id)
	return next
}

// RecordProgress updates the stored progress for id. Stored values never
// decrease: a lower report than what is already recorded is a no-op.
func RecordProgress(r Record, id string, progress float64) Record {
	next := r.Clone()
	for i, e := range next.WatchHistory {
		if e.ID == id {
			if progress > e.Progress {
				next.WatchHistory[i].Progress = progress
			}
			return next
		}
	}
	next.WatchHistory = append(next.WatchHistory, ProgressEntry{ID: id, Progress: progress})
	return next
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func without(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func appendUnique(ids []string, id string) []string {
	if contains(ids, id) {
		return ids
	}
	return append(ids, id)
}
