package feed

import (
	"math"

	"github.com/example/horror-feed/internal/catalog"
)

// DeterministicStats derives stable display counters from a seed string,
// typically the video URL. The transform is a 32-bit polynomial rolling
// hash (h = h*31 + c over the seed's code points, wrapping), a modulo band
// for the base view count, a small hash-derived multiplier and a like ratio
// of 12% plus hash jitter. The same seed always yields the same pair; an
// empty seed yields (0, 0).
func DeterministicStats(seed string) (views, likes int) {
	if seed == "" {
		return 0, 0
	}
	var h int32
	for _, c := range seed {
		h = h*31 + int32(c)
	}

	baseViews := int(abs32(h%900000)) + 500000
	views = baseViews * (int(abs32(h%5)) + 2)
	likes = int(math.Floor(float64(views) * (0.12 + float64(abs32(h%15))/100)))
	return views, likes
}

// WithDisplayStats fills zero counters with deterministic pseudo-stats so
// repeated renders of the same content show stable numbers. Real counters
// from the source pass through untouched.
func WithDisplayStats(v catalog.Video) catalog.Video {
	if v.Likes != 0 || v.Views != 0 {
		return v
	}
	views, likes := DeterministicStats(v.VideoURL)
	v.Views = views
	v.Likes = likes
	return v
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
