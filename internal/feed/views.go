package feed

import (
	"github.com/example/horror-feed/internal/catalog"
	"github.com/example/horror-feed/internal/interactions"
)

// Home group boundaries. Positions are stable contract boundaries shared
// with the presentation layer, not tunables.
const (
	quickPicksEnd    = 4
	marqueeStripEnd  = 14
	longFormEnd      = 3
	secondStripStart = 14
	secondStripEnd   = 18
)

// HomeFeed is the default view: disliked entries excluded, partitioned by
// type and sliced into fixed display groups by position. Shorts and Longs
// carry the full partitioned lists as playback context for next/previous
// navigation.
type HomeFeed struct {
	QuickPicks   []catalog.Video `json:"quick_picks"`
	MarqueeStrip []catalog.Video `json:"marquee_strip"`
	LongForm     []catalog.Video `json:"long_form"`
	SecondStrip  []catalog.Video `json:"second_strip"`
	Shorts       []catalog.Video `json:"shorts"`
	Longs        []catalog.Video `json:"longs"`
}

// HomeView derives the default feed from the catalog and interaction state.
func HomeView(videos []catalog.Video, rec interactions.Record) HomeFeed {
	var shorts, longs []catalog.Video
	for _, v := range videos {
		if rec.Disliked(v.ID) {
			continue
		}
		if v.Type == catalog.TypeShort {
			shorts = append(shorts, v)
		} else {
			longs = append(longs, v)
		}
	}

	return HomeFeed{
		QuickPicks:   slice(shorts, 0, quickPicksEnd),
		MarqueeStrip: slice(shorts, quickPicksEnd, marqueeStripEnd),
		LongForm:     slice(longs, 0, longFormEnd),
		SecondStrip:  slice(shorts, secondStripStart, secondStripEnd),
		Shorts:       shorts,
		Longs:        longs,
	}
}

// SavedView returns catalog entries in the union of liked and saved ids,
// in catalog order.
func SavedView(videos []catalog.Video, rec interactions.Record) []catalog.Video {
	out := []catalog.Video{}
	for _, v := range videos {
		if rec.Liked(v.ID) || rec.Saved(v.ID) {
			out = append(out, v)
		}
	}
	return out
}

// HiddenView returns the disliked entries, each restorable.
func HiddenView(videos []catalog.Video, rec interactions.Record) []catalog.Video {
	out := []catalog.Video{}
	for _, v := range videos {
		if rec.Disliked(v.ID) {
			out = append(out, v)
		}
	}
	return out
}

// CategoryView returns entries whose category exactly matches name.
func CategoryView(videos []catalog.Video, name string) []catalog.Video {
	out := []catalog.Video{}
	for _, v := range videos {
		if v.Category == name {
			out = append(out, v)
		}
	}
	return out
}

func slice(videos []catalog.Video, from, to int) []catalog.Video {
	if from > len(videos) {
		from = len(videos)
	}
	if to > len(videos) {
		to = len(videos)
	}
	out := make([]catalog.Video, to-from)
	copy(out, videos[from:to])
	return out
}
