package handlers

import (
	"github.com/example/horror-feed/internal/catalog"
	"github.com/example/horror-feed/internal/feed"
	"github.com/example/horror-feed/internal/interactions"
)

// feedItem is a catalog entry decorated with display stats and the
// caller's engagement state.
type feedItem struct {
	catalog.Video
	IsLiked    bool    `json:"is_liked"`
	IsSaved    bool    `json:"is_saved"`
	IsDisliked bool    `json:"is_disliked,omitempty"`
	Progress   float64 `json:"progress,omitempty"`
}

func toFeedItem(v catalog.Video, rec interactions.Record) feedItem {
	progress, _ := rec.Progress(v.ID)
	return feedItem{
		Video:      feed.WithDisplayStats(v),
		IsLiked:    rec.Liked(v.ID),
		IsSaved:    rec.Saved(v.ID),
		IsDisliked: rec.Disliked(v.ID),
		Progress:   progress,
	}
}

func toFeedItems(videos []catalog.Video, rec interactions.Record) []feedItem {
	items := make([]feedItem, 0, len(videos))
	for _, v := range videos {
		items = append(items, toFeedItem(v, rec))
	}
	return items
}

type homeResponse struct {
	SnapshotToken string     `json:"snapshot_token"`
	QuickPicks    []feedItem `json:"quick_picks"`
	MarqueeStrip  []feedItem `json:"marquee_strip"`
	LongForm      []feedItem `json:"long_form"`
	SecondStrip   []feedItem `json:"second_strip"`
	Shorts        []feedItem `json:"shorts"`
	Longs         []feedItem `json:"longs"`
}

func toHomeResponse(token string, hf feed.HomeFeed, rec interactions.Record) homeResponse {
	return homeResponse{
		SnapshotToken: token,
		QuickPicks:    toFeedItems(hf.QuickPicks, rec),
		MarqueeStrip:  toFeedItems(hf.MarqueeStrip, rec),
		LongForm:      toFeedItems(hf.LongForm, rec),
		SecondStrip:   toFeedItems(hf.SecondStrip, rec),
		Shorts:        toFeedItems(hf.Shorts, rec),
		Longs:         toFeedItems(hf.Longs, rec),
	}
}
