package ranker

import (
	"github.com/example/horror-feed/internal/catalog"
)

// ApplyOrder splices the returned order to the front of the catalog:
// entries named in order come first (in that order), followed by every
// entry not named, preserving their original relative order. Unknown and
// duplicate ids are ignored. Membership never changes.
func ApplyOrder(videos []catalog.Video, order []string) []catalog.Video {
	byID := make(map[string]catalog.Video, len(videos))
	for _, v := range videos {
		byID[v.ID] = v
	}

	out := make([]catalog.Video, 0, len(videos))
	named := make(map[string]struct{}, len(order))
	for _, id := range order {
		if _, dup := named[id]; dup {
			continue
		}
		v, ok := byID[id]
		if !ok {
			continue
		}
		named[id] = struct{}{}
		out = append(out, v)
	}

	for _, v := range videos {
		if _, ok := named[v.ID]; !ok {
			out = append(out, v)
		}
	}
	return out
}
