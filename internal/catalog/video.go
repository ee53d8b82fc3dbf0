// Package catalog retrieves the remote video catalog and degrades through
// cache and embedded fallback tiers when the remote source is unavailable.
package catalog

// VideoType is the presentation variant, derived from media aspect ratio.
type VideoType string

const (
	TypeShort VideoType = "short"
	TypeLong  VideoType = "long"
)

// Video is a single catalog entry in the uniform domain shape.
type Video struct {
	ID        string    `json:"id"`
	PublicID  string    `json:"public_id"`
	VideoURL  string    `json:"video_url"`
	PosterURL string    `json:"poster_url"`
	Type      VideoType `json:"type"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Likes     int       `json:"likes"`
	Views     int       `json:"views"`
	Tags      []string  `json:"tags"`
	CreatedAt string    `json:"created_at,omitempty"`
}
