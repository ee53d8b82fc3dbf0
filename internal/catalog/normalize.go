package catalog

import (
	"fmt"
	"strings"
)

// Placeholders used when a resource carries no caption context.
const (
	placeholderTitle    = "فيديو مرعب"
	placeholderCategory = "غموض"
)

// Normalize converts a remote resource into the uniform Video shape.
// Portrait media (height > width) becomes a short; everything else is long.
// Media URLs are synthesized with quality/format auto-negotiation, the
// poster by requesting the frame at offset 0.
func Normalize(baseURL, cloudName string, res Resource) Video {
	videoType := TypeLong
	if res.Height > res.Width {
		videoType = TypeShort
	}

	uploadBase := fmt.Sprintf("%s/%s/video/upload", strings.TrimRight(baseURL, "/"), cloudName)
	videoURL := fmt.Sprintf("%s/q_auto,f_auto/v%d/%s.%s", uploadBase, res.Version, res.PublicID, res.Format)
	posterURL := fmt.Sprintf("%s/q_auto,f_auto,so_0/v%d/%s.jpg", uploadBase, res.Version, res.PublicID)

	title := strings.TrimSpace(res.Context.Custom.Caption)
	if title == "" {
		title = placeholderTitle
	}
	category := strings.TrimSpace(res.Context.Custom.Caption)
	if category == "" {
		category = placeholderCategory
	}

	return Video{
		ID:        res.PublicID,
		PublicID:  res.PublicID,
		VideoURL:  videoURL,
		PosterURL: posterURL,
		Type:      videoType,
		Title:     title,
		Category:  category,
		Likes:     0,
		Views:     0,
		Tags:      []string{},
		CreatedAt: res.CreatedAt,
	}
}

// NormalizeAll maps a remote listing into catalog order.
func NormalizeAll(baseURL, cloudName string, resources []Resource) []Video {
	videos := make([]Video, 0, len(resources))
	for _, res := range resources {
		videos = append(videos, Normalize(baseURL, cloudName, res))
	}
	return videos
}
