package catalog

// FallbackVideos is the embedded default set returned when both the remote
// source and the cache are unavailable. It guarantees a non-empty feed with
// at least one short and one long entry.
func FallbackVideos() []Video {
	return []Video{
		{
			ID:        "fallback_1",
			PublicID:  "fallback_1",
			VideoURL:  "https://res.cloudinary.com/dlrvn33p0/video/upload/q_auto,f_auto/v1/app_videos/scary_1.mp4",
			PosterURL: "https://res.cloudinary.com/dlrvn33p0/video/upload/q_auto,f_auto,so_0/v1/app_videos/scary_1.jpg",
			Type:      TypeShort,
			Title:     "كابوس الحديقة المنسي",
			Category:  "رعب الحديقة ⚠️",
			Likes:     850,
			Views:     12000,
			Tags:      []string{"supernatural", "haunted"},
		},
		{
			ID:        "fallback_2",
			PublicID:  "fallback_2",
			VideoURL:  "https://res.cloudinary.com/dlrvn33p0/video/upload/q_auto,f_auto/v1/app_videos/scary_2.mp4",
			PosterURL: "https://res.cloudinary.com/dlrvn33p0/video/upload/q_auto,f_auto,so_0/v1/app_videos/scary_2.jpg",
			Type:      TypeLong,
			Title:     "مغامرة ليلية مرعبة",
			Category:  "أخطر المشاهد 🔱",
			Likes:     2100,
			Views:     45000,
			Tags:      []string{"ghost", "haunted"},
		},
	}
}
