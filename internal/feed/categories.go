package feed

// DefaultCategories drives the category navigation chrome. The list is
// static; catalog entries may additionally carry ad-hoc categories from
// their captions.
func DefaultCategories() []string {
	return []string{
		"رعب حقيقي ✴️",
		"رعب الحيوانات 🔱",
		"هجمات مرعبة ✴️",
		"أخطر المشاهد 🔱",
		"رعب الحديقة ⚠️",
		"رعب كوميدي 😂 ⚠️",
		"لحظات مرعبة",
	}
}
