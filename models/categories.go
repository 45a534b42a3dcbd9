package models

import "strings"

// SkillCategories is the fixed set of categories skills may be filed under.
// Keeping the list closed prevents duplicates from typos and spelling drift.
var SkillCategories = []string{
	"Programming",
	"Web Development",
	"Mobile Development",
	"Data Science",
	"Machine Learning",
	"Design",
	"UI/UX Design",
	"Graphic Design",
	"Photography",
	"Video Editing",
	"Music",
	"Language Learning",
	"Business",
	"Marketing",
	"Finance",
	"Writing",
	"Teaching",
	"Cooking",
	"Fitness",
	"Art",
	"Crafts",
	"Other",
}

// categoryAliases maps common variations to standard categories
var categoryAliases = map[string]string{
	"coding":                  "Programming",
	"programming":             "Programming",
	"software development":    "Programming",
	"web dev":                 "Web Development",
	"frontend":                "Web Development",
	"backend":                 "Web Development",
	"fullstack":               "Web Development",
	"mobile dev":              "Mobile Development",
	"ios":                     "Mobile Development",
	"android":                 "Mobile Development",
	"app development":         "Mobile Development",
	"data analytics":          "Data Science",
	"ai":                      "Machine Learning",
	"ml":                      "Machine Learning",
	"artificial intelligence": "Machine Learning",
	"ui design":               "UI/UX Design",
	"ux design":               "UI/UX Design",
	"user experience":         "UI/UX Design",
	"graphic arts":            "Graphic Design",
	"visual design":           "Graphic Design",
	"photo":                   "Photography",
	"video production":        "Video Editing",
	"languages":               "Language Learning",
	"foreign languages":       "Language Learning",
	"entrepreneurship":        "Business",
	"digital marketing":       "Marketing",
	"content writing":         "Writing",
	"copywriting":             "Writing",
	"education":               "Teaching",
	"culinary":                "Cooking",
	"exercise":                "Fitness",
	"workout":                 "Fitness",
	"handmade":                "Crafts",
}

// NormalizeCategory maps a user-provided category onto the fixed list.
// Unknown values fall back to "Other".
func NormalizeCategory(category string) string {
	normalized := strings.ToLower(strings.TrimSpace(category))
	if normalized == "" {
		return "Other"
	}
	if standard, ok := categoryAliases[normalized]; ok {
		return standard
	}
	for _, cat := range SkillCategories {
		if strings.ToLower(cat) == normalized {
			return cat
		}
	}
	return "Other"
}

// NormalizeCategories normalizes and deduplicates a category list
func NormalizeCategories(categories []string) []string {
	if len(categories) == 0 {
		return []string{"Other"}
	}
	seen := map[string]struct{}{}
	var normalized []string
	for _, c := range categories {
		cat := NormalizeCategory(c)
		if _, ok := seen[cat]; ok {
			continue
		}
		seen[cat] = struct{}{}
		normalized = append(normalized, cat)
	}
	return normalized
}
