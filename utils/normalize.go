package utils

import "strings"

// NormalizeSkillTitle canonicalizes a user-provided skill title: trimmed,
// single-spaced, title-cased. Prevents duplicates from case variations.
func NormalizeSkillTitle(title string) string {
	fields := strings.Fields(title)
	if len(fields) == 0 {
		return ""
	}
	for i, word := range fields {
		lower := strings.ToLower(word)
		fields[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(fields, " ")
}

// NormalizeTag lowercases a tag and replaces spaces with hyphens
func NormalizeTag(tag string) string {
	fields := strings.Fields(strings.ToLower(tag))
	return strings.Join(fields, "-")
}

// NormalizeTags normalizes a tag list and drops empties and duplicates
func NormalizeTags(tags []string) []string {
	seen := map[string]struct{}{}
	var normalized []string
	for _, t := range tags {
		tag := NormalizeTag(t)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}
	return normalized
}
