package domain

import (
	"sort"
	"strings"
)

// NormalizeKey normalizes a dataset key for case-insensitive lookups.
// Whitespace, hyphens and underscores are collapsed to single underscores
// and the result is casefolded, so "Bell Pepper", "bell-pepper" and
// "bell_pepper" all resolve to the same entry.
func NormalizeKey(key string) string {
	value := strings.ToLower(key)
	for _, sep := range []string{"_", "-"} {
		value = strings.ReplaceAll(value, sep, " ")
	}
	return strings.Join(strings.Fields(value), "_")
}

// SortedKeys returns the sorted top-level keys of a dataset mapping.
func SortedKeys(dataset map[string]any) []string {
	keys := make([]string, 0, len(dataset))
	for key := range dataset {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// StageValue returns the stage-specific entry for a plant from a dataset
// shaped as plant -> stage -> value. When the stage is empty or undefined
// the entry under defaultKey is returned instead; nil means no guidance.
func StageValue(dataset map[string]any, plantType, stage, defaultKey string) Value {
	plant := AsMap(dataset[NormalizeKey(plantType)])
	if stage != "" {
		if value, ok := plant[NormalizeKey(stage)]; ok && value != nil {
			return value
		}
	}
	return plant[defaultKey]
}
