package graph

import "strings"

// MergeEntities folds per-chunk entity lists into a canonical set keyed by
// the lower-cased, trimmed name. When several chunks produce the same key,
// the last occurrence wins. Entities with empty names are dropped.
func MergeEntities(entities []ExtractedEntity) []ExtractedEntity {
	seen := make(map[string]int, len(entities))
	var merged []ExtractedEntity

	for _, entity := range entities {
		name := strings.TrimSpace(entity.Name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if idx, ok := seen[key]; ok {
			merged[idx] = entity
			continue
		}
		seen[key] = len(merged)
		merged = append(merged, entity)
	}

	return merged
}

// NormalizeRelationshipType upper-cases a relationship type and replaces
// spaces with underscores so it is a valid graph relationship label.
// An empty type becomes RELATED_TO.
func NormalizeRelationshipType(relType string) string {
	relType = strings.TrimSpace(relType)
	if relType == "" {
		relType = "RELATED_TO"
	}
	return strings.ToUpper(strings.ReplaceAll(relType, " ", "_"))
}
