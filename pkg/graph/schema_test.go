package graph

import (
	"slices"
	"testing"
)

func TestSchemaForTheme(t *testing.T) {
	t.Parallel()

	cv := SchemaForTheme(ThemeCV)
	if !slices.Contains(cv.Entities, "UNIVERSITY") {
		t.Errorf("CV schema entities = %v, missing UNIVERSITY", cv.Entities)
	}
	if !slices.Contains(cv.Relationships, "HAS_SKILL") {
		t.Errorf("CV schema relationships = %v, missing HAS_SKILL", cv.Relationships)
	}

	generic := SchemaForTheme(ThemeGeneric)
	for _, unknown := range []string{"", "Nonexistent Theme", "generic"} {
		got := SchemaForTheme(unknown)
		if !slices.Equal(got.Entities, generic.Entities) {
			t.Errorf("SchemaForTheme(%q) entities = %v, want generic fallback", unknown, got.Entities)
		}
	}
}

func TestThemeNamesAllResolve(t *testing.T) {
	t.Parallel()

	for _, name := range ThemeNames() {
		schema := SchemaForTheme(name)
		if len(schema.Entities) == 0 || len(schema.Relationships) == 0 {
			t.Errorf("theme %q has an empty schema", name)
		}
	}
}
