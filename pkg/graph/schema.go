package graph

// ThemeSchema constrains extraction to a fixed vocabulary of entity and
// relationship types for one document theme.
type ThemeSchema struct {
	Entities      []string
	Relationships []string
}

const (
	ThemeCV       = "Personal CV / Resume"
	ThemeTech     = "Technology, Tools & Docs"
	ThemeMedical  = "Medical/Scientific"
	ThemeBusiness = "Business/Legal"
	ThemeGeneric  = "Generic"
)

var themes = map[string]ThemeSchema{
	ThemeCV: {
		Entities:      []string{"PERSON", "COMPANY", "UNIVERSITY", "ROLE", "PROJECT", "SKILL", "TOOL", "LANGUAGE", "CERTIFICATION", "LOCATION"},
		Relationships: []string{"WORKED_AT", "STUDIED_AT", "HELD_ROLE", "WORKED_ON", "HAS_SKILL", "USES_TOOL", "MASTER_OF_LANGUAGE"},
	},
	ThemeTech: {
		Entities:      []string{"PERSON", "ORGANIZATION", "ROLE", "PROJECT", "SKILL", "TOOL", "FRAMEWORK", "DATABASE", "CERTIFICATION", "LOCATION", "EDUCATION"},
		Relationships: []string{"WORKED_AT", "HELD_ROLE", "WORKED_ON", "HAS_SKILL", "USES_TOOL", "STUDIED_AT", "EARNED_CERTIFICATION"},
	},
	ThemeMedical: {
		Entities:      []string{"DISEASE", "SYMPTOM", "DRUG", "TREATMENT", "ANATOMY", "GENE", "RESEARCH_STUDY", "PERSON", "ORGANIZATION"},
		Relationships: []string{"CAUSES", "TREATS", "IS_SYMPTOM_OF", "PREVENTS", "INTERACTS_WITH", "STUDIED_BY"},
	},
	ThemeBusiness: {
		Entities:      []string{"COMPANY", "PERSON", "CONTRACT", "LAW", "FINANCIAL_METRIC", "PRODUCT", "LOCATION"},
		Relationships: []string{"OWNS", "PARTNERS_WITH", "REGULATES", "SUED_BY", "SELLS", "EMPLOYS"},
	},
	ThemeGeneric: {
		Entities:      []string{"PERSON", "ORGANIZATION", "CONCEPT", "EVENT", "LOCATION", "THING"},
		Relationships: []string{"RELATED_TO", "PART_OF", "CAUSED", "PARTICIPATED_IN"},
	},
}

// SchemaForTheme returns the schema for a theme, falling back to the
// generic schema for unknown theme names.
func SchemaForTheme(theme string) ThemeSchema {
	if schema, ok := themes[theme]; ok {
		return schema
	}
	return themes[ThemeGeneric]
}

// ThemeNames lists the supported theme names.
func ThemeNames() []string {
	return []string{ThemeCV, ThemeTech, ThemeMedical, ThemeBusiness, ThemeGeneric}
}
