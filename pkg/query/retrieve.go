package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/project-synapse/backend/pkg/logger"
	"github.com/project-synapse/backend/pkg/store"
)

const (
	// NoContextSentinel is returned when the graph holds nothing relevant.
	// The answer prompt receives it verbatim so the model can say so.
	NoContextSentinel = "No relevant information found in the knowledge graph."

	searchLimit = 10
	sampleLimit = 20
)

// RetrieveContext searches the graph for entities matching the question and
// renders their neighborhoods as plain-text context for answer generation.
// When the search matches nothing it falls back to a sample of the whole
// graph; when even that is empty it returns NoContextSentinel.
func RetrieveContext(ctx context.Context, storage store.GraphStorage, question string) (string, error) {
	entities, err := storage.SearchEntities(ctx, question, searchLimit)
	if err != nil {
		return "", fmt.Errorf("search entities: %w", err)
	}

	if len(entities) == 0 {
		logger.Debug("no entity matched question, sampling graph", "question", question)
		entities, err = storage.SampleEntities(ctx, sampleLimit)
		if err != nil {
			return "", fmt.Errorf("sample entities: %w", err)
		}
	}

	return renderContext(entities), nil
}

func renderContext(entities []store.EntityRecord) string {
	var parts []string
	for _, entity := range entities {
		var sb strings.Builder
		fmt.Fprintf(&sb, "Entity: %s (Type: %s)", entity.Name, entity.Type)
		if entity.Description != "" {
			fmt.Fprintf(&sb, "\n  Description: %s", entity.Description)
		}

		var connLines []string
		for _, neighbor := range entity.Neighbors {
			connLines = append(connLines, fmt.Sprintf("  → %s → %s (%s)", neighbor.RelType, neighbor.Name, neighbor.Type))
		}
		if len(connLines) > 0 {
			sb.WriteString("\n  Relationships:\n")
			sb.WriteString(strings.Join(connLines, "\n"))
		}

		parts = append(parts, sb.String())
	}

	if len(parts) == 0 {
		return NoContextSentinel
	}
	return strings.Join(parts, "\n\n")
}
