package graph

import (
	"context"
	"fmt"
	"strings"
	"time"

	gUtil "github.com/project-synapse/backend/internal/util"
	"github.com/project-synapse/backend/pkg/ai"
	"github.com/project-synapse/backend/pkg/logger"
)

// Extractor runs the extraction model on single chunks. It never returns an
// error to the caller: timeouts, connection failures and malformed output
// all yield an empty ExtractResult for that chunk.
type Extractor struct {
	Client  ai.GraphAIClient
	Timeout time.Duration
	// Retries is the number of attempts per chunk before giving up.
	// Values below 1 mean a single attempt.
	Retries int
}

// Extract asks the model for entities and relationships in one chunk.
// chunkIdx is 1-based and only used for logging.
func (e *Extractor) Extract(ctx context.Context, chunkText string, theme string, documentName string, chunkIdx int) ExtractResult {
	schema := SchemaForTheme(theme)

	extraRules := ""
	if theme == ThemeCV {
		extraRules = ai.ExtractCVRules
	}

	systemPrompt := fmt.Sprintf(ai.ExtractPrompt,
		theme,
		documentName,
		strings.Join(schema.Entities, ", "),
		strings.Join(schema.Relationships, ", "),
		extraRules,
	)
	prompt := fmt.Sprintf(ai.ExtractUserPrompt, chunkText)

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = 180 * time.Second
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var result ExtractResult
	err := gUtil.RetryErrWithContext(callCtx, e.Retries, func(ctx context.Context) error {
		return e.Client.GenerateCompletionWithFormat(ctx,
			"graph_extraction",
			"Entities and relationships extracted from a document chunk",
			prompt,
			&result,
			ai.WithSystemPrompts(systemPrompt),
			ai.WithTemperature(0.1),
		)
	})
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			logger.Warn("chunk extraction timed out", "chunk", chunkIdx, "timeout", timeout)
		} else {
			logger.Warn("chunk extraction failed", "chunk", chunkIdx, "error", err)
		}
		return ExtractResult{}
	}

	logger.Info("chunk extracted", "chunk", chunkIdx, "entities", len(result.Entities), "relationships", len(result.Relationships))
	return result
}
