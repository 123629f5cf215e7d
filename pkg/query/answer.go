package query

import (
	"context"
	"fmt"

	"github.com/project-synapse/backend/pkg/ai"
	"github.com/project-synapse/backend/pkg/store"
)

// Engine answers natural-language questions grounded in the knowledge
// graph: retrieve a relevant subgraph, then stream a model answer over it.
type Engine struct {
	Client ai.GraphAIClient
	Store  store.GraphStorage
}

// Answer runs the retrieval step and streams the generated answer token by
// token. The returned channel is closed when generation finishes or the
// context is cancelled.
func (e *Engine) Answer(ctx context.Context, question string) (<-chan string, error) {
	graphContext, err := RetrieveContext(ctx, e.Store, question)
	if err != nil {
		return nil, fmt.Errorf("retrieve context: %w", err)
	}

	systemPrompt := fmt.Sprintf(ai.AnswerPrompt, graphContext)
	messages := []ai.ChatMessage{
		{Role: "user", Message: question},
	}

	stream, err := e.Client.GenerateChatStream(ctx, messages,
		ai.WithSystemPrompts(systemPrompt),
		ai.WithTemperature(0.3),
	)
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}
	return stream, nil
}
