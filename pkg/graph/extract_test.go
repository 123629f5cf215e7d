package graph

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/project-synapse/backend/pkg/ai"
)

func TestExtractorAbsorbsModelFailure(t *testing.T) {
	t.Parallel()

	client := &fakeAIClient{
		respond: func(ctx context.Context, prompt string, out *ExtractResult) error {
			return errors.New("malformed model output")
		},
	}

	extractor := &Extractor{Client: client, Timeout: time.Second}
	got := extractor.Extract(context.Background(), "some chunk", ThemeGeneric, "doc.txt", 1)

	if len(got.Entities) != 0 || len(got.Relationships) != 0 {
		t.Fatalf("failed extraction returned %+v, want empty result", got)
	}
}

func TestExtractorTimeoutReturnsEmpty(t *testing.T) {
	t.Parallel()

	client := &fakeAIClient{
		respond: func(ctx context.Context, prompt string, out *ExtractResult) error {
			<-ctx.Done()
			return ctx.Err()
		},
	}

	extractor := &Extractor{Client: client, Timeout: 20 * time.Millisecond}

	start := time.Now()
	got := extractor.Extract(context.Background(), "some chunk", ThemeGeneric, "doc.txt", 1)
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("extraction took %v, timeout did not fire", elapsed)
	}
	if len(got.Entities) != 0 {
		t.Fatalf("timed-out extraction returned %+v, want empty result", got)
	}
}

func TestExtractorPromptCarriesSchema(t *testing.T) {
	t.Parallel()

	var systemPrompt string
	client := &fakeAIClient{
		respond: func(ctx context.Context, prompt string, out *ExtractResult) error {
			return nil
		},
	}
	client.onOptions = func(opts ai.GenerateOptions) {
		if len(opts.SystemPrompts) > 0 {
			systemPrompt = opts.SystemPrompts[0]
		}
	}

	extractor := &Extractor{Client: client, Timeout: time.Second}
	extractor.Extract(context.Background(), "chunk text", ThemeMedical, "paper.pdf", 1)

	if !strings.Contains(systemPrompt, "DISEASE") {
		t.Error("system prompt missing medical entity types")
	}
	if !strings.Contains(systemPrompt, "TREATS") {
		t.Error("system prompt missing medical relationship types")
	}
	if !strings.Contains(systemPrompt, "paper.pdf") {
		t.Error("system prompt missing document name")
	}
	if strings.Contains(systemPrompt, "CV SPECIFIC") {
		t.Error("medical theme must not carry CV-specific rules")
	}
}

func TestExtractorCVThemeExtraRules(t *testing.T) {
	t.Parallel()

	var systemPrompt string
	client := &fakeAIClient{
		respond: func(ctx context.Context, prompt string, out *ExtractResult) error {
			return nil
		},
	}
	client.onOptions = func(opts ai.GenerateOptions) {
		if len(opts.SystemPrompts) > 0 {
			systemPrompt = opts.SystemPrompts[0]
		}
	}

	extractor := &Extractor{Client: client, Timeout: time.Second}
	extractor.Extract(context.Background(), "chunk text", ThemeCV, "resume.pdf", 1)

	if !strings.Contains(systemPrompt, "CV SPECIFIC") {
		t.Error("CV theme prompt missing CV-specific rules")
	}
}
