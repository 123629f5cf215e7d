package graph

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/project-synapse/backend/pkg/ai"
	"github.com/project-synapse/backend/pkg/logger"
	"github.com/project-synapse/backend/pkg/store"
)

const (
	DefaultMaxParallel    = 5
	DefaultExtractTimeout = 180 * time.Second
)

// Builder turns document chunks into graph writes: bounded-parallel
// extraction over all chunks, dedup/merge, then node writes followed by
// edge writes.
type Builder struct {
	Client      ai.GraphAIClient
	Store       store.GraphStorage
	MaxParallel int
	Timeout     time.Duration
}

// Build processes every chunk through the extraction model, merges the
// results and writes them to the store. Per-chunk extraction failures and
// per-item write failures are absorbed and reflected only in the returned
// counts; the error return is reserved for systemic failures such as an
// unreachable store or a cancelled context.
func (b *Builder) Build(ctx context.Context, chunks []string, theme string, documentName string) (BuildResult, error) {
	maxParallel := b.MaxParallel
	if maxParallel <= 0 {
		maxParallel = DefaultMaxParallel
	}

	extractor := &Extractor{Client: b.Client, Timeout: b.Timeout}

	results := make([]ExtractResult, len(chunks))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxParallel)

	for i, chunk := range chunks {
		group.Go(func() error {
			logger.Info("processing chunk", "chunk", i+1, "total", len(chunks), "chars", len(chunk))
			results[i] = extractor.Extract(groupCtx, chunk, theme, documentName, i+1)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return BuildResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return BuildResult{}, err
	}

	var allEntities []ExtractedEntity
	var allRelationships []ExtractedRelationship
	for _, res := range results {
		allEntities = append(allEntities, res.Entities...)
		allRelationships = append(allRelationships, res.Relationships...)
	}
	logger.Info("extraction complete", "entities", len(allEntities), "relationships", len(allRelationships))

	entities := MergeEntities(allEntities)
	logger.Info("deduplicated entities", "unique", len(entities))

	result := BuildResult{}

	for _, entity := range entities {
		node := store.GraphNode{
			Name:        entity.Name,
			Type:        entity.Type,
			Description: entity.Description,
			Document:    documentName,
		}
		if node.Type == "" {
			node.Type = "UNKNOWN"
		}
		if err := b.Store.UpsertNode(ctx, node); err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			logger.Warn("node write failed", "name", entity.Name, "error", err)
			continue
		}
		result.NodesCreated++
	}
	logger.Info("wrote nodes", "count", result.NodesCreated)

	for _, rel := range allRelationships {
		source := strings.TrimSpace(rel.Source)
		target := strings.TrimSpace(rel.Target)
		if source == "" || target == "" {
			logger.Warn("skipping relationship without source or target", "type", rel.Type)
			continue
		}
		edge := store.GraphEdge{
			Source:      source,
			Target:      target,
			Type:        NormalizeRelationshipType(rel.Type),
			Description: rel.Description,
		}
		if err := b.Store.UpsertEdge(ctx, edge); err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			logger.Warn("relationship write failed", "source", source, "target", target, "error", err)
			continue
		}
		result.RelationshipsCreated++
	}
	logger.Info("wrote relationships", "count", result.RelationshipsCreated)

	return result, nil
}
