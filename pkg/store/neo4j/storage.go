package neo4j

import (
	"context"
	"errors"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/project-synapse/backend/pkg/logger"
	"github.com/project-synapse/backend/pkg/store"
)

const upsertNodeCypher = `
MERGE (n:Entity {name: $name})
SET n.type = $type,
    n.description = $description,
    n.document = $document
`

// apoc.merge.relationship lets the extracted type become the actual
// relationship type. Requires the APOC plugin.
const upsertEdgeApocCypher = `
MATCH (a:Entity {name: $source})
MATCH (b:Entity {name: $target})
CALL apoc.merge.relationship(a, $rel_type, {description: $description}, {}, b, {})
YIELD rel
RETURN rel
`

// Fallback for servers without APOC: a static RELATED_TO relationship
// carrying the extracted type as a property.
const upsertEdgeFallbackCypher = `
MATCH (a:Entity {name: $source})
MATCH (b:Entity {name: $target})
MERGE (a)-[r:RELATED_TO]->(b)
SET r.type = $rel_type, r.description = $description
`

// UpsertNode merges the entity node by name, overwriting its properties.
func (s *GraphStore) UpsertNode(ctx context.Context, node store.GraphNode) error {
	return s.runWrite(ctx, upsertNodeCypher, map[string]any{
		"name":        node.Name,
		"type":        node.Type,
		"description": node.Description,
		"document":    node.Document,
	})
}

// UpsertEdge merges a typed relationship between two existing entity nodes.
// It tries apoc.merge.relationship first; when APOC is not installed it
// latches onto the RELATED_TO fallback for the rest of the process
// lifetime. Missing endpoint nodes make the merge a no-op.
func (s *GraphStore) UpsertEdge(ctx context.Context, edge store.GraphEdge) error {
	params := map[string]any{
		"source":      edge.Source,
		"target":      edge.Target,
		"rel_type":    edge.Type,
		"description": edge.Description,
	}

	if !s.apocUnavailable.Load() {
		err := s.runWrite(ctx, upsertEdgeApocCypher, params)
		if err == nil {
			return nil
		}
		if !isApocMissing(err) {
			return err
		}
		logger.Warn("apoc unavailable, falling back to RELATED_TO edges", "error", err)
		s.apocUnavailable.Store(true)
	}

	return s.runWrite(ctx, upsertEdgeFallbackCypher, params)
}

func (s *GraphStore) runWrite(ctx context.Context, cypher string, params map[string]any) error {
	session := s.writeSession(ctx)
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, cypher, params)
		if err != nil {
			return nil, err
		}
		if _, err := res.Consume(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}

// isApocMissing reports whether the error means the APOC procedure is not
// installed, as opposed to an ordinary query failure.
func isApocMissing(err error) bool {
	var neo4jErr *neo4j.Neo4jError
	if errors.As(err, &neo4jErr) && strings.Contains(neo4jErr.Code, "Procedure.ProcedureNotFound") {
		return true
	}
	return strings.Contains(err.Error(), "apoc.merge.relationship")
}

// Clear removes every node and relationship in the database.
func (s *GraphStore) Clear(ctx context.Context) error {
	return s.runWrite(ctx, `MATCH (n) DETACH DELETE n`, nil)
}
