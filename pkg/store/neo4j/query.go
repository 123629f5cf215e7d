package neo4j

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/project-synapse/backend/pkg/store"
)

const searchEntitiesCypher = `
MATCH (n:Entity)
WHERE toLower(n.name) CONTAINS toLower($query)
   OR toLower(n.description) CONTAINS toLower($query)
WITH n
LIMIT $limit
OPTIONAL MATCH (n)-[r]-(m:Entity)
RETURN
    n.name AS entity,
    n.type AS type,
    n.description AS description,
    collect(DISTINCT {
        related_entity: m.name,
        related_type: m.type,
        relationship: type(r),
        related_description: m.description
    }) AS connections
`

const sampleEntitiesCypher = `
MATCH (n:Entity)
OPTIONAL MATCH (n)-[r]-(m:Entity)
RETURN
    n.name AS entity,
    n.type AS type,
    n.description AS description,
    collect(DISTINCT {
        related_entity: m.name,
        related_type: m.type,
        relationship: type(r),
        related_description: m.description
    }) AS connections
LIMIT $limit
`

// SearchEntities finds entities whose name or description contains the
// query, together with their undirected neighborhoods.
func (s *GraphStore) SearchEntities(ctx context.Context, query string, limit int) ([]store.EntityRecord, error) {
	return s.queryEntities(ctx, searchEntitiesCypher, map[string]any{"query": query, "limit": limit})
}

// SampleEntities returns up to limit arbitrary entities with their
// neighborhoods.
func (s *GraphStore) SampleEntities(ctx context.Context, limit int) ([]store.EntityRecord, error) {
	return s.queryEntities(ctx, sampleEntitiesCypher, map[string]any{"limit": limit})
}

func (s *GraphStore) queryEntities(ctx context.Context, cypher string, params map[string]any) ([]store.EntityRecord, error) {
	session := s.readSession(ctx)
	defer session.Close(ctx)

	records, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, cypher, params)
		if err != nil {
			return nil, err
		}

		var entities []store.EntityRecord
		for res.Next(ctx) {
			record := res.Record()
			entity := store.EntityRecord{
				Name:        stringValue(record, "entity"),
				Type:        stringValue(record, "type"),
				Description: stringValue(record, "description"),
			}

			if raw, ok := record.Get("connections"); ok {
				if conns, ok := raw.([]any); ok {
					for _, c := range conns {
						conn, ok := c.(map[string]any)
						if !ok {
							continue
						}
						neighbor := store.Neighbor{
							Name:        stringField(conn, "related_entity"),
							Type:        stringField(conn, "related_type"),
							RelType:     stringField(conn, "relationship"),
							Description: stringField(conn, "related_description"),
						}
						if neighbor.Name == "" {
							continue
						}
						entity.Neighbors = append(entity.Neighbors, neighbor)
					}
				}
			}

			entities = append(entities, entity)
		}
		return entities, res.Err()
	})
	if err != nil {
		return nil, err
	}
	return records.([]store.EntityRecord), nil
}

const graphDataNodesCypher = `
MATCH (n)
RETURN elementId(n) AS id, labels(n) AS labels, properties(n) AS properties
`

const graphDataLinksCypher = `
MATCH (a)-[r]->(b)
RETURN elementId(a) AS source, elementId(b) AS target, type(r) AS type, properties(r) AS properties
`

// GraphData exports every node and relationship in a shape suitable for
// force-graph frontends.
func (s *GraphStore) GraphData(ctx context.Context) (store.GraphData, error) {
	session := s.readSession(ctx)
	defer session.Close(ctx)

	data, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		out := store.GraphData{Nodes: []store.VizNode{}, Links: []store.VizLink{}}

		res, err := tx.Run(ctx, graphDataNodesCypher, nil)
		if err != nil {
			return nil, err
		}
		for res.Next(ctx) {
			record := res.Record()
			props := mapValue(record, "properties")

			node := store.VizNode{
				ID:         stringValue(record, "id"),
				Type:       "Unknown",
				Properties: props,
			}
			if raw, ok := record.Get("labels"); ok {
				if labels, ok := raw.([]any); ok && len(labels) > 0 {
					if label, ok := labels[0].(string); ok {
						node.Type = label
					}
				}
			}
			node.Label = stringField(props, "name")
			if node.Label == "" {
				node.Label = node.Type
			}
			out.Nodes = append(out.Nodes, node)
		}
		if err := res.Err(); err != nil {
			return nil, err
		}

		res, err = tx.Run(ctx, graphDataLinksCypher, nil)
		if err != nil {
			return nil, err
		}
		for res.Next(ctx) {
			record := res.Record()
			out.Links = append(out.Links, store.VizLink{
				Source:     stringValue(record, "source"),
				Target:     stringValue(record, "target"),
				Type:       stringValue(record, "type"),
				Properties: mapValue(record, "properties"),
			})
		}
		return out, res.Err()
	})
	if err != nil {
		return store.GraphData{}, err
	}
	return data.(store.GraphData), nil
}

func stringValue(record *neo4j.Record, key string) string {
	raw, ok := record.Get(key)
	if !ok {
		return ""
	}
	s, _ := raw.(string)
	return s
}

func mapValue(record *neo4j.Record, key string) map[string]any {
	raw, ok := record.Get(key)
	if !ok {
		return map[string]any{}
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return m
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
