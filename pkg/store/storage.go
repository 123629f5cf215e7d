package store

import "context"

// GraphNode is a canonical entity persisted in the graph store. Nodes are
// identified by name; re-upserting a name overwrites its properties.
type GraphNode struct {
	Name        string
	Type        string
	Description string
	Document    string
}

// GraphEdge is a directed, typed connection between two persisted nodes,
// referenced by name. Endpoint nodes must already exist.
type GraphEdge struct {
	Source      string
	Target      string
	Type        string
	Description string
}

// Neighbor is one connection of an entity, as seen from that entity.
// Direction is not preserved.
type Neighbor struct {
	RelType     string
	Name        string
	Type        string
	Description string
}

// EntityRecord is an entity plus its immediate neighborhood, as returned
// by retrieval queries.
type EntityRecord struct {
	Name        string
	Type        string
	Description string
	Neighbors   []Neighbor
}

// VizNode and VizLink shape the full graph export for force-graph
// style frontends.
type VizNode struct {
	ID         string         `json:"id"`
	Label      string         `json:"label"`
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
}

type VizLink struct {
	Source     string         `json:"source"`
	Target     string         `json:"target"`
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
}

type GraphData struct {
	Nodes []VizNode `json:"nodes"`
	Links []VizLink `json:"links"`
}

// GraphStorage is the persistence boundary of the knowledge graph. Upserts
// are idempotent: re-running an ingestion merges into existing nodes and
// edges instead of duplicating them.
type GraphStorage interface {
	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error

	// UpsertNode creates or updates the node identified by node.Name.
	UpsertNode(ctx context.Context, node GraphNode) error

	// UpsertEdge creates or updates the typed edge between two existing
	// nodes. Missing endpoints make the upsert a no-op, not an error.
	UpsertEdge(ctx context.Context, edge GraphEdge) error

	// SearchEntities finds entities whose name or description contains the
	// query (case-insensitive), with their neighborhoods.
	SearchEntities(ctx context.Context, query string, limit int) ([]EntityRecord, error)

	// SampleEntities returns up to limit arbitrary entities with their
	// neighborhoods. Used as a fallback when search finds nothing.
	SampleEntities(ctx context.Context, limit int) ([]EntityRecord, error)

	// GraphData exports every node and relationship for visualization.
	GraphData(ctx context.Context) (GraphData, error)

	// Clear removes all nodes and relationships.
	Clear(ctx context.Context) error

	// Close releases the underlying connection.
	Close(ctx context.Context) error
}
