package graph

// ExtractedEntity is a single entity as returned by the extraction model
// for one chunk. Names are not unique across chunks; deduplication happens
// in MergeEntities.
type ExtractedEntity struct {
	Name        string `json:"name" jsonschema_description:"Name of the entity, canonicalized to its standard short form"`
	Type        string `json:"type" jsonschema_description:"One of the provided entity types"`
	Description string `json:"description" jsonschema_description:"Brief factual description of the entity, under 15 words"`
}

// ExtractedRelationship is a directed, typed connection between two
// extracted entities, referenced by name.
type ExtractedRelationship struct {
	Source      string `json:"source" jsonschema_description:"Name of the source entity"`
	Target      string `json:"target" jsonschema_description:"Name of the target entity"`
	Type        string `json:"type" jsonschema_description:"One of the provided relationship types"`
	Description string `json:"description" jsonschema_description:"Brief description of the relationship"`
}

// ExtractResult is the outcome of extracting one chunk. A timed-out or
// unparseable chunk yields the zero value.
type ExtractResult struct {
	Entities      []ExtractedEntity      `json:"entities" jsonschema_description:"Entities identified in the text"`
	Relationships []ExtractedRelationship `json:"relationships" jsonschema_description:"Relationships identified in the text"`
}

// BuildResult reports what a graph build actually wrote to the store.
// Counts reflect successful writes, not attempts.
type BuildResult struct {
	NodesCreated         int `json:"nodes_created"`
	RelationshipsCreated int `json:"relationships_created"`
}
