package neo4j

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/project-synapse/backend/internal/util"
	"github.com/project-synapse/backend/pkg/logger"
)

// GraphStore implements store.GraphStorage on a Neo4j database.
type GraphStore struct {
	driver   neo4j.DriverWithContext
	database string

	// apocUnavailable latches once an apoc.merge.relationship call fails
	// with a capability error; all later edge writes use the RELATED_TO
	// fallback directly.
	apocUnavailable atomic.Bool
}

type GraphStoreParams struct {
	URI      string
	User     string
	Password string
	Database string
}

// NewGraphStore connects to Neo4j and verifies connectivity before
// returning.
func NewGraphStore(params GraphStoreParams) (*GraphStore, error) {
	if params.URI == "" {
		return nil, fmt.Errorf("neo4j: uri required")
	}
	if params.User == "" {
		params.User = "neo4j"
	}

	auth := neo4j.BasicAuth(params.User, params.Password, "")
	driver, err := neo4j.NewDriverWithContext(params.URI, auth, func(cfg *neo4j.Config) {
		cfg.MaxConnectionPoolSize = 50
		cfg.SocketConnectTimeout = 10 * time.Second
	})
	if err != nil {
		return nil, fmt.Errorf("neo4j: init driver: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("neo4j: verify connectivity: %w", err)
	}

	logger.Info("connected to neo4j", "uri", params.URI, "database", params.Database)
	return &GraphStore{driver: driver, database: params.Database}, nil
}

// NewGraphStoreFromEnv builds a store from the NEO4J_* environment
// variables.
func NewGraphStoreFromEnv() (*GraphStore, error) {
	return NewGraphStore(GraphStoreParams{
		URI:      util.GetEnvString("NEO4J_URI", "bolt://localhost:7687"),
		User:     util.GetEnvString("NEO4J_USER", "neo4j"),
		Password: util.GetEnvString("NEO4J_PASSWORD", ""),
		Database: util.GetEnvString("NEO4J_DATABASE", ""),
	})
}

func (s *GraphStore) Ping(ctx context.Context) error {
	return s.driver.VerifyConnectivity(ctx)
}

func (s *GraphStore) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

func (s *GraphStore) writeSession(ctx context.Context) neo4j.SessionWithContext {
	return s.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: s.database,
	})
}

func (s *GraphStore) readSession(ctx context.Context) neo4j.SessionWithContext {
	return s.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: s.database,
	})
}
