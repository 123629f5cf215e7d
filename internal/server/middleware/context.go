package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/project-synapse/backend/internal/jobs"
	"github.com/project-synapse/backend/pkg/ai"
	"github.com/project-synapse/backend/pkg/store"
)

// IngestConfig bounds document processing.
type IngestConfig struct {
	ChunkSize      int
	ChunkOverlap   int
	MaxChunks      int
	MaxParallel    int
	ExtractTimeout time.Duration
}

type App struct {
	AiClient ai.GraphAIClient
	Store    store.GraphStorage
	Jobs     *jobs.Tracker
	Ingest   IngestConfig
}

type AppContext struct {
	echo.Context
	App *App
}

func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return next(&AppContext{c, app})
		}
	}
}
