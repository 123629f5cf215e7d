package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/project-synapse/backend/internal/jobs"
	mid "github.com/project-synapse/backend/internal/server/middleware"
	"github.com/project-synapse/backend/internal/util"
	"github.com/project-synapse/backend/pkg/ai"
	oai "github.com/project-synapse/backend/pkg/ai/ollama"
	gai "github.com/project-synapse/backend/pkg/ai/openai"
	"github.com/project-synapse/backend/pkg/graph"
	"github.com/project-synapse/backend/pkg/logger"
	storeneo4j "github.com/project-synapse/backend/pkg/store/neo4j"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func Init() {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	aiClient := newAIClient()

	graphStore, err := storeneo4j.NewGraphStoreFromEnv()
	if err != nil {
		logger.Fatal("Failed to connect to neo4j", "err", err)
	}
	defer graphStore.Close(context.Background())

	app := &mid.App{
		AiClient: aiClient,
		Store:    graphStore,
		Jobs:     jobs.NewTracker(),
		Ingest: mid.IngestConfig{
			ChunkSize:      util.GetEnvInt("GRAPH_CHUNK_SIZE", 1000),
			ChunkOverlap:   util.GetEnvInt("GRAPH_CHUNK_OVERLAP", 200),
			MaxChunks:      util.GetEnvInt("GRAPH_MAX_CHUNKS", 15),
			MaxParallel:    util.GetEnvInt("GRAPH_MAX_PARALLEL", graph.DefaultMaxParallel),
			ExtractTimeout: time.Duration(util.GetEnvInt("GRAPH_EXTRACT_TIMEOUT_SECONDS", 180)) * time.Second,
		},
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("100M"))

	RegisterRoutes(e)

	go func() {
		port := util.GetEnvString("PORT", "8080")
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}

func newAIClient() ai.GraphAIClient {
	switch util.GetEnv("AI_ADAPTER") {
	case "ollama":
		client, err := oai.NewGraphOllamaClient(oai.NewGraphOllamaClientParams{
			ExtractionModel: util.GetEnv("AI_EXTRACT_MODEL"),
			AnswerModel:     util.GetEnv("AI_ANSWER_MODEL"),

			BaseURL: util.GetEnv("AI_CHAT_URL"),
			ApiKey:  util.GetEnv("AI_CHAT_KEY"),

			MaxConcurrentRequests: int64(util.GetEnvInt("GRAPH_MAX_PARALLEL", graph.DefaultMaxParallel)),
		})
		if err != nil {
			logger.Fatal("Failed to create Ollama client", "err", err)
		}
		return client
	default:
		return gai.NewGraphOpenAIClient(gai.NewGraphOpenAIClientParams{
			ExtractionModel: util.GetEnv("AI_EXTRACT_MODEL"),
			AnswerModel:     util.GetEnv("AI_ANSWER_MODEL"),

			ChatURL: util.GetEnv("AI_CHAT_URL"),
			ChatKey: util.GetEnv("AI_CHAT_KEY"),
		})
	}
}
