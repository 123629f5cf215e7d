package routes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/project-synapse/backend/internal/jobs"
	"github.com/project-synapse/backend/internal/server/middleware"
	"github.com/project-synapse/backend/pkg/graph"
	"github.com/project-synapse/backend/pkg/loader"
	"github.com/project-synapse/backend/pkg/logger"
)

type uploadResponse struct {
	Status               string `json:"status"`
	Message              string `json:"message,omitempty"`
	Filename             string `json:"filename,omitempty"`
	ChunksProcessed      int    `json:"chunks_processed,omitempty"`
	NodesCreated         int    `json:"nodes_created"`
	RelationshipsCreated int    `json:"relationships_created"`
}

// UploadHandler ingests a document synchronously: parse, chunk, extract,
// write to the graph, and respond with the achieved counts.
func UploadHandler(c echo.Context) error {
	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	filename, theme, text, errResp := readUploadedDocument(c)
	if errResp != nil {
		return errResp
	}

	chunks := prepareChunks(text, app.Ingest)
	if len(chunks) == 0 {
		return c.JSON(http.StatusBadRequest, uploadResponse{
			Status:  "error",
			Message: "Could not extract text from document.",
		})
	}

	logger.Info("starting extraction", "file", filename, "theme", theme, "chunks", len(chunks))
	builder := &graph.Builder{
		Client:      app.AiClient,
		Store:       app.Store,
		MaxParallel: app.Ingest.MaxParallel,
		Timeout:     app.Ingest.ExtractTimeout,
	}
	result, err := builder.Build(ctx, chunks, theme, filename)
	logModelUsage(app)
	if err != nil {
		logger.Error("graph build failed", "file", filename, "err", err)
		return c.JSON(http.StatusInternalServerError, uploadResponse{
			Status:  "error",
			Message: "Processing failed.",
		})
	}

	return c.JSON(http.StatusOK, uploadResponse{
		Status:               "success",
		Filename:             filename,
		ChunksProcessed:      len(chunks),
		NodesCreated:         result.NodesCreated,
		RelationshipsCreated: result.RelationshipsCreated,
	})
}

type uploadAsyncResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	JobID   string `json:"job_id,omitempty"`
}

// UploadAsyncHandler accepts a document, registers a job and processes it
// in the background. The response carries the job id for status polling.
func UploadAsyncHandler(c echo.Context) error {
	app := c.(*middleware.AppContext).App

	filename, theme, text, errResp := readUploadedDocument(c)
	if errResp != nil {
		return errResp
	}

	job, err := app.Jobs.Create(filename)
	if err != nil {
		logger.Error("job creation failed", "file", filename, "err", err)
		return c.JSON(http.StatusInternalServerError, uploadAsyncResponse{
			Status:  "error",
			Message: "Internal server error",
		})
	}

	go processDocument(app, job.ID, filename, theme, text)

	return c.JSON(http.StatusAccepted, uploadAsyncResponse{
		Status: "accepted",
		JobID:  job.ID,
	})
}

// UploadStatusHandler reports the state of an asynchronous ingestion job.
func UploadStatusHandler(c echo.Context) error {
	app := c.(*middleware.AppContext).App

	job, ok := app.Jobs.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Job not found"})
	}
	return c.JSON(http.StatusOK, job)
}

// processDocument is the background half of UploadAsyncHandler. It owns its
// own context since the request that spawned it has already returned.
func processDocument(app *middleware.App, jobID, filename, theme, text string) {
	ctx := context.Background()

	chunks := prepareChunks(text, app.Ingest)
	if len(chunks) == 0 {
		app.Jobs.Update(jobID, func(j *jobs.Job) {
			j.Status = jobs.StatusError
			j.Detail = "Could not extract text from document."
		})
		return
	}

	app.Jobs.Update(jobID, func(j *jobs.Job) {
		j.Status = jobs.StatusExtracting
		j.TotalChunks = len(chunks)
	})

	builder := &graph.Builder{
		Client:      app.AiClient,
		Store:       app.Store,
		MaxParallel: app.Ingest.MaxParallel,
		Timeout:     app.Ingest.ExtractTimeout,
	}
	result, err := builder.Build(ctx, chunks, theme, filename)
	logModelUsage(app)
	if err != nil {
		logger.Error("background processing failed", "file", filename, "err", err)
		app.Jobs.Update(jobID, func(j *jobs.Job) {
			j.Status = jobs.StatusError
			j.Detail = err.Error()
		})
		return
	}

	app.Jobs.Update(jobID, func(j *jobs.Job) {
		j.Status = jobs.StatusDone
		j.ChunksProcessed = len(chunks)
		j.NodesCreated = result.NodesCreated
		j.RelationshipsCreated = result.RelationshipsCreated
	})
	logger.Info("background processing done", "file", filename,
		"nodes", result.NodesCreated, "relationships", result.RelationshipsCreated)
}

// logModelUsage reports the AI metrics accumulated by one ingestion and
// clears them for the next.
func logModelUsage(app *middleware.App) {
	metrics := app.AiClient.GetMetrics()
	aiDuration := time.Duration(metrics.DurationMs) * time.Millisecond
	logger.Info(
		"AI Metrics",
		"input_tokens", metrics.InputTokens,
		"output_tokens", metrics.OutputTokens,
		"total_tokens", metrics.TotalTokens,
		"duration", fmt.Sprintf("%02d:%02d:%02d",
			int(aiDuration.Hours()), int(aiDuration.Minutes())%60, int(aiDuration.Seconds())%60),
	)
	app.AiClient.ResetMetrics()
}

// readUploadedDocument pulls the multipart file and theme out of the
// request and extracts its text. A non-nil error return is a fully-formed
// echo response.
func readUploadedDocument(c echo.Context) (filename, theme, text string, errResp error) {
	theme = c.FormValue("theme")
	if theme == "" {
		theme = graph.ThemeGeneric
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", "", "", c.JSON(http.StatusBadRequest, uploadResponse{
			Status:  "error",
			Message: "Missing file upload.",
		})
	}
	filename = fileHeader.Filename

	if !loader.Supported(filename) {
		return "", "", "", c.JSON(http.StatusBadRequest, uploadResponse{
			Status:  "error",
			Message: "Unsupported file type.",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", "", "", c.JSON(http.StatusBadRequest, uploadResponse{
			Status:  "error",
			Message: "Failed to read uploaded file.",
		})
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return "", "", "", c.JSON(http.StatusBadRequest, uploadResponse{
			Status:  "error",
			Message: "Failed to read uploaded file.",
		})
	}
	logger.Info("upload received", "file", filename, "bytes", len(content), "theme", theme)

	text, err = loader.ExtractText(filename, content)
	if err != nil {
		logger.Error("document parsing failed", "file", filename, "err", err)
		status := http.StatusBadRequest
		if !errors.Is(err, loader.ErrUnsupportedType) {
			status = http.StatusUnprocessableEntity
		}
		return "", "", "", c.JSON(status, uploadResponse{
			Status:  "error",
			Message: "Failed to parse document.",
		})
	}

	return filename, theme, text, nil
}

// prepareChunks splits text and applies the chunk-count cap.
func prepareChunks(text string, cfg middleware.IngestConfig) []string {
	chunks := graph.ChunkText(text, cfg.ChunkSize, cfg.ChunkOverlap)
	if cfg.MaxChunks > 0 && len(chunks) > cfg.MaxChunks {
		logger.Warn("limiting chunks", "max", cfg.MaxChunks, "was", len(chunks))
		chunks = chunks[:cfg.MaxChunks]
	}
	return chunks
}
