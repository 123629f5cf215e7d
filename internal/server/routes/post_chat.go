package routes

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/project-synapse/backend/internal/server/middleware"
	"github.com/project-synapse/backend/pkg/ai"
	"github.com/project-synapse/backend/pkg/logger"
	"github.com/project-synapse/backend/pkg/query"
)

// ChatStreamHandler answers a question grounded in the knowledge graph.
// The response is a stream of JSON lines, each carrying the message built
// up so far; the final line includes the model metrics for this answer.
func ChatStreamHandler(c echo.Context) error {
	type chatRequest struct {
		Question string `json:"question" validate:"required"`
	}

	type streamResponse struct {
		Message string           `json:"message"`
		Done    bool             `json:"done"`
		Metrics *ai.ModelMetrics `json:"metrics,omitempty"`
	}

	data := new(chatRequest)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	engine := &query.Engine{Client: app.AiClient, Store: app.Store}
	before := app.AiClient.GetMetrics()
	stream, err := engine.Answer(ctx, data.Question)
	if err != nil {
		logger.Error("answer generation failed", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c.Response().WriteHeader(http.StatusOK)
	enc := json.NewEncoder(c.Response())

	var messageBuffer strings.Builder
	for token := range stream {
		messageBuffer.WriteString(token)
		if err := enc.Encode(streamResponse{Message: messageBuffer.String()}); err != nil {
			return err
		}
		c.Response().Flush()
	}

	metrics := app.AiClient.GetMetrics().Delta(before)
	if err := enc.Encode(streamResponse{
		Message: messageBuffer.String(),
		Done:    true,
		Metrics: &metrics,
	}); err != nil {
		return err
	}
	c.Response().Flush()
	return nil
}
