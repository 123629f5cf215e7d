package server

import (
	"github.com/labstack/echo/v4"

	"github.com/project-synapse/backend/internal/server/routes"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", routes.HealthHandler)

	apiRoutes := e.Group("/api")

	// Document ingestion routes
	apiRoutes.POST("/upload", routes.UploadHandler)
	apiRoutes.POST("/upload/async", routes.UploadAsyncHandler)
	apiRoutes.GET("/upload/status/:id", routes.UploadStatusHandler)

	// Graph routes
	apiRoutes.GET("/graph-data", routes.GetGraphDataHandler)
	apiRoutes.DELETE("/graph", routes.ClearGraphHandler)

	// Chat routes
	apiRoutes.POST("/chat", routes.ChatStreamHandler)
}
