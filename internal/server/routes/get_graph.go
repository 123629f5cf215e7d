package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/project-synapse/backend/internal/server/middleware"
	"github.com/project-synapse/backend/pkg/logger"
)

// HealthHandler reports liveness and store reachability.
func HealthHandler(c echo.Context) error {
	app := c.(*middleware.AppContext).App
	if err := app.Store.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"detail": "graph store unreachable",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetGraphDataHandler exports the full graph for visualization.
func GetGraphDataHandler(c echo.Context) error {
	app := c.(*middleware.AppContext).App

	data, err := app.Store.GraphData(c.Request().Context())
	if err != nil {
		logger.Error("graph data export failed", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, data)
}

// ClearGraphHandler deletes every node and relationship.
func ClearGraphHandler(c echo.Context) error {
	app := c.(*middleware.AppContext).App

	if err := app.Store.Clear(c.Request().Context()); err != nil {
		logger.Error("graph clear failed", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to clear graph"})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Knowledge graph cleared",
	})
}
