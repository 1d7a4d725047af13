package controller

import (
	"context"
	"net/http"

	"github.com/alimikegami/e-commerce/internal/dto"
	"github.com/labstack/echo/v4"
)

// HealthReporter is satisfied by every domain service and by the composite
// HealthService.
type HealthReporter interface {
	Health(ctx context.Context) dto.Health
}

func CreateHealthController(g *echo.Group, reporter HealthReporter) {
	g.GET("/actuator/health", func(e echo.Context) error {
		health := reporter.Health(e.Request().Context())
		if health.Status != dto.HealthStatusUp {
			return e.JSON(http.StatusServiceUnavailable, health)
		}
		return e.JSON(http.StatusOK, health)
	})
}
