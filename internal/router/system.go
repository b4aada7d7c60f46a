package router

import (
	"github.com/deppfellow/go-adverts/internal/handler"
	"github.com/deppfellow/go-adverts/internal/middleware"
	"github.com/deppfellow/go-adverts/internal/server"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the resource API:
//  1. Health endpoint (when enabled)
//  2. Prometheus metrics
//  3. Docs endpoint (OpenAPI UI)
//  4. Static files (openapi.json and openapi.html)
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers, mw *middleware.Middlewares) {
	if s.Config.Observability.HealthChecks.Enabled {
		r.GET("/status", h.Health.CheckHealth)
	}

	r.GET("/metrics", mw.Metrics.Handler())

	r.Static("/static", handler.StaticDir)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
