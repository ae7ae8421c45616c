package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sales-analytics/internal/application/analytics"
	"github.com/jhoicas/sales-analytics/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SellerReportUC *analytics.SellerReportUseCase
	JWTSecret      string
	ServiceName    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Health (público)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token con rol de análisis)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(jwt.RoleAdmin, jwt.RoleAnalyst))

	analyticsGroup := protected.Group("/analytics")
	handler := NewAnalyticsHandler(deps.SellerReportUC)
	analyticsGroup.Get("/strategies", handler.ListStrategies)
	analyticsGroup.Post("/sellers", handler.AnalyzeSellers)
	analyticsGroup.Get("/sellers", handler.GetSellerReport)
	analyticsGroup.Get("/sellers/export", handler.ExportSellerReport)
}
