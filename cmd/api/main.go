// @title        Sales Analytics API
// @version      1.0
// @description  Reporte de desempeño por vendedor: ingresos, ganancia, ventas, bono y top de productos.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token JWT>
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/sales-analytics/docs"
	"github.com/jhoicas/sales-analytics/internal/application/analytics"
	"github.com/jhoicas/sales-analytics/internal/domain/repository"
	"github.com/jhoicas/sales-analytics/internal/infrastructure/excel"
	"github.com/jhoicas/sales-analytics/internal/infrastructure/jsonfile"
	infrapdf "github.com/jhoicas/sales-analytics/internal/infrastructure/pdf"
	"github.com/jhoicas/sales-analytics/internal/infrastructure/postgres"
	"github.com/jhoicas/sales-analytics/internal/infrastructure/xmlreport"
	httpRouter "github.com/jhoicas/sales-analytics/internal/interfaces/http"
	"github.com/jhoicas/sales-analytics/pkg/config"
	"github.com/jhoicas/sales-analytics/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("source", cfg.Analytics.Source).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: todas las rutas /api responderán 401")
	}

	ctx := context.Background()

	// Fuente del dataset: archivo JSON o PostgreSQL
	var datasetRepo repository.DatasetRepository
	switch cfg.Analytics.Source {
	case config.SourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("esquema de ventas")
		}
		datasetRepo = postgres.NewSnapshotDatasetRepository(postgres.NewTxRunner(pool))
	default:
		datasetRepo = jsonfile.NewDatasetRepository(cfg.Analytics.DataFile)
		log.Info().Str("file", cfg.Analytics.DataFile).Msg("dataset desde archivo JSON")
	}

	strategies := analytics.NewStrategyRegistry(cfg.Analytics.RevenueStrategy, cfg.Analytics.BonusStrategy)
	sellerReportUC := analytics.NewSellerReportUseCase(
		datasetRepo,
		strategies,
		log.Component("analytics"),
		excel.NewXLSXRenderer(),
		infrapdf.NewMarotoReportRenderer(cfg.App.Name),
		xmlreport.NewRenderer(2),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    16 * 1024 * 1024,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Sales Analytics API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		SellerReportUC: sellerReportUC,
		JWTSecret:      cfg.JWT.Secret,
		ServiceName:    cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
