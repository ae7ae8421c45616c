// sales-report genera el reporte de vendedores desde la línea de comandos.
//
// Uso:
//
//	sales-report -d data/sales.json -f xlsx -o reporte.xlsx
//	sales-report --source postgres --bonus by_profit
//
// Sin -o el documento se escribe en stdout; los logs van a stderr.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/jhoicas/sales-analytics/internal/application/analytics"
	"github.com/jhoicas/sales-analytics/internal/application/dto"
	"github.com/jhoicas/sales-analytics/internal/domain/repository"
	"github.com/jhoicas/sales-analytics/internal/infrastructure/excel"
	"github.com/jhoicas/sales-analytics/internal/infrastructure/jsonfile"
	infrapdf "github.com/jhoicas/sales-analytics/internal/infrastructure/pdf"
	"github.com/jhoicas/sales-analytics/internal/infrastructure/postgres"
	"github.com/jhoicas/sales-analytics/internal/infrastructure/xmlreport"
	"github.com/jhoicas/sales-analytics/pkg/config"
	"github.com/jhoicas/sales-analytics/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "sales-report: %v\n", err)
		}
		os.Exit(1)
	}
}

// options flags de la CLI; los defaults salen de la configuración.
type options struct {
	source  string
	data    string
	format  string
	out     string
	revenue string
	bonus   string
	quiet   bool
}

func parseFlags(args []string, cfg *config.Config, stderr io.Writer) (*options, error) {
	o := &options{}
	fs := pflag.NewFlagSet("sales-report", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.source, "source", cfg.Analytics.Source, "fuente del dataset: json | postgres")
	fs.StringVarP(&o.data, "data", "d", cfg.Analytics.DataFile, "archivo JSON del dataset (source=json)")
	fs.StringVarP(&o.format, "format", "f", "json", "formato de salida: json | xlsx | pdf | xml")
	fs.StringVarP(&o.out, "out", "o", "", "archivo de salida (vacío = stdout)")
	fs.StringVar(&o.revenue, "revenue", cfg.Analytics.RevenueStrategy, "estrategia de ingresos")
	fs.StringVar(&o.bonus, "bonus", cfg.Analytics.BonusStrategy, "estrategia de bono")
	fs.BoolVarP(&o.quiet, "quiet", "q", false, "sin logs")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	o, err := parseFlags(args, cfg, stderr)
	if err != nil {
		return err
	}

	log := logger.Nop()
	if !o.quiet {
		log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, App: "sales-report", Out: stderr})
	}

	var repo repository.DatasetRepository
	switch o.source {
	case config.SourceJSON:
		repo = jsonfile.NewDatasetRepository(o.data)
	case config.SourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer pool.Close()
		repo = postgres.NewSnapshotDatasetRepository(postgres.NewTxRunner(pool))
	default:
		return fmt.Errorf("source %q no soportado (json | postgres)", o.source)
	}

	uc := analytics.NewSellerReportUseCase(
		repo,
		analytics.NewStrategyRegistry(cfg.Analytics.RevenueStrategy, cfg.Analytics.BonusStrategy),
		log.Component("analytics"),
		excel.NewXLSXRenderer(),
		infrapdf.NewMarotoReportRenderer(cfg.App.Name),
		xmlreport.NewRenderer(2),
	)

	content, filename, _, err := uc.Export(ctx, dto.ExportReportRequest{
		Format:          o.format,
		RevenueStrategy: o.revenue,
		BonusStrategy:   o.bonus,
	})
	if err != nil {
		return err
	}

	if o.out == "" {
		_, err = stdout.Write(content)
		return err
	}
	if err := os.WriteFile(o.out, content, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", o.out, err)
	}
	log.Info().Str("file", o.out).Str("suggested_name", filename).Int("bytes", len(content)).Msg("reporte escrito")
	return nil
}
