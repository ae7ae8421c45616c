// Package analytics contiene los casos de uso de reportes de desempeño:
// análisis por vendedor, resolución de estrategias y exportación.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sales-analytics/internal/application/dto"
	"github.com/jhoicas/sales-analytics/internal/domain"
	"github.com/jhoicas/sales-analytics/internal/domain/repository"
	"github.com/jhoicas/sales-analytics/internal/domain/sales"
)

// ReportRenderer convierte un reporte en un documento descargable.
type ReportRenderer interface {
	Format() string      // nombre usado en ?format=
	ContentType() string // MIME del documento
	Extension() string   // sin punto
	Render(ctx context.Context, report *dto.SellerReportDTO) ([]byte, error)
}

// SellerReportUseCase orquesta el análisis por vendedor:
//   - Resuelve las estrategias por nombre.
//   - Ejecuta sales.Analyze sobre el dataset (del cuerpo HTTP o de la fuente configurada).
//   - Envuelve las filas en un SellerReportDTO con id, fecha y totales.
//   - Exporta el reporte con el renderer del formato pedido.
type SellerReportUseCase struct {
	datasetRepo repository.DatasetRepository
	strategies  *StrategyRegistry
	renderers   map[string]ReportRenderer
	log         zerolog.Logger
	now         func() time.Time
}

// NewSellerReportUseCase construye el caso de uso. datasetRepo puede ser nil si
// solo se analizan datasets recibidos en la petición.
func NewSellerReportUseCase(
	datasetRepo repository.DatasetRepository,
	strategies *StrategyRegistry,
	log zerolog.Logger,
	renderers ...ReportRenderer,
) *SellerReportUseCase {
	if strategies == nil {
		strategies = NewStrategyRegistry("", "")
	}
	uc := &SellerReportUseCase{
		datasetRepo: datasetRepo,
		strategies:  strategies,
		renderers:   map[string]ReportRenderer{},
		log:         log,
		now:         time.Now,
	}
	uc.renderers[jsonFormat] = jsonRenderer{}
	for _, r := range renderers {
		uc.renderers[r.Format()] = r
	}
	return uc
}

// Analyze ejecuta el análisis sobre el dataset recibido en la petición.
// req nil equivale a datos no proporcionados.
func (uc *SellerReportUseCase) Analyze(ctx context.Context, req *dto.AnalyzeSalesRequest) (*dto.SellerReportDTO, error) {
	if req == nil {
		return uc.AnalyzeDataset(ctx, nil, "", "")
	}
	return uc.AnalyzeDataset(ctx, req.SalesDatasetDTO.Dataset(), req.RevenueStrategy, req.BonusStrategy)
}

// BuildReport ejecuta el análisis sobre la fuente de datos configurada.
func (uc *SellerReportUseCase) BuildReport(ctx context.Context, req dto.SellerReportRequest) (*dto.SellerReportDTO, error) {
	if uc.datasetRepo == nil {
		return nil, fmt.Errorf("analytics: fuente de datos no configurada: %w", domain.ErrNotFound)
	}
	data, err := uc.datasetRepo.LoadDataset(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: cargar dataset: %w", err)
	}
	if data != nil {
		uc.log.Debug().
			Int("sellers", len(data.Sellers)).
			Int("products", len(data.Products)).
			Int("purchase_records", len(data.PurchaseRecords)).
			Msg("dataset cargado")
	}
	return uc.AnalyzeDataset(ctx, data, req.RevenueStrategy, req.BonusStrategy)
}

// AnalyzeDataset resuelve las estrategias, ejecuta el análisis y arma el reporte.
func (uc *SellerReportUseCase) AnalyzeDataset(
	_ context.Context,
	data *sales.Dataset,
	revenueStrategy, bonusStrategy string,
) (*dto.SellerReportDTO, error) {
	start := uc.now()

	// Los datos se validan antes que los nombres de estrategia.
	if err := sales.Validate(data, sales.DefaultOptions()); err != nil {
		uc.log.Warn().Err(err).Msg("datos de ventas inválidos")
		return nil, err
	}

	opts, revenueName, bonusName, err := uc.strategies.Resolve(revenueStrategy, bonusStrategy)
	if err != nil {
		uc.log.Warn().Err(err).Msg("estrategia inválida")
		return nil, err
	}

	rows, err := sales.Analyze(data, opts)
	if err != nil {
		uc.log.Warn().Err(err).Msg("datos de ventas inválidos")
		return nil, err
	}

	report := buildReport(rows, revenueName, bonusName, start)
	uc.log.Info().
		Str("report_id", report.ReportID).
		Int("sellers", report.SellerCount).
		Str("revenue_strategy", revenueName).
		Str("bonus_strategy", bonusName).
		Dur("duration", uc.now().Sub(start)).
		Msg("reporte de vendedores generado")
	return report, nil
}

// Export genera el reporte de la fuente configurada y lo renderiza en el formato pedido.
//
// Retorna:
//   - (contenido, nombre de archivo, content-type, nil) si todo sale bien.
//   - domain.ErrInvalidInput si el formato no está registrado.
func (uc *SellerReportUseCase) Export(
	ctx context.Context,
	req dto.ExportReportRequest,
) (content []byte, filename, contentType string, err error) {
	renderer, ok := uc.renderers[req.Format]
	if !ok {
		return nil, "", "", fmt.Errorf("formato %q no soportado: %w", req.Format, domain.ErrInvalidInput)
	}

	report, err := uc.BuildReport(ctx, dto.SellerReportRequest{
		RevenueStrategy: req.RevenueStrategy,
		BonusStrategy:   req.BonusStrategy,
	})
	if err != nil {
		return nil, "", "", err
	}

	content, err = uc.Render(ctx, report, req.Format)
	if err != nil {
		return nil, "", "", err
	}
	filename = fmt.Sprintf("reporte-vendedores-%s.%s", uc.now().Format("2006-01-02"), renderer.Extension())
	return content, filename, renderer.ContentType(), nil
}

// Render convierte un reporte ya construido al formato pedido.
func (uc *SellerReportUseCase) Render(ctx context.Context, report *dto.SellerReportDTO, format string) ([]byte, error) {
	renderer, ok := uc.renderers[format]
	if !ok {
		return nil, fmt.Errorf("formato %q no soportado: %w", format, domain.ErrInvalidInput)
	}
	out, err := renderer.Render(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("analytics: renderizar %s: %w", format, err)
	}
	return out, nil
}

// Formats lista los formatos de exportación disponibles, ordenados.
func (uc *SellerReportUseCase) Formats() []string {
	formats := make([]string, 0, len(uc.renderers))
	for f := range uc.renderers {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}

// Strategies describe estrategias registradas, defaults y formatos.
func (uc *SellerReportUseCase) Strategies() dto.StrategiesDTO {
	revenue, bonus := uc.strategies.Names()
	defRevenue, defBonus := uc.strategies.Defaults()
	return dto.StrategiesDTO{
		RevenueStrategies: revenue,
		BonusStrategies:   bonus,
		DefaultRevenue:    defRevenue,
		DefaultBonus:      defBonus,
		Formats:           uc.Formats(),
	}
}

// buildReport convierte las filas del análisis en el DTO con posición y totales.
// Los totales suman las filas ya redondeadas, así cuadran con lo que se muestra.
func buildReport(rows []sales.SellerResult, revenueName, bonusName string, at time.Time) *dto.SellerReportDTO {
	var totalRevenue, totalProfit, totalBonus decimal.Decimal
	sellers := make([]dto.SellerStatsDTO, 0, len(rows))
	for i, r := range rows {
		totalRevenue = totalRevenue.Add(r.Revenue)
		totalProfit = totalProfit.Add(r.Profit)
		totalBonus = totalBonus.Add(r.Bonus)

		top := make([]dto.TopProductDTO, 0, len(r.TopProducts))
		for _, p := range r.TopProducts {
			top = append(top, dto.TopProductDTO{
				SKU:      p.SKU,
				Name:     p.Name,
				Revenue:  p.Revenue,
				Profit:   p.Profit,
				Quantity: p.Quantity,
			})
		}
		sellers = append(sellers, dto.SellerStatsDTO{
			Rank:        i + 1,
			SellerID:    r.SellerID,
			Name:        r.Name,
			Revenue:     r.Revenue,
			Profit:      r.Profit,
			SalesCount:  r.SalesCount,
			Bonus:       r.Bonus,
			TopProducts: top,
		})
	}

	return &dto.SellerReportDTO{
		ReportID:        uuid.New().String(),
		GeneratedAt:     at.UTC().Format(time.RFC3339),
		RevenueStrategy: revenueName,
		BonusStrategy:   bonusName,
		SellerCount:     len(sellers),
		TotalRevenue:    totalRevenue.Round(2),
		TotalProfit:     totalProfit.Round(2),
		TotalBonus:      totalBonus.Round(2),
		Sellers:         sellers,
	}
}

// ── JSON ──────────────────────────────────────────────────────────────────────

const jsonFormat = "json"

// jsonRenderer siempre disponible; los demás formatos se inyectan desde infraestructura.
type jsonRenderer struct{}

func (jsonRenderer) Format() string      { return jsonFormat }
func (jsonRenderer) ContentType() string { return "application/json" }
func (jsonRenderer) Extension() string   { return "json" }

func (jsonRenderer) Render(_ context.Context, report *dto.SellerReportDTO) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
