package dto

import "github.com/shopspring/decimal"

// ── Parámetros ────────────────────────────────────────────────────────────────

// AnalyzeSalesRequest cuerpo de POST /api/analytics/sellers.
type AnalyzeSalesRequest struct {
	SalesDatasetDTO
	RevenueStrategy string `json:"revenue_strategy,omitempty"` // default "simple"
	BonusStrategy   string `json:"bonus_strategy,omitempty"`   // default "by_profit"
}

// SellerReportRequest parámetros de GET /api/analytics/sellers.
type SellerReportRequest struct {
	RevenueStrategy string `query:"revenue_strategy"`
	BonusStrategy   string `query:"bonus_strategy"`
}

// ExportReportRequest parámetros de GET /api/analytics/sellers/export.
type ExportReportRequest struct {
	Format          string `query:"format" validate:"required,oneof=json xlsx pdf xml"`
	RevenueStrategy string `query:"revenue_strategy" validate:"omitempty,max=50"`
	BonusStrategy   string `query:"bonus_strategy" validate:"omitempty,max=50"`
}

// ── Reporte ───────────────────────────────────────────────────────────────────

// TopProductDTO producto dentro del top de un vendedor.
type TopProductDTO struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Revenue  decimal.Decimal `json:"revenue"`
	Profit   decimal.Decimal `json:"profit"`
	Quantity int             `json:"quantity"`
}

// SellerStatsDTO fila de un vendedor. Ordenadas por ganancia descendente.
type SellerStatsDTO struct {
	Rank        int             `json:"rank"` // 1 = mayor ganancia
	SellerID    string          `json:"seller_id"`
	Name        string          `json:"name"`
	Revenue     decimal.Decimal `json:"revenue"`
	Profit      decimal.Decimal `json:"profit"`
	SalesCount  int             `json:"sales_count"`
	Bonus       decimal.Decimal `json:"bonus"`
	TopProducts []TopProductDTO `json:"top_products"`
}

// SellerReportDTO respuesta completa del análisis por vendedor.
type SellerReportDTO struct {
	ReportID        string           `json:"report_id"`
	GeneratedAt     string           `json:"generated_at"` // RFC3339
	RevenueStrategy string           `json:"revenue_strategy"`
	BonusStrategy   string           `json:"bonus_strategy"`
	SellerCount     int              `json:"seller_count"`
	TotalRevenue    decimal.Decimal  `json:"total_revenue"`
	TotalProfit     decimal.Decimal  `json:"total_profit"`
	TotalBonus      decimal.Decimal  `json:"total_bonus"`
	Sellers         []SellerStatsDTO `json:"sellers"`
}

// StrategiesDTO respuesta de GET /api/analytics/strategies.
type StrategiesDTO struct {
	RevenueStrategies []string `json:"revenue_strategies"`
	BonusStrategies   []string `json:"bonus_strategies"`
	DefaultRevenue    string   `json:"default_revenue_strategy"`
	DefaultBonus      string   `json:"default_bonus_strategy"`
	Formats           []string `json:"formats"`
}
