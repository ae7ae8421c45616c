package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sales-analytics/internal/application/dto"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0,00", formatMoney(decimal.Zero))
	assert.Equal(t, "999,90", formatMoney(decimal.RequireFromString("999.9")))
	assert.Equal(t, "25.000,00", formatMoney(decimal.NewFromInt(25000)))
	assert.Equal(t, "1.000.000,01", formatMoney(decimal.RequireFromString("1000000.005")))
	assert.Equal(t, "-1.234,50", formatMoney(decimal.RequireFromString("-1234.5")))
}

func TestRender_GeneraPDF(t *testing.T) {
	report := &dto.SellerReportDTO{
		ReportID:        "7d8f5b1e-0000-4000-8000-000000000001",
		GeneratedAt:     "2024-03-01T10:00:00Z",
		RevenueStrategy: "simple",
		BonusStrategy:   "by_profit",
		SellerCount:     1,
		TotalRevenue:    decimal.RequireFromString("118.00"),
		TotalProfit:     decimal.RequireFromString("58.00"),
		TotalBonus:      decimal.RequireFromString("8.70"),
		Sellers: []dto.SellerStatsDTO{{
			Rank: 1, SellerID: "seller_1", Name: "Alexey Petrov",
			Revenue: decimal.RequireFromString("118.00"), Profit: decimal.RequireFromString("58.00"),
			SalesCount: 2, Bonus: decimal.RequireFromString("8.70"),
			TopProducts: []dto.TopProductDTO{
				{SKU: "SKU_001", Name: "Café", Quantity: 5, Revenue: decimal.NewFromInt(50)},
				{SKU: "SKU_002", Name: "Té", Quantity: 4, Revenue: decimal.NewFromInt(20)},
				{SKU: "SKU_003", Name: "Pan", Quantity: 3, Revenue: decimal.NewFromInt(30)},
				{SKU: "SKU_004", Name: "Miel", Quantity: 2, Revenue: decimal.NewFromInt(18)},
			},
		}},
	}

	r := NewMarotoReportRenderer("sales-analytics")
	out, err := r.Render(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe iniciar con la cabecera PDF")
	assert.Equal(t, "pdf", r.Format())
	assert.Equal(t, "application/pdf", r.ContentType())
}

func TestRender_SinVendedores(t *testing.T) {
	out, err := NewMarotoReportRenderer("").Render(context.Background(), &dto.SellerReportDTO{GeneratedAt: "no-es-fecha"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRender_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMarotoReportRenderer("").Render(ctx, &dto.SellerReportDTO{})
	assert.ErrorIs(t, err, context.Canceled)
}
