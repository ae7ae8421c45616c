// Package pdf genera la versión imprimible del reporte de vendedores.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + estrategias │ id del reporte + fecha       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Vendedor | Ingresos | Ganancia | Ventas | Bono   │
//	│         (debajo de cada vendedor, sus productos top)        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: ingresos / ganancia / bonos                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sales-analytics/internal/application/analytics"
	"github.com/jhoicas/sales-analytics/internal/application/dto"
)

// topProductsInPDF líneas de producto por vendedor; el detalle completo va en XLSX/JSON.
const topProductsInPDF = 3

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

var _ analytics.ReportRenderer = (*MarotoReportRenderer)(nil)

// MarotoReportRenderer implementa analytics.ReportRenderer usando Maroto v2.
type MarotoReportRenderer struct {
	author string
}

// NewMarotoReportRenderer construye el renderer. author va a los metadatos del PDF.
func NewMarotoReportRenderer(author string) *MarotoReportRenderer {
	return &MarotoReportRenderer{author: author}
}

func (r *MarotoReportRenderer) Format() string      { return "pdf" }
func (r *MarotoReportRenderer) ContentType() string { return "application/pdf" }
func (r *MarotoReportRenderer) Extension() string   { return "pdf" }

// Render genera el PDF y devuelve sus bytes.
func (r *MarotoReportRenderer) Render(ctx context.Context, report *dto.SellerReportDTO) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de vendedores", true).
		WithAuthor(r.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, s := range report.Sellers {
		m.AddRows(sellerRows(s)...)
	}
	if len(report.Sellers) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin vendedores en el dataset.", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report *dto.SellerReportDTO) core.Row {
	fecha := report.GeneratedAt
	if t, err := time.Parse(time.RFC3339, report.GeneratedAt); err == nil {
		fecha = t.Format("02/01/2006 15:04 MST")
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New("REPORTE DE VENDEDORES", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Ingresos: %s   |   Bono: %s", report.RevenueStrategy, report.BonusStrategy), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Reporte "+report.ReportID, props.Text{
				Size: 7, Align: align.Right, Color: colorGray, Top: 2,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Vendedor", 4, align.Left),
		h("Ingresos", 2, align.Right),
		h("Ganancia", 2, align.Right),
		h("Ventas", 1, align.Center),
		h("Bono", 2, align.Right),
	)
}

// sellerRows: fila del vendedor y, debajo, sus primeros productos.
func sellerRows(s dto.SellerStatsDTO) []core.Row {
	rows := []core.Row{row.New(7).Add(
		col.New(1).Add(text.New(strconv.Itoa(s.Rank), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(4).Add(text.New(s.Name, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New("$"+formatMoney(s.Revenue), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(2).Add(text.New("$"+formatMoney(s.Profit), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(1).Add(text.New(strconv.Itoa(s.SalesCount), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New("$"+formatMoney(s.Bonus), props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)}

	for i, p := range s.TopProducts {
		if i == topProductsInPDF {
			break
		}
		rows = append(rows, row.New(5).Add(
			col.New(1),
			col.New(11).Add(text.New(
				fmt.Sprintf("%s  %s  x%d  ($%s)", p.SKU, p.Name, p.Quantity, formatMoney(p.Revenue)),
				props.Text{Size: 7, Color: colorGray, Left: 3},
			)),
		))
	}
	return rows
}

func totalsRow(report *dto.SellerReportDTO) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return row.New(20).Add(
		col.New(6).Add(text.New(fmt.Sprintf("%d vendedores", report.SellerCount), props.Text{
			Size: 8, Color: colorGray, Top: 2,
		})),
		col.New(3).Add(
			label("Ingresos:"),
			label("Ganancia:"),
			text.New("Bonos:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2}),
		),
		col.New(3).Add(
			value("$"+formatMoney(report.TotalRevenue)),
			value("$"+formatMoney(report.TotalProfit)),
			text.New("$"+formatMoney(report.TotalBonus), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney con puntos de miles y coma decimal.
// Ej: 25000 → "25.000,00", -1234.5 → "-1.234,50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "," + frac
}
