// Package xmlreport serializa el reporte de vendedores como documento XML.
//
//	<sellerReport id="..." generatedAt="..." revenueStrategy="simple" bonusStrategy="by_profit">
//	  <totals revenue="..." profit="..." bonus="..." sellers="2"/>
//	  <seller rank="1" id="seller_1">
//	    <name>...</name> <revenue>...</revenue> ...
//	    <topProducts><product sku="..." quantity="..." revenue="..." profit="...">Nombre</product></topProducts>
//	  </seller>
//	</sellerReport>
package xmlreport

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/jhoicas/sales-analytics/internal/application/analytics"
	"github.com/jhoicas/sales-analytics/internal/application/dto"
)

var _ analytics.ReportRenderer = (*Renderer)(nil)

// Renderer implementa analytics.ReportRenderer con etree.
type Renderer struct {
	indent int
}

// NewRenderer construye el renderer; indent 0 produce XML compacto.
func NewRenderer(indent int) *Renderer {
	return &Renderer{indent: indent}
}

func (r *Renderer) Format() string      { return "xml" }
func (r *Renderer) ContentType() string { return "application/xml" }
func (r *Renderer) Extension() string   { return "xml" }

// Render construye el árbol y lo serializa con declaración UTF-8.
func (r *Renderer) Render(ctx context.Context, report *dto.SellerReportDTO) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("sellerReport")
	root.CreateAttr("id", report.ReportID)
	root.CreateAttr("generatedAt", report.GeneratedAt)
	root.CreateAttr("revenueStrategy", report.RevenueStrategy)
	root.CreateAttr("bonusStrategy", report.BonusStrategy)

	totals := root.CreateElement("totals")
	totals.CreateAttr("sellers", strconv.Itoa(report.SellerCount))
	totals.CreateAttr("revenue", report.TotalRevenue.StringFixed(2))
	totals.CreateAttr("profit", report.TotalProfit.StringFixed(2))
	totals.CreateAttr("bonus", report.TotalBonus.StringFixed(2))

	for _, s := range report.Sellers {
		el := root.CreateElement("seller")
		el.CreateAttr("rank", strconv.Itoa(s.Rank))
		el.CreateAttr("id", s.SellerID)
		el.CreateElement("name").SetText(s.Name)
		el.CreateElement("revenue").SetText(s.Revenue.StringFixed(2))
		el.CreateElement("profit").SetText(s.Profit.StringFixed(2))
		el.CreateElement("salesCount").SetText(strconv.Itoa(s.SalesCount))
		el.CreateElement("bonus").SetText(s.Bonus.StringFixed(2))

		top := el.CreateElement("topProducts")
		for _, p := range s.TopProducts {
			pe := top.CreateElement("product")
			pe.CreateAttr("sku", p.SKU)
			pe.CreateAttr("quantity", strconv.Itoa(p.Quantity))
			pe.CreateAttr("revenue", p.Revenue.StringFixed(2))
			pe.CreateAttr("profit", p.Profit.StringFixed(2))
			pe.SetText(p.Name)
		}
	}

	if r.indent > 0 {
		doc.Indent(r.indent)
	}

	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("xmlreport: serializar: %w", err)
	}
	return out.Bytes(), nil
}
