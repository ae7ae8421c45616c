// Package excel exporta el reporte de vendedores como libro XLSX.
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/sales-analytics/internal/application/analytics"
	"github.com/jhoicas/sales-analytics/internal/application/dto"
)

// Hojas del libro.
const (
	SheetSellers  = "Vendedores"
	SheetProducts = "Top productos"
	SheetSummary  = "Resumen"
)

var (
	sellerHeaders  = []interface{}{"Posición", "ID", "Vendedor", "Ingresos", "Ganancia", "Ventas", "Bono"}
	productHeaders = []interface{}{"ID vendedor", "Posición", "SKU", "Producto", "Cantidad", "Ingresos", "Ganancia"}
)

var _ analytics.ReportRenderer = (*XLSXRenderer)(nil)

// XLSXRenderer implementa analytics.ReportRenderer con excelize.
type XLSXRenderer struct{}

// NewXLSXRenderer construye el renderer.
func NewXLSXRenderer() *XLSXRenderer { return &XLSXRenderer{} }

func (XLSXRenderer) Format() string { return "xlsx" }
func (XLSXRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (XLSXRenderer) Extension() string { return "xlsx" }

// Render arma el libro en memoria y devuelve sus bytes.
func (r XLSXRenderer) Render(ctx context.Context, report *dto.SellerReportDTO) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetSellers); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}
	if _, err := f.NewSheet(SheetProducts); err != nil {
		return nil, fmt.Errorf("excel: crear hoja %s: %w", SheetProducts, err)
	}
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return nil, fmt.Errorf("excel: crear hoja %s: %w", SheetSummary, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#00467F"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo de cabecera: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, fmt.Errorf("excel: estilo numérico: %w", err)
	}

	if err := writeSellers(f, report, headerStyle, moneyStyle); err != nil {
		return nil, err
	}
	if err := writeProducts(f, report, headerStyle, moneyStyle); err != nil {
		return nil, err
	}
	if err := writeSummary(f, report, headerStyle); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSellers(f *excelize.File, report *dto.SellerReportDTO, headerStyle, moneyStyle int) error {
	if err := f.SetSheetRow(SheetSellers, "A1", &sellerHeaders); err != nil {
		return fmt.Errorf("excel: cabecera %s: %w", SheetSellers, err)
	}
	for i, s := range report.Sellers {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			s.Rank, s.SellerID, s.Name,
			s.Revenue.InexactFloat64(), s.Profit.InexactFloat64(),
			s.SalesCount, s.Bonus.InexactFloat64(),
		}
		if err := f.SetSheetRow(SheetSellers, cell, &row); err != nil {
			return fmt.Errorf("excel: fila %d de %s: %w", i+2, SheetSellers, err)
		}
	}
	last := len(report.Sellers) + 1

	_ = f.SetRowStyle(SheetSellers, 1, 1, headerStyle)
	if last > 1 {
		_ = f.SetCellStyle(SheetSellers, "D2", fmt.Sprintf("E%d", last), moneyStyle)
		_ = f.SetCellStyle(SheetSellers, "G2", fmt.Sprintf("G%d", last), moneyStyle)
	}
	_ = f.SetColWidth(SheetSellers, "A", "B", 12)
	_ = f.SetColWidth(SheetSellers, "C", "C", 30)
	_ = f.SetColWidth(SheetSellers, "D", "G", 15)
	return nil
}

func writeProducts(f *excelize.File, report *dto.SellerReportDTO, headerStyle, moneyStyle int) error {
	if err := f.SetSheetRow(SheetProducts, "A1", &productHeaders); err != nil {
		return fmt.Errorf("excel: cabecera %s: %w", SheetProducts, err)
	}
	rowNum := 2
	for _, s := range report.Sellers {
		for pos, p := range s.TopProducts {
			cell, _ := excelize.CoordinatesToCellName(1, rowNum)
			row := []interface{}{
				s.SellerID, pos + 1, p.SKU, p.Name, p.Quantity,
				p.Revenue.InexactFloat64(), p.Profit.InexactFloat64(),
			}
			if err := f.SetSheetRow(SheetProducts, cell, &row); err != nil {
				return fmt.Errorf("excel: fila %d de %s: %w", rowNum, SheetProducts, err)
			}
			rowNum++
		}
	}

	_ = f.SetRowStyle(SheetProducts, 1, 1, headerStyle)
	if rowNum > 2 {
		_ = f.SetCellStyle(SheetProducts, "F2", fmt.Sprintf("G%d", rowNum-1), moneyStyle)
	}
	_ = f.SetColWidth(SheetProducts, "A", "C", 14)
	_ = f.SetColWidth(SheetProducts, "D", "D", 30)
	_ = f.SetColWidth(SheetProducts, "E", "G", 14)
	return nil
}

func writeSummary(f *excelize.File, report *dto.SellerReportDTO, headerStyle int) error {
	data := [][]interface{}{
		{"Campo", "Valor"},
		{"ID del reporte", report.ReportID},
		{"Generado", report.GeneratedAt},
		{"Estrategia de ingresos", report.RevenueStrategy},
		{"Estrategia de bono", report.BonusStrategy},
		{"Vendedores", report.SellerCount},
		{"Ingresos totales", report.TotalRevenue.InexactFloat64()},
		{"Ganancia total", report.TotalProfit.InexactFloat64()},
		{"Bonos totales", report.TotalBonus.InexactFloat64()},
	}
	for i, row := range data {
		for j, val := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			if err := f.SetCellValue(SheetSummary, cell, val); err != nil {
				return fmt.Errorf("excel: celda %s de %s: %w", cell, SheetSummary, err)
			}
		}
	}
	_ = f.SetRowStyle(SheetSummary, 1, 1, headerStyle)
	_ = f.SetColWidth(SheetSummary, "A", "A", 26)
	_ = f.SetColWidth(SheetSummary, "B", "B", 40)
	return nil
}
