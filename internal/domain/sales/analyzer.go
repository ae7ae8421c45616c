// Package sales calcula las estadísticas de desempeño por vendedor: venta,
// ganancia, cantidad de ventas, top de productos y bono según el ranking.
//
// El cálculo de la venta por línea y el del bono son estrategias inyectadas
// por el llamador (RevenueFunc, BonusFunc); la ganancia por línea es fija.
package sales

import "github.com/jhoicas/sales-analytics/internal/domain/entity"

// Dataset colecciones de entrada del análisis.
type Dataset struct {
	Sellers         []entity.Seller
	Products        []entity.Product
	PurchaseRecords []entity.PurchaseRecord
}

// Options estrategias del análisis.
type Options struct {
	CalculateRevenue RevenueFunc
	CalculateBonus   BonusFunc
}

// DefaultOptions venta simple y bono por niveles de ganancia.
func DefaultOptions() *Options {
	return &Options{
		CalculateRevenue: CalculateSimpleRevenue,
		CalculateBonus:   CalculateBonusByProfit,
	}
}

// Analyze valida la entrada, agrega las compras y devuelve las filas por
// vendedor en orden de ganancia descendente. Es una función pura: dos llamadas
// con la misma entrada producen el mismo resultado.
func Analyze(data *Dataset, opts *Options) ([]SellerResult, error) {
	if err := Validate(data, opts); err != nil {
		return nil, err
	}
	stats := Aggregate(data, opts.CalculateRevenue)
	return Rank(stats, opts.CalculateBonus), nil
}
