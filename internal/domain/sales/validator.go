package sales

import "github.com/jhoicas/sales-analytics/internal/domain"

// Validate verifica las precondiciones del análisis en orden fijo y devuelve el
// primer error encontrado. No tiene efectos secundarios.
func Validate(data *Dataset, opts *Options) error {
	if data == nil {
		return domain.ErrMissingData
	}
	if len(data.Sellers) == 0 {
		return domain.ErrInvalidSellers
	}
	if len(data.Products) == 0 {
		return domain.ErrInvalidProducts
	}
	if len(data.PurchaseRecords) == 0 {
		return domain.ErrInvalidPurchaseRecords
	}
	if opts == nil {
		return domain.ErrInvalidOptions
	}
	if opts.CalculateRevenue == nil {
		return domain.ErrInvalidRevenueStrategy
	}
	if opts.CalculateBonus == nil {
		return domain.ErrInvalidBonusStrategy
	}
	return nil
}
