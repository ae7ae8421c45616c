package sales

import "github.com/jhoicas/sales-analytics/internal/domain/entity"

// RevenueFunc calcula la venta atribuible a una línea de compra.
type RevenueFunc func(item entity.LineItem, product entity.Product) float64

// BonusFunc calcula el bono de un vendedor según su posición (base 0) en el
// orden por ganancia descendente y el total de vendedores.
type BonusFunc func(index, total int, seller *SellerStat) float64

// CalculateSimpleRevenue: precio de venta × cantidad × (1 - descuento/100).
func CalculateSimpleRevenue(item entity.LineItem, _ entity.Product) float64 {
	discount := 1 - item.Discount/100
	return item.SalePrice * float64(item.Quantity) * discount
}

// CalculateBonusByProfit aplica la política por niveles sobre la ganancia:
//   - posición 0: 15%
//   - posiciones 1 y 2: 10%
//   - último lugar: 0
//   - resto: 5%
//
// El orden de las ramas importa: con 3 vendedores o menos, las posiciones 1 y 2
// cobran 10% aunque sean el último lugar.
func CalculateBonusByProfit(index, total int, seller *SellerStat) float64 {
	switch {
	case index == 0:
		return seller.Profit * 0.15
	case index == 1 || index == 2:
		return seller.Profit * 0.1
	case index == total-1:
		return 0
	default:
		return seller.Profit * 0.05
	}
}
