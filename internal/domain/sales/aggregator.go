package sales

import "github.com/jhoicas/sales-analytics/internal/domain/entity"

// Aggregate recorre los registros de compra y construye los acumulados por
// vendedor y por SKU. Devuelve un SellerStat por vendedor de entrada, en el
// mismo orden.
//
// Registros con vendedor desconocido se omiten completos; líneas con SKU
// desconocido se omiten dentro del registro. Ninguno de los dos es error.
// Los montos se acumulan en float64 sin redondeo intermedio.
func Aggregate(data *Dataset, calculateRevenue RevenueFunc) []*SellerStat {
	stats := make([]*SellerStat, 0, len(data.Sellers))
	statsByID := make(map[string]*SellerStat, len(data.Sellers))
	for _, s := range data.Sellers {
		st := newSellerStat(s)
		stats = append(stats, st)
		statsByID[s.ID] = st
	}

	productsBySKU := make(map[string]entity.Product, len(data.Products))
	for _, p := range data.Products {
		productsBySKU[p.SKU] = p
	}

	for _, record := range data.PurchaseRecords {
		st, ok := statsByID[record.SellerID]
		if !ok {
			continue
		}
		st.SalesCount++

		for _, item := range record.Items {
			product, ok := productsBySKU[item.SKU]
			if !ok {
				continue
			}
			revenue := calculateRevenue(item, product)
			profit := lineProfit(item, product)

			st.Revenue += revenue
			st.Profit += profit

			ps := st.productStat(product)
			ps.Revenue += revenue
			ps.Profit += profit
			ps.Quantity += item.Quantity
		}
	}
	return stats
}

// lineProfit: (precio con descuento - costo de compra) × cantidad. No es configurable.
func lineProfit(item entity.LineItem, product entity.Product) float64 {
	return (item.DiscountedUnitPrice() - product.PurchasePrice) * float64(item.Quantity)
}
