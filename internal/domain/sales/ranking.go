package sales

import (
	"sort"

	"github.com/shopspring/decimal"
)

// TopProductsLimit máximo de productos en el top de cada vendedor.
const TopProductsLimit = 10

// ProductResult fila de un producto dentro del top de un vendedor.
type ProductResult struct {
	SKU      string
	Name     string
	Revenue  decimal.Decimal
	Profit   decimal.Decimal
	Quantity int
}

// SellerResult fila final del análisis. Montos redondeados a 2 decimales.
type SellerResult struct {
	SellerID    string
	Name        string
	Revenue     decimal.Decimal
	Profit      decimal.Decimal
	SalesCount  int
	Bonus       decimal.Decimal
	TopProducts []ProductResult
}

// Rank ordena los vendedores por ganancia descendente (estable: los empates
// conservan el orden de entrada), asigna el bono de cada posición y proyecta
// las filas de resultado.
func Rank(stats []*SellerStat, calculateBonus BonusFunc) []SellerResult {
	sorted := make([]*SellerStat, len(stats))
	copy(sorted, stats)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Profit > sorted[j].Profit
	})

	total := len(sorted)
	for i, st := range sorted {
		st.Bonus = calculateBonus(i, total, st)
	}

	results := make([]SellerResult, 0, total)
	for _, st := range sorted {
		results = append(results, toSellerResult(st))
	}
	return results
}

// TopProducts devuelve hasta limit productos por cantidad descendente; los
// empates conservan el orden de primera venta.
func (s *SellerStat) TopProducts(limit int) []ProductStat {
	products := s.ProductsSold()
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Quantity > products[j].Quantity
	})
	if limit >= 0 && len(products) > limit {
		products = products[:limit]
	}
	return products
}

func toSellerResult(st *SellerStat) SellerResult {
	top := st.TopProducts(TopProductsLimit)
	topProducts := make([]ProductResult, 0, len(top))
	for _, ps := range top {
		topProducts = append(topProducts, ProductResult{
			SKU:      ps.Product.SKU,
			Name:     ps.Product.Name,
			Revenue:  round2(ps.Revenue),
			Profit:   round2(ps.Profit),
			Quantity: ps.Quantity,
		})
	}
	return SellerResult{
		SellerID:    st.ID,
		Name:        st.Name,
		Revenue:     round2(st.Revenue),
		Profit:      round2(st.Profit),
		SalesCount:  st.SalesCount,
		Bonus:       round2(st.Bonus),
		TopProducts: topProducts,
	}
}

func round2(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
