package sales

import "github.com/jhoicas/sales-analytics/internal/domain/entity"

// ProductStat acumulados de un SKU dentro de las ventas de un vendedor.
type ProductStat struct {
	Product  entity.Product
	Revenue  float64
	Profit   float64
	Quantity int
}

// SellerStat acumulados de un vendedor. Se crea uno por vendedor de entrada,
// se actualiza durante la agregación y recibe el bono tras el ranking.
type SellerStat struct {
	ID         string
	Name       string
	Revenue    float64
	Profit     float64
	SalesCount int
	Bonus      float64

	// productos en orden de primera venta; bySKU apunta a los mismos elementos
	products []*ProductStat
	bySKU    map[string]*ProductStat
}

func newSellerStat(s entity.Seller) *SellerStat {
	return &SellerStat{
		ID:    s.ID,
		Name:  s.FullName(),
		bySKU: make(map[string]*ProductStat),
	}
}

// productStat devuelve el acumulado del SKU, creándolo en la primera venta.
func (s *SellerStat) productStat(p entity.Product) *ProductStat {
	if ps, ok := s.bySKU[p.SKU]; ok {
		return ps
	}
	ps := &ProductStat{Product: p}
	s.bySKU[p.SKU] = ps
	s.products = append(s.products, ps)
	return ps
}

// ProductsSold devuelve una copia de los acumulados por SKU en orden de primera venta.
func (s *SellerStat) ProductsSold() []ProductStat {
	out := make([]ProductStat, 0, len(s.products))
	for _, ps := range s.products {
		out = append(out, *ps)
	}
	return out
}
