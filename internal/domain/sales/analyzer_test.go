package sales_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sales-analytics/internal/domain"
	"github.com/jhoicas/sales-analytics/internal/domain/entity"
	"github.com/jhoicas/sales-analytics/internal/domain/sales"
)

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios de referencia
// ──────────────────────────────────────────────────────────────────────────────

// Un vendedor, un producto (costo 10) y una línea de 5 unidades a 20 sin descuento.
func TestAnalyze_UnVendedorUnaLinea(t *testing.T) {
	data := &sales.Dataset{
		Sellers:  []entity.Seller{{ID: "s1", FirstName: "Ana", LastName: "Pérez"}},
		Products: []entity.Product{{SKU: "SKU_001", Name: "Café", PurchasePrice: 10}},
		PurchaseRecords: []entity.PurchaseRecord{
			record("s1", item("SKU_001", 20, 0, 5)),
		},
	}

	rows, err := sales.Analyze(data, sales.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, "s1", r.SellerID)
	assert.Equal(t, "Ana Pérez", r.Name)
	assert.Equal(t, "100.00", r.Revenue.StringFixed(2))
	assert.Equal(t, "50.00", r.Profit.StringFixed(2))
	assert.Equal(t, 1, r.SalesCount)
	assert.Equal(t, "7.50", r.Bonus.StringFixed(2), "posición 0 cobra 15% de la ganancia")

	require.Len(t, r.TopProducts, 1)
	assert.Equal(t, "SKU_001", r.TopProducts[0].SKU)
	assert.Equal(t, "Café", r.TopProducts[0].Name)
	assert.Equal(t, 5, r.TopProducts[0].Quantity)
	assert.Equal(t, "100.00", r.TopProducts[0].Revenue.StringFixed(2))
	assert.Equal(t, "50.00", r.TopProducts[0].Profit.StringFixed(2))
}

// Tres vendedores con ganancias 100, 50 y 10. La posición 2 también es el último
// lugar, pero la rama "posiciones 1 y 2" se evalúa primero y cobra 10%.
func TestAnalyze_TresVendedores_OrdenDeRamasDelBono(t *testing.T) {
	data := &sales.Dataset{
		Sellers: []entity.Seller{
			{ID: "bajo", FirstName: "C", LastName: "C"},
			{ID: "alto", FirstName: "A", LastName: "A"},
			{ID: "medio", FirstName: "B", LastName: "B"},
		},
		Products: []entity.Product{{SKU: "P", Name: "P", PurchasePrice: 0}},
		PurchaseRecords: []entity.PurchaseRecord{
			record("alto", item("P", 100, 0, 1)),
			record("medio", item("P", 50, 0, 1)),
			record("bajo", item("P", 10, 0, 1)),
		},
	}

	rows, err := sales.Analyze(data, sales.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"alto", "medio", "bajo"}, sellerIDs(rows))
	assert.Equal(t, "15.00", rows[0].Bonus.StringFixed(2))
	assert.Equal(t, "5.00", rows[1].Bonus.StringFixed(2))
	assert.Equal(t, "1.00", rows[2].Bonus.StringFixed(2))
}

// ── Validación ────────────────────────────────────────────────────────────────

func TestAnalyze_VendedoresVacios_FallaAntesQueProductos(t *testing.T) {
	data := &sales.Dataset{} // productos y compras también vacíos
	_, err := sales.Analyze(data, sales.DefaultOptions())
	assert.ErrorIs(t, err, domain.ErrInvalidSellers)
}

func TestAnalyze_SinEstrategiaDeBono(t *testing.T) {
	opts := &sales.Options{CalculateRevenue: sales.CalculateSimpleRevenue}
	_, err := sales.Analyze(validDataset(), opts)
	assert.ErrorIs(t, err, domain.ErrInvalidBonusStrategy)
}

func TestValidate_OrdenDePrecondiciones(t *testing.T) {
	full := validDataset()

	cases := []struct {
		name string
		data *sales.Dataset
		opts *sales.Options
		want error
	}{
		{"sin datos", nil, sales.DefaultOptions(), domain.ErrMissingData},
		{"sin datos ni opciones", nil, nil, domain.ErrMissingData},
		{"sin vendedores", &sales.Dataset{Products: full.Products, PurchaseRecords: full.PurchaseRecords}, nil, domain.ErrInvalidSellers},
		{"sin productos", &sales.Dataset{Sellers: full.Sellers, PurchaseRecords: full.PurchaseRecords}, nil, domain.ErrInvalidProducts},
		{"sin compras", &sales.Dataset{Sellers: full.Sellers, Products: full.Products}, nil, domain.ErrInvalidPurchaseRecords},
		{"sin opciones", full, nil, domain.ErrInvalidOptions},
		{"sin venta", full, &sales.Options{CalculateBonus: sales.CalculateBonusByProfit}, domain.ErrInvalidRevenueStrategy},
		{"sin ninguna estrategia", full, &sales.Options{}, domain.ErrInvalidRevenueStrategy},
		{"sin bono", full, &sales.Options{CalculateRevenue: sales.CalculateSimpleRevenue}, domain.ErrInvalidBonusStrategy},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, sales.Validate(tc.data, tc.opts), tc.want)
		})
	}

	assert.NoError(t, sales.Validate(full, sales.DefaultOptions()))
}

// Una validación fallida no invoca ninguna estrategia.
func TestAnalyze_ValidacionFallida_NoCalcula(t *testing.T) {
	calls := 0
	opts := &sales.Options{
		CalculateRevenue: func(entity.LineItem, entity.Product) float64 { calls++; return 0 },
	}
	rows, err := sales.Analyze(validDataset(), opts)
	require.Error(t, err)
	assert.Nil(t, rows)
	assert.Zero(t, calls, "no debe haber cálculo parcial")
}

// ── Tolerancia con referencias desconocidas ───────────────────────────────────

func TestAnalyze_VendedorDesconocido_SeOmiteElRegistro(t *testing.T) {
	data := validDataset()
	data.PurchaseRecords = append(data.PurchaseRecords,
		record("fantasma", item("A", 1000, 0, 100)),
	)

	rows, err := sales.Analyze(data, sales.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2"}, sellerIDs(rows), "el vendedor desconocido no aparece")

	base, err := sales.Analyze(validDataset(), sales.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, base, rows, "el registro desconocido no altera ningún acumulado")
}

func TestAnalyze_SKUDesconocido_SeOmiteSoloLaLinea(t *testing.T) {
	data := &sales.Dataset{
		Sellers:  []entity.Seller{{ID: "s1", FirstName: "Ana", LastName: "Ruiz"}},
		Products: []entity.Product{{SKU: "A", Name: "A", PurchasePrice: 1}},
		PurchaseRecords: []entity.PurchaseRecord{
			record("s1", item("NO_EXISTE", 500, 0, 3), item("A", 2, 0, 4)),
			record("s1", item("NO_EXISTE", 10, 0, 1)),
		},
	}

	rows, err := sales.Analyze(data, sales.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].SalesCount, "el registro cuenta aunque todas sus líneas se omitan")
	assert.Equal(t, "8.00", rows[0].Revenue.StringFixed(2))
	assert.Equal(t, "4.00", rows[0].Profit.StringFixed(2))
	require.Len(t, rows[0].TopProducts, 1)
	assert.Equal(t, "A", rows[0].TopProducts[0].SKU)
}

// ── Propiedades generales ─────────────────────────────────────────────────────

func TestAnalyze_Propiedades(t *testing.T) {
	data := bigDataset()
	rows, err := sales.Analyze(data, sales.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, rows, len(data.Sellers))

	known := map[string]bool{}
	for _, s := range data.Sellers {
		known[s.ID] = true
	}
	expectedCount := map[string]int{}
	for _, r := range data.PurchaseRecords {
		if known[r.SellerID] {
			expectedCount[r.SellerID]++
		}
	}

	for i, r := range rows {
		assert.Equal(t, expectedCount[r.SellerID], r.SalesCount, "sales_count de %s", r.SellerID)
		if i > 0 {
			assert.True(t, rows[i-1].Profit.GreaterThanOrEqual(r.Profit), "ganancia no creciente en %d", i)
		}

		assert.LessOrEqual(t, len(r.TopProducts), sales.TopProductsLimit)
		for j := 1; j < len(r.TopProducts); j++ {
			assert.GreaterOrEqual(t, r.TopProducts[j-1].Quantity, r.TopProducts[j].Quantity)
		}

		for _, v := range []string{r.Revenue.String(), r.Profit.String(), r.Bonus.String()} {
			assert.Regexp(t, `^-?\d+(\.\d{1,2})?$`, v, "máximo 2 decimales")
		}
		for _, p := range r.TopProducts {
			assert.Regexp(t, `^-?\d+(\.\d{1,2})?$`, p.Revenue.String())
			assert.Regexp(t, `^-?\d+(\.\d{1,2})?$`, p.Profit.String())
		}
	}
}

func TestAnalyze_Idempotente(t *testing.T) {
	data := bigDataset()
	first, err1 := sales.Analyze(data, sales.DefaultOptions())
	second, err2 := sales.Analyze(data, sales.DefaultOptions())
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second, "misma entrada, mismo resultado")
}

// Vendedores sin compras aparecen con acumulados en cero.
func TestAnalyze_VendedorSinVentas(t *testing.T) {
	data := validDataset()
	data.Sellers = append(data.Sellers, entity.Seller{ID: "s3", FirstName: "Sin", LastName: "Ventas"})

	rows, err := sales.Analyze(data, sales.DefaultOptions())
	require.NoError(t, err)
	last := rows[len(rows)-1]
	assert.Equal(t, "s3", last.SellerID)
	assert.True(t, last.Revenue.IsZero())
	assert.Zero(t, last.SalesCount)
	assert.Empty(t, last.TopProducts)
}

// Las estrategias reciben la línea cruda, el producto y el acumulado del vendedor.
func TestAnalyze_EstrategiasPersonalizadas(t *testing.T) {
	var bonusCalls []string
	opts := &sales.Options{
		CalculateRevenue: func(it entity.LineItem, p entity.Product) float64 {
			return float64(it.Quantity) * p.PurchasePrice * 2
		},
		CalculateBonus: func(index, total int, s *sales.SellerStat) float64 {
			bonusCalls = append(bonusCalls, fmt.Sprintf("%d/%d:%s", index, total, s.ID))
			return s.Revenue / 10
		},
	}

	rows, err := sales.Analyze(validDataset(), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"0/2:s1", "1/2:s2"}, bonusCalls, "una llamada por vendedor, en orden de ranking")

	// s1: A (costo 10) ×2 y B (costo 5) ×1 → 2*10*2 + 1*5*2 = 50
	assert.Equal(t, "50.00", rows[0].Revenue.StringFixed(2))
	assert.Equal(t, "5.00", rows[0].Bonus.StringFixed(2))
	// la ganancia no depende de la estrategia de venta
	assert.Equal(t, "30.00", rows[0].Profit.StringFixed(2))
}

// helpers de escenarios compartidos con los demás tests del paquete

func item(sku string, price, discount float64, qty int) entity.LineItem {
	return entity.LineItem{SKU: sku, SalePrice: price, Discount: discount, Quantity: qty}
}

func record(sellerID string, items ...entity.LineItem) entity.PurchaseRecord {
	return entity.PurchaseRecord{SellerID: sellerID, Items: items}
}

func sellerIDs(rows []sales.SellerResult) []string {
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.SellerID)
	}
	return ids
}

// validDataset: s1 gana 30, s2 gana 5.
func validDataset() *sales.Dataset {
	return &sales.Dataset{
		Sellers: []entity.Seller{
			{ID: "s1", FirstName: "Ana", LastName: "Ruiz"},
			{ID: "s2", FirstName: "Luis", LastName: "Gómez"},
		},
		Products: []entity.Product{
			{SKU: "A", Name: "Producto A", PurchasePrice: 10},
			{SKU: "B", Name: "Producto B", PurchasePrice: 5},
		},
		PurchaseRecords: []entity.PurchaseRecord{
			record("s1", item("A", 20, 0, 2), item("B", 15, 0, 1)),
			record("s2", item("B", 10, 0, 1)),
		},
	}
}

// bigDataset genera datos deterministas con varios vendedores, 15 SKUs,
// descuentos y referencias desconocidas.
func bigDataset() *sales.Dataset {
	data := &sales.Dataset{}
	for i := 0; i < 6; i++ {
		data.Sellers = append(data.Sellers, entity.Seller{
			ID: fmt.Sprintf("seller_%d", i), FirstName: "V", LastName: fmt.Sprint(i),
		})
	}
	for i := 0; i < 15; i++ {
		data.Products = append(data.Products, entity.Product{
			SKU: fmt.Sprintf("SKU_%03d", i), Name: fmt.Sprintf("Producto %d", i),
			PurchasePrice: 3.33 + float64(i),
		})
	}
	for r := 0; r < 120; r++ {
		sellerID := fmt.Sprintf("seller_%d", (r*7)%8) // seller_6 y seller_7 no existen
		var items []entity.LineItem
		for k := 0; k < 1+r%4; k++ {
			sku := fmt.Sprintf("SKU_%03d", (r*3+k*5)%17) // SKU_015 y SKU_016 no existen
			items = append(items, item(sku, 7.77+float64((r+k)%20), float64((r*k)%30), 1+(r+k)%6))
		}
		data.PurchaseRecords = append(data.PurchaseRecords, record(sellerID, items...))
	}
	return data
}
