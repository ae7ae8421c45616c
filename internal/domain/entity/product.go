package entity

// Product representa una ficha del catálogo. SKU es la clave única.
// PurchasePrice es el costo de compra usado como base del cálculo de ganancia.
type Product struct {
	SKU           string
	Name          string
	Category      string
	PurchasePrice float64
	SalePrice     float64 // precio de lista; el análisis usa el precio de cada línea
}
