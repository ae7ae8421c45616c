package entity

// LineItem es una línea de un registro de compra.
// Discount es un porcentaje en [0, 100]; no se valida (responsabilidad del llamador).
type LineItem struct {
	SKU       string
	SalePrice float64
	Discount  float64
	Quantity  int
}

// DiscountedUnitPrice devuelve el precio unitario tras aplicar el descuento.
func (i LineItem) DiscountedUnitPrice() float64 {
	return i.SalePrice * (1 - i.Discount/100)
}

// PurchaseRecord representa un recibo de venta emitido por un vendedor.
type PurchaseRecord struct {
	ReceiptID     string
	Date          string
	SellerID      string
	CustomerID    string
	Items         []LineItem
	TotalAmount   float64
	TotalDiscount float64
}
