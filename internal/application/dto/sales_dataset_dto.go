package dto

import (
	"github.com/jhoicas/sales-analytics/internal/domain/entity"
	"github.com/jhoicas/sales-analytics/internal/domain/sales"
)

// ── Colecciones de entrada (forma del dataset original) ───────────────────────

// SellerDTO vendedor.
type SellerDTO struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	StartDate string `json:"start_date,omitempty"`
	Position  string `json:"position,omitempty"`
}

// ProductDTO ficha de catálogo.
type ProductDTO struct {
	SKU           string  `json:"sku"`
	Name          string  `json:"name"`
	Category      string  `json:"category,omitempty"`
	PurchasePrice float64 `json:"purchase_price"`
	SalePrice     float64 `json:"sale_price,omitempty"`
}

// LineItemDTO línea de un registro de compra. discount en porcentaje (0-100).
type LineItemDTO struct {
	SKU       string  `json:"sku"`
	SalePrice float64 `json:"sale_price"`
	Discount  float64 `json:"discount"`
	Quantity  int     `json:"quantity"`
}

// PurchaseRecordDTO recibo de venta.
type PurchaseRecordDTO struct {
	ReceiptID     string        `json:"receipt_id,omitempty"`
	Date          string        `json:"date,omitempty"`
	SellerID      string        `json:"seller_id"`
	CustomerID    string        `json:"customer_id,omitempty"`
	Items         []LineItemDTO `json:"items"`
	TotalAmount   float64       `json:"total_amount,omitempty"`
	TotalDiscount float64       `json:"total_discount,omitempty"`
}

// SalesDatasetDTO documento completo. Claves desconocidas (p. ej. customers) se ignoran.
type SalesDatasetDTO struct {
	Sellers         []SellerDTO         `json:"sellers"`
	Products        []ProductDTO        `json:"products"`
	PurchaseRecords []PurchaseRecordDTO `json:"purchase_records"`
}

// Dataset convierte el documento en colecciones del dominio.
// Colecciones ausentes quedan vacías para que la validación las rechace;
// un documento nil devuelve un dataset nil.
func (d *SalesDatasetDTO) Dataset() *sales.Dataset {
	if d == nil {
		return nil
	}
	data := &sales.Dataset{
		Sellers:         make([]entity.Seller, 0, len(d.Sellers)),
		Products:        make([]entity.Product, 0, len(d.Products)),
		PurchaseRecords: make([]entity.PurchaseRecord, 0, len(d.PurchaseRecords)),
	}
	for _, s := range d.Sellers {
		data.Sellers = append(data.Sellers, entity.Seller{
			ID:        s.ID,
			FirstName: s.FirstName,
			LastName:  s.LastName,
			StartDate: s.StartDate,
			Position:  s.Position,
		})
	}
	for _, p := range d.Products {
		data.Products = append(data.Products, entity.Product{
			SKU:           p.SKU,
			Name:          p.Name,
			Category:      p.Category,
			PurchasePrice: p.PurchasePrice,
			SalePrice:     p.SalePrice,
		})
	}
	for _, r := range d.PurchaseRecords {
		items := make([]entity.LineItem, 0, len(r.Items))
		for _, it := range r.Items {
			items = append(items, entity.LineItem{
				SKU:       it.SKU,
				SalePrice: it.SalePrice,
				Discount:  it.Discount,
				Quantity:  it.Quantity,
			})
		}
		data.PurchaseRecords = append(data.PurchaseRecords, entity.PurchaseRecord{
			ReceiptID:     r.ReceiptID,
			Date:          r.Date,
			SellerID:      r.SellerID,
			CustomerID:    r.CustomerID,
			Items:         items,
			TotalAmount:   r.TotalAmount,
			TotalDiscount: r.TotalDiscount,
		})
	}
	return data
}
