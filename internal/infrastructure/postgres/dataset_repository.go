package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sales-analytics/internal/domain/entity"
	"github.com/jhoicas/sales-analytics/internal/domain/repository"
	"github.com/jhoicas/sales-analytics/internal/domain/sales"
)

var _ repository.DatasetRepository = (*DatasetRepo)(nil)

// DatasetRepo lee vendedores, catálogo y compras desde PostgreSQL (usable con pool o tx).
// Los NUMERIC llegan como decimal.Decimal (codec registrado en el pool) y se
// convierten a float64, la aritmética del análisis.
type DatasetRepo struct {
	q Querier
}

// NewDatasetRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDatasetRepository(q Querier) *DatasetRepo {
	return &DatasetRepo{q: q}
}

// LoadDataset lee las cuatro tablas en orden de registro.
func (r *DatasetRepo) LoadDataset(ctx context.Context) (*sales.Dataset, error) {
	sellers, err := r.listSellers(ctx)
	if err != nil {
		return nil, err
	}
	products, err := r.listProducts(ctx)
	if err != nil {
		return nil, err
	}
	records, err := r.listPurchaseRecords(ctx)
	if err != nil {
		return nil, err
	}
	return &sales.Dataset{Sellers: sellers, Products: products, PurchaseRecords: records}, nil
}

func (r *DatasetRepo) listSellers(ctx context.Context) ([]entity.Seller, error) {
	const query = `
	SELECT id, first_name, last_name,
	       COALESCE(to_char(start_date, 'YYYY-MM-DD'), '') AS start_date,
	       position
	FROM sellers
	ORDER BY created_at, id`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("dataset.listSellers: %w", err)
	}
	defer rows.Close()

	var sellers []entity.Seller
	for rows.Next() {
		var s entity.Seller
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.StartDate, &s.Position); err != nil {
			return nil, fmt.Errorf("dataset.listSellers scan: %w", err)
		}
		sellers = append(sellers, s)
	}
	return sellers, rows.Err()
}

func (r *DatasetRepo) listProducts(ctx context.Context) ([]entity.Product, error) {
	const query = `
	SELECT sku, name, category, purchase_price, sale_price
	FROM products
	ORDER BY created_at, sku`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("dataset.listProducts: %w", err)
	}
	defer rows.Close()

	var products []entity.Product
	for rows.Next() {
		var (
			p                        entity.Product
			purchasePrice, salePrice decimal.Decimal
		)
		if err := rows.Scan(&p.SKU, &p.Name, &p.Category, &purchasePrice, &salePrice); err != nil {
			return nil, fmt.Errorf("dataset.listProducts scan: %w", err)
		}
		p.PurchasePrice = purchasePrice.InexactFloat64()
		p.SalePrice = salePrice.InexactFloat64()
		products = append(products, p)
	}
	return products, rows.Err()
}

// listPurchaseRecords une cabeceras y líneas en una sola consulta. Los registros
// sin líneas se conservan (cuentan como venta del vendedor).
func (r *DatasetRepo) listPurchaseRecords(ctx context.Context) ([]entity.PurchaseRecord, error) {
	const query = `
	SELECT
	    pr.id,
	    pr.receipt_id,
	    COALESCE(to_char(pr.date, 'YYYY-MM-DD'), '') AS date,
	    pr.seller_id,
	    pr.customer_id,
	    pr.total_amount,
	    pr.total_discount,
	    i.sku,
	    i.sale_price,
	    i.discount,
	    i.quantity
	FROM purchase_records pr
	LEFT JOIN purchase_record_items i ON i.record_id = pr.id
	ORDER BY pr.id, i.position, i.id`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("dataset.listPurchaseRecords: %w", err)
	}
	defer rows.Close()

	var (
		records []entity.PurchaseRecord
		lastID  int64 = -1
	)
	for rows.Next() {
		var (
			id                         int64
			rec                        entity.PurchaseRecord
			totalAmount, totalDiscount decimal.Decimal
			sku                        *string
			salePrice, discount        decimal.NullDecimal
			quantity                   *int
		)
		if err := rows.Scan(
			&id,
			&rec.ReceiptID,
			&rec.Date,
			&rec.SellerID,
			&rec.CustomerID,
			&totalAmount,
			&totalDiscount,
			&sku,
			&salePrice,
			&discount,
			&quantity,
		); err != nil {
			return nil, fmt.Errorf("dataset.listPurchaseRecords scan: %w", err)
		}

		if id != lastID {
			rec.TotalAmount = totalAmount.InexactFloat64()
			rec.TotalDiscount = totalDiscount.InexactFloat64()
			records = append(records, rec)
			lastID = id
		}
		if sku == nil {
			continue // registro sin líneas
		}
		item := entity.LineItem{
			SKU:       *sku,
			SalePrice: salePrice.Decimal.InexactFloat64(),
			Discount:  discount.Decimal.InexactFloat64(),
		}
		if quantity != nil {
			item.Quantity = *quantity
		}
		current := &records[len(records)-1]
		current.Items = append(current.Items, item)
	}
	return records, rows.Err()
}

var _ repository.DatasetRepository = (*SnapshotDatasetRepo)(nil)

// SnapshotDatasetRepo lee las cuatro tablas dentro de una misma transacción de
// solo lectura, así una compra insertada a mitad de la carga no queda a medias.
type SnapshotDatasetRepo struct {
	runner *TxRunner
}

// NewSnapshotDatasetRepository construye el adaptador sobre el runner del pool.
func NewSnapshotDatasetRepository(runner *TxRunner) *SnapshotDatasetRepo {
	return &SnapshotDatasetRepo{runner: runner}
}

// LoadDataset carga el dataset dentro de la transacción.
func (r *SnapshotDatasetRepo) LoadDataset(ctx context.Context) (*sales.Dataset, error) {
	var data *sales.Dataset
	err := r.runner.ReadOnly(ctx, func(q Querier) error {
		var err error
		data, err = NewDatasetRepository(q).LoadDataset(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
