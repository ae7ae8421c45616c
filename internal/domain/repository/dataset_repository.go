package repository

import (
	"context"

	"github.com/jhoicas/sales-analytics/internal/domain/sales"
)

// DatasetRepository fuente de vendedores, catálogo y registros de compra.
// Las implementaciones son de solo lectura y entregan las colecciones en el
// orden en que fueron registradas.
type DatasetRepository interface {
	LoadDataset(ctx context.Context) (*sales.Dataset, error)
}
