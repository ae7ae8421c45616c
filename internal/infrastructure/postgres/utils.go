package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier lo satisfacen *pgxpool.Pool y pgx.Tx; los repositorios aceptan cualquiera de los dos.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}
