package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

//go:embed migrations/001_sales.sql
var salesSchema string

// Execer lo satisfacen *pgxpool.Pool y pgx.Tx.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// EnsureSchema crea las tablas de entrada si no existen. Es idempotente.
func EnsureSchema(ctx context.Context, db Execer) error {
	if _, err := db.Exec(ctx, salesSchema); err != nil {
		return fmt.Errorf("crear esquema de ventas: %w", err)
	}
	return nil
}
