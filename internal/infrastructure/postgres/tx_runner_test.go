package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sales-analytics/internal/infrastructure/postgres"
)

// ── Dobles de prueba ──────────────────────────────────────────────────────────

// fakeTx solo implementa lo que usa TxRunner; el resto de pgx.Tx queda nil.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
	queryErr   error
}

func (f *fakeTx) Commit(context.Context) error   { f.committed = true; return f.commitErr }
func (f *fakeTx) Rollback(context.Context) error { f.rolledBack = true; return nil }
func (f *fakeTx) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, f.queryErr
}

type fakeBeginner struct {
	tx   *fakeTx
	opts pgx.TxOptions
	err  error
}

func (b *fakeBeginner) BeginTx(_ context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	b.opts = opts
	if b.err != nil {
		return nil, b.err
	}
	return b.tx, nil
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestTxRunner_ReadOnly_Commit(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{}}
	var got postgres.Querier

	err := postgres.NewTxRunner(b).ReadOnly(context.Background(), func(q postgres.Querier) error {
		got = q
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, pgx.RepeatableRead, b.opts.IsoLevel)
	assert.Equal(t, pgx.ReadOnly, b.opts.AccessMode)
	assert.Same(t, b.tx, got, "fn recibe la transacción")
	assert.True(t, b.tx.committed)
}

func TestTxRunner_ReadOnly_ErrorDeFn(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{}}
	boom := errors.New("consulta fallida")

	err := postgres.NewTxRunner(b).ReadOnly(context.Background(), func(postgres.Querier) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, b.tx.committed)
	assert.True(t, b.tx.rolledBack)
}

func TestTxRunner_ReadOnly_ErrorAlIniciar(t *testing.T) {
	boom := errors.New("sin conexión")
	called := false

	err := postgres.NewTxRunner(&fakeBeginner{err: boom}).ReadOnly(context.Background(), func(postgres.Querier) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, called)
}

func TestTxRunner_ReadOnly_ErrorDeCommit(t *testing.T) {
	boom := errors.New("commit fallido")
	b := &fakeBeginner{tx: &fakeTx{commitErr: boom}}

	err := postgres.NewTxRunner(b).ReadOnly(context.Background(), func(postgres.Querier) error { return nil })
	assert.ErrorIs(t, err, boom)
}

func TestSnapshotDatasetRepo_ErrorDeConsulta(t *testing.T) {
	boom := errors.New("relation \"sellers\" does not exist")
	b := &fakeBeginner{tx: &fakeTx{queryErr: boom}}

	data, err := postgres.NewSnapshotDatasetRepository(postgres.NewTxRunner(b)).LoadDataset(context.Background())
	assert.Nil(t, data)
	assert.ErrorIs(t, err, boom)
	assert.False(t, b.tx.committed)
	assert.True(t, b.tx.rolledBack)
}
