package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jortizdev/stockvista-api/internal/application/usecase"
	"github.com/jortizdev/stockvista-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta funciones dentro de una transacción, entregando
// repositorios atados al tx para que venta y descuento de stock
// se confirmen (o reviertan) juntos.
type TxRunner struct {
	pool *pgxpool.Pool
}

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run abre una transacción, construye los repos sobre ella y ejecuta fn.
// Si fn devuelve error la transacción se revierte completa.
func (r *TxRunner) Run(ctx context.Context, fn func(sales repository.SaleRepository, products repository.ProductRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback tras commit es un no-op

	if err := fn(NewSaleRepository(tx), NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
