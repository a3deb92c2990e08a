package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/application/usecase"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/repository"
)

var _ usecase.ProveedorTxRunner = (*TxRunner)(nil)
var _ usecase.OrdenTxRunner = (*TxRunner)(nil)
var _ usecase.VentaTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunProveedor ejecuta fn con repos de proveedor y condiciones atados a una tx
// (alta de proveedor con artículos, marca de predeterminado único).
func (r *TxRunner) RunProveedor(ctx context.Context, fn func(
	provRepo repository.ProveedorRepository,
	paRepo repository.ProveedorArticuloRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProveedorRepository(tx), NewProveedorArticuloRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunOrden ejecuta fn con el repo de órdenes en una tx (secuencia + alta atómicas).
func (r *TxRunner) RunOrden(ctx context.Context, fn func(
	ordenRepo repository.OrdenCompraRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewOrdenCompraRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunVenta ejecuta fn con el repo de ventas en una tx (cabecera + líneas atómicas).
func (r *TxRunner) RunVenta(ctx context.Context, fn func(
	ventaRepo repository.VentaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewVentaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
