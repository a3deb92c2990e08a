package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/entity"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación del puerto VentaRepository sobre PostgreSQL.
// Las líneas se borran en cascada al eliminar la venta (FK ON DELETE CASCADE).
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Create persiste la cabecera de una venta.
func (r *VentaRepo) Create(v *entity.Venta) error {
	query := `
		INSERT INTO ventas (id, fecha, total, estado, medio_pago, vendedor, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Fecha, v.Total, v.Estado, v.MedioPago, v.Vendedor, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de venta.
func (r *VentaRepo) CreateItem(it *entity.VentaItem) error {
	query := `
		INSERT INTO venta_items (id, venta_id, articulo_id, articulo_nombre, cantidad, precio_unitario, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		it.ID, it.VentaID, it.ArticuloID, it.ArticuloNombre, it.Cantidad, it.PrecioUnitario, it.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert venta_item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una venta (las líneas se cargan aparte).
func (r *VentaRepo) GetByID(id string) (*entity.Venta, error) {
	query := `SELECT id, fecha, total, estado, medio_pago, vendedor, created_at, updated_at FROM ventas WHERE id = $1`
	var v entity.Venta
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.Fecha, &v.Total, &v.Estado, &v.MedioPago, &v.Vendedor, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &v, nil
}

// GetItemsByVentaID obtiene las líneas de una venta.
func (r *VentaRepo) GetItemsByVentaID(ventaID string) ([]entity.VentaItem, error) {
	query := `
		SELECT id, venta_id, articulo_id, articulo_nombre, cantidad, precio_unitario, subtotal
		FROM venta_items WHERE venta_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, ventaID)
	if err != nil {
		return nil, fmt.Errorf("list venta_items: %w", err)
	}
	defer rows.Close()
	var items []entity.VentaItem
	for rows.Next() {
		var it entity.VentaItem
		if err := rows.Scan(&it.ID, &it.VentaID, &it.ArticuloID, &it.ArticuloNombre,
			&it.Cantidad, &it.PrecioUnitario, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan venta_item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// List lista ventas con paginación, las más recientes primero.
func (r *VentaRepo) List(limit, offset int) ([]*entity.Venta, error) {
	query := `SELECT id, fecha, total, estado, medio_pago, vendedor, created_at, updated_at FROM ventas ORDER BY fecha DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Venta
	for rows.Next() {
		var v entity.Venta
		if err := rows.Scan(&v.ID, &v.Fecha, &v.Total, &v.Estado, &v.MedioPago, &v.Vendedor, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Update actualiza estado, medio de pago y vendedor de una venta.
func (r *VentaRepo) Update(v *entity.Venta) error {
	query := `UPDATE ventas SET estado = $2, medio_pago = $3, vendedor = $4, updated_at = $5 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, v.ID, v.Estado, v.MedioPago, v.Vendedor, v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update venta: %w", err)
	}
	return nil
}

// Delete elimina una venta; las líneas caen por cascada.
func (r *VentaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ventas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venta: %w", err)
	}
	return nil
}
