package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domain "github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/entity"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/repository"
)

var _ repository.ProveedorArticuloRepository = (*ProveedorArticuloRepo)(nil)

// ProveedorArticuloRepo implementación del puerto ProveedorArticuloRepository
// sobre PostgreSQL. El par (proveedor_id, articulo_id) es único.
type ProveedorArticuloRepo struct {
	q Querier
}

// NewProveedorArticuloRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProveedorArticuloRepository(q Querier) *ProveedorArticuloRepo {
	return &ProveedorArticuloRepo{q: q}
}

// Create persiste las condiciones de un artículo con un proveedor.
func (r *ProveedorArticuloRepo) Create(pa *entity.ProveedorArticulo) error {
	query := `
		INSERT INTO proveedor_articulos (id, proveedor_id, articulo_id, tipo_modelo, demora_entrega_dias, precio_unitario, cargos_pedido, periodo_revision_dias, predeterminado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		pa.ID, pa.ProveedorID, pa.ArticuloID, pa.TipoModelo, pa.DemoraEntregaDias,
		pa.PrecioUnitario, pa.CargosPedido, pa.PeriodoRevisionDias, pa.Predeterminado,
		pa.CreatedAt, pa.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert proveedor_articulo: %w", err)
	}
	return nil
}

// GetByID obtiene una condición por ID.
func (r *ProveedorArticuloRepo) GetByID(id string) (*entity.ProveedorArticulo, error) {
	query := `
		SELECT id, proveedor_id, articulo_id, tipo_modelo, demora_entrega_dias, precio_unitario, cargos_pedido, periodo_revision_dias, predeterminado, created_at, updated_at
		FROM proveedor_articulos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get proveedor_articulo")
}

// GetByProveedorYArticulo obtiene la condición de un par proveedor-artículo.
func (r *ProveedorArticuloRepo) GetByProveedorYArticulo(proveedorID, articuloID string) (*entity.ProveedorArticulo, error) {
	query := `
		SELECT id, proveedor_id, articulo_id, tipo_modelo, demora_entrega_dias, precio_unitario, cargos_pedido, periodo_revision_dias, predeterminado, created_at, updated_at
		FROM proveedor_articulos WHERE proveedor_id = $1 AND articulo_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, proveedorID, articuloID), "get proveedor_articulo by par")
}

// ListByProveedor lista las condiciones de un proveedor.
func (r *ProveedorArticuloRepo) ListByProveedor(proveedorID string) ([]*entity.ProveedorArticulo, error) {
	query := `
		SELECT id, proveedor_id, articulo_id, tipo_modelo, demora_entrega_dias, precio_unitario, cargos_pedido, periodo_revision_dias, predeterminado, created_at, updated_at
		FROM proveedor_articulos WHERE proveedor_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, proveedorID)
	if err != nil {
		return nil, fmt.Errorf("list proveedor_articulos: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProveedorArticulo
	for rows.Next() {
		var pa entity.ProveedorArticulo
		if err := rows.Scan(&pa.ID, &pa.ProveedorID, &pa.ArticuloID, &pa.TipoModelo,
			&pa.DemoraEntregaDias, &pa.PrecioUnitario, &pa.CargosPedido, &pa.PeriodoRevisionDias,
			&pa.Predeterminado, &pa.CreatedAt, &pa.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan proveedor_articulo: %w", err)
		}
		list = append(list, &pa)
	}
	return list, rows.Err()
}

// CountByProveedor cuenta las condiciones de un proveedor (mínimo exigido: 1).
func (r *ProveedorArticuloRepo) CountByProveedor(proveedorID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM proveedor_articulos WHERE proveedor_id = $1`, proveedorID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count proveedor_articulos: %w", err)
	}
	return n, nil
}

// Update actualiza una condición existente.
func (r *ProveedorArticuloRepo) Update(pa *entity.ProveedorArticulo) error {
	query := `
		UPDATE proveedor_articulos SET tipo_modelo = $2, demora_entrega_dias = $3, precio_unitario = $4,
			cargos_pedido = $5, periodo_revision_dias = $6, predeterminado = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		pa.ID, pa.TipoModelo, pa.DemoraEntregaDias, pa.PrecioUnitario,
		pa.CargosPedido, pa.PeriodoRevisionDias, pa.Predeterminado, pa.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update proveedor_articulo: %w", err)
	}
	return nil
}

// ClearPredeterminadoPorArticulo desmarca el predeterminado de todas las
// condiciones del artículo. Se ejecuta dentro de la misma tx que marca el nuevo.
func (r *ProveedorArticuloRepo) ClearPredeterminadoPorArticulo(articuloID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE proveedor_articulos SET predeterminado = FALSE, updated_at = now() WHERE articulo_id = $1 AND predeterminado`, articuloID)
	if err != nil {
		return fmt.Errorf("clear predeterminado: %w", err)
	}
	return nil
}

// Delete elimina una condición por ID.
func (r *ProveedorArticuloRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM proveedor_articulos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete proveedor_articulo: %w", err)
	}
	return nil
}

func (r *ProveedorArticuloRepo) scanOne(row pgx.Row, op string) (*entity.ProveedorArticulo, error) {
	var pa entity.ProveedorArticulo
	err := row.Scan(&pa.ID, &pa.ProveedorID, &pa.ArticuloID, &pa.TipoModelo,
		&pa.DemoraEntregaDias, &pa.PrecioUnitario, &pa.CargosPedido, &pa.PeriodoRevisionDias,
		&pa.Predeterminado, &pa.CreatedAt, &pa.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &pa, nil
}
