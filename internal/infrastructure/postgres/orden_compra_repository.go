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

var _ repository.OrdenCompraRepository = (*OrdenCompraRepo)(nil)

// OrdenCompraRepo implementación del puerto OrdenCompraRepository sobre PostgreSQL.
type OrdenCompraRepo struct {
	q Querier
}

// NewOrdenCompraRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrdenCompraRepository(q Querier) *OrdenCompraRepo {
	return &OrdenCompraRepo{q: q}
}

const ordenColumnas = `id, numero, fecha_creacion, proveedor_id, proveedor_nombre, articulo_id, articulo_nombre,
	cantidad, precio_unitario, cargos_pedido, total, estado, demora_entrega_dias, punto_pedido, created_at, updated_at`

// Create persiste una orden nueva. El número ya viene generado por la secuencia.
func (r *OrdenCompraRepo) Create(o *entity.OrdenCompra) error {
	query := `
		INSERT INTO ordenes_compra (` + ordenColumnas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.Numero, o.FechaCreacion, o.ProveedorID, o.ProveedorNombre,
		o.ArticuloID, o.ArticuloNombre, o.Cantidad, o.PrecioUnitario, o.CargosPedido,
		o.Total, o.Estado, o.DemoraEntregaDias, o.PuntoPedido, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert orden_compra: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *OrdenCompraRepo) GetByID(id string) (*entity.OrdenCompra, error) {
	query := `SELECT ` + ordenColumnas + ` FROM ordenes_compra WHERE id = $1`
	var o entity.OrdenCompra
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Numero, &o.FechaCreacion, &o.ProveedorID, &o.ProveedorNombre,
		&o.ArticuloID, &o.ArticuloNombre, &o.Cantidad, &o.PrecioUnitario, &o.CargosPedido,
		&o.Total, &o.Estado, &o.DemoraEntregaDias, &o.PuntoPedido, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orden_compra: %w", err)
	}
	return &o, nil
}

// List lista órdenes con paginación, las más recientes primero.
func (r *OrdenCompraRepo) List(limit, offset int) ([]*entity.OrdenCompra, error) {
	query := `SELECT ` + ordenColumnas + ` FROM ordenes_compra ORDER BY fecha_creacion DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ordenes_compra: %w", err)
	}
	return r.scanAll(rows)
}

// ListByEstado lista órdenes de un estado con paginación.
func (r *OrdenCompraRepo) ListByEstado(estado string, limit, offset int) ([]*entity.OrdenCompra, error) {
	query := `SELECT ` + ordenColumnas + ` FROM ordenes_compra WHERE estado = $1 ORDER BY fecha_creacion DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, estado, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ordenes_compra by estado: %w", err)
	}
	return r.scanAll(rows)
}

// Update actualiza los campos mutables de una orden.
func (r *OrdenCompraRepo) Update(o *entity.OrdenCompra) error {
	query := `
		UPDATE ordenes_compra SET cantidad = $2, precio_unitario = $3, cargos_pedido = $4,
			total = $5, estado = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.Cantidad, o.PrecioUnitario, o.CargosPedido, o.Total, o.Estado, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update orden_compra: %w", err)
	}
	return nil
}

// Delete elimina una orden por ID.
func (r *OrdenCompraRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ordenes_compra WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete orden_compra: %w", err)
	}
	return nil
}

// CountAbiertasPorArticulo cuenta las órdenes PENDIENTE o ENVIADA del artículo.
func (r *OrdenCompraRepo) CountAbiertasPorArticulo(articuloID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM ordenes_compra WHERE articulo_id = $1 AND estado IN ($2, $3)`,
		articuloID, entity.OrdenPendiente, entity.OrdenEnviada).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count ordenes abiertas: %w", err)
	}
	return n, nil
}

// NextNumero devuelve la siguiente secuencia del año. El upsert con RETURNING
// toma lock de fila, así que dos altas concurrentes nunca reciben el mismo número.
func (r *OrdenCompraRepo) NextNumero(ctx context.Context, anio int) (int, error) {
	var seq int
	err := r.q.QueryRow(ctx, `
		INSERT INTO ordenes_compra_secuencias (anio, ultimo)
		VALUES ($1, 1)
		ON CONFLICT (anio) DO UPDATE SET ultimo = ordenes_compra_secuencias.ultimo + 1
		RETURNING ultimo`, anio).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next numero orden: %w", err)
	}
	return seq, nil
}

// Estadisticas agrega cantidad y monto total de órdenes por estado.
func (r *OrdenCompraRepo) Estadisticas(ctx context.Context) ([]repository.EstadisticaEstado, error) {
	rows, err := r.q.Query(ctx, `
		SELECT estado, COUNT(*), COALESCE(SUM(total), 0)
		FROM ordenes_compra GROUP BY estado ORDER BY estado`)
	if err != nil {
		return nil, fmt.Errorf("estadisticas ordenes: %w", err)
	}
	defer rows.Close()
	var list []repository.EstadisticaEstado
	for rows.Next() {
		var s repository.EstadisticaEstado
		if err := rows.Scan(&s.Estado, &s.Cantidad, &s.MontoTotal); err != nil {
			return nil, fmt.Errorf("scan estadistica: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *OrdenCompraRepo) scanAll(rows pgx.Rows) ([]*entity.OrdenCompra, error) {
	defer rows.Close()
	var list []*entity.OrdenCompra
	for rows.Next() {
		var o entity.OrdenCompra
		if err := rows.Scan(&o.ID, &o.Numero, &o.FechaCreacion, &o.ProveedorID, &o.ProveedorNombre,
			&o.ArticuloID, &o.ArticuloNombre, &o.Cantidad, &o.PrecioUnitario, &o.CargosPedido,
			&o.Total, &o.Estado, &o.DemoraEntregaDias, &o.PuntoPedido, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan orden_compra: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
