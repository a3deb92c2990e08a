package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domain "github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/entity"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/repository"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/pkg/textutil"
)

var _ repository.ArticuloRepository = (*ArticuloRepo)(nil)

// ArticuloRepo implementación del puerto ArticuloRepository sobre PostgreSQL.
// codigo_fold y nombre_fold guardan las columnas plegadas (sin tildes, en
// minúsculas) para la búsqueda accent-insensitive.
type ArticuloRepo struct {
	q Querier
}

// NewArticuloRepository construye el adaptador. Pasar pool o tx (Querier).
func NewArticuloRepository(q Querier) *ArticuloRepo {
	return &ArticuloRepo{q: q}
}

// Create persiste un artículo nuevo. El código debe ser único.
func (r *ArticuloRepo) Create(a *entity.Articulo) error {
	query := `
		INSERT INTO articulos (id, codigo, nombre, descripcion, stock_actual, stock_seguridad, fecha_baja, proveedor_pred_id, codigo_fold, nombre_fold, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Codigo, a.Nombre, a.Descripcion, a.StockActual, a.StockSeguridad,
		a.FechaBaja, a.ProveedorPredID, textutil.Fold(a.Codigo), textutil.Fold(a.Nombre),
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert articulo: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *ArticuloRepo) GetByID(id string) (*entity.Articulo, error) {
	query := `
		SELECT id, codigo, nombre, descripcion, stock_actual, stock_seguridad, fecha_baja, proveedor_pred_id, created_at, updated_at
		FROM articulos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get articulo")
}

// GetByCodigo obtiene un artículo por su código único.
func (r *ArticuloRepo) GetByCodigo(codigo string) (*entity.Articulo, error) {
	query := `
		SELECT id, codigo, nombre, descripcion, stock_actual, stock_seguridad, fecha_baja, proveedor_pred_id, created_at, updated_at
		FROM articulos WHERE codigo = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, codigo), "get articulo by codigo")
}

// List lista artículos con paginación.
func (r *ArticuloRepo) List(limit, offset int) ([]*entity.Articulo, error) {
	query := `
		SELECT id, codigo, nombre, descripcion, stock_actual, stock_seguridad, fecha_baja, proveedor_pred_id, created_at, updated_at
		FROM articulos ORDER BY codigo LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list articulos: %w", err)
	}
	return r.scanAll(rows)
}

// ListActivos lista todos los artículos sin fecha de baja.
func (r *ArticuloRepo) ListActivos(ctx context.Context) ([]*entity.Articulo, error) {
	query := `
		SELECT id, codigo, nombre, descripcion, stock_actual, stock_seguridad, fecha_baja, proveedor_pred_id, created_at, updated_at
		FROM articulos WHERE fecha_baja IS NULL ORDER BY codigo`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list articulos activos: %w", err)
	}
	return r.scanAll(rows)
}

// Update actualiza un artículo (incluida la fecha de baja) y sus columnas plegadas.
func (r *ArticuloRepo) Update(a *entity.Articulo) error {
	query := `
		UPDATE articulos SET nombre = $2, descripcion = $3, stock_actual = $4, stock_seguridad = $5,
			fecha_baja = $6, proveedor_pred_id = $7, nombre_fold = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Nombre, a.Descripcion, a.StockActual, a.StockSeguridad,
		a.FechaBaja, a.ProveedorPredID, textutil.Fold(a.Nombre), a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update articulo: %w", err)
	}
	return nil
}

// Delete elimina un artículo por ID. Las órdenes y ventas conservan el nombre
// desnormalizado, por eso no hay FK que lo impida.
func (r *ArticuloRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM articulos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete articulo: %w", err)
	}
	return nil
}

func (r *ArticuloRepo) scanOne(row pgx.Row, op string) (*entity.Articulo, error) {
	var a entity.Articulo
	err := row.Scan(&a.ID, &a.Codigo, &a.Nombre, &a.Descripcion, &a.StockActual,
		&a.StockSeguridad, &a.FechaBaja, &a.ProveedorPredID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &a, nil
}

func (r *ArticuloRepo) scanAll(rows pgx.Rows) ([]*entity.Articulo, error) {
	defer rows.Close()
	var list []*entity.Articulo
	for rows.Next() {
		var a entity.Articulo
		if err := rows.Scan(&a.ID, &a.Codigo, &a.Nombre, &a.Descripcion, &a.StockActual,
			&a.StockSeguridad, &a.FechaBaja, &a.ProveedorPredID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan articulo: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
