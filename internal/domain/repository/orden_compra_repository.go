package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/entity"
)

// EstadisticaEstado agrega las órdenes por estado (para /orden-compra/estadisticas).
type EstadisticaEstado struct {
	Estado     string
	Cantidad   int
	MontoTotal decimal.Decimal
}

// OrdenCompraRepository define el puerto de persistencia para OrdenCompra.
type OrdenCompraRepository interface {
	Create(o *entity.OrdenCompra) error
	GetByID(id string) (*entity.OrdenCompra, error)
	List(limit, offset int) ([]*entity.OrdenCompra, error)
	ListByEstado(estado string, limit, offset int) ([]*entity.OrdenCompra, error)
	Update(o *entity.OrdenCompra) error
	Delete(id string) error
	// CountAbiertasPorArticulo cuenta las órdenes PENDIENTE o ENVIADA que
	// referencian al artículo (bloquean su baja).
	CountAbiertasPorArticulo(articuloID string) (int, error)
	// NextNumero devuelve la siguiente secuencia del año para numerar órdenes.
	NextNumero(ctx context.Context, anio int) (int, error)
	Estadisticas(ctx context.Context) ([]EstadisticaEstado, error)
}
