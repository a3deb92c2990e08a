package repository

import (
	"context"

	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/entity"
)

// ArticuloRepository define el puerto de persistencia para Articulo (DIP).
type ArticuloRepository interface {
	Create(a *entity.Articulo) error
	GetByID(id string) (*entity.Articulo, error)
	GetByCodigo(codigo string) (*entity.Articulo, error)
	List(limit, offset int) ([]*entity.Articulo, error)
	ListActivos(ctx context.Context) ([]*entity.Articulo, error)
	Update(a *entity.Articulo) error
	Delete(id string) error
}
