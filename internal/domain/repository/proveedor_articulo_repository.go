package repository

import "github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/entity"

// ProveedorArticuloRepository define el puerto de persistencia para las
// condiciones proveedor-artículo.
type ProveedorArticuloRepository interface {
	Create(pa *entity.ProveedorArticulo) error
	GetByID(id string) (*entity.ProveedorArticulo, error)
	GetByProveedorYArticulo(proveedorID, articuloID string) (*entity.ProveedorArticulo, error)
	ListByProveedor(proveedorID string) ([]*entity.ProveedorArticulo, error)
	CountByProveedor(proveedorID string) (int, error)
	Update(pa *entity.ProveedorArticulo) error
	// ClearPredeterminadoPorArticulo quita la marca de predeterminado de todas
	// las condiciones del artículo (para garantizar un único predeterminado).
	ClearPredeterminadoPorArticulo(articuloID string) error
	Delete(id string) error
}
