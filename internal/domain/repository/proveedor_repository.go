package repository

import "github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/entity"

// ProveedorRepository define el puerto de persistencia para Proveedor.
// La baja es lógica: las órdenes históricas conservan la referencia.
type ProveedorRepository interface {
	Create(p *entity.Proveedor) error
	GetByID(id string) (*entity.Proveedor, error)
	List(limit, offset int) ([]*entity.Proveedor, error)
	Update(p *entity.Proveedor) error
	Deactivate(id string) error
}
