package repository

import "github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/entity"

// VentaRepository define el puerto de persistencia para Venta y sus líneas.
type VentaRepository interface {
	Create(v *entity.Venta) error
	CreateItem(it *entity.VentaItem) error
	GetByID(id string) (*entity.Venta, error)
	GetItemsByVentaID(ventaID string) ([]entity.VentaItem, error)
	List(limit, offset int) ([]*entity.Venta, error)
	Update(v *entity.Venta) error
	Delete(id string) error
}
