package reorder

import (
	domain "github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/entity"
)

// Categoria de reposición de un artículo según su stock.
type Categoria string

const (
	CategoriaNormal   Categoria = "NORMAL"
	CategoriaAReponer Categoria = "A_REPONER"
	CategoriaFaltante Categoria = "FALTANTE"
	CategoriaInactivo Categoria = "INACTIVO"
)

// Classify clasifica un artículo en exactamente una categoría (función total, sin errores):
//   - INACTIVO: dado de baja, cualquiera sea su stock
//   - FALTANTE: activo con stock cero
//   - A_REPONER: activo con stock entre 1 y el stock de seguridad
//   - NORMAL: activo con stock por encima del stock de seguridad
func Classify(a *entity.Articulo) Categoria {
	if !a.Activo() {
		return CategoriaInactivo
	}
	switch {
	case a.StockActual == 0:
		return CategoriaFaltante
	case a.StockActual <= a.StockSeguridad:
		return CategoriaAReponer
	default:
		return CategoriaNormal
	}
}

// Partition separa los artículos en faltantes y a reponer. Los conjuntos son
// disjuntos por construcción: cada artículo cae en una sola categoría.
// Los inactivos quedan fuera de ambos, sin importar el stock.
func Partition(articulos []*entity.Articulo) (faltantes, aReponer []*entity.Articulo) {
	for _, a := range articulos {
		switch Classify(a) {
		case CategoriaFaltante:
			faltantes = append(faltantes, a)
		case CategoriaAReponer:
			aReponer = append(aReponer, a)
		}
	}
	return faltantes, aReponer
}

// CanDelete verifica si un artículo puede eliminarse: debe estar sin stock y
// sin órdenes de compra abiertas (PENDIENTE o ENVIADA). El chequeo de stock
// tiene prioridad cuando ambas condiciones fallan.
func CanDelete(a *entity.Articulo, ordenesAbiertas int) error {
	if a.StockActual > 0 {
		return domain.ErrHasInventory
	}
	if ordenesAbiertas > 0 {
		return domain.ErrHasPendingOrders
	}
	return nil
}
