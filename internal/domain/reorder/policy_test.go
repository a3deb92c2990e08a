package reorder_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/entity"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/reorder"
)

func articulo(stock, seguridad int, activo bool) *entity.Articulo {
	a := &entity.Articulo{
		ID:             "art-1",
		Codigo:         "A001",
		Nombre:         "Tornillo 8mm",
		StockActual:    stock,
		StockSeguridad: seguridad,
	}
	if !activo {
		baja := time.Now()
		a.FechaBaja = &baja
	}
	return a
}

// ──────────────────────────────────────────────────────────────────────────────
// Classify: función total, una sola categoría por artículo
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_Categorias(t *testing.T) {
	casos := []struct {
		nombre    string
		stock     int
		seguridad int
		activo    bool
		esperado  reorder.Categoria
	}{
		{"activo sin stock es faltante", 0, 10, true, reorder.CategoriaFaltante},
		{"activo en el límite del stock de seguridad es a reponer", 10, 10, true, reorder.CategoriaAReponer},
		{"activo apenas por debajo del límite es a reponer", 1, 10, true, reorder.CategoriaAReponer},
		{"activo por encima del límite es normal", 11, 10, true, reorder.CategoriaNormal},
		{"inactivo con stock cero no es faltante", 0, 10, false, reorder.CategoriaInactivo},
		{"inactivo bajo el límite no es a reponer", 5, 10, false, reorder.CategoriaInactivo},
		{"seguridad cero: stock positivo es normal", 1, 0, true, reorder.CategoriaNormal},
		{"seguridad cero: stock cero es faltante", 0, 0, true, reorder.CategoriaFaltante},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			got := reorder.Classify(articulo(c.stock, c.seguridad, c.activo))
			assert.Equal(t, c.esperado, got)
		})
	}
}

// La clasificación es idempotente: el mismo artículo sin cambios produce
// siempre la misma categoría.
func TestClassify_Idempotente(t *testing.T) {
	a := articulo(5, 10, true)
	assert.Equal(t, reorder.Classify(a), reorder.Classify(a))
}

// ──────────────────────────────────────────────────────────────────────────────
// Partition: conjuntos disjuntos
// ──────────────────────────────────────────────────────────────────────────────

func TestPartition_ConjuntosDisjuntos(t *testing.T) {
	articulos := []*entity.Articulo{
		articulo(0, 10, true),  // faltante
		articulo(3, 10, true),  // a reponer
		articulo(10, 10, true), // a reponer (límite inclusive)
		articulo(50, 10, true), // normal
		articulo(0, 10, false), // inactivo, excluido
		articulo(2, 10, false), // inactivo, excluido
	}

	faltantes, aReponer := reorder.Partition(articulos)

	assert.Len(t, faltantes, 1, "solo el activo con stock cero es faltante")
	assert.Len(t, aReponer, 2, "a reponer incluye el límite del stock de seguridad")

	// Ningún artículo puede aparecer en ambos conjuntos.
	ids := make(map[*entity.Articulo]bool)
	for _, a := range faltantes {
		ids[a] = true
	}
	for _, a := range aReponer {
		assert.False(t, ids[a], "un artículo no puede ser faltante y a reponer a la vez")
	}
}

func TestPartition_Vacio(t *testing.T) {
	faltantes, aReponer := reorder.Partition(nil)
	assert.Empty(t, faltantes)
	assert.Empty(t, aReponer)
}

// ──────────────────────────────────────────────────────────────────────────────
// CanDelete: baja de artículo
// ──────────────────────────────────────────────────────────────────────────────

func TestCanDelete_ConStockRechaza(t *testing.T) {
	err := reorder.CanDelete(articulo(5, 10, true), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHasInventory, "con stock disponible no se puede eliminar")
}

func TestCanDelete_ConOrdenesAbiertasRechaza(t *testing.T) {
	err := reorder.CanDelete(articulo(0, 10, true), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHasPendingOrders, "con órdenes abiertas no se puede eliminar")
}

func TestCanDelete_StockGanaSobreOrdenes(t *testing.T) {
	// Si fallan ambas condiciones, se reporta primero el stock.
	err := reorder.CanDelete(articulo(5, 10, true), 3)
	assert.ErrorIs(t, err, domain.ErrHasInventory)
}

func TestCanDelete_SinStockNiOrdenesAcepta(t *testing.T) {
	assert.NoError(t, reorder.CanDelete(articulo(0, 10, true), 0))
}
