package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/application/dto"
	domain "github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/entity"
)

func setupVentaUseCase(t *testing.T) (*VentaUseCase, *fakeVentaRepo, *fakeArticuloRepo) {
	t.Helper()
	ventaRepo := &fakeVentaRepo{}
	articuloRepo := &fakeArticuloRepo{}
	tx := &fakeTxRunner{ventaRepo: ventaRepo}
	return NewVentaUseCase(ventaRepo, articuloRepo, tx), ventaRepo, articuloRepo
}

func precioDe(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestVenta_Create(t *testing.T) {
	uc, ventaRepo, articuloRepo := setupVentaUseCase(t)
	articuloRepo.articulos = append(articuloRepo.articulos,
		&entity.Articulo{ID: "art-1", Codigo: "A-001", Nombre: "Tornillo 5mm"},
		&entity.Articulo{ID: "art-2", Codigo: "A-002", Nombre: "Tuerca 5mm"},
	)

	resp, err := uc.Create(context.Background(), dto.CreateVentaRequest{
		Items: []dto.VentaItemRequest{
			{ArticuloID: "art-1", Cantidad: 3, PrecioUnitario: precioDe(100)},
			{ArticuloID: "art-2", Cantidad: 2, PrecioUnitario: precioDe(50)},
		},
		MedioPago: "EFECTIVO",
		Vendedor:  "mgarcia",
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.True(t, decimal.NewFromInt(400).Equal(resp.Total), "el total es la suma de los subtotales")
	assert.True(t, decimal.NewFromInt(300).Equal(resp.Items[0].Subtotal))
	assert.Equal(t, "Tornillo 5mm", resp.Items[0].ArticuloNombre, "el nombre se desnormaliza en la línea")
	assert.Equal(t, entity.VentaPendiente, resp.Estado)

	assert.Len(t, ventaRepo.ventas, 1)
	assert.Len(t, ventaRepo.items, 2, "cabecera y líneas persistidas juntas")
}

func TestVenta_Create_Rechazos(t *testing.T) {
	uc, ventaRepo, articuloRepo := setupVentaUseCase(t)
	articuloRepo.articulos = append(articuloRepo.articulos, &entity.Articulo{ID: "art-1", Codigo: "A-001", Nombre: "Tornillo"})

	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateVentaRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin líneas no hay venta")

	_, err = uc.Create(ctx, dto.CreateVentaRequest{Items: []dto.VentaItemRequest{
		{ArticuloID: "art-1", Cantidad: 0, PrecioUnitario: precioDe(100)},
	}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = uc.Create(ctx, dto.CreateVentaRequest{Items: []dto.VentaItemRequest{
		{ArticuloID: "art-1", Cantidad: 1},
	}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio ausente")

	_, err = uc.Create(ctx, dto.CreateVentaRequest{Items: []dto.VentaItemRequest{
		{ArticuloID: "art-1", Cantidad: 1, PrecioUnitario: precioDe(0)},
	}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio cero")

	_, err = uc.Create(ctx, dto.CreateVentaRequest{Items: []dto.VentaItemRequest{
		{ArticuloID: "no-existe", Cantidad: 1, PrecioUnitario: precioDe(100)},
	}})
	assert.ErrorIs(t, err, domain.ErrNotFound, "artículo inexistente")

	assert.Empty(t, ventaRepo.ventas, "ningún rechazo deja rastro")
}

func TestVenta_Update_Estado(t *testing.T) {
	uc, ventaRepo, _ := setupVentaUseCase(t)
	ventaRepo.ventas = append(ventaRepo.ventas, &entity.Venta{ID: "v-1", Estado: entity.VentaPendiente})

	estado := entity.VentaCompletada
	resp, err := uc.Update("v-1", dto.UpdateVentaRequest{Estado: &estado})
	require.NoError(t, err)
	assert.Equal(t, entity.VentaCompletada, resp.Estado)

	invalido := "DESPACHADA"
	_, err = uc.Update("v-1", dto.UpdateVentaRequest{Estado: &invalido})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "estado fuera del conjunto permitido")
}

func TestVenta_Delete_CompletadaRechazada(t *testing.T) {
	uc, ventaRepo, _ := setupVentaUseCase(t)
	ventaRepo.ventas = append(ventaRepo.ventas,
		&entity.Venta{ID: "v-1", Estado: entity.VentaCompletada},
		&entity.Venta{ID: "v-2", Estado: entity.VentaPendiente},
		&entity.Venta{ID: "v-3", Estado: entity.VentaCancelada},
	)

	assert.ErrorIs(t, uc.Delete("v-1"), domain.ErrNotDeletable, "una venta completada es historia contable")
	assert.NoError(t, uc.Delete("v-2"))
	assert.NoError(t, uc.Delete("v-3"))
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}

func TestVenta_GetByID_ConItems(t *testing.T) {
	uc, ventaRepo, _ := setupVentaUseCase(t)
	ventaRepo.ventas = append(ventaRepo.ventas, &entity.Venta{ID: "v-1", Estado: entity.VentaPendiente})
	ventaRepo.items = append(ventaRepo.items, &entity.VentaItem{
		ID: "it-1", VentaID: "v-1", ArticuloID: "art-1", ArticuloNombre: "Tornillo",
		Cantidad: 2, PrecioUnitario: decimal.NewFromInt(100), Subtotal: decimal.NewFromInt(200),
	})

	resp, err := uc.GetByID("v-1")
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Tornillo", resp.Items[0].ArticuloNombre)

	resp, err = uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, resp)
}
