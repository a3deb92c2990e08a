package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/application/dto"
	domain "github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/entity"
)

func setupOrdenUseCase(t *testing.T) (*OrdenCompraUseCase, *fakeOrdenRepo, *fakeArticuloRepo, *fakeProveedorRepo, *fakePARepo) {
	t.Helper()
	ordenRepo := &fakeOrdenRepo{}
	articuloRepo := &fakeArticuloRepo{}
	provRepo := &fakeProveedorRepo{}
	paRepo := &fakePARepo{}
	tx := &fakeTxRunner{ordenRepo: ordenRepo}
	uc := NewOrdenCompraUseCase(ordenRepo, articuloRepo, provRepo, paRepo, tx)
	return uc, ordenRepo, articuloRepo, provRepo, paRepo
}

func seedProveedorYArticulo(articuloRepo *fakeArticuloRepo, provRepo *fakeProveedorRepo, paRepo *fakePARepo) (*entity.Proveedor, *entity.Articulo) {
	prov := &entity.Proveedor{ID: "prov-1", Nombre: "Distribuidora Norte", Activo: true}
	art := &entity.Articulo{ID: "art-1", Codigo: "A-001", Nombre: "Tornillo 5mm", StockActual: 3, StockSeguridad: 10}
	provRepo.proveedores = append(provRepo.proveedores, prov)
	articuloRepo.articulos = append(articuloRepo.articulos, art)
	paRepo.condiciones = append(paRepo.condiciones, &entity.ProveedorArticulo{
		ID:                "pa-1",
		ProveedorID:       prov.ID,
		ArticuloID:        art.ID,
		TipoModelo:        entity.ModeloLoteFijo,
		DemoraEntregaDias: 7,
		PrecioUnitario:    decimal.NewFromInt(1500),
		CargosPedido:      decimal.NewFromInt(5000),
	})
	return prov, art
}

// ─────────────────────────────────────────────────────────────────────────────
// Alta de órdenes
// ─────────────────────────────────────────────────────────────────────────────

func TestOrdenCompra_Create_TotalDesdeCondiciones(t *testing.T) {
	uc, _, articuloRepo, provRepo, paRepo := setupOrdenUseCase(t)
	seedProveedorYArticulo(articuloRepo, provRepo, paRepo)

	resp, err := uc.Create(context.Background(), dto.CreateOrdenCompraRequest{
		ProveedorID: "prov-1",
		ArticuloID:  "art-1",
		Cantidad:    10,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	// 10 * 1500 + 5000
	assert.True(t, decimal.NewFromInt(20000).Equal(resp.Total), "el total debe derivarse de cantidad, precio y cargos")
	assert.Equal(t, entity.OrdenPendiente, resp.Estado, "toda orden nueva nace PENDIENTE")
	assert.Equal(t, 7, resp.DemoraEntregaDias, "la demora sale de las condiciones del proveedor")
	assert.Equal(t, 10, resp.PuntoPedido, "el punto de pedido sale del stock de seguridad del artículo")
	assert.Equal(t, "Distribuidora Norte", resp.ProveedorNombre)
	assert.Equal(t, "Tornillo 5mm", resp.ArticuloNombre)
}

func TestOrdenCompra_Create_NumeroSecuencialPorAnio(t *testing.T) {
	uc, _, articuloRepo, provRepo, paRepo := setupOrdenUseCase(t)
	seedProveedorYArticulo(articuloRepo, provRepo, paRepo)

	anio := time.Now().Year()
	primera, err := uc.Create(context.Background(), dto.CreateOrdenCompraRequest{
		ProveedorID: "prov-1", ArticuloID: "art-1", Cantidad: 1,
	})
	require.NoError(t, err)
	segunda, err := uc.Create(context.Background(), dto.CreateOrdenCompraRequest{
		ProveedorID: "prov-1", ArticuloID: "art-1", Cantidad: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("OC-%d-00001", anio), primera.Numero)
	assert.Equal(t, fmt.Sprintf("OC-%d-00002", anio), segunda.Numero)
}

func TestOrdenCompra_Create_PrecioDelRequestPisaCondiciones(t *testing.T) {
	uc, _, articuloRepo, provRepo, paRepo := setupOrdenUseCase(t)
	seedProveedorYArticulo(articuloRepo, provRepo, paRepo)

	precio := decimal.NewFromInt(2000)
	cargos := decimal.Zero
	resp, err := uc.Create(context.Background(), dto.CreateOrdenCompraRequest{
		ProveedorID:    "prov-1",
		ArticuloID:     "art-1",
		Cantidad:       5,
		PrecioUnitario: &precio,
		CargosPedido:   &cargos,
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10000).Equal(resp.Total))
}

func TestOrdenCompra_Create_Rechazos(t *testing.T) {
	uc, _, articuloRepo, provRepo, paRepo := setupOrdenUseCase(t)
	prov, _ := seedProveedorYArticulo(articuloRepo, provRepo, paRepo)

	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateOrdenCompraRequest{ProveedorID: "prov-1", ArticuloID: "art-1", Cantidad: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = uc.Create(ctx, dto.CreateOrdenCompraRequest{ProveedorID: "no-existe", ArticuloID: "art-1", Cantidad: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound, "proveedor inexistente")

	_, err = uc.Create(ctx, dto.CreateOrdenCompraRequest{ProveedorID: "prov-1", ArticuloID: "no-existe", Cantidad: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound, "artículo inexistente")

	prov.Activo = false
	_, err = uc.Create(ctx, dto.CreateOrdenCompraRequest{ProveedorID: "prov-1", ArticuloID: "art-1", Cantidad: 1})
	assert.ErrorIs(t, err, domain.ErrSupplierInactive, "proveedor dado de baja")
}

func TestOrdenCompra_Create_SinCondicionesNiPrecio(t *testing.T) {
	uc, _, articuloRepo, provRepo, _ := setupOrdenUseCase(t)
	provRepo.proveedores = append(provRepo.proveedores, &entity.Proveedor{ID: "prov-1", Nombre: "Norte", Activo: true})
	articuloRepo.articulos = append(articuloRepo.articulos, &entity.Articulo{ID: "art-1", Codigo: "A-001", Nombre: "Tornillo"})

	_, err := uc.Create(context.Background(), dto.CreateOrdenCompraRequest{
		ProveedorID: "prov-1", ArticuloID: "art-1", Cantidad: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin condiciones ni precio en el request no hay de dónde sacar el precio")
}

// ─────────────────────────────────────────────────────────────────────────────
// Modificación y ciclo de vida
// ─────────────────────────────────────────────────────────────────────────────

func TestOrdenCompra_Update_RecalculaTotal(t *testing.T) {
	uc, _, articuloRepo, provRepo, paRepo := setupOrdenUseCase(t)
	seedProveedorYArticulo(articuloRepo, provRepo, paRepo)

	creada, err := uc.Create(context.Background(), dto.CreateOrdenCompraRequest{
		ProveedorID: "prov-1", ArticuloID: "art-1", Cantidad: 10,
	})
	require.NoError(t, err)

	cantidad := 4
	resp, err := uc.Update(creada.ID, dto.UpdateOrdenCompraRequest{Cantidad: &cantidad})
	require.NoError(t, err)
	// 4 * 1500 + 5000
	assert.True(t, decimal.NewFromInt(11000).Equal(resp.Total), "el total se recalcula con los valores vigentes")
}

func TestOrdenCompra_Update_OrdenTerminalRechazada(t *testing.T) {
	uc, ordenRepo, _, _, _ := setupOrdenUseCase(t)
	ordenRepo.ordenes = append(ordenRepo.ordenes, &entity.OrdenCompra{ID: "oc-1", Estado: entity.OrdenFinalizada})

	cantidad := 2
	_, err := uc.Update("oc-1", dto.UpdateOrdenCompraRequest{Cantidad: &cantidad})
	assert.ErrorIs(t, err, domain.ErrOrderClosed, "una orden finalizada no se edita")
}

func TestOrdenCompra_CambiarEstado(t *testing.T) {
	uc, ordenRepo, _, _, _ := setupOrdenUseCase(t)
	ordenRepo.ordenes = append(ordenRepo.ordenes, &entity.OrdenCompra{ID: "oc-1", Estado: entity.OrdenPendiente})

	resp, err := uc.CambiarEstado("oc-1", entity.OrdenEnviada)
	require.NoError(t, err)
	assert.Equal(t, entity.OrdenEnviada, resp.Estado)

	resp, err = uc.CambiarEstado("oc-1", entity.OrdenFinalizada)
	require.NoError(t, err)
	assert.Equal(t, entity.OrdenFinalizada, resp.Estado)

	_, err = uc.CambiarEstado("oc-1", entity.OrdenCancelada)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "FINALIZADA es terminal")

	_, err = uc.CambiarEstado("no-existe", entity.OrdenEnviada)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrdenCompra_Delete_SoloPendiente(t *testing.T) {
	uc, ordenRepo, _, _, _ := setupOrdenUseCase(t)
	ordenRepo.ordenes = append(ordenRepo.ordenes,
		&entity.OrdenCompra{ID: "oc-1", Estado: entity.OrdenPendiente},
		&entity.OrdenCompra{ID: "oc-2", Estado: entity.OrdenEnviada},
	)

	require.NoError(t, uc.Delete("oc-1"))
	assert.ErrorIs(t, uc.Delete("oc-2"), domain.ErrNotDeletable, "una orden enviada no se elimina, se cancela")
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}

func TestOrdenCompra_ListPorEstado(t *testing.T) {
	uc, ordenRepo, _, _, _ := setupOrdenUseCase(t)
	ordenRepo.ordenes = append(ordenRepo.ordenes,
		&entity.OrdenCompra{ID: "oc-1", Estado: entity.OrdenPendiente},
		&entity.OrdenCompra{ID: "oc-2", Estado: entity.OrdenEnviada},
		&entity.OrdenCompra{ID: "oc-3", Estado: entity.OrdenPendiente},
	)

	resp, err := uc.List(entity.OrdenPendiente, 50, 0)
	require.NoError(t, err)
	assert.Len(t, resp.Items, 2)

	resp, err = uc.List("", 50, 0)
	require.NoError(t, err)
	assert.Len(t, resp.Items, 3)
}

func TestOrdenCompra_Estadisticas(t *testing.T) {
	uc, ordenRepo, _, _, _ := setupOrdenUseCase(t)
	ordenRepo.ordenes = append(ordenRepo.ordenes,
		&entity.OrdenCompra{ID: "oc-1", Estado: entity.OrdenPendiente, Total: decimal.NewFromInt(1000)},
		&entity.OrdenCompra{ID: "oc-2", Estado: entity.OrdenPendiente, Total: decimal.NewFromInt(500)},
		&entity.OrdenCompra{ID: "oc-3", Estado: entity.OrdenFinalizada, Total: decimal.NewFromInt(200)},
	)

	resp, err := uc.Estadisticas(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.PorEstado, 2)
	assert.Equal(t, entity.OrdenPendiente, resp.PorEstado[0].Estado)
	assert.Equal(t, 2, resp.PorEstado[0].Cantidad)
	assert.True(t, decimal.NewFromInt(1500).Equal(resp.PorEstado[0].MontoTotal))
}
