package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/application/dto"
	domain "github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/entity"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/purchase"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/repository"
)

// OrdenCompraUseCase casos de uso del ciclo de vida de órdenes de compra.
type OrdenCompraUseCase struct {
	ordenRepo    repository.OrdenCompraRepository
	articuloRepo repository.ArticuloRepository
	provRepo     repository.ProveedorRepository
	paRepo       repository.ProveedorArticuloRepository
	txRunner     OrdenTxRunner
}

// NewOrdenCompraUseCase construye el caso de uso.
func NewOrdenCompraUseCase(
	ordenRepo repository.OrdenCompraRepository,
	articuloRepo repository.ArticuloRepository,
	provRepo repository.ProveedorRepository,
	paRepo repository.ProveedorArticuloRepository,
	txRunner OrdenTxRunner,
) *OrdenCompraUseCase {
	return &OrdenCompraUseCase{
		ordenRepo:    ordenRepo,
		articuloRepo: articuloRepo,
		provRepo:     provRepo,
		paRepo:       paRepo,
		txRunner:     txRunner,
	}
}

// Create crea una orden de compra en estado PENDIENTE. El número (OC-<año>-<seq>)
// y la fecha los genera el servidor; el total se deriva siempre de cantidad,
// precio unitario y cargos. Precio y cargos salen de las condiciones
// proveedor-artículo salvo que el request los traiga.
func (uc *OrdenCompraUseCase) Create(ctx context.Context, in dto.CreateOrdenCompraRequest) (*dto.OrdenCompraResponse, error) {
	if in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	prov, err := uc.provRepo.GetByID(in.ProveedorID)
	if err != nil {
		return nil, err
	}
	if prov == nil {
		return nil, domain.ErrNotFound
	}
	if !prov.Activo {
		return nil, domain.ErrSupplierInactive
	}
	articulo, err := uc.articuloRepo.GetByID(in.ArticuloID)
	if err != nil {
		return nil, err
	}
	if articulo == nil {
		return nil, domain.ErrNotFound
	}

	// Condiciones pactadas con el proveedor: respaldo para precio, cargos y demora.
	pa, _ := uc.paRepo.GetByProveedorYArticulo(in.ProveedorID, in.ArticuloID)

	var precio, cargos decimal.Decimal
	demora := 0
	if pa != nil {
		precio = pa.PrecioUnitario
		cargos = pa.CargosPedido
		demora = pa.DemoraEntregaDias
	}
	if in.PrecioUnitario != nil {
		precio = *in.PrecioUnitario
	}
	if in.CargosPedido != nil {
		cargos = *in.CargosPedido
	}
	if !precio.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if cargos.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	orden := &entity.OrdenCompra{
		ID:                uuid.New().String(),
		FechaCreacion:     now,
		ProveedorID:       prov.ID,
		ProveedorNombre:   prov.Nombre,
		ArticuloID:        articulo.ID,
		ArticuloNombre:    articulo.Nombre,
		Cantidad:          in.Cantidad,
		PrecioUnitario:    precio,
		CargosPedido:      cargos,
		Total:             purchase.Total(in.Cantidad, precio, cargos),
		Estado:            entity.OrdenPendiente,
		DemoraEntregaDias: demora,
		PuntoPedido:       articulo.StockSeguridad,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	// Secuencia y alta en la misma transacción para no quemar números.
	err = uc.txRunner.RunOrden(ctx, func(ordenRepo repository.OrdenCompraRepository) error {
		anio := now.Year()
		seq, err := ordenRepo.NextNumero(ctx, anio)
		if err != nil {
			return err
		}
		orden.Numero = fmt.Sprintf("OC-%d-%05d", anio, seq)
		return ordenRepo.Create(orden)
	})
	if err != nil {
		return nil, err
	}
	return toOrdenResponse(orden), nil
}

// GetByID obtiene una orden por ID.
func (uc *OrdenCompraUseCase) GetByID(id string) (*dto.OrdenCompraResponse, error) {
	o, err := uc.ordenRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, nil
	}
	return toOrdenResponse(o), nil
}

// List lista órdenes, opcionalmente filtradas por estado.
func (uc *OrdenCompraUseCase) List(estado string, limit, offset int) (*dto.OrdenCompraListResponse, error) {
	var (
		list []*entity.OrdenCompra
		err  error
	)
	if estado != "" {
		list, err = uc.ordenRepo.ListByEstado(estado, limit, offset)
	} else {
		list, err = uc.ordenRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrdenCompraResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrdenResponse(o))
	}
	return &dto.OrdenCompraListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update modifica cantidad, precio o cargos de una orden no terminal y
// recalcula el total con los valores presentes (los existentes como respaldo).
// El total jamás se acepta del cliente.
func (uc *OrdenCompraUseCase) Update(id string, in dto.UpdateOrdenCompraRequest) (*dto.OrdenCompraResponse, error) {
	o, err := uc.ordenRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, nil
	}
	if purchase.EsTerminal(o.Estado) {
		return nil, domain.ErrOrderClosed
	}
	if in.Cantidad != nil {
		if *in.Cantidad <= 0 {
			return nil, domain.ErrInvalidInput
		}
		o.Cantidad = *in.Cantidad
	}
	if in.PrecioUnitario != nil {
		if !in.PrecioUnitario.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		o.PrecioUnitario = *in.PrecioUnitario
	}
	if in.CargosPedido != nil {
		if in.CargosPedido.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		o.CargosPedido = *in.CargosPedido
	}
	o.Total = purchase.Total(o.Cantidad, o.PrecioUnitario, o.CargosPedido)
	o.UpdatedAt = time.Now()
	if err := uc.ordenRepo.Update(o); err != nil {
		return nil, err
	}
	return toOrdenResponse(o), nil
}

// CambiarEstado aplica una transición de la lista blanca del ciclo de vida.
func (uc *OrdenCompraUseCase) CambiarEstado(id, nuevoEstado string) (*dto.OrdenCompraResponse, error) {
	o, err := uc.ordenRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if err := purchase.Transition(o, nuevoEstado); err != nil {
		return nil, err
	}
	o.UpdatedAt = time.Now()
	if err := uc.ordenRepo.Update(o); err != nil {
		return nil, err
	}
	return toOrdenResponse(o), nil
}

// Delete elimina una orden. Solo se permite en estado PENDIENTE.
func (uc *OrdenCompraUseCase) Delete(id string) error {
	o, err := uc.ordenRepo.GetByID(id)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrNotFound
	}
	if err := purchase.CanDelete(o); err != nil {
		return err
	}
	return uc.ordenRepo.Delete(id)
}

// Estadisticas devuelve el agregado de órdenes por estado.
func (uc *OrdenCompraUseCase) Estadisticas(ctx context.Context) (*dto.EstadisticasOrdenesResponse, error) {
	stats, err := uc.ordenRepo.Estadisticas(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.EstadisticasOrdenesResponse{
		PorEstado: make([]dto.EstadisticaEstadoResponse, 0, len(stats)),
	}
	for _, s := range stats {
		out.PorEstado = append(out.PorEstado, dto.EstadisticaEstadoResponse{
			Estado:     s.Estado,
			Cantidad:   s.Cantidad,
			MontoTotal: s.MontoTotal,
		})
	}
	return out, nil
}

func toOrdenResponse(o *entity.OrdenCompra) *dto.OrdenCompraResponse {
	if o == nil {
		return nil
	}
	return &dto.OrdenCompraResponse{
		ID:                o.ID,
		Numero:            o.Numero,
		FechaCreacion:     o.FechaCreacion,
		ProveedorID:       o.ProveedorID,
		ProveedorNombre:   o.ProveedorNombre,
		ArticuloID:        o.ArticuloID,
		ArticuloNombre:    o.ArticuloNombre,
		Cantidad:          o.Cantidad,
		PrecioUnitario:    o.PrecioUnitario,
		CargosPedido:      o.CargosPedido,
		Total:             o.Total,
		Estado:            o.Estado,
		DemoraEntregaDias: o.DemoraEntregaDias,
		PuntoPedido:       o.PuntoPedido,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}
