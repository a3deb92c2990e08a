package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/application/dto"
	domain "github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/entity"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/repository"
)

// VentaUseCase casos de uso de ventas.
type VentaUseCase struct {
	ventaRepo    repository.VentaRepository
	articuloRepo repository.ArticuloRepository
	txRunner     VentaTxRunner
}

// NewVentaUseCase construye el caso de uso.
func NewVentaUseCase(ventaRepo repository.VentaRepository, articuloRepo repository.ArticuloRepository, txRunner VentaTxRunner) *VentaUseCase {
	return &VentaUseCase{ventaRepo: ventaRepo, articuloRepo: articuloRepo, txRunner: txRunner}
}

// Create registra una venta con al menos una línea. Cada línea exige artículo
// existente, cantidad positiva y precio positivo; el nombre del artículo se
// desnormaliza en la línea y los subtotales y el total se calculan acá.
// Cabecera y líneas se persisten en una sola transacción.
func (uc *VentaUseCase) Create(ctx context.Context, in dto.CreateVentaRequest) (*dto.VentaResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	venta := &entity.Venta{
		ID:        uuid.New().String(),
		Fecha:     now,
		Estado:    entity.VentaPendiente,
		MedioPago: in.MedioPago,
		Vendedor:  in.Vendedor,
		CreatedAt: now,
		UpdatedAt: now,
	}

	total := decimal.Zero
	for _, it := range in.Items {
		if it.Cantidad <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if it.PrecioUnitario == nil || !it.PrecioUnitario.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		articulo, err := uc.articuloRepo.GetByID(it.ArticuloID)
		if err != nil {
			return nil, err
		}
		if articulo == nil {
			return nil, domain.ErrNotFound
		}
		subtotal := it.PrecioUnitario.Mul(decimal.NewFromInt(int64(it.Cantidad)))
		venta.Items = append(venta.Items, entity.VentaItem{
			ID:             uuid.New().String(),
			VentaID:        venta.ID,
			ArticuloID:     articulo.ID,
			ArticuloNombre: articulo.Nombre,
			Cantidad:       it.Cantidad,
			PrecioUnitario: *it.PrecioUnitario,
			Subtotal:       subtotal,
		})
		total = total.Add(subtotal)
	}
	if !total.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	venta.Total = total

	err := uc.txRunner.RunVenta(ctx, func(ventaRepo repository.VentaRepository) error {
		if err := ventaRepo.Create(venta); err != nil {
			return err
		}
		for i := range venta.Items {
			if err := ventaRepo.CreateItem(&venta.Items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toVentaResponse(venta), nil
}

// GetByID obtiene una venta con sus líneas.
func (uc *VentaUseCase) GetByID(id string) (*dto.VentaResponse, error) {
	v, err := uc.ventaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	if err := uc.cargarItems(v); err != nil {
		return nil, err
	}
	return toVentaResponse(v), nil
}

// List lista ventas con paginación, cada una con sus líneas.
func (uc *VentaUseCase) List(limit, offset int) (*dto.VentaListResponse, error) {
	list, err := uc.ventaRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentaResponse, 0, len(list))
	for _, v := range list {
		if err := uc.cargarItems(v); err != nil {
			return nil, err
		}
		items = append(items, *toVentaResponse(v))
	}
	return &dto.VentaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update modifica estado, medio de pago o vendedor de una venta. Las líneas y
// el total son inmutables después del alta.
func (uc *VentaUseCase) Update(id string, in dto.UpdateVentaRequest) (*dto.VentaResponse, error) {
	v, err := uc.ventaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	if in.Estado != nil {
		switch *in.Estado {
		case entity.VentaPendiente, entity.VentaCompletada, entity.VentaCancelada:
			v.Estado = *in.Estado
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.MedioPago != nil {
		v.MedioPago = *in.MedioPago
	}
	if in.Vendedor != nil {
		v.Vendedor = *in.Vendedor
	}
	v.UpdatedAt = time.Now()
	if err := uc.ventaRepo.Update(v); err != nil {
		return nil, err
	}
	if err := uc.cargarItems(v); err != nil {
		return nil, err
	}
	return toVentaResponse(v), nil
}

// Delete elimina una venta. Una venta COMPLETADA no puede eliminarse.
func (uc *VentaUseCase) Delete(id string) error {
	v, err := uc.ventaRepo.GetByID(id)
	if err != nil {
		return err
	}
	if v == nil {
		return domain.ErrNotFound
	}
	if v.Estado == entity.VentaCompletada {
		return domain.ErrNotDeletable
	}
	return uc.ventaRepo.Delete(id)
}

func (uc *VentaUseCase) cargarItems(v *entity.Venta) error {
	if len(v.Items) > 0 {
		return nil
	}
	items, err := uc.ventaRepo.GetItemsByVentaID(v.ID)
	if err != nil {
		return err
	}
	v.Items = items
	return nil
}

func toVentaResponse(v *entity.Venta) *dto.VentaResponse {
	if v == nil {
		return nil
	}
	items := make([]dto.VentaItemResponse, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, dto.VentaItemResponse{
			ID:             it.ID,
			ArticuloID:     it.ArticuloID,
			ArticuloNombre: it.ArticuloNombre,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			Subtotal:       it.Subtotal,
		})
	}
	return &dto.VentaResponse{
		ID:        v.ID,
		Fecha:     v.Fecha,
		Total:     v.Total,
		Estado:    v.Estado,
		MedioPago: v.MedioPago,
		Vendedor:  v.Vendedor,
		Items:     items,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
