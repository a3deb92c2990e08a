package usecase

import (
	"context"

	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/repository"
)

// ProveedorTxRunner ejecuta un callback con repos de proveedor y condiciones
// atados a una misma transacción (alta de proveedor con artículos, marca de
// predeterminado único por artículo).
type ProveedorTxRunner interface {
	RunProveedor(ctx context.Context, fn func(
		provRepo repository.ProveedorRepository,
		paRepo repository.ProveedorArticuloRepository,
	) error) error
}

// OrdenTxRunner ejecuta un callback con el repo de órdenes en una transacción
// (secuencia de numeración + alta atómicas).
type OrdenTxRunner interface {
	RunOrden(ctx context.Context, fn func(
		ordenRepo repository.OrdenCompraRepository,
	) error) error
}

// VentaTxRunner ejecuta un callback con el repo de ventas en una transacción
// (cabecera + líneas atómicas).
type VentaTxRunner interface {
	RunVenta(ctx context.Context, fn func(
		ventaRepo repository.VentaRepository,
	) error) error
}
