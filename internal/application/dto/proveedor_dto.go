package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TerminosRequest condiciones proveedor-artículo tal como llegan del cliente.
// Los campos numéricos son punteros para distinguir "ausente" de "cero".
type TerminosRequest struct {
	ArticuloID          string           `json:"articuloId"`
	TipoModelo          *string          `json:"tipoModelo"`
	DemoraEntregaDias   *int             `json:"demoraEntregaDias"`
	PrecioUnitario      *decimal.Decimal `json:"precioUnitario"`
	CargosPedido        *decimal.Decimal `json:"cargosPedido"`
	PeriodoRevisionDias *int             `json:"periodoRevisionDias"`
	Predeterminado      bool             `json:"predeterminado"`
}

// CreateProveedorRequest alta de proveedor con sus artículos asociados.
// Se acepta solo si el nombre no está vacío y todas las condiciones son completas.
type CreateProveedorRequest struct {
	Nombre    string            `json:"nombre"`
	Articulos []TerminosRequest `json:"articulos"`
}

// UpdateProveedorRequest modificación parcial de proveedor.
type UpdateProveedorRequest struct {
	Nombre *string `json:"nombre"`
	Activo *bool   `json:"activo"`
}

// TerminosResponse condiciones proveedor-artículo persistidas.
type TerminosResponse struct {
	ID                  string          `json:"id"`
	ProveedorID         string          `json:"proveedorId"`
	ArticuloID          string          `json:"articuloId"`
	TipoModelo          string          `json:"tipoModelo"`
	DemoraEntregaDias   int             `json:"demoraEntregaDias"`
	PrecioUnitario      decimal.Decimal `json:"precioUnitario"`
	CargosPedido        decimal.Decimal `json:"cargosPedido"`
	PeriodoRevisionDias int             `json:"periodoRevisionDias"`
	Predeterminado      bool            `json:"predeterminado"`
}

// ProveedorResponse representación de un proveedor.
type ProveedorResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProveedorConArticulosResponse proveedor con sus condiciones por artículo.
type ProveedorConArticulosResponse struct {
	ProveedorResponse
	Articulos []TerminosResponse `json:"articulos"`
}

// ProveedorListResponse listado paginado de proveedores.
type ProveedorListResponse struct {
	Items []ProveedorResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
