package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VentaItemRequest línea de venta del cliente.
type VentaItemRequest struct {
	ArticuloID     string           `json:"articuloId"`
	Cantidad       int              `json:"cantidad"`
	PrecioUnitario *decimal.Decimal `json:"precioUnitario"`
}

// CreateVentaRequest alta de venta con al menos una línea.
type CreateVentaRequest struct {
	Items     []VentaItemRequest `json:"items"`
	MedioPago string             `json:"medioPago"`
	Vendedor  string             `json:"vendedor"`
}

// UpdateVentaRequest modificación parcial de venta.
type UpdateVentaRequest struct {
	Estado    *string `json:"estado"`
	MedioPago *string `json:"medioPago"`
	Vendedor  *string `json:"vendedor"`
}

// VentaItemResponse línea de venta persistida.
type VentaItemResponse struct {
	ID             string          `json:"id"`
	ArticuloID     string          `json:"articuloId"`
	ArticuloNombre string          `json:"articuloNombre"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// VentaResponse representación de una venta.
type VentaResponse struct {
	ID        string              `json:"id"`
	Fecha     time.Time           `json:"fecha"`
	Total     decimal.Decimal     `json:"total"`
	Estado    string              `json:"estado"`
	MedioPago string              `json:"medioPago"`
	Vendedor  string              `json:"vendedor"`
	Items     []VentaItemResponse `json:"items"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// VentaListResponse listado paginado de ventas.
type VentaListResponse struct {
	Items []VentaResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
