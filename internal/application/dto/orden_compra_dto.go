package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrdenCompraRequest alta de orden de compra. Precio y cargos son
// opcionales: si faltan se toman de las condiciones proveedor-artículo.
// Número, fecha y total los genera el servidor, nunca el cliente.
type CreateOrdenCompraRequest struct {
	ProveedorID    string           `json:"proveedorId"`
	ArticuloID     string           `json:"articuloId"`
	Cantidad       int              `json:"cantidad"`
	PrecioUnitario *decimal.Decimal `json:"precioUnitario"`
	CargosPedido   *decimal.Decimal `json:"cargosPedido"`
}

// UpdateOrdenCompraRequest modificación parcial: el total se recalcula con
// los valores presentes y los existentes como respaldo.
type UpdateOrdenCompraRequest struct {
	Cantidad       *int             `json:"cantidad"`
	PrecioUnitario *decimal.Decimal `json:"precioUnitario"`
	CargosPedido   *decimal.Decimal `json:"cargosPedido"`
}

// CambiarEstadoRequest transición de estado de la orden.
type CambiarEstadoRequest struct {
	Estado string `json:"estado"`
}

// OrdenCompraResponse representación de una orden de compra.
type OrdenCompraResponse struct {
	ID                string          `json:"id"`
	Numero            string          `json:"numero"`
	FechaCreacion     time.Time       `json:"fechaCreacion"`
	ProveedorID       string          `json:"proveedorId"`
	ProveedorNombre   string          `json:"proveedorNombre"`
	ArticuloID        string          `json:"articuloId"`
	ArticuloNombre    string          `json:"articuloNombre"`
	Cantidad          int             `json:"cantidad"`
	PrecioUnitario    decimal.Decimal `json:"precioUnitario"`
	CargosPedido      decimal.Decimal `json:"cargosPedido"`
	Total             decimal.Decimal `json:"total"`
	Estado            string          `json:"estado"`
	DemoraEntregaDias int             `json:"demoraEntregaDias"`
	PuntoPedido       int             `json:"puntoPedido"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// OrdenCompraListResponse listado paginado de órdenes.
type OrdenCompraListResponse struct {
	Items []OrdenCompraResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// EstadisticaEstadoResponse agregado por estado.
type EstadisticaEstadoResponse struct {
	Estado     string          `json:"estado"`
	Cantidad   int             `json:"cantidad"`
	MontoTotal decimal.Decimal `json:"montoTotal"`
}

// EstadisticasOrdenesResponse estadísticas de órdenes de compra.
type EstadisticasOrdenesResponse struct {
	PorEstado []EstadisticaEstadoResponse `json:"porEstado"`
}
