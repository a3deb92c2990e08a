package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta. Una venta COMPLETADA ya no puede eliminarse.
const (
	VentaPendiente  = "PENDIENTE"
	VentaCompletada = "COMPLETADA"
	VentaCancelada  = "CANCELADA"
)

// Venta representa una venta con una o más líneas.
type Venta struct {
	ID        string
	Fecha     time.Time
	Total     decimal.Decimal
	Estado    string
	MedioPago string
	Vendedor  string
	Items     []VentaItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VentaItem es una línea de venta. ArticuloNombre se desnormaliza para que la
// venta conserve su detalle aunque el artículo se elimine después.
type VentaItem struct {
	ID             string
	VentaID        string
	ArticuloID     string
	ArticuloNombre string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
}
