package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una orden de compra.
// PENDIENTE -> ENVIADA | CANCELADA; ENVIADA -> FINALIZADA | CANCELADA.
// FINALIZADA y CANCELADA son terminales.
const (
	OrdenPendiente  = "PENDIENTE"
	OrdenEnviada    = "ENVIADA"
	OrdenFinalizada = "FINALIZADA"
	OrdenCancelada  = "CANCELADA"
)

// OrdenCompra representa una orden de compra a un proveedor.
// Nombre de proveedor y artículo se desnormalizan para auditoría: la orden
// conserva cómo se mostraban aunque el proveedor o el artículo se den de baja.
// Total siempre se deriva de Cantidad, PrecioUnitario y CargosPedido.
type OrdenCompra struct {
	ID                string
	Numero            string // generado: OC-<año>-<secuencia>
	FechaCreacion     time.Time
	ProveedorID       string
	ProveedorNombre   string
	ArticuloID        string
	ArticuloNombre    string
	Cantidad          int
	PrecioUnitario    decimal.Decimal
	CargosPedido      decimal.Decimal
	Total             decimal.Decimal
	Estado            string
	DemoraEntregaDias int
	PuntoPedido       int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
