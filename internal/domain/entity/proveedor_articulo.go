package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Modelos de reposición soportados para la relación proveedor-artículo.
const (
	ModeloLoteFijo      = "LOTE_FIJO"      // pide una cantidad fija al llegar al punto de pedido
	ModeloIntervaloFijo = "INTERVALO_FIJO" // revisa stock cada período fijo de días
)

// ProveedorArticulo son las condiciones de compra de un artículo con un proveedor:
// demora de entrega, precio unitario, cargos de pedido y período de revisión.
// PeriodoRevisionDias solo aplica al modelo de intervalo fijo; para lote fijo se fuerza a 0.
type ProveedorArticulo struct {
	ID                  string
	ProveedorID         string
	ArticuloID          string
	TipoModelo          string
	DemoraEntregaDias   int
	PrecioUnitario      decimal.Decimal
	CargosPedido        decimal.Decimal
	PeriodoRevisionDias int
	Predeterminado      bool // proveedor predeterminado para el artículo
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
