package purchase

import (
	"github.com/shopspring/decimal"

	domain "github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/entity"
)

// transiciones es la lista blanca estricta de estados siguientes por estado actual.
// FINALIZADA y CANCELADA no tienen salidas: son terminales.
var transiciones = map[string][]string{
	entity.OrdenPendiente:  {entity.OrdenEnviada, entity.OrdenCancelada},
	entity.OrdenEnviada:    {entity.OrdenFinalizada, entity.OrdenCancelada},
	entity.OrdenFinalizada: {},
	entity.OrdenCancelada:  {},
}

// CanTransition indica si el pasaje desde -> hacia está en la lista blanca.
func CanTransition(desde, hacia string) bool {
	for _, s := range transiciones[desde] {
		if s == hacia {
			return true
		}
	}
	return false
}

// Transition cambia el estado de la orden si la transición es válida.
// Solo modifica Estado; ningún otro campo cambia automáticamente.
func Transition(o *entity.OrdenCompra, nuevoEstado string) error {
	if !CanTransition(o.Estado, nuevoEstado) {
		return domain.ErrInvalidTransition
	}
	o.Estado = nuevoEstado
	return nil
}

// EsTerminal indica si el estado no admite más transiciones.
func EsTerminal(estado string) bool {
	return len(transiciones[estado]) == 0
}

// EsAbierta indica si una orden en ese estado sigue abierta (bloquea la baja
// del artículo que referencia).
func EsAbierta(estado string) bool {
	return estado == entity.OrdenPendiente || estado == entity.OrdenEnviada
}

// CanDelete verifica si la orden puede eliminarse: solo en estado PENDIENTE.
func CanDelete(o *entity.OrdenCompra) error {
	if o.Estado != entity.OrdenPendiente {
		return domain.ErrNotDeletable
	}
	return nil
}

// Total calcula el total de la orden: cantidad * precio unitario + cargos de pedido.
// El total nunca se acepta como entrada del cliente, siempre se deriva.
func Total(cantidad int, precioUnitario, cargosPedido decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(cantidad)).Mul(precioUnitario).Add(cargosPedido)
}
