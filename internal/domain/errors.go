package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// Reglas de negocio de inventario y compras.
	ErrInvalidTransition  = errors.New("transición de estado no permitida")
	ErrNotDeletable       = errors.New("el recurso no puede eliminarse en su estado actual")
	ErrHasInventory       = errors.New("el artículo tiene stock disponible")
	ErrHasPendingOrders   = errors.New("el artículo tiene órdenes de compra abiertas")
	ErrSupplierInactive   = errors.New("el proveedor está dado de baja")
	ErrOrderClosed        = errors.New("la orden de compra está en un estado terminal")
	ErrSupplierNeedsTerms = errors.New("el proveedor debe conservar al menos un artículo asociado")
)
