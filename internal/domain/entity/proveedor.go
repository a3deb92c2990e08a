package entity

import "time"

// Proveedor representa a un proveedor de artículos.
// Un proveedor inactivo no puede recibir nuevas órdenes de compra.
type Proveedor struct {
	ID        string
	Nombre    string
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
