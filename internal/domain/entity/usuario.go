package entity

import "time"

// Roles de usuario.
const (
	RolAdmin     = "admin"
	RolComprador = "comprador"
	RolVendedor  = "vendedor"
)

// Usuario representa un usuario de la aplicación.
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string
	Nombre       string
	Rol          string
	Estado       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
