package entity

import "time"

// Articulo representa un SKU del inventario.
// Un artículo está inactivo si y solo si tiene fecha de baja.
// StockSeguridad es el punto de pedido: con stock por debajo se dispara la reposición.
type Articulo struct {
	ID              string
	Codigo          string // código único
	Nombre          string
	Descripcion     string
	StockActual     int
	StockSeguridad  int
	FechaBaja       *time.Time
	ProveedorPredID *string // proveedor predeterminado (referencia débil, opcional)
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Activo indica si el artículo sigue vigente (sin fecha de baja).
func (a *Articulo) Activo() bool {
	return a.FechaBaja == nil
}
