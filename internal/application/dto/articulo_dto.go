package dto

import "time"

// CreateArticuloRequest alta de artículo.
type CreateArticuloRequest struct {
	Codigo          string  `json:"codigo"`
	Nombre          string  `json:"nombre"`
	Descripcion     string  `json:"descripcion"`
	StockActual     int     `json:"stockActual"`
	StockSeguridad  int     `json:"stockSeguridad"`
	ProveedorPredID *string `json:"proveedorPredeterminadoId"`
}

// UpdateArticuloRequest modificación parcial de artículo (solo campos presentes).
type UpdateArticuloRequest struct {
	Nombre          *string `json:"nombre"`
	Descripcion     *string `json:"descripcion"`
	StockActual     *int    `json:"stockActual"`
	StockSeguridad  *int    `json:"stockSeguridad"`
	ProveedorPredID *string `json:"proveedorPredeterminadoId"`
}

// ArticuloResponse representación de un artículo. Categoria sale de la
// política de reposición: NORMAL, A_REPONER, FALTANTE o INACTIVO.
type ArticuloResponse struct {
	ID              string     `json:"id"`
	Codigo          string     `json:"codigo"`
	Nombre          string     `json:"nombre"`
	Descripcion     string     `json:"descripcion,omitempty"`
	StockActual     int        `json:"stockActual"`
	StockSeguridad  int        `json:"stockSeguridad"`
	Activo          bool       `json:"activo"`
	Categoria       string     `json:"categoria"`
	FechaBaja       *time.Time `json:"fechaBaja,omitempty"`
	ProveedorPredID *string    `json:"proveedorPredeterminadoId,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// ArticuloListResponse listado paginado de artículos.
type ArticuloListResponse struct {
	Items []ArticuloResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
