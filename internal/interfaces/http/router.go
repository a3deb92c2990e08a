package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/application/auth"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/application/usecase"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ArticuloUC    *usecase.ArticuloUseCase
	ProveedorUC   *usecase.ProveedorUseCase
	OrdenCompraUC *usecase.OrdenCompraUseCase
	VentaUC       *usecase.VentaUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Articulos (protegido). Las rutas fijas van antes que /:id.
	articulos := protected.Group("/articulos")
	articuloHandler := NewArticuloHandler(deps.ArticuloUC)
	articulos.Post("/", articuloHandler.Create)
	articulos.Get("/", articuloHandler.List)
	articulos.Get("/a-reponer", articuloHandler.AReponer)
	articulos.Get("/faltantes", articuloHandler.Faltantes)
	articulos.Get("/search", articuloHandler.Search)
	articulos.Get("/:id", articuloHandler.GetByID)
	articulos.Put("/:id", articuloHandler.Update)
	articulos.Post("/:id/baja", articuloHandler.DarDeBaja)
	articulos.Delete("/:id", RequireRole(entity.RolAdmin, entity.RolComprador), articuloHandler.Delete)

	// Proveedores (protegido)
	proveedores := protected.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Post("/", proveedorHandler.Create)
	proveedores.Get("/", proveedorHandler.List)
	proveedores.Get("/:id", proveedorHandler.GetByID)
	proveedores.Put("/:id", proveedorHandler.Update)
	proveedores.Delete("/:id", proveedorHandler.Deactivate)
	proveedores.Get("/:id/articulos", proveedorHandler.ListArticulos)
	proveedores.Post("/:id/articulos", proveedorHandler.AgregarArticulo)
	proveedores.Put("/:id/articulos/:paId", proveedorHandler.ActualizarArticulo)
	proveedores.Delete("/:id/articulos/:paId", proveedorHandler.EliminarArticulo)

	// Órdenes de compra (protegido)
	ordenes := protected.Group("/orden-compra")
	ordenHandler := NewOrdenCompraHandler(deps.OrdenCompraUC)
	ordenes.Post("/", ordenHandler.Create)
	ordenes.Get("/", ordenHandler.List)
	ordenes.Get("/estadisticas", ordenHandler.Estadisticas)
	ordenes.Get("/:id", ordenHandler.GetByID)
	ordenes.Put("/:id", ordenHandler.Update)
	ordenes.Put("/:id/estado", ordenHandler.CambiarEstado)
	ordenes.Delete("/:id", RequireRole(entity.RolAdmin, entity.RolComprador), ordenHandler.Delete)

	// Ventas (protegido)
	ventas := protected.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.VentaUC)
	ventas.Post("/", ventaHandler.Create)
	ventas.Get("/", ventaHandler.List)
	ventas.Get("/:id", ventaHandler.GetByID)
	ventas.Put("/:id", ventaHandler.Update)
	ventas.Delete("/:id", ventaHandler.Delete)
}
