package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/application/auth"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/application/usecase"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/cuellojoaquinn/RETAIL-FE-sub000/internal/interfaces/http"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/pkg/config"
	"github.com/cuellojoaquinn/RETAIL-FE-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	articuloRepo := postgres.NewArticuloRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	paRepo := postgres.NewProveedorArticuloRepository(pool)
	ordenRepo := postgres.NewOrdenCompraRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	articuloUC := usecase.NewArticuloUseCase(articuloRepo, ordenRepo)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo, paRepo, articuloRepo, txRunner)
	ordenUC := usecase.NewOrdenCompraUseCase(ordenRepo, articuloRepo, proveedorRepo, paRepo, txRunner)
	ventaUC := usecase.NewVentaUseCase(ventaRepo, articuloRepo, txRunner)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Retail Inventario API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ArticuloUC:    articuloUC,
		ProveedorUC:   proveedorUC,
		OrdenCompraUC: ordenUC,
		VentaUC:       ventaUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
