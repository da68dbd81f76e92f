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

	// Registra el documento OpenAPI que sirve /api/console/openapi.json.
	_ "github.com/jhoicas/inventario-console/docs"
	"github.com/jhoicas/inventario-console/internal/application/console"
	"github.com/jhoicas/inventario-console/internal/infrastructure/inventoryapi"
	infrapdf "github.com/jhoicas/inventario-console/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/inventario-console/internal/interfaces/http"
	"github.com/jhoicas/inventario-console/pkg/config"
	"github.com/jhoicas/inventario-console/pkg/jwt"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("inventory_api", cfg.InventoryAPI.BaseURL).
		Msg("iniciando consola")

	notes := console.NewNotifications(cfg.Console.ToastTTL, log)
	state := console.NewState()

	// Sin secreto las llamadas salen sin header Authorization.
	var tokens *jwt.TokenSource
	if cfg.InventoryAPI.JWTSecret != "" {
		tokens = jwt.NewTokenSource(cfg.InventoryAPI.JWTSecret, cfg.InventoryAPI.JWTSubject, cfg.InventoryAPI.JWTIssuer, 0)
	}

	gateway := inventoryapi.NewClient(inventoryapi.Config{
		BaseURL:  cfg.InventoryAPI.BaseURL,
		Timeout:  cfg.InventoryAPI.Timeout,
		Tokens:   tokens,
		Loading:  state,
		Notifier: notes,
		Log:      log,
	})

	con := console.New(console.Deps{
		Gateway:  gateway,
		State:    state,
		Notifier: notes,
		Reports:  infrapdf.NewStockReportGenerator(cfg.App.Name),
		Log:      log,
	}, console.Options{
		AppName: cfg.App.Name,
		Locale:  cfg.Console.Locale,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Immutable:    true,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en http://localhost:<port>/docs
	if cfg.Console.DocsFile != "" {
		if _, err := os.Stat(cfg.Console.DocsFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.Console.DocsFile,
				Path:     "docs",
				Title:    cfg.App.Name,
			}))
		} else {
			log.Warn().Str("file", cfg.Console.DocsFile).Msg("swagger.json no encontrado; /docs deshabilitado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Console:       con,
		Notifications: notes,
		Log:           log,
	})

	// Carga inicial del dashboard, como al abrir la consola.
	if err := con.Router.Navigate(context.Background(), string(console.SectionDashboard)); err != nil {
		log.Warn().Err(err).Msg("carga inicial del dashboard")
	}

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

	log.Info().Msg("consola detenida")
}
