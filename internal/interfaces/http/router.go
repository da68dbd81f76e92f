package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-console/internal/application/console"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Console       *console.Console
	Notifications *console.Notifications // opcional; sin él no se pueden cerrar toasts
	Log           *logger.Logger
}

// Router registra las rutas de la consola: página HTML (PRG) y vistas JSON.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	log := deps.Log.Component("http")

	pageHandler := NewPageHandler(deps.Console, deps.Notifications, log)
	app.Get("/", pageHandler.Index)
	app.Get("/seccion/:section", pageHandler.Navigate)
	app.Post("/modales/cerrar", pageHandler.CloseModals)
	app.Post("/notificaciones/:id/cerrar", pageHandler.DismissToast)

	// Productos
	products := app.Group("/productos")
	productHandler := NewProductHandler(deps.Console, log)
	products.Get("/nuevo", productHandler.New)
	products.Get("/filtro", productHandler.Filter)
	products.Get("/:sku/editar", productHandler.Edit)
	products.Post("/", productHandler.Submit)
	products.Post("/:sku/eliminar", productHandler.Delete)

	// Stock
	stock := app.Group("/stock")
	stockHandler := NewStockHandler(deps.Console, log)
	stock.Post("/actualizar", stockHandler.Update)
	stock.Post("/ajuste-manual", stockHandler.ManualAdjustment)
	stock.Post("/bajo-stock", stockHandler.LowStock)
	stock.Post("/exceso-stock", stockHandler.ExcessStock)
	stock.Get("/consulta.pdf", stockHandler.ExportPDF)

	// Movimientos
	movementHandler := NewMovementHandler(deps.Console, log)
	app.Post("/movimientos/buscar", movementHandler.Search)

	// Alertas
	alerts := app.Group("/alertas")
	alertHandler := NewAlertHandler(deps.Console, log)
	alerts.Get("/nueva", alertHandler.New)
	alerts.Get("/:sku/editar", alertHandler.Edit)
	alerts.Post("/", alertHandler.Submit)
	alerts.Post("/:sku/eliminar", alertHandler.Delete)

	// Vistas JSON
	api := app.Group("/api/console")
	apiHandler := NewAPIHandler(deps.Console)
	api.Get("/state", apiHandler.State)
	api.Get("/dashboard", apiHandler.Dashboard)
	api.Get("/productos", apiHandler.Products)
	api.Get("/openapi.json", apiHandler.Spec)
}
