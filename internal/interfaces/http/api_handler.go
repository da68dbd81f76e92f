package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"

	"github.com/jhoicas/inventario-console/internal/application/console"
	"github.com/jhoicas/inventario-console/internal/application/dto"
)

// APIHandler vistas JSON del estado de la consola (solo lectura, sin llamadas al API).
type APIHandler struct {
	console *console.Console
}

// NewAPIHandler construye el handler.
func NewAPIHandler(c *console.Console) *APIHandler {
	return &APIHandler{console: c}
}

// State godoc
// @Summary      Modelo de vista completo
// @Tags         console
// @Produce      json
// @Success      200  {object}  dto.PageView
// @Router       /api/console/state [get]
func (h *APIHandler) State(c *fiber.Ctx) error {
	return c.JSON(h.console.Page())
}

// Dashboard godoc
// @Summary      Métricas del dashboard y alertas activas
// @Tags         console
// @Produce      json
// @Success      200  {object}  dto.DashboardView
// @Router       /api/console/dashboard [get]
func (h *APIHandler) Dashboard(c *fiber.Ctx) error {
	return c.JSON(h.console.Page().Dashboard)
}

// Products godoc
// @Summary      Productos en memoria, filtrados
// @Tags         console
// @Produce      json
// @Param        q       query  string  false  "Subcadena del SKU (sin distinguir mayúsculas)"
// @Param        estado  query  string  false  "Estado exacto"
// @Success      200     {array}   entity.Product
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/console/productos [get]
func (h *APIHandler) Products(c *fiber.Ctx) error {
	var f dto.ProductFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtro inválido"})
	}
	return c.JSON(console.FilterProducts(h.console.State.Products(), f.Term, f.Estado))
}

// Spec godoc
// @Summary      Documento OpenAPI registrado
// @Tags         console
// @Produce      json
// @Success      200  {object}  object
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/console/openapi.json [get]
func (h *APIHandler) Spec(c *fiber.Ctx) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_DOCS", Message: "documentación no registrada"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.SendString(doc)
}
