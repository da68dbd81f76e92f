package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-console/internal/application/console"
	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

// StockHandler acciones de la sección de stock.
type StockHandler struct {
	console *console.Console
	log     *logger.Logger
}

// NewStockHandler construye el handler.
func NewStockHandler(c *console.Console, log *logger.Logger) *StockHandler {
	return &StockHandler{console: c, log: log}
}

// Update godoc
// @Summary      Registrar un movimiento de stock
// @Tags         stock
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        sku  formData  string  false  "SKU"
// @Param        cantidad  formData  string  false  "Cantidad"
// @Param        tipo  formData  string  false  "Tipo de movimiento"
// @Param        referencia  formData  string  false  "Referencia externa"
// @Param        motivo  formData  string  false  "Motivo"
// @Success      303  {string}  string  "Redirección a / (resultado en los toasts)"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /stock/actualizar [post]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	var form dto.StockUpdateForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "formulario inválido"})
	}
	logActionError(h.log, c, "actualizar stock", h.console.Stock.UpdateStock(c.UserContext(), copyStockUpdateForm(form)))
	return backToPage(c)
}

// ManualAdjustment godoc
// @Summary      Registrar un ajuste manual de stock
// @Tags         stock
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        sku  formData  string  false  "SKU"
// @Param        cantidad  formData  string  false  "Cantidad"
// @Param        tipo  formData  string  false  "Tipo de movimiento"
// @Param        motivo  formData  string  false  "Motivo"
// @Success      303  {string}  string  "Redirección a / (resultado en los toasts)"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /stock/ajuste-manual [post]
func (h *StockHandler) ManualAdjustment(c *fiber.Ctx) error {
	var form dto.ManualAdjustmentForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "formulario inválido"})
	}
	logActionError(h.log, c, "ajuste manual", h.console.Stock.ManualAdjustment(c.UserContext(), copyAdjustmentForm(form)))
	return backToPage(c)
}

// LowStock godoc
// @Summary      Consultar productos con stock bajo
// @Tags         stock
// @Accept       x-www-form-urlencoded
// @Param        umbral  formData  string  false  "Umbral entero"
// @Success      303  {string}  string  "Redirección a / (resultado en los toasts)"
// @Router       /stock/bajo-stock [post]
func (h *StockHandler) LowStock(c *fiber.Ctx) error {
	logActionError(h.log, c, "consulta bajo stock", h.console.Stock.QueryLowStock(c.UserContext(), formValue(c, "umbral")))
	return backToPage(c)
}

// ExcessStock godoc
// @Summary      Consultar productos con stock excesivo
// @Tags         stock
// @Accept       x-www-form-urlencoded
// @Param        umbral  formData  string  false  "Umbral entero"
// @Success      303  {string}  string  "Redirección a / (resultado en los toasts)"
// @Router       /stock/exceso-stock [post]
func (h *StockHandler) ExcessStock(c *fiber.Ctx) error {
	logActionError(h.log, c, "consulta exceso stock", h.console.Stock.QueryExcessStock(c.UserContext(), formValue(c, "umbral")))
	return backToPage(c)
}

// ExportPDF godoc
// @Summary      Descargar la última consulta de stock en PDF
// @Tags         stock
// @Produce      application/pdf
// @Success      200  {file}  file  "Reporte PDF"
// @Success      303  {string}  string  "Sin consulta que exportar"
// @Router       /stock/consulta.pdf [get]
func (h *StockHandler) ExportPDF(c *fiber.Ctx) error {
	pdf, err := h.console.Stock.ExportQueryPDF(c.UserContext())
	if err != nil {
		logActionError(h.log, c, "exportar consulta", err)
		return backToPage(c)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="consulta-stock.pdf"`)
	return c.Send(pdf)
}
