package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-console/internal/application/console"
	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

// AlertHandler acciones de la sección de umbrales de alerta.
type AlertHandler struct {
	console *console.Console
	log     *logger.Logger
}

// NewAlertHandler construye el handler.
func NewAlertHandler(c *console.Console, log *logger.Logger) *AlertHandler {
	return &AlertHandler{console: c, log: log}
}

// New godoc
// @Summary      Abrir el modal de alta de umbral
// @Tags         alertas
// @Success      303  {string}  string  "Redirección a / (resultado en los toasts)"
// @Router       /alertas/nueva [get]
func (h *AlertHandler) New(c *fiber.Ctx) error {
	h.console.Alerts.OpenNew()
	return backToPage(c)
}

// Edit godoc
// @Summary      Abrir el modal de edición de umbral
// @Tags         alertas
// @Param        sku  path  string  true  "SKU del umbral"
// @Success      303  {string}  string  "Redirección a / (resultado en los toasts)"
// @Router       /alertas/{sku}/editar [get]
func (h *AlertHandler) Edit(c *fiber.Ctx) error {
	logActionError(h.log, c, "editar alerta", h.console.Alerts.Edit(c.UserContext(), skuParam(c)))
	return backToPage(c)
}

// Submit godoc
// @Summary      Crear o actualizar el umbral del modal
// @Tags         alertas
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        sku  formData  string  false  "SKU (solo alta)"
// @Param        tipo  formData  string  false  "Tipo de alerta"
// @Param        umbral  formData  string  false  "Cantidad umbral"
// @Param        activo  formData  string  false  ""true" o "false""
// @Success      303  {string}  string  "Redirección a / (resultado en los toasts)"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /alertas [post]
func (h *AlertHandler) Submit(c *fiber.Ctx) error {
	var form dto.AlertForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "formulario inválido"})
	}
	logActionError(h.log, c, "guardar alerta", h.console.Alerts.Submit(c.UserContext(), copyAlertForm(form)))
	return backToPage(c)
}

// Delete godoc
// @Summary      Eliminar un umbral confirmado
// @Tags         alertas
// @Accept       x-www-form-urlencoded
// @Param        sku  path  string  true  "SKU del umbral"
// @Param        confirmar  formData  string  false  ""true" si el operador confirmó"
// @Success      303  {string}  string  "Redirección a / (resultado en los toasts)"
// @Router       /alertas/{sku}/eliminar [post]
func (h *AlertHandler) Delete(c *fiber.Ctx) error {
	err := h.console.Alerts.Delete(c.UserContext(), skuParam(c), formConfirmer(c))
	logActionError(h.log, c, "eliminar alerta", err)
	return backToPage(c)
}
