package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-console/internal/application/console"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

// MovementHandler búsqueda de historial de movimientos.
type MovementHandler struct {
	console *console.Console
	log     *logger.Logger
}

// NewMovementHandler construye el handler.
func NewMovementHandler(c *console.Console, log *logger.Logger) *MovementHandler {
	return &MovementHandler{console: c, log: log}
}

// Search godoc
// @Summary      Buscar el historial de movimientos de un SKU
// @Tags         movimientos
// @Accept       x-www-form-urlencoded
// @Param        sku  formData  string  false  "SKU"
// @Success      303  {string}  string  "Redirección a / (resultado en los toasts)"
// @Router       /movimientos/buscar [post]
func (h *MovementHandler) Search(c *fiber.Ctx) error {
	logActionError(h.log, c, "buscar movimientos", h.console.Movements.Search(c.UserContext(), formValue(c, "sku")))
	return backToPage(c)
}
