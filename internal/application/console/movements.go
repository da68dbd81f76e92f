package console

import (
	"context"
	"strings"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/ports"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

const (
	msgMissingSKU       = "Por favor ingrese un SKU para buscar"
	msgMovementsLoadErr = "Error al buscar movimientos"
)

// MovementController consulta el historial de movimientos de un SKU.
type MovementController struct {
	gw     ports.InventoryGateway
	state  *State
	notify ports.Notifier
	log    *logger.Logger
}

// NewMovementController construye el controlador de movimientos.
func NewMovementController(d Deps) *MovementController {
	return &MovementController{gw: d.Gateway, state: d.State, notify: d.Notifier, log: d.logger("movimientos")}
}

// Search normaliza el SKU (trim + mayúsculas) y reemplaza el store con GET /movimientos/{sku}.
// Un SKU vacío solo avisa al operador.
func (c *MovementController) Search(ctx context.Context, raw string) error {
	c.state.setMovementSKU(raw)
	sku := strings.ToUpper(strings.TrimSpace(raw))
	if sku == "" {
		c.notify.Notify(dto.ToastWarning, msgMissingSKU)
		return domain.NewValidationError("sku", "requerido")
	}

	gen := c.state.begin(resMovements)
	list, err := c.gw.ListMovements(ctx, sku)
	if err != nil {
		c.log.Error().Err(err).Str("sku", sku).Msg("Error searching movements")
		c.state.commitMovements(gen, nil)
		c.notify.Notify(dto.ToastError, msgMovementsLoadErr)
		return err
	}
	c.state.commitMovements(gen, list)
	return nil
}
