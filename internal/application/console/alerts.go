package console

import (
	"context"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/ports"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

const (
	msgAlertCreated       = "Alerta creada exitosamente"
	msgAlertUpdated       = "Alerta actualizada exitosamente"
	msgAlertDeleted       = "Alerta eliminada exitosamente"
	msgAlertSaveError     = "Error al guardar la alerta"
	msgAlertDeleteError   = "Error al eliminar la alerta"
	msgAlertLoadError     = "Error al cargar la alerta"
	msgConfirmDeleteAlert = "¿Está seguro de que desea eliminar esta alerta?"
)

// AlertController CRUD de umbrales de alerta y widget de alertas activas.
type AlertController struct {
	gw     ports.InventoryGateway
	state  *State
	notify ports.Notifier
	log    *logger.Logger
}

// NewAlertController construye el controlador de alertas.
func NewAlertController(d Deps) *AlertController {
	return &AlertController{gw: d.Gateway, state: d.State, notify: d.Notifier, log: d.logger("alertas")}
}

// List reemplaza el store de umbrales con GET /umbrales.
func (c *AlertController) List(ctx context.Context) error {
	gen := c.state.begin(resAlerts)
	list, err := c.gw.ListAlerts(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("Error loading alerts")
		c.state.commitAlerts(gen, nil)
		return err
	}
	c.state.commitAlerts(gen, list)
	return nil
}

// LoadActive refresca el widget del dashboard solo con los umbrales activos.
func (c *AlertController) LoadActive(ctx context.Context) error {
	gen := c.state.begin(resActiveAlerts)
	list, err := c.gw.ListAlerts(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("Error loading active alerts")
		c.state.commitActiveAlerts(gen, nil)
		return err
	}
	active := make([]entity.AlertThreshold, 0, len(list))
	for _, a := range list {
		if a.Activo {
			active = append(active, a)
		}
	}
	c.state.commitActiveAlerts(gen, active)
	return nil
}

// OpenNew abre el modal de alta de umbral.
func (c *AlertController) OpenNew() {
	c.state.openAlertModal(nil)
}

// Edit trae el umbral fresco del API y abre el modal pre-llenado.
func (c *AlertController) Edit(ctx context.Context, sku string) error {
	a, err := c.gw.GetAlert(ctx, sku)
	if err != nil {
		c.log.Error().Err(err).Str("sku", sku).Msg("Error loading alert")
		c.notify.Notify(dto.ToastError, msgAlertLoadError)
		return err
	}
	c.state.openAlertModal(a)
	return nil
}

// Submit actualiza si hay un umbral en edición; si no, crea.
func (c *AlertController) Submit(ctx context.Context, form dto.AlertForm) error {
	if editing := c.state.EditingAlert(); editing != nil {
		return c.Update(ctx, editing.SKU, form)
	}
	return c.Create(ctx, form)
}

// Create POST /umbrales.
func (c *AlertController) Create(ctx context.Context, form dto.AlertForm) error {
	return c.save(ctx, "", form)
}

// Update PUT /umbrales/{sku}.
func (c *AlertController) Update(ctx context.Context, sku string, form dto.AlertForm) error {
	return c.save(ctx, sku, form)
}

func (c *AlertController) save(ctx context.Context, sku string, form dto.AlertForm) error {
	if sku != "" {
		form.SKU = sku
	}
	payload := NormalizeAlertForm(form)

	var err error
	msg := msgAlertCreated
	if sku != "" {
		err = c.gw.UpdateAlert(ctx, sku, payload)
		msg = msgAlertUpdated
	} else {
		err = c.gw.CreateAlert(ctx, payload)
	}
	if err != nil {
		c.log.Error().Err(err).Str("sku", form.SKU).Msg("Error saving alert")
		c.state.keepAlertDraft(form)
		c.notify.Notify(dto.ToastError, msgAlertSaveError)
		return err
	}

	c.notify.Notify(dto.ToastSuccess, msg)
	c.state.CloseModals()
	c.afterMutation(ctx)
	return nil
}

// Delete pide confirmación y elimina el umbral.
func (c *AlertController) Delete(ctx context.Context, sku string, confirm ports.Confirmer) error {
	if confirm == nil || !confirm.Confirm(ctx, msgConfirmDeleteAlert) {
		return nil
	}
	if err := c.gw.DeleteAlert(ctx, sku); err != nil {
		c.log.Error().Err(err).Str("sku", sku).Msg("Error deleting alert")
		c.notify.Notify(dto.ToastError, msgAlertDeleteError)
		return err
	}
	c.notify.Notify(dto.ToastSuccess, msgAlertDeleted)
	c.afterMutation(ctx)
	return nil
}

// afterMutation con el dashboard visible refresca el widget; en otro caso, la tabla.
func (c *AlertController) afterMutation(ctx context.Context) {
	if c.state.Section() == SectionDashboard {
		_ = c.LoadActive(ctx)
		return
	}
	_ = c.List(ctx)
}
