package console

import (
	"context"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/ports"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

const (
	msgProductCreated       = "Producto creado exitosamente"
	msgProductUpdated       = "Producto actualizado exitosamente"
	msgProductDeleted       = "Producto eliminado exitosamente"
	msgProductSaveError     = "Error al guardar el producto"
	msgProductDeleteError   = "Error al eliminar el producto"
	msgProductLoadError     = "Error al cargar el producto"
	msgConfirmDeleteProduct = "¿Está seguro de que desea eliminar este producto?"
)

// ProductController lista, filtra y hace el CRUD de productos contra el API.
type ProductController struct {
	gw     ports.InventoryGateway
	state  *State
	notify ports.Notifier
	log    *logger.Logger
}

// NewProductController construye el controlador de productos.
func NewProductController(d Deps) *ProductController {
	return &ProductController{gw: d.Gateway, state: d.State, notify: d.Notifier, log: d.logger("productos")}
}

// List reemplaza el store de productos con GET /productos. Si falla, el store queda vacío.
func (c *ProductController) List(ctx context.Context) error {
	gen := c.state.begin(resProducts)
	list, err := c.gw.ListProducts(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("Error loading products")
		c.state.commitProducts(gen, nil)
		return err
	}
	if !c.state.commitProducts(gen, list) {
		c.log.Debug().Uint64("generation", gen).Msg("respuesta de productos obsoleta descartada")
	}
	return nil
}

// Filter guarda los criterios del buscador y devuelve la vista filtrada. El store no cambia.
func (c *ProductController) Filter(term, estado string) []entity.Product {
	c.state.setFilter(dto.ProductFilter{Term: term, Estado: estado})
	return FilterProducts(c.state.Products(), term, estado)
}

// OpenNew abre el modal de alta con el formulario vacío.
func (c *ProductController) OpenNew() {
	c.state.openProductModal(nil)
}

// Edit trae el producto fresco del API y abre el modal de edición pre-llenado.
func (c *ProductController) Edit(ctx context.Context, sku string) error {
	p, err := c.gw.GetProduct(ctx, sku)
	if err != nil {
		c.log.Error().Err(err).Str("sku", sku).Msg("Error loading product")
		c.notify.Notify(dto.ToastError, msgProductLoadError)
		return err
	}
	c.state.openProductModal(p)
	return nil
}

// Submit actualiza si hay un producto en edición; si no, crea.
func (c *ProductController) Submit(ctx context.Context, form dto.ProductForm) error {
	if editing := c.state.EditingProduct(); editing != nil {
		return c.Update(ctx, editing.SKU, form)
	}
	return c.Create(ctx, form)
}

// Create POST /productos.
func (c *ProductController) Create(ctx context.Context, form dto.ProductForm) error {
	return c.save(ctx, "", form)
}

// Update PUT /productos/{sku}. El SKU no es editable: se toma del argumento.
func (c *ProductController) Update(ctx context.Context, sku string, form dto.ProductForm) error {
	return c.save(ctx, sku, form)
}

func (c *ProductController) save(ctx context.Context, sku string, form dto.ProductForm) error {
	if sku != "" {
		form.SKU = sku
	}
	payload := NormalizeProductForm(form)

	var err error
	msg := msgProductCreated
	if sku != "" {
		err = c.gw.UpdateProduct(ctx, sku, payload)
		msg = msgProductUpdated
	} else {
		err = c.gw.CreateProduct(ctx, payload)
	}
	if err != nil {
		c.log.Error().Err(err).Str("sku", form.SKU).Msg("Error saving product")
		c.state.keepProductDraft(form)
		c.notify.Notify(dto.ToastError, msgProductSaveError)
		return err
	}

	c.notify.Notify(dto.ToastSuccess, msg)
	c.state.CloseModals()
	c.afterMutation(ctx)
	return nil
}

// Delete pide confirmación y elimina el producto. Sin confirmación no hay llamada.
func (c *ProductController) Delete(ctx context.Context, sku string, confirm ports.Confirmer) error {
	if confirm == nil || !confirm.Confirm(ctx, msgConfirmDeleteProduct) {
		return nil
	}
	if err := c.gw.DeleteProduct(ctx, sku); err != nil {
		c.log.Error().Err(err).Str("sku", sku).Msg("Error deleting product")
		c.notify.Notify(dto.ToastError, msgProductDeleteError)
		return err
	}
	c.notify.Notify(dto.ToastSuccess, msgProductDeleted)
	c.afterMutation(ctx)
	return nil
}

// afterMutation recarga la tabla y, con el dashboard visible, recalcula sus métricas.
func (c *ProductController) afterMutation(ctx context.Context) {
	_ = c.List(ctx)
	if c.state.Section() == SectionDashboard {
		recomputeStats(c.state)
	}
}
