package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-console/internal/application/console"
	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

// ProductHandler acciones de la sección de productos.
type ProductHandler struct {
	console *console.Console
	log     *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(c *console.Console, log *logger.Logger) *ProductHandler {
	return &ProductHandler{console: c, log: log}
}

// New godoc
// @Summary      Abrir el modal de alta de producto
// @Tags         productos
// @Success      303  {string}  string  "Redirección a / (resultado en los toasts)"
// @Router       /productos/nuevo [get]
func (h *ProductHandler) New(c *fiber.Ctx) error {
	h.console.Products.OpenNew()
	return backToPage(c)
}

// Edit godoc
// @Summary      Abrir el modal de edición de producto
// @Tags         productos
// @Param        sku  path  string  true  "SKU del producto"
// @Success      303  {string}  string  "Redirección a / (resultado en los toasts)"
// @Router       /productos/{sku}/editar [get]
func (h *ProductHandler) Edit(c *fiber.Ctx) error {
	logActionError(h.log, c, "editar producto", h.console.Products.Edit(c.UserContext(), skuParam(c)))
	return backToPage(c)
}

// Submit godoc
// @Summary      Crear o actualizar el producto del modal
// @Tags         productos
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        sku  formData  string  false  "SKU (solo alta)"
// @Param        cantidad  formData  string  false  "Cantidad inicial (solo alta)"
// @Param        ubicacion  formData  string  false  "Ubicación en almacén"
// @Param        minimo  formData  string  false  "Stock mínimo"
// @Param        base  formData  string  false  "SKU del producto base"
// @Param        talla  formData  string  false  "Talla"
// @Param        color  formData  string  false  "Color"
// @Param        estado  formData  string  false  "Estado del stock"
// @Success      303  {string}  string  "Redirección a / (resultado en los toasts)"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /productos [post]
func (h *ProductHandler) Submit(c *fiber.Ctx) error {
	var form dto.ProductForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "formulario inválido"})
	}
	logActionError(h.log, c, "guardar producto", h.console.Products.Submit(c.UserContext(), copyProductForm(form)))
	return backToPage(c)
}

// Delete godoc
// @Summary      Eliminar un producto confirmado
// @Tags         productos
// @Accept       x-www-form-urlencoded
// @Param        sku  path  string  true  "SKU del producto"
// @Param        confirmar  formData  string  false  ""true" si el operador confirmó"
// @Success      303  {string}  string  "Redirección a / (resultado en los toasts)"
// @Router       /productos/{sku}/eliminar [post]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	err := h.console.Products.Delete(c.UserContext(), skuParam(c), formConfirmer(c))
	logActionError(h.log, c, "eliminar producto", err)
	return backToPage(c)
}

// Filter godoc
// @Summary      Guardar los criterios del buscador de productos
// @Tags         productos
// @Produce      json
// @Param        q  query  string  false  "Subcadena del SKU"
// @Param        estado  query  string  false  "Estado exacto"
// @Success      303  {string}  string  "Redirección a / (resultado en los toasts)"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /productos/filtro [get]
func (h *ProductHandler) Filter(c *fiber.Ctx) error {
	var f dto.ProductFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtro inválido"})
	}
	f = copyFilter(f)
	h.console.Products.Filter(f.Term, f.Estado)
	return backToPage(c)
}
