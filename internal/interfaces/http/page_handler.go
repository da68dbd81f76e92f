package http

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-console/internal/application/console"
	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.New("console.html").Funcs(template.FuncMap{
	"upper": strings.ToUpper,
}).ParseFS(templatesFS, "templates/console.html"))

// PageHandler sirve la página de la consola y las acciones de navegación.
type PageHandler struct {
	console *console.Console
	toasts  *console.Notifications
	log     *logger.Logger
}

// NewPageHandler construye el handler de la página.
func NewPageHandler(c *console.Console, toasts *console.Notifications, log *logger.Logger) *PageHandler {
	return &PageHandler{console: c, toasts: toasts, log: log}
}

// Index godoc
// @Summary      Página de la consola en la sección actual
// @Tags         page
// @Produce      html
// @Success      200  {string}  string  "Página HTML"
// @Router       / [get]
func (h *PageHandler) Index(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, h.console.Page()); err != nil {
		h.log.Error().Err(err).Msg("render de la página")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RENDER", Message: "no se pudo renderizar la consola"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

// Navigate godoc
// @Summary      Activar una sección y cargar sus datos
// @Tags         page
// @Produce      json
// @Param        section  path  string  true  "dashboard | productos | stock | movimientos | alertas"
// @Success      303  {string}  string  "Redirección a / (resultado en los toasts)"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /seccion/{section} [get]
func (h *PageHandler) Navigate(c *fiber.Ctx) error {
	err := h.console.Router.Navigate(c.UserContext(), param(c, "section"))
	if errors.Is(err, domain.ErrUnknownSection) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_SECTION", Message: "sección desconocida"})
	}
	logActionError(h.log, c, "navegar", err)
	return backToPage(c)
}

// CloseModals godoc
// @Summary      Cerrar el modal abierto
// @Tags         page
// @Success      303  {string}  string  "Redirección a / (resultado en los toasts)"
// @Router       /modales/cerrar [post]
func (h *PageHandler) CloseModals(c *fiber.Ctx) error {
	h.console.State.CloseModals()
	return backToPage(c)
}

// DismissToast godoc
// @Summary      Cerrar una notificación
// @Tags         page
// @Param        id  path  string  true  "ID de la notificación"
// @Success      303  {string}  string  "Redirección a / (resultado en los toasts)"
// @Router       /notificaciones/{id}/cerrar [post]
func (h *PageHandler) DismissToast(c *fiber.Ctx) error {
	if h.toasts != nil {
		h.toasts.Dismiss(param(c, "id"))
	}
	return backToPage(c)
}
