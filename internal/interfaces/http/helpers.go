package http

import (
	"context"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/ports"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

// backToPage cierra el ciclo POST/redirect/GET: el resultado de la acción ya quedó
// en el estado y en los toasts.
func backToPage(c *fiber.Ctx) error {
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Los strings de Params, FormValue, BodyParser y QueryParser apuntan al buffer de la
// petición, que fasthttp reutiliza. Todo lo que el estado guarda se copia antes.

// param valor del path, copiado.
func param(c *fiber.Ctx, key string) string {
	return utils.CopyString(c.Params(key))
}

// formValue valor del formulario, copiado.
func formValue(c *fiber.Ctx, key string) string {
	return utils.CopyString(c.FormValue(key))
}

// skuParam SKU del path, des-escapado y copiado.
func skuParam(c *fiber.Ctx) string {
	raw := param(c, "sku")
	if sku, err := url.PathUnescape(raw); err == nil {
		return sku
	}
	return raw
}

func copyProductForm(f dto.ProductForm) dto.ProductForm {
	return dto.ProductForm{
		SKU:       utils.CopyString(f.SKU),
		Cantidad:  utils.CopyString(f.Cantidad),
		Ubicacion: utils.CopyString(f.Ubicacion),
		Minimo:    utils.CopyString(f.Minimo),
		Base:      utils.CopyString(f.Base),
		Talla:     utils.CopyString(f.Talla),
		Color:     utils.CopyString(f.Color),
		Estado:    utils.CopyString(f.Estado),
	}
}

func copyAlertForm(f dto.AlertForm) dto.AlertForm {
	return dto.AlertForm{
		SKU:    utils.CopyString(f.SKU),
		Tipo:   utils.CopyString(f.Tipo),
		Umbral: utils.CopyString(f.Umbral),
		Activo: utils.CopyString(f.Activo),
	}
}

func copyStockUpdateForm(f dto.StockUpdateForm) dto.StockUpdateForm {
	return dto.StockUpdateForm{
		SKU:        utils.CopyString(f.SKU),
		Cantidad:   utils.CopyString(f.Cantidad),
		Tipo:       utils.CopyString(f.Tipo),
		Referencia: utils.CopyString(f.Referencia),
		Motivo:     utils.CopyString(f.Motivo),
	}
}

func copyAdjustmentForm(f dto.ManualAdjustmentForm) dto.ManualAdjustmentForm {
	return dto.ManualAdjustmentForm{
		SKU:      utils.CopyString(f.SKU),
		Cantidad: utils.CopyString(f.Cantidad),
		Tipo:     utils.CopyString(f.Tipo),
		Motivo:   utils.CopyString(f.Motivo),
	}
}

func copyFilter(f dto.ProductFilter) dto.ProductFilter {
	return dto.ProductFilter{Term: utils.CopyString(f.Term), Estado: utils.CopyString(f.Estado)}
}

// formConfirmer traduce el campo oculto "confirmar" (lo llena window.confirm en el
// navegador) al puerto Confirmer.
func formConfirmer(c *fiber.Ctx) ports.Confirmer {
	accepted := c.FormValue("confirmar") == "true"
	return ports.ConfirmFunc(func(context.Context, string) bool { return accepted })
}

// logActionError registra el error de una acción; la notificación al operador ya la emitió
// el controlador.
func logActionError(log *logger.Logger, c *fiber.Ctx, action string, err error) {
	if err == nil {
		return
	}
	log.Warn().Err(err).Str("action", action).Str("path", c.Path()).Msg("acción de consola fallida")
}

// RequestLogger middleware de log por petición (método, ruta, status, duración).
func RequestLogger(log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("elapsed", time.Since(start)).
			Msg("request")
		return err
	}
}
