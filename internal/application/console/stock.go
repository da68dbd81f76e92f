package console

import (
	"context"
	"errors"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/ports"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

const (
	msgStockUpdated       = "Stock actualizado exitosamente"
	msgStockUpdateError   = "Error al actualizar el stock"
	msgAdjustmentDone     = "Ajuste manual realizado exitosamente"
	msgAdjustmentError    = "Error al realizar el ajuste manual"
	msgLowStockError      = "Error al consultar productos con stock bajo"
	msgExcessStockError   = "Error al consultar productos con stock excesivo"
	msgInvalidThreshold   = "Por favor ingrese un umbral numérico"
	msgNoQueryToExport    = "No hay resultados de consulta para exportar"
	msgReportExportFailed = "Error al generar el reporte PDF"
)

// StockController movimientos de stock y consultas de stock bajo/excesivo.
// Ninguna operación toca el dashboard ni el store de alertas.
type StockController struct {
	gw        ports.InventoryGateway
	state     *State
	notify    ports.Notifier
	products  *ProductController
	reports   ports.StockReportGenerator
	formatter *Formatter
	log       *logger.Logger
}

// NewStockController construye el controlador de stock.
func NewStockController(d Deps, products *ProductController, formatter *Formatter) *StockController {
	return &StockController{
		gw:        d.Gateway,
		state:     d.State,
		notify:    d.Notifier,
		products:  products,
		reports:   d.Reports,
		formatter: formatter,
		log:       d.logger("stock"),
	}
}

// UpdateStock PUT /productos/stock. Con éxito limpia el formulario y recarga productos.
func (c *StockController) UpdateStock(ctx context.Context, form dto.StockUpdateForm) error {
	if err := c.gw.UpdateStock(ctx, NormalizeStockUpdateForm(form)); err != nil {
		c.log.Error().Err(err).Str("sku", form.SKU).Msg("Error updating stock")
		c.state.setStockDraft(form)
		c.notify.Notify(dto.ToastError, msgStockUpdateError)
		return err
	}
	c.notify.Notify(dto.ToastSuccess, msgStockUpdated)
	c.state.setStockDraft(dto.StockUpdateForm{})
	_ = c.products.List(ctx)
	return nil
}

// ManualAdjustment POST /productos/stock/ajuste-manual.
func (c *StockController) ManualAdjustment(ctx context.Context, form dto.ManualAdjustmentForm) error {
	if err := c.gw.ManualAdjustment(ctx, NormalizeManualAdjustmentForm(form)); err != nil {
		c.log.Error().Err(err).Str("sku", form.SKU).Msg("Error in manual adjustment")
		c.state.setAdjustmentDraft(form)
		c.notify.Notify(dto.ToastError, msgAdjustmentError)
		return err
	}
	c.notify.Notify(dto.ToastSuccess, msgAdjustmentDone)
	c.state.setAdjustmentDraft(dto.ManualAdjustmentForm{})
	_ = c.products.List(ctx)
	return nil
}

// QueryLowStock GET /productos/bajo-stock/{umbral}.
func (c *StockController) QueryLowStock(ctx context.Context, umbral string) error {
	return c.query(ctx, dto.StockQueryLow, umbral)
}

// QueryExcessStock GET /productos/exceso-stock/{umbral}.
func (c *StockController) QueryExcessStock(ctx context.Context, umbral string) error {
	return c.query(ctx, dto.StockQueryExcess, umbral)
}

func (c *StockController) query(ctx context.Context, kind dto.StockQueryKind, raw string) error {
	umbral, ok := parseLeadingInt(raw)
	if !ok {
		c.notify.Notify(dto.ToastWarning, msgInvalidThreshold)
		return domain.NewValidationError("umbral", "debe ser numérico")
	}

	gen := c.state.begin(resStockQuery)
	var (
		list []entity.Product
		err  error
	)
	if kind == dto.StockQueryLow {
		list, err = c.gw.LowStock(ctx, umbral)
	} else {
		list, err = c.gw.ExcessStock(ctx, umbral)
	}
	if err != nil {
		c.log.Error().Err(err).Str("kind", string(kind)).Int("umbral", umbral).Msg("Error querying stock")
		c.state.commitQuery(gen, nil)
		msg := msgLowStockError
		if kind == dto.StockQueryExcess {
			msg = msgExcessStockError
		}
		c.notify.Notify(dto.ToastError, msg)
		return err
	}
	c.state.commitQuery(gen, &QueryResult{Kind: kind, Umbral: umbral, Products: list})
	return nil
}

// ExportQueryPDF genera el PDF del último resultado de consulta.
func (c *StockController) ExportQueryPDF(ctx context.Context) ([]byte, error) {
	view := RenderQueryResult(c.state.Query(), c.formatter)
	if view == nil {
		c.notify.Notify(dto.ToastWarning, msgNoQueryToExport)
		return nil, domain.NewValidationError("consulta", "no hay resultados para exportar")
	}
	if c.reports == nil {
		return nil, errors.New("generador de reportes no configurado")
	}
	pdf, err := c.reports.GenerateStockReport(ctx, *view)
	if err != nil {
		c.log.Error().Err(err).Str("kind", string(view.Kind)).Msg("Error generating stock report")
		c.notify.Notify(dto.ToastError, msgReportExportFailed)
		return nil, err
	}
	return pdf, nil
}
