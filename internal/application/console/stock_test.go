package console

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

func TestUpdateStock_ExitoRecargaProductosSinTocarAlertas(t *testing.T) {
	gw := &fakeGateway{products: sampleProducts()}
	c, notes := newTestConsole(gw)
	require.NoError(t, c.Router.Navigate(context.Background(), "stock"))

	err := c.Stock.UpdateStock(context.Background(), dto.StockUpdateForm{
		SKU: "CAM-001-M-AZUL", Cantidad: "10", Tipo: "ENTRADA", Referencia: "OC-1", Motivo: "compra",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"UpdateStock", "ListProducts"}, gw.Calls())
	require.Len(t, gw.stockPayloads, 1)
	require.NotNil(t, gw.stockPayloads[0].Cantidad)
	assert.Equal(t, 10, *gw.stockPayloads[0].Cantidad)
	assert.Equal(t, "ENTRADA", gw.stockPayloads[0].TipoMovimiento)
	assert.Equal(t, "OC-1", gw.stockPayloads[0].ReferenciaExterna)

	assert.Equal(t, "Stock actualizado exitosamente", notes.last().Message)
	assert.Equal(t, dto.StockUpdateForm{}, c.State.Snapshot().StockDraft, "el formulario se limpia")
	assert.Len(t, c.State.Products(), 2)
	assert.Zero(t, c.State.Stats().TotalProductos, "no recalcula el dashboard")
}

func TestUpdateStock_FalloConservaFormulario(t *testing.T) {
	gw := &fakeGateway{stockErr: errBackend}
	c, notes := newTestConsole(gw)

	form := dto.StockUpdateForm{SKU: "X", Cantidad: "3", Tipo: "SALIDA"}
	err := c.Stock.UpdateStock(context.Background(), form)

	assert.ErrorIs(t, err, domain.ErrRequestFailed)
	assert.Equal(t, "Error al actualizar el stock", notes.last().Message)
	assert.Equal(t, form, c.State.Snapshot().StockDraft)
	assert.Equal(t, []string{"UpdateStock"}, gw.Calls())
}

func TestManualAdjustment_Exito(t *testing.T) {
	gw := &fakeGateway{}
	c, notes := newTestConsole(gw)

	err := c.Stock.ManualAdjustment(context.Background(), dto.ManualAdjustmentForm{
		SKU: "X", Cantidad: "-2", Tipo: "AJUSTE_NEGATIVO", Motivo: "merma",
	})
	require.NoError(t, err)

	require.Len(t, gw.adjustPayloads, 1)
	require.NotNil(t, gw.adjustPayloads[0].Cantidad)
	assert.Equal(t, -2, *gw.adjustPayloads[0].Cantidad)
	assert.Equal(t, "Ajuste manual realizado exitosamente", notes.last().Message)
	assert.Equal(t, 1, gw.count("ListProducts"))
}

func TestManualAdjustment_Fallo(t *testing.T) {
	gw := &fakeGateway{stockErr: errBackend}
	c, notes := newTestConsole(gw)

	form := dto.ManualAdjustmentForm{SKU: "X", Cantidad: "1"}
	assert.Error(t, c.Stock.ManualAdjustment(context.Background(), form))
	assert.Equal(t, "Error al realizar el ajuste manual", notes.last().Message)
	assert.Equal(t, form, c.State.Snapshot().AdjustmentDraft)
}

func TestQueryLowStock_NoTocaStoreDeProductos(t *testing.T) {
	gw := &fakeGateway{
		products: sampleProducts(),
		low:      []entity.Product{{SKU: "CAM-002-L-ROJO", CantidadDisponible: 5, CantidadMinimaStock: 10}},
	}
	c, _ := newTestConsole(gw)
	require.NoError(t, c.Products.List(context.Background()))

	require.NoError(t, c.Stock.QueryLowStock(context.Background(), "10"))

	assert.Equal(t, []int{10}, gw.thresholds)
	assert.Len(t, c.State.Products(), 2)
	q := c.Page().Query
	require.NotNil(t, q)
	assert.Equal(t, "Productos con Stock Bajo", q.Title)
	require.Len(t, q.Rows, 1)
	assert.Equal(t, "CAM-002-L-ROJO", q.Rows[0].SKU)
	assert.Equal(t, "-", q.Rows[0].Ubicacion)
}

func TestQueryExcessStock_SinResultados(t *testing.T) {
	gw := &fakeGateway{}
	c, _ := newTestConsole(gw)

	require.NoError(t, c.Stock.QueryExcessStock(context.Background(), "100"))
	q := c.Page().Query
	require.NotNil(t, q)
	assert.Equal(t, "Productos con Stock Excesivo", q.Title)
	assert.Empty(t, q.Rows)
	assert.NotEmpty(t, q.Vacio)
}

func TestQueryStock_UmbralNoNumericoNoLlamaAlAPI(t *testing.T) {
	gw := &fakeGateway{}
	c, notes := newTestConsole(gw)

	err := c.Stock.QueryLowStock(context.Background(), "diez")

	assert.ErrorIs(t, err, domain.ErrValidationFailed)
	assert.Empty(t, gw.Calls())
	assert.Equal(t, dto.ToastWarning, notes.last().Kind)
}

func TestQueryStock_FalloLimpiaResultado(t *testing.T) {
	gw := &fakeGateway{low: []entity.Product{{SKU: "A"}}}
	c, notes := newTestConsole(gw)
	require.NoError(t, c.Stock.QueryLowStock(context.Background(), "5"))

	gw.stockErr = errBackend
	assert.Error(t, c.Stock.QueryLowStock(context.Background(), "5"))
	assert.Nil(t, c.State.Query())
	assert.Equal(t, "Error al consultar productos con stock bajo", notes.last().Message)
}

func TestExportQueryPDF(t *testing.T) {
	gw := &fakeGateway{low: []entity.Product{{SKU: "A", CantidadDisponible: 1, CantidadMinimaStock: 3}}}
	reports := &fakeReports{}
	c := New(Deps{Gateway: gw, Notifier: &recordingNotifier{}, Reports: reports}, Options{})

	_, err := c.Stock.ExportQueryPDF(context.Background())
	assert.ErrorIs(t, err, domain.ErrValidationFailed, "sin consulta previa no hay reporte")

	require.NoError(t, c.Stock.QueryLowStock(context.Background(), "3"))
	pdf, err := c.Stock.ExportQueryPDF(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, dto.StockQueryLow, reports.got.Kind)
	assert.Equal(t, 3, reports.got.Umbral)
	require.Len(t, reports.got.Rows, 1)
	assert.Equal(t, "A", reports.got.Rows[0].SKU)
}

func TestExportQueryPDF_FalloDelGenerador(t *testing.T) {
	gw := &fakeGateway{low: []entity.Product{{SKU: "A"}}}
	notes := &recordingNotifier{}
	c := New(Deps{Gateway: gw, Notifier: notes, Reports: &fakeReports{err: errors.New("fuente no disponible")}}, Options{})
	require.NoError(t, c.Stock.QueryLowStock(context.Background(), "3"))

	_, err := c.Stock.ExportQueryPDF(context.Background())
	assert.Error(t, err)
	assert.Equal(t, "Error al generar el reporte PDF", notes.last().Message)
}
