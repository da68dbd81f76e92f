package console

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

func TestStatusLabelYBadge(t *testing.T) {
	assert.Equal(t, "DADO DE BAJA", statusLabel("DADO_DE_BAJA"))
	assert.Equal(t, "dado-de-baja", badgeClass("DADO_DE_BAJA"))
	assert.Equal(t, "en-transito", badgeClass("EN_TRANSITO"))
}

func TestFilterProducts(t *testing.T) {
	list := []entity.Product{
		{SKU: "CAM-001", Estado: entity.EstadoDisponible},
		{SKU: "cam-002", Estado: entity.EstadoVendido},
		{SKU: "PAN-001", Estado: entity.EstadoDisponible},
	}
	original := append([]entity.Product(nil), list...)

	got := FilterProducts(list, "CAM", "")
	assert.Len(t, got, 2)

	got = FilterProducts(list, "cam", "VENDIDO")
	require.Len(t, got, 1)
	assert.Equal(t, "cam-002", got[0].SKU)

	assert.Len(t, FilterProducts(list, "", ""), 3)
	assert.Empty(t, FilterProducts(list, "xyz", ""))
	assert.Equal(t, original, list, "la lista de entrada no se modifica")
}

func TestRenderProductTable(t *testing.T) {
	f := NewFormatter("es-CO")
	view := RenderProductTable([]entity.Product{
		{SKU: "A", CantidadDisponible: 3, CantidadReservada: 1},
		{SKU: "B", Estado: entity.EstadoDadoDeBaja, UbicacionAlmacen: "B-1"},
	}, false, f)

	require.Len(t, view.Rows, 2)
	assert.Equal(t, dto.ProductRow{
		SKU: "A", Disponible: "3", Reservada: "1", Ubicacion: "-",
		Estado: "DISPONIBLE", EstadoLabel: "DISPONIBLE", BadgeClass: "disponible",
	}, view.Rows[0])
	assert.Equal(t, "DADO DE BAJA", view.Rows[1].EstadoLabel)
	assert.Equal(t, "dado-de-baja", view.Rows[1].BadgeClass)
	assert.Empty(t, view.Vacio)

	assert.Equal(t, "No hay productos registrados", RenderProductTable(nil, false, f).Vacio)
	assert.Equal(t, "No se encontraron productos", RenderProductTable(nil, true, f).Vacio)
}

func TestRenderAlertTable(t *testing.T) {
	f := NewFormatter("es-CO")
	created := entity.LocalDateTime{Time: time.Date(2024, 1, 15, 8, 0, 0, 0, time.Local)}
	view := RenderAlertTable([]entity.AlertThreshold{
		{SKU: "A", TipoAlerta: entity.AlertaSinMovimiento, UmbralCantidad: 30, Activo: true, FechaCreacion: created},
		{SKU: "B", Activo: false},
	}, f)

	require.Len(t, view.Rows, 2)
	assert.Equal(t, "SIN MOVIMIENTO", view.Rows[0].Tipo)
	assert.Equal(t, "Activo", view.Rows[0].ActivoLabel)
	assert.Equal(t, "disponible", view.Rows[0].BadgeClass)
	assert.Equal(t, "15/01/2024", view.Rows[0].Fecha)

	assert.Equal(t, "-", view.Rows[1].Tipo)
	assert.Equal(t, "Inactivo", view.Rows[1].ActivoLabel)
	assert.Equal(t, "dado-de-baja", view.Rows[1].BadgeClass)
	assert.Equal(t, "-", view.Rows[1].Fecha, "fecha ausente se muestra como guion")

	assert.Equal(t, "No hay alertas configuradas", RenderAlertTable(nil, f).Vacio)
}

func TestBuildPage_EstadoInicial(t *testing.T) {
	page := BuildPage(NewState().Snapshot(), nil, NewFormatter(""), "Consola")

	assert.Equal(t, "dashboard", page.Section)
	require.Len(t, page.Nav, 5)
	assert.True(t, page.Nav[0].Active)
	assert.Equal(t, "Movimientos", page.Nav[3].Label)
	assert.NotNil(t, page.Toasts)
	assert.Nil(t, page.Modal)
	assert.Nil(t, page.Query)
	assert.Len(t, page.Estados, 6)
	assert.Len(t, page.TiposMovimiento, 8)
	assert.Equal(t, []string{"BAJO_STOCK", "EXCESO_STOCK", "SIN_MOVIMIENTO"}, page.TiposAlerta)
	assert.Equal(t, "No hay alertas activas", page.Dashboard.AlertasVacio)
}

func TestBuildPage_ModalNuevoProducto(t *testing.T) {
	s := NewState()
	s.openProductModal(nil)

	page := BuildPage(s.Snapshot(), nil, NewFormatter("es-CO"), "")
	require.NotNil(t, page.Modal)
	assert.Equal(t, "producto", page.Modal.Kind)
	assert.Equal(t, "Nuevo Producto", page.Modal.Title)
	assert.False(t, page.Modal.Editing)
}

func TestFormatter_LocaleInvalidoUsaPorDefecto(t *testing.T) {
	f := NewFormatter("???")
	assert.Equal(t, "es-CO", f.Locale())
	assert.Equal(t, "-", f.DateTime(entity.LocalDateTime{}))
	assert.Equal(t, "42", f.Int(42))
}
