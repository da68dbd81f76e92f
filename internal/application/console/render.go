package console

import (
	"strings"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// Textos de estado vacío.
const (
	emptyCell         = "-"
	emptyProducts     = "No hay productos registrados"
	emptyFiltered     = "No se encontraron productos"
	emptyMovements    = "No se encontraron movimientos"
	emptyAlerts       = "No hay alertas configuradas"
	emptyActiveAlerts = "No hay alertas activas"
	emptyQuery        = "No se encontraron productos para el umbral indicado"
)

// statusLabel etiqueta visible de un enum: todos los "_" pasan a espacio.
func statusLabel(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

// badgeClass clase CSS del badge: minúsculas y "_" → "-".
func badgeClass(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "_", "-")
}

func orDash(s string) string {
	if s == "" {
		return emptyCell
	}
	return s
}

// RenderProductTable filas de la tabla de productos. filtered elige el texto de estado vacío.
func RenderProductTable(list []entity.Product, filtered bool, f *Formatter) dto.ProductTableView {
	view := dto.ProductTableView{Rows: make([]dto.ProductRow, 0, len(list))}
	for _, p := range list {
		estado := string(p.Estado.OrDefault())
		view.Rows = append(view.Rows, dto.ProductRow{
			SKU:         p.SKU,
			Disponible:  f.Int(p.CantidadDisponible),
			Reservada:   f.Int(p.CantidadReservada),
			Ubicacion:   orDash(p.UbicacionAlmacen),
			Estado:      estado,
			EstadoLabel: statusLabel(estado),
			BadgeClass:  badgeClass(estado),
		})
	}
	if len(view.Rows) == 0 {
		view.Vacio = emptyProducts
		if filtered {
			view.Vacio = emptyFiltered
		}
	}
	return view
}

// RenderMovementTable historial de movimientos de un SKU.
func RenderMovementTable(list []entity.Movement, f *Formatter) dto.MovementTableView {
	view := dto.MovementTableView{Rows: make([]dto.MovementRow, 0, len(list))}
	for _, m := range list {
		view.Rows = append(view.Rows, dto.MovementRow{
			ID:         f.ID(m.ID),
			SKU:        m.SKU,
			Tipo:       orDash(statusLabel(string(m.TipoMovimiento))),
			Cantidad:   f.Int(m.CantidadMovida),
			StockFinal: f.Int(m.StockFinalDespuesMovimiento),
			Motivo:     orDash(m.Motivo),
			Fecha:      f.DateTime(m.FechaMovimiento),
		})
	}
	if len(view.Rows) == 0 {
		view.Vacio = emptyMovements
	}
	return view
}

// RenderAlertTable tabla de umbrales configurados.
func RenderAlertTable(list []entity.AlertThreshold, f *Formatter) dto.AlertTableView {
	view := dto.AlertTableView{Rows: make([]dto.AlertRow, 0, len(list))}
	for _, a := range list {
		row := dto.AlertRow{
			SKU:         a.SKU,
			Tipo:        orDash(statusLabel(string(a.TipoAlerta))),
			Umbral:      f.Int(a.UmbralCantidad),
			Activo:      a.Activo,
			ActivoLabel: "Inactivo",
			BadgeClass:  badgeClass(string(entity.EstadoDadoDeBaja)),
			Fecha:       f.Date(a.FechaCreacion),
		}
		if a.Activo {
			row.ActivoLabel = "Activo"
			row.BadgeClass = badgeClass(string(entity.EstadoDisponible))
		}
		view.Rows = append(view.Rows, row)
	}
	if len(view.Rows) == 0 {
		view.Vacio = emptyAlerts
	}
	return view
}

// RenderQueryResult tabla de resultados de una consulta de stock; nil si no hay consulta.
func RenderQueryResult(q *QueryResult, f *Formatter) *dto.QueryResultView {
	if q == nil {
		return nil
	}
	view := &dto.QueryResultView{
		Kind:   q.Kind,
		Umbral: q.Umbral,
		Title:  q.Kind.Title(),
		Rows:   make([]dto.QueryResultRow, 0, len(q.Products)),
	}
	for _, p := range q.Products {
		view.Rows = append(view.Rows, dto.QueryResultRow{
			SKU:        p.SKU,
			Disponible: f.Int(p.CantidadDisponible),
			Minimo:     f.Int(p.CantidadMinimaStock),
			Ubicacion:  orDash(p.UbicacionAlmacen),
		})
	}
	if len(view.Rows) == 0 {
		view.Vacio = emptyQuery
	}
	return view
}

// RenderActiveAlerts tarjetas del widget de alertas activas.
func RenderActiveAlerts(list []entity.AlertThreshold, f *Formatter) []dto.ActiveAlertView {
	out := make([]dto.ActiveAlertView, 0, len(list))
	for _, a := range list {
		out = append(out, dto.ActiveAlertView{
			SKU:    a.SKU,
			Tipo:   orDash(statusLabel(string(a.TipoAlerta))),
			Umbral: f.Int(a.UmbralCantidad),
		})
	}
	return out
}

// RenderDashboard tarjetas de métricas, barras por estado y widget de alertas.
func RenderDashboard(stats dto.DashboardStats, active []entity.AlertThreshold, f *Formatter) dto.DashboardView {
	view := dto.DashboardView{
		TotalProductos: f.Int(stats.TotalProductos),
		StockTotal:     f.Int(stats.StockTotal),
		StockBajo:      f.Int(stats.StockBajo),
		MovimientosHoy: f.Int(stats.MovimientosHoy),
		Estados:        cloneSlice(stats.PorEstado),
		AlertasActivas: RenderActiveAlerts(active, f),
	}
	if len(view.AlertasActivas) == 0 {
		view.AlertasVacio = emptyActiveAlerts
	}
	return view
}

// BuildPage arma el modelo completo de la página a partir de un snapshot.
func BuildPage(snap Snapshot, toasts []dto.Toast, f *Formatter, appName string) dto.PageView {
	products := RenderProductTable(snap.Products, false, f)
	if snap.Filter.Active() {
		products = RenderProductTable(FilterProducts(snap.Products, snap.Filter.Term, snap.Filter.Estado), true, f)
	}
	if toasts == nil {
		toasts = []dto.Toast{}
	}

	page := dto.PageView{
		AppName:         appName,
		Section:         string(snap.Section),
		Nav:             navItems(snap.Section),
		Loading:         snap.Loading,
		Toasts:          toasts,
		Dashboard:       RenderDashboard(snap.Stats, snap.ActiveAlerts, f),
		Products:        products,
		Filter:          snap.Filter,
		Estados:         enumStrings(entity.EstadosStock),
		StockForm:       snap.StockDraft,
		AdjustmentForm:  snap.AdjustmentDraft,
		TiposMovimiento: enumStrings(entity.TiposMovimiento),
		Query:           RenderQueryResult(snap.Query, f),
		MovementSKU:     snap.MovementSKU,
		Movements:       RenderMovementTable(snap.Movements, f),
		Alerts:          RenderAlertTable(snap.Alerts, f),
		TiposAlerta:     enumStrings(entity.TiposAlerta),
	}

	switch snap.Modal {
	case ModalProduct:
		page.Modal = &dto.ModalView{
			Kind:    string(ModalProduct),
			Title:   "Nuevo Producto",
			Editing: snap.EditingProduct != nil,
			Product: snap.ProductDraft,
		}
		if snap.EditingProduct != nil {
			page.Modal.Title = "Editar Producto"
		}
	case ModalAlert:
		page.Modal = &dto.ModalView{
			Kind:    string(ModalAlert),
			Title:   "Nueva Alerta",
			Editing: snap.EditingAlert != nil,
			Alert:   snap.AlertDraft,
		}
		if snap.EditingAlert != nil {
			page.Modal.Title = "Editar Alerta"
		}
	}
	return page
}

func navItems(current Section) []dto.NavItem {
	items := make([]dto.NavItem, 0, len(Sections))
	for _, s := range Sections {
		items = append(items, dto.NavItem{Section: string(s), Label: s.Label(), Active: s == current})
	}
	return items
}

func enumStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
