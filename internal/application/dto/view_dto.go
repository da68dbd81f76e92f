package dto

// ProductRow fila de la tabla principal de productos.
type ProductRow struct {
	SKU         string `json:"sku"`
	Disponible  string `json:"disponible"`
	Reservada   string `json:"reservada"`
	Ubicacion   string `json:"ubicacion"`
	Estado      string `json:"estado"`
	EstadoLabel string `json:"estado_label"`
	BadgeClass  string `json:"badge_class"`
}

// ProductTableView tabla de productos; Vacio es el texto de la fila vacía.
type ProductTableView struct {
	Rows  []ProductRow `json:"rows"`
	Vacio string       `json:"vacio,omitempty"`
}

// MovementRow fila del historial de movimientos.
type MovementRow struct {
	ID         string `json:"id"`
	SKU        string `json:"sku"`
	Tipo       string `json:"tipo"`
	Cantidad   string `json:"cantidad"`
	StockFinal string `json:"stock_final"`
	Motivo     string `json:"motivo"`
	Fecha      string `json:"fecha"`
}

// MovementTableView tabla de movimientos.
type MovementTableView struct {
	Rows  []MovementRow `json:"rows"`
	Vacio string        `json:"vacio,omitempty"`
}

// AlertRow fila de la tabla de umbrales de alerta.
type AlertRow struct {
	SKU         string `json:"sku"`
	Tipo        string `json:"tipo"`
	Umbral      string `json:"umbral"`
	Activo      bool   `json:"activo"`
	ActivoLabel string `json:"activo_label"`
	BadgeClass  string `json:"badge_class"`
	Fecha       string `json:"fecha"`
}

// AlertTableView tabla de umbrales.
type AlertTableView struct {
	Rows  []AlertRow `json:"rows"`
	Vacio string     `json:"vacio,omitempty"`
}

// QueryResultRow fila de las consultas de stock bajo / excesivo.
type QueryResultRow struct {
	SKU        string `json:"sku"`
	Disponible string `json:"disponible"`
	Minimo     string `json:"minimo"`
	Ubicacion  string `json:"ubicacion"`
}

// QueryResultView resultado ad-hoc de una consulta de stock, distinto de la tabla principal.
type QueryResultView struct {
	Kind   StockQueryKind   `json:"kind"`
	Umbral int              `json:"umbral"`
	Title  string           `json:"title"`
	Rows   []QueryResultRow `json:"rows"`
	Vacio  string           `json:"vacio,omitempty"`
}

// ModalView modal abierto (producto o alerta) con su borrador.
type ModalView struct {
	Kind    string      `json:"kind"`
	Title   string      `json:"title"`
	Editing bool        `json:"editing"`
	Product ProductForm `json:"product"`
	Alert   AlertForm   `json:"alert"`
}

// NavItem botón de navegación.
type NavItem struct {
	Section string `json:"section"`
	Label   string `json:"label"`
	Active  bool   `json:"active"`
}

// PageView modelo completo de la página de la consola.
type PageView struct {
	AppName         string               `json:"app_name"`
	Section         string               `json:"section"`
	Nav             []NavItem            `json:"nav"`
	Loading         bool                 `json:"loading"`
	Toasts          []Toast              `json:"toasts"`
	Dashboard       DashboardView        `json:"dashboard"`
	Products        ProductTableView     `json:"products"`
	Filter          ProductFilter        `json:"filter"`
	Estados         []string             `json:"estados"`
	StockForm       StockUpdateForm      `json:"stock_form"`
	AdjustmentForm  ManualAdjustmentForm `json:"adjustment_form"`
	TiposMovimiento []string             `json:"tipos_movimiento"`
	Query           *QueryResultView     `json:"query,omitempty"`
	MovementSKU     string               `json:"movement_sku"`
	Movements       MovementTableView    `json:"movements"`
	Alerts          AlertTableView       `json:"alerts"`
	TiposAlerta     []string             `json:"tipos_alerta"`
	Modal           *ModalView           `json:"modal,omitempty"`
}
