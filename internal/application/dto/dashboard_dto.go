package dto

// DashboardStats métricas derivadas del store de productos en memoria.
// MovimientosHoy siempre es 0: requeriría una consulta por rango de fechas que la consola no emite.
type DashboardStats struct {
	TotalProductos int           `json:"total_productos"`
	StockTotal     int           `json:"stock_total"`
	StockBajo      int           `json:"stock_bajo"`
	MovimientosHoy int           `json:"movimientos_hoy"`
	PorEstado      []EstadoCount `json:"por_estado"`
}

// EstadoCount una barra del gráfico de estados.
type EstadoCount struct {
	Estado   string `json:"estado"`
	Label    string `json:"label"`
	Cantidad int    `json:"cantidad"`
}

// ActiveAlertView tarjeta del widget de alertas activas.
type ActiveAlertView struct {
	SKU    string `json:"sku"`
	Tipo   string `json:"tipo"`
	Umbral string `json:"umbral"`
}

// DashboardView vista del dashboard con los números ya formateados.
type DashboardView struct {
	TotalProductos string            `json:"total_productos"`
	StockTotal     string            `json:"stock_total"`
	StockBajo      string            `json:"stock_bajo"`
	MovimientosHoy string            `json:"movimientos_hoy"`
	Estados        []EstadoCount     `json:"estados"`
	AlertasActivas []ActiveAlertView `json:"alertas_activas"`
	AlertasVacio   string            `json:"alertas_vacio,omitempty"`
}
