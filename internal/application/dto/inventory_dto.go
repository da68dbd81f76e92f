package dto

// StockUpdateForm valores crudos del formulario "Actualizar stock".
type StockUpdateForm struct {
	SKU        string `form:"sku" json:"sku"`
	Cantidad   string `form:"cantidad" json:"cantidad"`
	Tipo       string `form:"tipo" json:"tipo"`
	Referencia string `form:"referencia" json:"referencia"`
	Motivo     string `form:"motivo" json:"motivo"`
}

// StockUpdatePayload body de PUT /productos/stock.
type StockUpdatePayload struct {
	SKU               string `json:"sku"`
	Cantidad          *int   `json:"cantidad"`
	TipoMovimiento    string `json:"tipoMovimiento"`
	ReferenciaExterna string `json:"referenciaExterna"`
	Motivo            string `json:"motivo"`
}

// ManualAdjustmentForm valores crudos del formulario "Ajuste manual".
type ManualAdjustmentForm struct {
	SKU      string `form:"sku" json:"sku"`
	Cantidad string `form:"cantidad" json:"cantidad"`
	Tipo     string `form:"tipo" json:"tipo"`
	Motivo   string `form:"motivo" json:"motivo"`
}

// ManualAdjustmentPayload body de POST /productos/stock/ajuste-manual.
type ManualAdjustmentPayload struct {
	SKU            string `json:"sku"`
	Cantidad       *int   `json:"cantidad"`
	TipoMovimiento string `json:"tipoMovimiento"`
	Motivo         string `json:"motivo"`
}

// StockQueryKind consulta ad-hoc de la sección de stock.
type StockQueryKind string

const (
	StockQueryLow    StockQueryKind = "bajo-stock"
	StockQueryExcess StockQueryKind = "exceso-stock"
)

// Title título que acompaña a la tabla de resultados.
func (k StockQueryKind) Title() string {
	switch k {
	case StockQueryLow:
		return "Productos con Stock Bajo"
	case StockQueryExcess:
		return "Productos con Stock Excesivo"
	default:
		return string(k)
	}
}
