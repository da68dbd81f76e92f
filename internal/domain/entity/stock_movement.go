package entity

// Movement movimiento de stock registrado por el backend (MovimientoStockDTO).
// Historial inmutable desde la consola: solo se consulta.
type Movement struct {
	ID                          int64          `json:"id"`
	ProductoInventarioID        int64          `json:"productoInventarioId,omitempty"`
	SKU                         string         `json:"sku"`
	UbicacionAlmacen            string         `json:"ubicacionAlmacen,omitempty"`
	TipoMovimiento              TipoMovimiento `json:"tipoMovimiento"`
	CantidadMovida              int            `json:"cantidadMovida"`
	StockFinalDespuesMovimiento int            `json:"stockFinalDespuesMovimiento"`
	ReferenciaExterna           string         `json:"referenciaExterna,omitempty"`
	Motivo                      string         `json:"motivo,omitempty"`
	Origen                      string         `json:"origen,omitempty"`
	FechaMovimiento             LocalDateTime  `json:"fechaMovimiento"`
}
