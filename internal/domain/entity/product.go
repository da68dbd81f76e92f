package entity

// Product producto de inventario tal como lo devuelve el API (ProductoInventarioDTO).
// El SKU es el identificador y no cambia después de la creación.
// Los campos numéricos ausentes quedan en 0.
type Product struct {
	ID                       int64         `json:"id,omitempty"`
	SKU                      string        `json:"sku"`
	CantidadDisponible       int           `json:"cantidadDisponible"`
	CantidadReservada        int           `json:"cantidadReservada"`
	CantidadTotal            int           `json:"cantidadTotal,omitempty"`
	UbicacionAlmacen         string        `json:"ubicacionAlmacen,omitempty"`
	CantidadMinimaStock      int           `json:"cantidadMinimaStock"`
	ProductoBaseSku          string        `json:"productoBaseSku,omitempty"`
	Talla                    string        `json:"talla,omitempty"`
	Color                    string        `json:"color,omitempty"`
	Estado                   EstadoStock   `json:"estado,omitempty"`
	FechaCreacion            LocalDateTime `json:"fechaCreacion"`
	FechaUltimaActualizacion LocalDateTime `json:"fechaUltimaActualizacion"`
}

// IsLowStock indica si el disponible está en o por debajo del mínimo configurado.
func (p Product) IsLowStock() bool {
	return p.CantidadDisponible <= p.CantidadMinimaStock
}
