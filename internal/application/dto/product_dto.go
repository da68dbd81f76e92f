package dto

// ProductForm valores crudos del formulario de producto (modal crear/editar).
// Se conservan como texto para poder re-mostrar el borrador si el guardado falla.
type ProductForm struct {
	SKU       string `form:"sku" json:"sku"`
	Cantidad  string `form:"cantidad" json:"cantidad"`
	Ubicacion string `form:"ubicacion" json:"ubicacion"`
	Minimo    string `form:"minimo" json:"minimo"`
	Base      string `form:"base" json:"base"`
	Talla     string `form:"talla" json:"talla"`
	Color     string `form:"color" json:"color"`
	Estado    string `form:"estado" json:"estado"`
}

// ProductPayload body de POST /productos y PUT /productos/{sku}.
// CantidadInicial es nil cuando el campo vino vacío o no numérico (se envía null).
type ProductPayload struct {
	SKU                 string `json:"sku"`
	CantidadInicial     *int   `json:"cantidadInicial"`
	UbicacionAlmacen    string `json:"ubicacionAlmacen"`
	CantidadMinimaStock int    `json:"cantidadMinimaStock"`
	ProductoBaseSku     string `json:"productoBaseSku"`
	Talla               string `json:"talla"`
	Color               string `json:"color"`
	Estado              string `json:"estado"`
}

// ProductFilter criterios del buscador de la tabla de productos.
type ProductFilter struct {
	Term   string `query:"q" json:"q"`
	Estado string `query:"estado" json:"estado"`
}

// Active indica si hay algún criterio aplicado.
func (f ProductFilter) Active() bool {
	return f.Term != "" || f.Estado != ""
}
