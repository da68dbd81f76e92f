package dto

// AlertForm valores crudos del formulario de umbral de alerta.
// Activo llega del select como "true" / "false".
type AlertForm struct {
	SKU    string `form:"sku" json:"sku"`
	Tipo   string `form:"tipo" json:"tipo"`
	Umbral string `form:"umbral" json:"umbral"`
	Activo string `form:"activo" json:"activo"`
}

// AlertPayload body de POST /umbrales y PUT /umbrales/{sku}.
type AlertPayload struct {
	SKU            string `json:"sku"`
	TipoAlerta     string `json:"tipoAlerta"`
	UmbralCantidad *int   `json:"umbralCantidad"`
	Activo         bool   `json:"activo"`
}
