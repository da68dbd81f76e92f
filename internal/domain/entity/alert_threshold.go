package entity

// AlertThreshold umbral de alerta configurado para un SKU (UmbralAlertaDTO).
// La evaluación del umbral ocurre en el backend.
type AlertThreshold struct {
	ID                       int64         `json:"id,omitempty"`
	SKU                      string        `json:"sku"`
	TipoAlerta               TipoAlerta    `json:"tipoAlerta,omitempty"`
	UmbralCantidad           int           `json:"umbralCantidad"`
	Activo                   bool          `json:"activo"`
	FechaCreacion            LocalDateTime `json:"fechaCreacion"`
	FechaUltimaActualizacion LocalDateTime `json:"fechaUltimaActualizacion"`
}
