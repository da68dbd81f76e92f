package inventoryapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Claves de colección dentro de _embedded, una por tipo de entidad.
const (
	embeddedProducts  = "productoInventarioDTOList"
	embeddedMovements = "movimientoStockDTOList"
	embeddedAlerts    = "umbralAlertaDTOList"
)

// halEnvelope respuesta HAL: la colección viaja anidada bajo _embedded.<clave>.
type halEnvelope struct {
	Embedded map[string]json.RawMessage `json:"_embedded"`
}

// decodeEmbedded extrae la colección de la clave indicada. Si falta _embedded
// o la clave, devuelve una lista vacía (no nil).
func decodeEmbedded[T any](env halEnvelope, key string) ([]T, error) {
	raw, ok := env.Embedded[key]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decodificar _embedded.%s: %w", key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// embeddedList adapta decodeEmbedded a json.Unmarshaler para que los errores de
// decodificación pasen por Client.Request como cualquier otro fallo.
// Un arreglo "desnudo" también se acepta.
type embeddedList[T any] struct {
	key   string
	items []T
}

func (l *embeddedList[T]) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		l.items = items
		return nil
	}
	var env halEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	items, err := decodeEmbedded[T](env, l.key)
	if err != nil {
		return err
	}
	l.items = items
	return nil
}

// Items devuelve la colección decodificada, nunca nil.
func (l *embeddedList[T]) Items() []T {
	if l.items == nil {
		return []T{}
	}
	return l.items
}
