package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// layouts aceptados para fechas del backend. El API serializa LocalDateTime sin zona.
var localDateTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// LocalDateTime fecha del backend. null, "" o ausente → valor cero.
type LocalDateTime struct {
	time.Time
}

// UnmarshalJSON tolera los formatos del API; un formato desconocido es error.
func (t *LocalDateTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("fecha: %w", err)
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range localDateTimeLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("fecha: formato no reconocido %q", s)
}

// MarshalJSON escribe el formato sin zona que espera el backend.
func (t LocalDateTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format("2006-01-02T15:04:05"))
}
