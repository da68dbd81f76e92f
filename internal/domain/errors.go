package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrRequestFailed    = errors.New("fallo en la comunicación con el servidor")
	ErrValidationFailed = errors.New("validación fallida")
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrUnknownSection   = errors.New("sección desconocida")
)

// RequestError describe una llamada al API de inventario que no llegó a buen término:
// status no-2xx (Status > 0) o fallo de transporte (Status == 0).
type RequestError struct {
	Method   string
	Endpoint string
	Status   int
	Err      error
}

func (e *RequestError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.Endpoint, e.Status)
	}
	return fmt.Sprintf("%s %s: %v", e.Method, e.Endpoint, e.Err)
}

// Unwrap permite errors.Is contra ErrRequestFailed y contra la causa original.
func (e *RequestError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRequestFailed}
	}
	return []error{ErrRequestFailed, e.Err}
}

// ValidationError error de validación del lado del cliente (campo requerido vacío, número inválido).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidationFailed }

// NewValidationError atajo para construir un ValidationError.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// StatusOf devuelve el status HTTP de un RequestError, o 0 si err no lo es.
func StatusOf(err error) int {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Status
	}
	return 0
}
