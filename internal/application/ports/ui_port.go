package ports

import (
	"context"

	"github.com/jhoicas/inventario-console/internal/application/dto"
)

// Notifier muestra una notificación (toast) al operador.
type Notifier interface {
	Notify(kind dto.ToastKind, message string)
}

// Confirmer puerto de "intención confirmada" antes de una acción destructiva.
// Devuelve false si el operador rechazó (o no confirmó) la acción.
type Confirmer interface {
	Confirm(ctx context.Context, message string) bool
}

// ConfirmFunc adapta una función a Confirmer.
type ConfirmFunc func(ctx context.Context, message string) bool

// Confirm implementa Confirmer.
func (f ConfirmFunc) Confirm(ctx context.Context, message string) bool { return f(ctx, message) }

// LoadingIndicator indicador global de "cargando" mientras dura una llamada al API.
type LoadingIndicator interface {
	SetLoading(loading bool)
}
