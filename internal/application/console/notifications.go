package console

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/ports"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

var _ ports.Notifier = (*Notifications)(nil)

// DefaultToastTTL tiempo que un toast permanece visible si nadie lo cierra.
const DefaultToastTTL = 5 * time.Second

type toastEntry struct {
	toast dto.Toast
	timer *time.Timer
}

// Notifications cola de toasts visibles. Cada toast se descarta solo al vencer su TTL
// o cuando el operador lo cierra.
type Notifications struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries []*toastEntry
	log     *logger.Logger
	now     func() time.Time
}

// NewNotifications crea la cola; ttl <= 0 usa DefaultToastTTL y log puede ser nil.
func NewNotifications(ttl time.Duration, log *logger.Logger) *Notifications {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Notifications{
		ttl: ttl,
		log: log.Component("notifications"),
		now: time.Now,
	}
}

// Notify implementa ports.Notifier.
func (n *Notifications) Notify(kind dto.ToastKind, message string) {
	id := uuid.NewString()
	entry := &toastEntry{toast: dto.Toast{
		ID:        id,
		Kind:      kind,
		Message:   message,
		CreatedAt: n.now(),
	}}

	n.mu.Lock()
	n.entries = append(n.entries, entry)
	entry.timer = time.AfterFunc(n.ttl, func() { n.remove(id) })
	n.mu.Unlock()

	n.log.Debug().Str("toast_id", id).Str("kind", string(kind)).Msg(message)
}

// Dismiss cierra el toast id antes de su vencimiento. Devuelve false si ya no estaba.
func (n *Notifications) Dismiss(id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, e := range n.entries {
		if e.toast.ID != id {
			continue
		}
		e.timer.Stop()
		n.entries = append(n.entries[:i], n.entries[i+1:]...)
		return true
	}
	return false
}

// Active toasts visibles, del más antiguo al más reciente.
func (n *Notifications) Active() []dto.Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]dto.Toast, len(n.entries))
	for i, e := range n.entries {
		out[i] = e.toast
	}
	return out
}

func (n *Notifications) remove(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, e := range n.entries {
		if e.toast.ID == id {
			n.entries = append(n.entries[:i], n.entries[i+1:]...)
			return
		}
	}
}
