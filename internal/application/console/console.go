// Package console contiene la lógica de la consola administrativa de inventario:
// estado de vista, navegación por secciones, controladores por sección y el
// render puro del estado a modelos de vista. No hace I/O propio; todo pasa por
// ports.InventoryGateway.
package console

import (
	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/ports"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

// Deps dependencias compartidas por los controladores.
type Deps struct {
	Gateway  ports.InventoryGateway
	State    *State
	Notifier ports.Notifier
	Reports  ports.StockReportGenerator // opcional
	Log      *logger.Logger             // opcional
}

// Options parámetros de presentación.
type Options struct {
	AppName string
	Locale  string
}

type toastLister interface {
	Active() []dto.Toast
}

// Console shell de la aplicación: dueño del estado y de los controladores.
type Console struct {
	State     *State
	Router    *Router
	Dashboard *Dashboard
	Products  *ProductController
	Stock     *StockController
	Movements *MovementController
	Alerts    *AlertController

	formatter *Formatter
	toasts    toastLister
	appName   string
}

// New cablea los controladores sobre un único estado.
func New(d Deps, opts Options) *Console {
	if d.State == nil {
		d.State = NewState()
	}
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	if opts.Locale == "" {
		opts.Locale = DefaultLocale
	}
	formatter := NewFormatter(opts.Locale)

	products := NewProductController(d)
	alerts := NewAlertController(d)
	dashboard := NewDashboard(d.State, products, alerts)

	c := &Console{
		State:     d.State,
		Router:    NewRouter(d.State, dashboard, products, alerts, d.Log.Component("router")),
		Dashboard: dashboard,
		Products:  products,
		Stock:     NewStockController(d, products, formatter),
		Movements: NewMovementController(d),
		Alerts:    alerts,
		formatter: formatter,
		appName:   opts.AppName,
	}
	if tl, ok := d.Notifier.(toastLister); ok {
		c.toasts = tl
	}
	return c
}

// Formatter formatter del locale configurado.
func (c *Console) Formatter() *Formatter { return c.formatter }

// Page modelo de vista completo del estado actual.
func (c *Console) Page() dto.PageView {
	var toasts []dto.Toast
	if c.toasts != nil {
		toasts = c.toasts.Active()
	}
	return BuildPage(c.State.Snapshot(), toasts, c.formatter, c.appName)
}

func (d Deps) logger(component string) *logger.Logger {
	if d.Log == nil {
		return logger.Nop()
	}
	return d.Log.Component(component)
}
