package console

import (
	"context"
	"errors"

	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

// Section sección de la consola.
type Section string

const (
	SectionDashboard   Section = "dashboard"
	SectionProductos   Section = "productos"
	SectionStock       Section = "stock"
	SectionMovimientos Section = "movimientos"
	SectionAlertas     Section = "alertas"
)

// Sections en el orden de la barra de navegación.
var Sections = []Section{SectionDashboard, SectionProductos, SectionStock, SectionMovimientos, SectionAlertas}

var sectionLabels = map[Section]string{
	SectionDashboard:   "Dashboard",
	SectionProductos:   "Productos",
	SectionStock:       "Stock",
	SectionMovimientos: "Movimientos",
	SectionAlertas:     "Alertas",
}

// Label texto del botón de navegación.
func (s Section) Label() string {
	if l, ok := sectionLabels[s]; ok {
		return l
	}
	return string(s)
}

// ParseSection valida el nombre de una sección.
func ParseSection(name string) (Section, error) {
	s := Section(name)
	if _, ok := sectionLabels[s]; !ok {
		return "", errors.Join(domain.ErrUnknownSection, domain.NewValidationError("section", "sección desconocida: "+name))
	}
	return s, nil
}

// Router cambia la sección visible y dispara la carga de datos de esa sección.
type Router struct {
	state     *State
	dashboard *Dashboard
	products  *ProductController
	alerts    *AlertController
	log       *logger.Logger
}

// NewRouter construye el router de secciones.
func NewRouter(state *State, dashboard *Dashboard, products *ProductController, alerts *AlertController, log *logger.Logger) *Router {
	return &Router{state: state, dashboard: dashboard, products: products, alerts: alerts, log: log}
}

// Navigate activa la sección name. Stock y movimientos no cargan nada al entrar.
func (r *Router) Navigate(ctx context.Context, name string) error {
	section, err := ParseSection(name)
	if err != nil {
		r.log.Warn().Str("section", name).Msg("navegación a sección desconocida")
		return err
	}
	r.state.setSection(section)

	switch section {
	case SectionDashboard:
		return r.dashboard.Load(ctx)
	case SectionProductos:
		return r.products.List(ctx)
	case SectionAlertas:
		return r.alerts.List(ctx)
	}
	return nil
}

// Current sección visible.
func (r *Router) Current() Section {
	return r.state.Section()
}
