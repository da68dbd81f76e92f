package console

import (
	"context"
	"errors"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// ComputeStats métricas del dashboard sobre la lista de productos en memoria.
// PorEstado conserva el orden de primera aparición; estado vacío cuenta como DISPONIBLE.
func ComputeStats(list []entity.Product) dto.DashboardStats {
	stats := dto.DashboardStats{
		TotalProductos: len(list),
		PorEstado:      []dto.EstadoCount{},
	}
	index := make(map[entity.EstadoStock]int)
	for _, p := range list {
		stats.StockTotal += p.CantidadDisponible
		if p.IsLowStock() {
			stats.StockBajo++
		}

		estado := p.Estado.OrDefault()
		i, ok := index[estado]
		if !ok {
			i = len(stats.PorEstado)
			index[estado] = i
			stats.PorEstado = append(stats.PorEstado, dto.EstadoCount{
				Estado: string(estado),
				Label:  statusLabel(string(estado)),
			})
		}
		stats.PorEstado[i].Cantidad++
	}
	return stats
}

// recomputeStats recalcula y guarda el snapshot de métricas a partir del store actual.
func recomputeStats(s *State) dto.DashboardStats {
	stats := ComputeStats(s.Products())
	s.setStats(stats)
	return stats
}

// Dashboard agrega los datos de la sección dashboard.
type Dashboard struct {
	state    *State
	products *ProductController
	alerts   *AlertController
}

// NewDashboard construye el agregador del dashboard.
func NewDashboard(state *State, products *ProductController, alerts *AlertController) *Dashboard {
	return &Dashboard{state: state, products: products, alerts: alerts}
}

// Load productos → métricas → alertas activas. Las métricas se recalculan siempre,
// aunque la carga de productos haya fallado (store vacío).
func (d *Dashboard) Load(ctx context.Context) error {
	productsErr := d.products.List(ctx)
	d.Recompute()
	alertsErr := d.alerts.LoadActive(ctx)
	return errors.Join(productsErr, alertsErr)
}

// Recompute recalcula el snapshot de métricas; es la única vía por la que cambian.
func (d *Dashboard) Recompute() dto.DashboardStats {
	return recomputeStats(d.state)
}

// Stats último snapshot de métricas.
func (d *Dashboard) Stats() dto.DashboardStats {
	return d.state.Stats()
}
