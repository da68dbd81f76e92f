package console

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/ports"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

var errBackend = &domain.RequestError{Method: "GET", Endpoint: "/x", Status: 500, Err: errors.New("HTTP error! status: 500")}

// fakeGateway InventoryGateway en memoria. Los campos *Err fuerzan el fallo de esa operación.
type fakeGateway struct {
	mu    sync.Mutex
	calls []string

	products []entity.Product
	moves    map[string][]entity.Movement
	alerts   []entity.AlertThreshold
	low      []entity.Product

	listProductsErr error
	getProductErr   error
	saveProductErr  error
	deleteErr       error
	stockErr        error
	movementsErr    error
	listAlertsErr   error
	saveAlertErr    error

	productPayloads []dto.ProductPayload
	stockPayloads   []dto.StockUpdatePayload
	adjustPayloads  []dto.ManualAdjustmentPayload
	alertPayloads   []dto.AlertPayload
	thresholds      []int
}

var _ ports.InventoryGateway = (*fakeGateway)(nil)

func (g *fakeGateway) record(call string) {
	g.mu.Lock()
	g.calls = append(g.calls, call)
	g.mu.Unlock()
}

func (g *fakeGateway) Calls() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.calls...)
}

func (g *fakeGateway) count(call string) int {
	n := 0
	for _, c := range g.Calls() {
		if c == call {
			n++
		}
	}
	return n
}

func (g *fakeGateway) ListProducts(context.Context) ([]entity.Product, error) {
	g.record("ListProducts")
	if g.listProductsErr != nil {
		return nil, g.listProductsErr
	}
	return append([]entity.Product(nil), g.products...), nil
}

func (g *fakeGateway) GetProduct(_ context.Context, sku string) (*entity.Product, error) {
	g.record("GetProduct")
	if g.getProductErr != nil {
		return nil, g.getProductErr
	}
	for _, p := range g.products {
		if p.SKU == sku {
			cp := p
			return &cp, nil
		}
	}
	return nil, &domain.RequestError{Method: "GET", Endpoint: "/productos/" + sku, Status: 404, Err: domain.ErrNotFound}
}

func (g *fakeGateway) CreateProduct(_ context.Context, in dto.ProductPayload) error {
	g.record("CreateProduct")
	g.productPayloads = append(g.productPayloads, in)
	return g.saveProductErr
}

func (g *fakeGateway) UpdateProduct(_ context.Context, sku string, in dto.ProductPayload) error {
	g.record("UpdateProduct:" + sku)
	g.productPayloads = append(g.productPayloads, in)
	return g.saveProductErr
}

func (g *fakeGateway) DeleteProduct(_ context.Context, sku string) error {
	g.record("DeleteProduct:" + sku)
	if g.deleteErr != nil {
		return g.deleteErr
	}
	out := g.products[:0:0]
	for _, p := range g.products {
		if p.SKU != sku {
			out = append(out, p)
		}
	}
	g.products = out
	return nil
}

func (g *fakeGateway) UpdateStock(_ context.Context, in dto.StockUpdatePayload) error {
	g.record("UpdateStock")
	g.stockPayloads = append(g.stockPayloads, in)
	return g.stockErr
}

func (g *fakeGateway) ManualAdjustment(_ context.Context, in dto.ManualAdjustmentPayload) error {
	g.record("ManualAdjustment")
	g.adjustPayloads = append(g.adjustPayloads, in)
	return g.stockErr
}

func (g *fakeGateway) LowStock(_ context.Context, umbral int) ([]entity.Product, error) {
	g.record("LowStock")
	g.thresholds = append(g.thresholds, umbral)
	if g.stockErr != nil {
		return nil, g.stockErr
	}
	return g.low, nil
}

func (g *fakeGateway) ExcessStock(_ context.Context, umbral int) ([]entity.Product, error) {
	g.record("ExcessStock")
	g.thresholds = append(g.thresholds, umbral)
	if g.stockErr != nil {
		return nil, g.stockErr
	}
	return []entity.Product{}, nil
}

func (g *fakeGateway) ListMovements(_ context.Context, sku string) ([]entity.Movement, error) {
	g.record("ListMovements:" + sku)
	if g.movementsErr != nil {
		return nil, g.movementsErr
	}
	return g.moves[sku], nil
}

func (g *fakeGateway) ListAlerts(context.Context) ([]entity.AlertThreshold, error) {
	g.record("ListAlerts")
	if g.listAlertsErr != nil {
		return nil, g.listAlertsErr
	}
	return append([]entity.AlertThreshold(nil), g.alerts...), nil
}

func (g *fakeGateway) GetAlert(_ context.Context, sku string) (*entity.AlertThreshold, error) {
	g.record("GetAlert")
	for _, a := range g.alerts {
		if a.SKU == sku {
			cp := a
			return &cp, nil
		}
	}
	return nil, &domain.RequestError{Method: "GET", Endpoint: "/umbrales/" + sku, Status: 404, Err: domain.ErrNotFound}
}

func (g *fakeGateway) CreateAlert(_ context.Context, in dto.AlertPayload) error {
	g.record("CreateAlert")
	g.alertPayloads = append(g.alertPayloads, in)
	return g.saveAlertErr
}

func (g *fakeGateway) UpdateAlert(_ context.Context, sku string, in dto.AlertPayload) error {
	g.record("UpdateAlert:" + sku)
	g.alertPayloads = append(g.alertPayloads, in)
	return g.saveAlertErr
}

func (g *fakeGateway) DeleteAlert(_ context.Context, sku string) error {
	g.record("DeleteAlert:" + sku)
	return g.deleteErr
}

// recordingNotifier guarda los toasts emitidos.
type recordingNotifier struct {
	mu     sync.Mutex
	toasts []dto.Toast
}

func (n *recordingNotifier) Notify(kind dto.ToastKind, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, dto.Toast{ID: fmt.Sprint(len(n.toasts) + 1), Kind: kind, Message: message})
}

func (n *recordingNotifier) last() dto.Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.toasts) == 0 {
		return dto.Toast{}
	}
	return n.toasts[len(n.toasts)-1]
}

func (n *recordingNotifier) messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.toasts))
	for i, t := range n.toasts {
		out[i] = t.Message
	}
	return out
}

type fakeReports struct {
	got dto.QueryResultView
	err error
}

func (r *fakeReports) GenerateStockReport(_ context.Context, report dto.QueryResultView) ([]byte, error) {
	r.got = report
	if r.err != nil {
		return nil, r.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

func accept() ports.Confirmer {
	return ports.ConfirmFunc(func(context.Context, string) bool { return true })
}

func reject() ports.Confirmer {
	return ports.ConfirmFunc(func(context.Context, string) bool { return false })
}

func newTestConsole(gw *fakeGateway) (*Console, *recordingNotifier) {
	notes := &recordingNotifier{}
	c := New(Deps{Gateway: gw, Notifier: notes, Reports: &fakeReports{}}, Options{AppName: "Consola", Locale: "es-CO"})
	return c, notes
}

func sampleProducts() []entity.Product {
	return []entity.Product{
		{SKU: "CAM-001-M-AZUL", CantidadDisponible: 20, CantidadMinimaStock: 5, Estado: entity.EstadoDisponible},
		{SKU: "CAM-002-L-ROJO", CantidadDisponible: 5, CantidadMinimaStock: 10, Estado: entity.EstadoReservado},
	}
}
