package console

import (
	"sync"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// Modal modal abierto en la consola (como máximo uno).
type Modal string

const (
	ModalNone    Modal = ""
	ModalProduct Modal = "producto"
	ModalAlert   Modal = "alerta"
)

// resource colección con su propio contador de generación.
type resource int

const (
	resProducts resource = iota
	resMovements
	resAlerts
	resActiveAlerts
	resStockQuery
	resourceCount
)

// QueryResult resultado ad-hoc de una consulta de stock bajo/excesivo.
// No forma parte del store de productos.
type QueryResult struct {
	Kind     dto.StockQueryKind
	Umbral   int
	Products []entity.Product
}

// State estado de vista de la consola, propiedad del shell e inyectado en los controladores.
//
// Las listas son siempre el reflejo sin filtrar del último fetch aceptado de su sección.
// Cada fetch toma una generación con begin; al completar, commit descarta la respuesta
// si entretanto se emitió otra petición para el mismo recurso.
type State struct {
	mu sync.RWMutex

	section Section

	productos    []entity.Product
	movimientos  []entity.Movement
	alertas      []entity.AlertThreshold
	activeAlerts []entity.AlertThreshold
	query        *QueryResult

	modal          Modal
	editingProduct *entity.Product
	editingAlert   *entity.AlertThreshold
	productDraft   dto.ProductForm
	alertDraft     dto.AlertForm

	stockDraft      dto.StockUpdateForm
	adjustmentDraft dto.ManualAdjustmentForm
	filter          dto.ProductFilter
	movementSKU     string

	stats dto.DashboardStats

	generations [resourceCount]uint64
	inFlight    int
}

// NewState crea el estado inicial: sección dashboard, listas vacías, sin edición.
func NewState() *State {
	return &State{
		section:      SectionDashboard,
		productos:    []entity.Product{},
		movimientos:  []entity.Movement{},
		alertas:      []entity.AlertThreshold{},
		activeAlerts: []entity.AlertThreshold{},
	}
}

// ── Sección ───────────────────────────────────────────────────────────────────

// Section sección visible.
func (s *State) Section() Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.section
}

func (s *State) setSection(section Section) {
	s.mu.Lock()
	s.section = section
	s.mu.Unlock()
}

// ── Generaciones ──────────────────────────────────────────────────────────────

// begin registra una nueva petición para res y devuelve su generación.
func (s *State) begin(res resource) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[res]++
	return s.generations[res]
}

// commit aplica fn solo si gen sigue siendo la última generación emitida para res.
func (s *State) commit(res resource, gen uint64, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generations[res] {
		return false
	}
	fn()
	return true
}

func (s *State) commitProducts(gen uint64, list []entity.Product) bool {
	return s.commit(resProducts, gen, func() { s.productos = cloneSlice(list) })
}

func (s *State) commitMovements(gen uint64, list []entity.Movement) bool {
	return s.commit(resMovements, gen, func() { s.movimientos = cloneSlice(list) })
}

func (s *State) commitAlerts(gen uint64, list []entity.AlertThreshold) bool {
	return s.commit(resAlerts, gen, func() { s.alertas = cloneSlice(list) })
}

func (s *State) commitActiveAlerts(gen uint64, list []entity.AlertThreshold) bool {
	return s.commit(resActiveAlerts, gen, func() { s.activeAlerts = cloneSlice(list) })
}

func (s *State) commitQuery(gen uint64, q *QueryResult) bool {
	return s.commit(resStockQuery, gen, func() {
		if q == nil {
			s.query = nil
			return
		}
		cp := *q
		cp.Products = cloneSlice(q.Products)
		s.query = &cp
	})
}

// ── Lecturas (copias) ─────────────────────────────────────────────────────────

// Products copia del store de productos.
func (s *State) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.productos)
}

// Movements copia del store de movimientos.
func (s *State) Movements() []entity.Movement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.movimientos)
}

// Alerts copia del store de umbrales.
func (s *State) Alerts() []entity.AlertThreshold {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.alertas)
}

// ActiveAlerts copia de la lista del widget de alertas activas.
func (s *State) ActiveAlerts() []entity.AlertThreshold {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.activeAlerts)
}

// Query último resultado de consulta de stock, o nil.
func (s *State) Query() *QueryResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.query == nil {
		return nil
	}
	cp := *s.query
	cp.Products = cloneSlice(s.query.Products)
	return &cp
}

// Stats último snapshot de métricas del dashboard.
func (s *State) Stats() dto.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.stats
	st.PorEstado = cloneSlice(s.stats.PorEstado)
	return st
}

func (s *State) setStats(st dto.DashboardStats) {
	s.mu.Lock()
	s.stats = st
	s.mu.Unlock()
}

// ── Modales y edición ─────────────────────────────────────────────────────────

// EditingProduct producto en edición, o nil.
func (s *State) EditingProduct() *entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.editingProduct == nil {
		return nil
	}
	cp := *s.editingProduct
	return &cp
}

// EditingAlert umbral en edición, o nil.
func (s *State) EditingAlert() *entity.AlertThreshold {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.editingAlert == nil {
		return nil
	}
	cp := *s.editingAlert
	return &cp
}

// Modal modal abierto.
func (s *State) Modal() Modal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modal
}

// openProductModal abre el modal de producto; p == nil es alta nueva.
// Solo puede haber un modal: abrir uno descarta la edición del otro.
func (s *State) openProductModal(p *entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = ModalProduct
	s.editingAlert = nil
	s.alertDraft = dto.AlertForm{}
	if p == nil {
		s.editingProduct = nil
		s.productDraft = dto.ProductForm{}
		return
	}
	cp := *p
	s.editingProduct = &cp
	s.productDraft = ProductFormFrom(cp)
}

// openAlertModal abre el modal de alerta; a == nil es alta nueva.
func (s *State) openAlertModal(a *entity.AlertThreshold) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = ModalAlert
	s.editingProduct = nil
	s.productDraft = dto.ProductForm{}
	if a == nil {
		s.editingAlert = nil
		s.alertDraft = dto.AlertForm{}
		return
	}
	cp := *a
	s.editingAlert = &cp
	s.alertDraft = AlertFormFrom(cp)
}

func (s *State) keepProductDraft(f dto.ProductForm) {
	s.mu.Lock()
	s.productDraft = f
	s.mu.Unlock()
}

func (s *State) keepAlertDraft(f dto.AlertForm) {
	s.mu.Lock()
	s.alertDraft = f
	s.mu.Unlock()
}

// CloseModals cierra cualquier modal y termina ambas ediciones.
func (s *State) CloseModals() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = ModalNone
	s.editingProduct = nil
	s.editingAlert = nil
	s.productDraft = dto.ProductForm{}
	s.alertDraft = dto.AlertForm{}
}

// ── Borradores y criterios ────────────────────────────────────────────────────

func (s *State) setStockDraft(f dto.StockUpdateForm) {
	s.mu.Lock()
	s.stockDraft = f
	s.mu.Unlock()
}

func (s *State) setAdjustmentDraft(f dto.ManualAdjustmentForm) {
	s.mu.Lock()
	s.adjustmentDraft = f
	s.mu.Unlock()
}

func (s *State) setFilter(f dto.ProductFilter) {
	s.mu.Lock()
	s.filter = f
	s.mu.Unlock()
}

// Filter criterios vigentes del buscador de productos.
func (s *State) Filter() dto.ProductFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

func (s *State) setMovementSKU(sku string) {
	s.mu.Lock()
	s.movementSKU = sku
	s.mu.Unlock()
}

// ── Indicador de carga ────────────────────────────────────────────────────────

// SetLoading implementa ports.LoadingIndicator con un contador de llamadas en vuelo.
func (s *State) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if loading {
		s.inFlight++
		return
	}
	if s.inFlight > 0 {
		s.inFlight--
	}
}

// Loading indica si hay alguna llamada al API en curso.
func (s *State) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inFlight > 0
}

// ── Snapshot ──────────────────────────────────────────────────────────────────

// Snapshot copia consistente del estado para renderizar.
type Snapshot struct {
	Section         Section
	Products        []entity.Product
	Movements       []entity.Movement
	Alerts          []entity.AlertThreshold
	ActiveAlerts    []entity.AlertThreshold
	Query           *QueryResult
	Modal           Modal
	EditingProduct  *entity.Product
	EditingAlert    *entity.AlertThreshold
	ProductDraft    dto.ProductForm
	AlertDraft      dto.AlertForm
	StockDraft      dto.StockUpdateForm
	AdjustmentDraft dto.ManualAdjustmentForm
	Filter          dto.ProductFilter
	MovementSKU     string
	Stats           dto.DashboardStats
	Loading         bool
}

// Snapshot toma una copia profunda bajo un único lock de lectura.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{
		Section:         s.section,
		Products:        cloneSlice(s.productos),
		Movements:       cloneSlice(s.movimientos),
		Alerts:          cloneSlice(s.alertas),
		ActiveAlerts:    cloneSlice(s.activeAlerts),
		Modal:           s.modal,
		ProductDraft:    s.productDraft,
		AlertDraft:      s.alertDraft,
		StockDraft:      s.stockDraft,
		AdjustmentDraft: s.adjustmentDraft,
		Filter:          s.filter,
		MovementSKU:     s.movementSKU,
		Stats:           s.stats,
		Loading:         s.inFlight > 0,
	}
	snap.Stats.PorEstado = cloneSlice(s.stats.PorEstado)
	if s.query != nil {
		q := *s.query
		q.Products = cloneSlice(s.query.Products)
		snap.Query = &q
	}
	if s.editingProduct != nil {
		p := *s.editingProduct
		snap.EditingProduct = &p
	}
	if s.editingAlert != nil {
		a := *s.editingAlert
		snap.EditingAlert = &a
	}
	return snap
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
