package inventoryapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// ── Productos ─────────────────────────────────────────────────────────────────

// ListProducts GET /productos.
func (c *Client) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return getList[entity.Product](ctx, c, "/productos", embeddedProducts)
}

// GetProduct GET /productos/{sku}.
func (c *Client) GetProduct(ctx context.Context, sku string) (*entity.Product, error) {
	var p entity.Product
	if err := c.Request(ctx, "/productos/"+url.PathEscape(sku), RequestOptions{}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProduct POST /productos.
func (c *Client) CreateProduct(ctx context.Context, in dto.ProductPayload) error {
	return c.Request(ctx, "/productos", RequestOptions{Method: http.MethodPost, Body: in}, nil)
}

// UpdateProduct PUT /productos/{sku}.
func (c *Client) UpdateProduct(ctx context.Context, sku string, in dto.ProductPayload) error {
	return c.Request(ctx, "/productos/"+url.PathEscape(sku), RequestOptions{Method: http.MethodPut, Body: in}, nil)
}

// DeleteProduct DELETE /productos/{sku}.
func (c *Client) DeleteProduct(ctx context.Context, sku string) error {
	return c.Request(ctx, "/productos/"+url.PathEscape(sku), RequestOptions{Method: http.MethodDelete}, nil)
}

// ── Stock ─────────────────────────────────────────────────────────────────────

// UpdateStock PUT /productos/stock (movimiento tipado).
func (c *Client) UpdateStock(ctx context.Context, in dto.StockUpdatePayload) error {
	return c.Request(ctx, "/productos/stock", RequestOptions{Method: http.MethodPut, Body: in}, nil)
}

// ManualAdjustment POST /productos/stock/ajuste-manual.
func (c *Client) ManualAdjustment(ctx context.Context, in dto.ManualAdjustmentPayload) error {
	return c.Request(ctx, "/productos/stock/ajuste-manual", RequestOptions{Method: http.MethodPost, Body: in}, nil)
}

// LowStock GET /productos/bajo-stock/{umbral}.
func (c *Client) LowStock(ctx context.Context, umbral int) ([]entity.Product, error) {
	return getList[entity.Product](ctx, c, "/productos/bajo-stock/"+strconv.Itoa(umbral), embeddedProducts)
}

// ExcessStock GET /productos/exceso-stock/{umbral}.
func (c *Client) ExcessStock(ctx context.Context, umbral int) ([]entity.Product, error) {
	return getList[entity.Product](ctx, c, "/productos/exceso-stock/"+strconv.Itoa(umbral), embeddedProducts)
}

// ── Movimientos ───────────────────────────────────────────────────────────────

// ListMovements GET /movimientos/{sku}.
func (c *Client) ListMovements(ctx context.Context, sku string) ([]entity.Movement, error) {
	return getList[entity.Movement](ctx, c, "/movimientos/"+url.PathEscape(sku), embeddedMovements)
}

// ── Umbrales de alerta ────────────────────────────────────────────────────────

// ListAlerts GET /umbrales.
func (c *Client) ListAlerts(ctx context.Context) ([]entity.AlertThreshold, error) {
	return getList[entity.AlertThreshold](ctx, c, "/umbrales", embeddedAlerts)
}

// GetAlert GET /umbrales/{sku}.
func (c *Client) GetAlert(ctx context.Context, sku string) (*entity.AlertThreshold, error) {
	var a entity.AlertThreshold
	if err := c.Request(ctx, "/umbrales/"+url.PathEscape(sku), RequestOptions{}, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAlert POST /umbrales.
func (c *Client) CreateAlert(ctx context.Context, in dto.AlertPayload) error {
	return c.Request(ctx, "/umbrales", RequestOptions{Method: http.MethodPost, Body: in}, nil)
}

// UpdateAlert PUT /umbrales/{sku}.
func (c *Client) UpdateAlert(ctx context.Context, sku string, in dto.AlertPayload) error {
	return c.Request(ctx, "/umbrales/"+url.PathEscape(sku), RequestOptions{Method: http.MethodPut, Body: in}, nil)
}

// DeleteAlert DELETE /umbrales/{sku}.
func (c *Client) DeleteAlert(ctx context.Context, sku string) error {
	return c.Request(ctx, "/umbrales/"+url.PathEscape(sku), RequestOptions{Method: http.MethodDelete}, nil)
}

func getList[T any](ctx context.Context, c *Client, endpoint, key string) ([]T, error) {
	list := &embeddedList[T]{key: key}
	if err := c.Request(ctx, endpoint, RequestOptions{}, list); err != nil {
		return nil, err
	}
	return list.Items(), nil
}
