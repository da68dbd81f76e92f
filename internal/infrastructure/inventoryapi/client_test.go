package inventoryapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
	"github.com/jhoicas/inventario-console/internal/infrastructure/inventoryapi"
	"github.com/jhoicas/inventario-console/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type recordingUI struct {
	mu      sync.Mutex
	toasts  []dto.Toast
	loading []bool
}

func (r *recordingUI) Notify(kind dto.ToastKind, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = append(r.toasts, dto.Toast{Kind: kind, Message: message})
}

func (r *recordingUI) SetLoading(loading bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = append(r.loading, loading)
}

type capturedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   string
}

// newBackend levanta un backend falso que responde con handler y registra cada petición.
func newBackend(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *[]capturedRequest) {
	t.Helper()
	var mu sync.Mutex
	captured := []capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		captured = append(captured, capturedRequest{Method: r.Method, Path: r.URL.EscapedPath(), Header: r.Header.Clone(), Body: string(body)})
		mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

func newClient(srv *httptest.Server, ui *recordingUI) *inventoryapi.Client {
	return inventoryapi.NewClient(inventoryapi.Config{
		BaseURL:  srv.URL + "/api/inventario/",
		Timeout:  2 * time.Second,
		Loading:  ui,
		Notifier: ui,
	})
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/hal+json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// ──────────────────────────────────────────────────────────────────────────────
// Request: headers, errores, indicador de carga
// ──────────────────────────────────────────────────────────────────────────────

func TestRequest_HeadersPorDefectoYSobrescritura(t *testing.T) {
	srv, captured := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	})
	ui := &recordingUI{}
	c := newClient(srv, ui)

	err := c.Request(context.Background(), "/productos", inventoryapi.RequestOptions{
		Headers: map[string]string{"Accept": "application/json"},
	}, nil)
	require.NoError(t, err)

	require.Len(t, *captured, 1)
	got := (*captured)[0]
	assert.Equal(t, "/api/inventario/productos", got.Path)
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"), "el header del caller sobrescribe el por defecto")
	assert.NotEmpty(t, got.Header.Get("X-Request-ID"))
	assert.Empty(t, got.Header.Get("Authorization"), "sin token de servicio no se envía Authorization")
	assert.Equal(t, []bool{true, false}, ui.loading)
	assert.Empty(t, ui.toasts)
}

func TestRequest_AcceptHALPorDefecto(t *testing.T) {
	srv, captured := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	})
	c := newClient(srv, &recordingUI{})

	require.NoError(t, c.Request(context.Background(), "/umbrales", inventoryapi.RequestOptions{}, nil))
	assert.Equal(t, "application/hal+json", (*captured)[0].Header.Get("Accept"))
}

func TestRequest_StatusNo2xx_RequestFailed(t *testing.T) {
	srv, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, `{"message":"ya existe"}`)
	})
	ui := &recordingUI{}
	c := newClient(srv, ui)

	err := c.CreateProduct(context.Background(), dto.ProductPayload{SKU: "A1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRequestFailed))
	assert.Equal(t, http.StatusConflict, domain.StatusOf(err))

	assert.Equal(t, []bool{true, false}, ui.loading, "el indicador se libera también en error")
	require.Len(t, ui.toasts, 1)
	assert.Equal(t, dto.ToastError, ui.toasts[0].Kind)
	assert.Equal(t, inventoryapi.MsgCommunicationError, ui.toasts[0].Message)
}

func TestRequest_FalloDeTransporte(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	ui := &recordingUI{}
	c := inventoryapi.NewClient(inventoryapi.Config{BaseURL: url, Timeout: time.Second, Loading: ui, Notifier: ui})

	_, err := c.ListProducts(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRequestFailed))
	assert.Equal(t, 0, domain.StatusOf(err))
	assert.Equal(t, []bool{true, false}, ui.loading)
	assert.Len(t, ui.toasts, 1)
}

func TestRequest_JSONInvalido_RequestFailed(t *testing.T) {
	srv, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"_embedded": {"productoInventarioDTOList": "no-es-lista"}}`)
	})
	ui := &recordingUI{}
	c := newClient(srv, ui)

	_, err := c.ListProducts(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRequestFailed))
	assert.Len(t, ui.toasts, 1)
}

func TestRequest_CuerpoVacioEnDelete(t *testing.T) {
	srv, captured := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	c := newClient(srv, &recordingUI{})

	require.NoError(t, c.DeleteProduct(context.Background(), "A1"))
	assert.Equal(t, http.MethodDelete, (*captured)[0].Method)
	assert.Equal(t, "/api/inventario/productos/A1", (*captured)[0].Path)
}

func TestRequest_TokenDeServicio(t *testing.T) {
	srv, captured := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	})
	c := inventoryapi.NewClient(inventoryapi.Config{
		BaseURL: srv.URL,
		Tokens:  jwt.NewTokenSource("secret", "consola-admin", "inventario-console", time.Minute),
	})

	require.NoError(t, c.Request(context.Background(), "/productos", inventoryapi.RequestOptions{}, nil))
	assert.True(t, strings.HasPrefix((*captured)[0].Header.Get("Authorization"), "Bearer "))
}

// ──────────────────────────────────────────────────────────────────────────────
// Endpoints tipados y sobre HAL
// ──────────────────────────────────────────────────────────────────────────────

func TestListProducts_DesenvuelveHAL(t *testing.T) {
	srv, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{
			"_embedded": {"productoInventarioDTOList": [
				{"sku":"A1","cantidadDisponible":5,"cantidadMinimaStock":10,"estado":"DISPONIBLE",
				 "fechaCreacion":"2024-05-01T10:20:30.123456"},
				{"sku":"B2"}
			]},
			"_links": {"self": {"href": "http://localhost:8080/api/inventario/productos"}}
		}`)
	})
	c := newClient(srv, &recordingUI{})

	list, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A1", list[0].SKU)
	assert.Equal(t, 5, list[0].CantidadDisponible)
	assert.Equal(t, entity.EstadoDisponible, list[0].Estado)
	assert.Equal(t, 2024, list[0].FechaCreacion.Year())
	assert.Equal(t, 0, list[1].CantidadDisponible, "campos ausentes quedan en cero")
	assert.Equal(t, entity.EstadoStock(""), list[1].Estado)
}

func TestListProducts_RespuestaGrandeSeDecodificaCompleta(t *testing.T) {
	const total = 60000
	var b strings.Builder
	b.WriteString(`{"_embedded":{"productoInventarioDTOList":[`)
	for i := 0; i < total; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, `{"sku":"SKU-%06d","cantidadDisponible":%d,"ubicacionAlmacen":"PASILLO-%010d"}`, i, i, i)
	}
	b.WriteString(`]}}`)
	body := b.String()
	require.Greater(t, len(body), 4<<20, "el cuerpo debe superar 4 MiB")

	srv, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, body)
	})
	ui := &recordingUI{}
	c := newClient(srv, ui)

	list, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, list, total)
	assert.Equal(t, fmt.Sprintf("SKU-%06d", total-1), list[total-1].SKU)
	assert.Empty(t, ui.toasts)
}

func TestListProducts_SinEmbeddedDevuelveListaVacia(t *testing.T) {
	srv, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"_links":{}}`)
	})
	c := newClient(srv, &recordingUI{})

	list, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestListMovements_EscapaSKUYDecodifica(t *testing.T) {
	srv, captured := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"_embedded":{"movimientoStockDTOList":[
			{"id":7,"sku":"CAM 01","tipoMovimiento":"SALIDA","cantidadMovida":3,"stockFinalDespuesMovimiento":17,
			 "fechaMovimiento":"2024-06-02T08:00:00"}]}}`)
	})
	c := newClient(srv, &recordingUI{})

	list, err := c.ListMovements(context.Background(), "CAM 01")
	require.NoError(t, err)
	assert.Equal(t, "/api/inventario/movimientos/CAM%2001", (*captured)[0].Path)
	require.Len(t, list, 1)
	assert.Equal(t, entity.MovimientoSalida, list[0].TipoMovimiento)
	assert.Equal(t, 17, list[0].StockFinalDespuesMovimiento)
}

func TestStockEndpoints_MetodosYRutas(t *testing.T) {
	srv, captured := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	})
	c := newClient(srv, &recordingUI{})
	ctx := context.Background()
	qty := -3

	require.NoError(t, c.UpdateStock(ctx, dto.StockUpdatePayload{SKU: "A1", Cantidad: &qty, TipoMovimiento: "SALIDA"}))
	require.NoError(t, c.ManualAdjustment(ctx, dto.ManualAdjustmentPayload{SKU: "A1", Cantidad: &qty, TipoMovimiento: "ENTRADA"}))
	_, err := c.LowStock(ctx, 10)
	require.NoError(t, err)
	_, err = c.ExcessStock(ctx, 100)
	require.NoError(t, err)

	require.Len(t, *captured, 4)
	assert.Equal(t, http.MethodPut, (*captured)[0].Method)
	assert.Equal(t, "/api/inventario/productos/stock", (*captured)[0].Path)
	assert.JSONEq(t, `{"sku":"A1","cantidad":-3,"tipoMovimiento":"SALIDA","referenciaExterna":"","motivo":""}`, (*captured)[0].Body)
	assert.Equal(t, http.MethodPost, (*captured)[1].Method)
	assert.Equal(t, "/api/inventario/productos/stock/ajuste-manual", (*captured)[1].Path)
	assert.Equal(t, "/api/inventario/productos/bajo-stock/10", (*captured)[2].Path)
	assert.Equal(t, "/api/inventario/productos/exceso-stock/100", (*captured)[3].Path)
}

func TestAlertEndpoints_PayloadBooleano(t *testing.T) {
	srv, captured := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeJSON(w, http.StatusOK, `{"sku":"A1","tipoAlerta":"BAJO_STOCK","umbralCantidad":4,"activo":true}`)
			return
		}
		writeJSON(w, http.StatusOK, `{}`)
	})
	c := newClient(srv, &recordingUI{})
	ctx := context.Background()
	umbral := 4

	a, err := c.GetAlert(ctx, "A1")
	require.NoError(t, err)
	assert.True(t, a.Activo)

	require.NoError(t, c.UpdateAlert(ctx, "A1", dto.AlertPayload{SKU: "A1", TipoAlerta: "BAJO_STOCK", UmbralCantidad: &umbral, Activo: false}))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte((*captured)[1].Body), &body))
	assert.Equal(t, false, body["activo"])
	assert.Equal(t, "/api/inventario/umbrales/A1", (*captured)[1].Path)
}
