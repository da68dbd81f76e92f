// Package inventoryapi implementa el gateway HTTP hacia el API REST de inventario
// (/api/inventario). Es el único componente de la consola que hace I/O de red.
package inventoryapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/ports"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/pkg/jwt"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa InventoryGateway.
var _ ports.InventoryGateway = (*Client)(nil)

const (
	mediaTypeJSON = "application/json"
	mediaTypeHAL  = "application/hal+json"

	// MsgCommunicationError notificación genérica ante cualquier fallo de llamada.
	MsgCommunicationError = "Error en la comunicación con el servidor"
)

// RequestOptions sobrescrituras opcionales de una llamada.
type RequestOptions struct {
	Method  string            // por defecto GET
	Body    any               // se serializa a JSON; nil = sin cuerpo
	Headers map[string]string // se mezclan sobre los headers por defecto
}

// Config dependencias y parámetros del cliente.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client // opcional
	Tokens     *jwt.TokenSource
	Loading    ports.LoadingIndicator
	Notifier   ports.Notifier
	Log        *logger.Logger
}

// Client adaptador que implementa InventoryGateway sobre net/http.
type Client struct {
	baseURL    string
	httpClient *http.Client
	loading    ports.LoadingIndicator
	notifier   ports.Notifier
	log        *logger.Logger

	tokenMu sync.Mutex
	tokens  *jwt.TokenSource
}

// NewClient construye el cliente. Loading, Notifier y Log son opcionales.
func NewClient(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: hc,
		loading:    cfg.Loading,
		notifier:   cfg.Notifier,
		log:        log.Component("inventoryapi"),
		tokens:     cfg.Tokens,
	}
}

// Request ejecuta una llamada contra BaseURL+endpoint y decodifica el JSON de respuesta en out
// (out puede ser nil). Un status no-2xx o un fallo de transporte devuelve *domain.RequestError.
// El indicador de carga se activa durante la llamada y se libera siempre, incluso ante error.
func (c *Client) Request(ctx context.Context, endpoint string, opts RequestOptions, out any) (err error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	if c.loading != nil {
		c.loading.SetLoading(true)
		defer c.loading.SetLoading(false)
	}
	defer func() {
		if err != nil {
			c.log.Error().Err(err).Str("method", method).Str("endpoint", endpoint).Msg("API Error")
			if c.notifier != nil {
				c.notifier.Notify(dto.ToastError, MsgCommunicationError)
			}
		}
	}()

	fail := func(status int, cause error) error {
		return &domain.RequestError{Method: method, Endpoint: endpoint, Status: status, Err: cause}
	}

	var body io.Reader
	if opts.Body != nil {
		raw, mErr := json.Marshal(opts.Body)
		if mErr != nil {
			return fail(0, fmt.Errorf("serializar body: %w", mErr))
		}
		body = bytes.NewReader(raw)
	}

	req, rErr := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if rErr != nil {
		return fail(0, fmt.Errorf("crear HTTP request: %w", rErr))
	}
	req.Header.Set("Content-Type", mediaTypeJSON)
	req.Header.Set("Accept", mediaTypeHAL)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.tokens != nil {
		tok, tErr := c.serviceToken()
		if tErr != nil {
			return fail(0, fmt.Errorf("token de servicio: %w", tErr))
		}
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	started := time.Now()
	resp, dErr := c.httpClient.Do(req)
	if dErr != nil {
		if ctx.Err() != nil {
			return fail(0, fmt.Errorf("timeout o cancelación: %w", ctx.Err()))
		}
		return fail(0, dErr)
	}
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(resp.Body)
	c.log.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("respuesta del API de inventario")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(resp.StatusCode, fmt.Errorf("HTTP error! status: %d", resp.StatusCode))
	}
	if readErr != nil {
		return fail(resp.StatusCode, fmt.Errorf("leer respuesta: %w", readErr))
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if uErr := json.Unmarshal(raw, out); uErr != nil {
		return fail(resp.StatusCode, fmt.Errorf("deserializar respuesta: %w", uErr))
	}
	return nil
}

func (c *Client) serviceToken() (string, error) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()
	return c.tokens.Token()
}
