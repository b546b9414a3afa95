// Package operations adaptador HTTP de la API externa de operaciones financieras.
package operations

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/arquetipo/clientes-api/internal/application/dto"
	"github.com/arquetipo/clientes-api/internal/application/ports"
)

// Verificar en tiempo de compilación que Client implementa OperationsAPI.
var _ ports.OperationsAPI = (*Client)(nil)

const (
	exchangeRatePath  = "exchange-rate"
	legalHolidaysPath = "legal-holidays"

	queryDateLayout = "2006-01-02"
	maxBodyBytes    = 1 << 20 // 1 MB
	defaultTimeout  = 30 * time.Second
)

// Config datos de conexión. Se leen una vez desde la configuración de la app.
type Config struct {
	BaseAddress string
	Username    string
	Password    string
	Timeout     time.Duration
}

// Client cliente de la API de operaciones. Inmutable tras NewClient; seguro
// para uso concurrente.
type Client struct {
	baseURL       *url.URL
	authorization string
	httpClient    *http.Client
}

// Option personaliza el cliente.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client (tests, transportes propios).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient construye el cliente y precalcula la cabecera Basic-Auth
// base64(username:password).
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.BaseAddress) == "" {
		return nil, fmt.Errorf("operaciones: base address vacía")
	}
	base, err := url.Parse(cfg.BaseAddress)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("operaciones: base address inválida %q", cfg.BaseAddress)
	}
	// Con "/" final las rutas relativas se resuelven debajo de la base.
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		baseURL:       base,
		authorization: "Basic " + base64.StdEncoding.EncodeToString([]byte(cfg.Username+":"+cfg.Password)),
		httpClient:    &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GetExchangeRate consulta la tasa de cambio de una moneda en una fecha.
func (c *Client) GetExchangeRate(ctx context.Context, date time.Time, currencyCode string) (dto.Envelope[dto.ExchangeRateItem], error) {
	q := url.Values{}
	q.Set("date", date.Format(queryDateLayout))
	q.Set("currencyCode", currencyCode)
	return get[dto.ExchangeRateItem](ctx, c, exchangeRatePath, q)
}

// GetLegalHolidays consulta los feriados legales de un rango de fechas.
func (c *Client) GetLegalHolidays(ctx context.Context, from, to time.Time) (dto.Envelope[dto.LegalHolidayItem], error) {
	q := url.Values{}
	q.Set("fromDate", from.Format(queryDateLayout))
	q.Set("toDate", to.Format(queryDateLayout))
	return get[dto.LegalHolidayItem](ctx, c, legalHolidaysPath, q)
}

// newRequest es el único punto donde se construyen requests salientes: siempre
// llevan la cabecera Authorization.
func (c *Client) newRequest(ctx context.Context, method, path string, q url.Values) (*http.Request, error) {
	u := c.baseURL.ResolveReference(&url.URL{Path: path, RawQuery: q.Encode()})
	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("operaciones: crear request: %w", err)
	}
	req.Header.Set("Authorization", c.authorization)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func get[T any](ctx context.Context, c *Client, path string, q url.Values) (dto.Envelope[T], error) {
	var zero dto.Envelope[T]

	req, err := c.newRequest(ctx, http.MethodGet, path, q)
	if err != nil {
		return zero, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return zero, fmt.Errorf("operaciones: timeout o cancelación: %w", ctx.Err())
		}
		return zero, fmt.Errorf("operaciones: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if ctx.Err() != nil {
			return zero, fmt.Errorf("operaciones: timeout o cancelación: %w", ctx.Err())
		}
		return zero, fmt.Errorf("operaciones: leer respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, &UpstreamError{StatusCode: resp.StatusCode, Body: string(rawBody)}
	}

	if trimmed := strings.TrimSpace(string(rawBody)); trimmed == "" || trimmed == "null" {
		return zero, fmt.Errorf("%w: cuerpo vacío", ErrMalformedPayload)
	}
	var env dto.Envelope[T]
	if err := json.Unmarshal(rawBody, &env); err != nil {
		return zero, fmt.Errorf("%w: %v (respuesta: %s)", ErrMalformedPayload, err, string(rawBody))
	}
	return normalize(env), nil
}

// normalize garantiza Data no nil en respuestas exitosas; el resto del sobre no se toca.
func normalize[T any](env dto.Envelope[T]) dto.Envelope[T] {
	if env.Data == nil {
		env.Data = []T{}
	}
	return env
}
