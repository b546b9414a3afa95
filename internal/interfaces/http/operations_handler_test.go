package http_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arquetipo/clientes-api/internal/application/dto"
	"github.com/arquetipo/clientes-api/internal/application/usecase"
	"github.com/arquetipo/clientes-api/internal/infrastructure/operations"
	apphttp "github.com/arquetipo/clientes-api/internal/interfaces/http"
)

// buildOperationsApp conecta router → caso de uso → cliente real contra un upstream httptest.
func buildOperationsApp(t *testing.T, upstream http.HandlerFunc, timeout time.Duration) *fiber.App {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	client, err := operations.NewClient(operations.Config{
		BaseAddress: srv.URL + "/api/",
		Username:    "testuser",
		Password:    "testpass",
	})
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Customers:    nil,
		OperationsUC: usecase.NewOperationsUseCase(client, timeout),
		Tokens:       testTokens,
	})
	return app
}

func jsonUpstream(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestExchangeRate_OK(t *testing.T) {
	got := make(chan *url.URL, 1)
	app := buildOperationsApp(t, func(w http.ResponseWriter, r *http.Request) {
		got <- r.URL
		jsonUpstream(http.StatusOK, `{"status":"200","comment":"OK","sessionId":"s-1","data":[{"rate":36.5,"date":"15-01-2024"}]}`)(w, r)
	}, time.Second)

	resp := send(t, app, http.MethodGet, "/api/v1/operations/exchange-rate?date=2024-01-15&currencyCode=usd", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decode[dto.Envelope[dto.ExchangeRateItem]](t, resp)
	require.Len(t, env.Data, 1)
	assert.Equal(t, "36.5", env.Data[0].Rate.String())
	assert.Equal(t, "s-1", env.SessionID)

	u := <-got
	assert.Equal(t, "/api/exchange-rate", u.Path)
	assert.Equal(t, "2024-01-15", u.Query().Get("date"))
	assert.Equal(t, "USD", u.Query().Get("currencyCode"), "el código de moneda se normaliza a mayúsculas")
}

func TestExchangeRate_DataNull_ArregloVacio(t *testing.T) {
	app := buildOperationsApp(t, jsonUpstream(http.StatusOK, `{"status":"200","comment":"Sin tasa","sessionId":"s-2","data":null}`), time.Second)

	resp := send(t, app, http.MethodGet, "/api/v1/operations/exchange-rate?date=2024-01-15&currencyCode=USD", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decode[dto.Envelope[dto.ExchangeRateItem]](t, resp)
	assert.NotNil(t, env.Data)
	assert.Empty(t, env.Data)
	assert.Equal(t, "Sin tasa", env.Comment)
}

func TestExchangeRate_FechaInvalida_Retorna400(t *testing.T) {
	app := buildOperationsApp(t, jsonUpstream(http.StatusOK, `{}`), time.Second)

	for _, path := range []string{
		"/api/v1/operations/exchange-rate?currencyCode=USD",
		"/api/v1/operations/exchange-rate?date=15-01-2024&currencyCode=USD",
		"/api/v1/operations/exchange-rate?date=2024-01-15",
	} {
		resp := send(t, app, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
	}
}

func TestExchangeRate_UpstreamError_Retorna502(t *testing.T) {
	app := buildOperationsApp(t, jsonUpstream(http.StatusInternalServerError, `boom`), time.Second)

	resp := send(t, app, http.MethodGet, "/api/v1/operations/exchange-rate?date=2024-01-15&currencyCode=USD", nil, "")
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "UPSTREAM_ERROR", decode[dto.ErrorResponse](t, resp).Code)
}

func TestExchangeRate_PayloadInvalido_Retorna502(t *testing.T) {
	app := buildOperationsApp(t, jsonUpstream(http.StatusOK, `<html>`), time.Second)

	resp := send(t, app, http.MethodGet, "/api/v1/operations/exchange-rate?date=2024-01-15&currencyCode=USD", nil, "")
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "UPSTREAM_PAYLOAD", decode[dto.ErrorResponse](t, resp).Code)
}

func TestExchangeRate_Timeout_Retorna504(t *testing.T) {
	app := buildOperationsApp(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}, 50*time.Millisecond)

	resp := send(t, app, http.MethodGet, "/api/v1/operations/exchange-rate?date=2024-01-15&currencyCode=USD", nil, "")
	require.Equal(t, http.StatusGatewayTimeout, resp.StatusCode)
	assert.Equal(t, "UPSTREAM_TIMEOUT", decode[dto.ErrorResponse](t, resp).Code)
}

func TestLegalHolidays_OK(t *testing.T) {
	got := make(chan url.Values, 1)
	app := buildOperationsApp(t, func(w http.ResponseWriter, r *http.Request) {
		got <- r.URL.Query()
		jsonUpstream(http.StatusOK, `{"status":"200","comment":"OK","sessionId":"s-3","data":[
			{"date":"01-01-2024","description":"Año Nuevo","type":"Nacional"},
			{"date":"25-12-2024","description":"Navidad","type":"Nacional"}]}`)(w, r)
	}, time.Second)

	resp := send(t, app, http.MethodGet, "/api/v1/operations/legal-holidays?fromDate=2024-01-01&toDate=2024-12-31", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decode[dto.Envelope[dto.LegalHolidayItem]](t, resp)
	require.Len(t, env.Data, 2)
	assert.Equal(t, "Navidad", env.Data[1].Description)
	q := <-got
	assert.Equal(t, "2024-01-01", q.Get("fromDate"))
	assert.Equal(t, "2024-12-31", q.Get("toDate"))
}

func TestLegalHolidays_RangoInvertido_Retorna400(t *testing.T) {
	var called atomic.Bool
	app := buildOperationsApp(t, func(w http.ResponseWriter, r *http.Request) {
		called.Store(true)
		jsonUpstream(http.StatusOK, `{}`)(w, r)
	}, time.Second)

	resp := send(t, app, http.MethodGet, "/api/v1/operations/legal-holidays?fromDate=2024-12-31&toDate=2024-01-01", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, called.Load(), "no debe llamarse al upstream con un rango inválido")
}

func TestOperations_SinConfigurar_Retorna503(t *testing.T) {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{Tokens: testTokens})

	resp := send(t, app, http.MethodGet, "/api/v1/operations/legal-holidays?fromDate=2024-01-01&toDate=2024-01-31", nil, "")
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "OPERATIONS_UNAVAILABLE", decode[dto.ErrorResponse](t, resp).Code)
}
