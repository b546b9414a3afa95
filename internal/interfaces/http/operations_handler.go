package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/arquetipo/clientes-api/internal/application/dto"
	"github.com/arquetipo/clientes-api/internal/application/usecase"
)

const queryDateLayout = "2006-01-02"

// OperationsHandler expone la API externa de operaciones (tasa de cambio y feriados).
type OperationsHandler struct {
	uc *usecase.OperationsUseCase
}

// NewOperationsHandler construye el handler. uc nil deja las rutas respondiendo 503.
func NewOperationsHandler(uc *usecase.OperationsUseCase) *OperationsHandler {
	return &OperationsHandler{uc: uc}
}

// ExchangeRate godoc
// @Summary      Tasa de cambio
// @Description  Consulta la tasa de cambio de la moneda para la fecha indicada.
//               Un data null del proveedor se devuelve como arreglo vacío.
// @Tags         operations
// @Produce      json
// @Param        date          query  string  true  "Fecha YYYY-MM-DD"
// @Param        currencyCode  query  string  true  "Código de moneda (USD, EUR...)"
// @Success      200  {object}  dto.Envelope[dto.ExchangeRateItem]
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Failure      504  {object}  dto.ErrorResponse
// @Router       /api/v1/operations/exchange-rate [get]
func (h *OperationsHandler) ExchangeRate(c *fiber.Ctx) error {
	if h.uc == nil {
		return unavailable(c)
	}
	var q dto.ExchangeRateQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	}
	if issues := validateStruct(q); len(issues) > 0 {
		return validationError(c, issues)
	}
	date, _ := time.Parse(queryDateLayout, q.Date)

	env, err := h.uc.ExchangeRate(c.UserContext(), date, q.CurrencyCode)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(env)
}

// LegalHolidays godoc
// @Summary      Feriados legales
// @Description  Lista los feriados legales entre fromDate y toDate (máximo un año).
// @Tags         operations
// @Produce      json
// @Param        fromDate  query  string  true  "Desde YYYY-MM-DD"
// @Param        toDate    query  string  true  "Hasta YYYY-MM-DD"
// @Success      200  {object}  dto.Envelope[dto.LegalHolidayItem]
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Failure      504  {object}  dto.ErrorResponse
// @Router       /api/v1/operations/legal-holidays [get]
func (h *OperationsHandler) LegalHolidays(c *fiber.Ctx) error {
	if h.uc == nil {
		return unavailable(c)
	}
	var q dto.LegalHolidaysQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	}
	if issues := validateStruct(q); len(issues) > 0 {
		return validationError(c, issues)
	}
	// el formato ya fue validado por el tag datetime
	from, _ := time.Parse(queryDateLayout, q.FromDate)
	to, _ := time.Parse(queryDateLayout, q.ToDate)

	env, err := h.uc.LegalHolidays(c.UserContext(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(env)
}

func unavailable(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
		Code:    "OPERATIONS_UNAVAILABLE",
		Message: "la API de operaciones no está configurada",
	})
}
